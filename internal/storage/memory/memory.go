// Package memory provides an in-process implementation of storage.SessionStore.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bauermateus/Bill-Splitter-App/internal/form"
	"github.com/bauermateus/Bill-Splitter-App/internal/storage"
)

// Ensure Store implements storage.SessionStore
var _ storage.SessionStore = (*Store)(nil)

// DefaultTTL is how long an idle session lives when no TTL is given.
const DefaultTTL = 30 * time.Minute

type entry struct {
	mu      sync.Mutex
	form    *form.Form
	session storage.Session
}

func (e *entry) snapshot() *storage.Session {
	s := e.session
	s.Summary = e.form.Summary()
	return &s
}

// Store keeps sessions in a map guarded by a mutex. Each session has its own
// lock so mutations of different forms do not contend.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	closed   bool
	ttl      time.Duration
	formOpts []form.Option
	now      func() time.Time
	onSubmit func(id, value string)
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the idle lifetime of a session.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFormOptions sets the options every new form is built with.
func WithFormOptions(opts ...form.Option) Option {
	return func(s *Store) {
		s.formOpts = append(s.formOpts, opts...)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSubmitHook registers fn to run after every successful submit, with the
// session lock held.
func WithSubmitHook(fn func(id, value string)) Option {
	return func(s *Store) {
		s.onSubmit = fn
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new session owned by owner.
func (s *Store) Create(ctx context.Context, owner string) (*storage.Session, error) {
	now := s.now()
	e := &entry{
		session: storage.Session{
			ID:        uuid.New().String(),
			Owner:     owner,
			CreatedAt: now,
			LastUsed:  now,
		},
	}

	opts := make([]form.Option, 0, len(s.formOpts)+1)
	opts = append(opts, s.formOpts...)
	opts = append(opts, form.WithOnValueChange(func(value string) {
		e.session.LastSubmitted = value
		e.session.Submissions++
		if s.onSubmit != nil {
			s.onSubmit(e.session.ID, value)
		}
	}))
	e.form = form.New(opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, storage.ErrStoreClosed
	}
	s.entries[e.session.ID] = e

	return e.snapshot(), nil
}

// lookup finds a live entry, dropping it if it has expired.
func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	closed := s.closed
	s.mu.RUnlock()

	if closed {
		return nil, storage.ErrStoreClosed
	}
	if !ok {
		return nil, storage.ErrSessionNotFound
	}

	e.mu.Lock()
	expired := s.expired(e, s.now())
	e.mu.Unlock()
	if expired {
		s.mu.Lock()
		if s.entries[id] == e {
			delete(s.entries, id)
		}
		s.mu.Unlock()
		return nil, storage.ErrSessionNotFound
	}
	return e, nil
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return now.Sub(e.session.LastUsed) > s.ttl
}

// Get returns a snapshot of the session.
func (s *Store) Get(ctx context.Context, id string) (*storage.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.LastUsed = s.now()
	return e.snapshot(), nil
}

// Update applies fn to the session's form.
func (s *Store) Update(ctx context.Context, id string, fn func(*form.Form) error) (*storage.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.LastUsed = s.now()
	err = fn(e.form)
	return e.snapshot(), err
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStoreClosed
	}
	if _, ok := s.entries[id]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(s.entries, id)
	return nil
}

// Sweep removes idle sessions.
func (s *Store) Sweep(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		e.mu.Lock()
		expired := s.expired(e, now)
		e.mu.Unlock()
		if expired {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close drops all sessions. Further calls fail with storage.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.closed = true
	return nil
}
