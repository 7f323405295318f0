// Package storage provides abstractions for holding live form sessions.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/bauermateus/Bill-Splitter-App/internal/form"
	"github.com/bauermateus/Bill-Splitter-App/internal/models"
)

var (
	ErrSessionNotFound = errors.New("form session not found")
	ErrStoreClosed     = errors.New("session store closed")
)

// Session is a snapshot of one live form and its bookkeeping.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Owner is the token subject that opened the session. Empty when the
	// server runs without auth.
	Owner string

	CreatedAt time.Time
	LastUsed  time.Time

	// Summary is the form state as of this snapshot.
	Summary models.Summary

	// LastSubmitted is the trimmed bill text of the most recent successful
	// submit, and Submissions counts them.
	LastSubmitted string
	Submissions   int
}

// SessionStore defines the operations on live form sessions.
// Sessions are never written to disk; they disappear on Delete, on idle
// expiry, or when the store is closed.
type SessionStore interface {
	// Create opens a session with a fresh form and returns its snapshot.
	Create(ctx context.Context, owner string) (*Session, error)

	// Get returns the session snapshot and marks it used.
	// Returns ErrSessionNotFound if the session is unknown or expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Update runs fn against the session's form. Calls for the same session
	// are serialised. An error from fn is returned as is and the snapshot
	// still reflects whatever fn changed.
	Update(ctx context.Context, id string, fn func(*form.Form) error) (*Session, error)

	// Delete closes the session.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions idle since before now minus the TTL and
	// returns how many were removed.
	Sweep(ctx context.Context, now time.Time) int

	// Len returns the number of live sessions.
	Len() int

	// Close drops every session and releases any resources held by the store.
	Close() error
}
