package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/internal/form"
	"github.com/bauermateus/Bill-Splitter-App/internal/metrics"
	"github.com/bauermateus/Bill-Splitter-App/internal/middleware"
	"github.com/bauermateus/Bill-Splitter-App/internal/storage"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api/apiconnect"
)

// Ensure FormService implements the Connect handler interface
var _ apiconnect.FormServiceHandler = (*FormService)(nil)

var errMissingFormID = errors.New("form_id is required")

// FormService implements the Connect FormService. Each form lives in the
// session store and is driven one mutation per call.
type FormService struct {
	store   storage.SessionStore
	metrics *metrics.Metrics
}

// NewFormService creates a new FormService with the given session store.
func NewFormService(store storage.SessionStore, m *metrics.Metrics) *FormService {
	return &FormService{store: store, metrics: m}
}

// authorize checks that the caller may touch the form. Forms opened without
// a subject are open to everyone.
func (s *FormService) authorize(ctx context.Context, formID string) error {
	if formID == "" {
		return connect.NewError(connect.CodeInvalidArgument, errMissingFormID)
	}

	sess, err := s.store.Get(ctx, formID)
	if err != nil {
		return storeError(err)
	}

	subject := middleware.GetSubject(ctx)
	if sess.Owner != "" && sess.Owner != subject {
		slog.Warn("Form access denied", "form_id", formID, "owner", sess.Owner, "subject", subject)
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("form %s belongs to another client", formID))
	}
	return nil
}

// update authorizes the caller, then applies fn to the form.
func (s *FormService) update(ctx context.Context, formID string, fn func(*form.Form)) (*storage.Session, error) {
	if err := s.authorize(ctx, formID); err != nil {
		return nil, err
	}

	sess, err := s.store.Update(ctx, formID, func(f *form.Form) error {
		fn(f)
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	return sess, nil
}

func (s *FormService) formResponse(ctx context.Context, formID string, fn func(*form.Form)) (*connect.Response[api.FormResponse], error) {
	sess, err := s.update(ctx, formID, fn)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.FormResponse{Summary: toAPISummary(sess.Summary)}), nil
}

// OpenForm creates a new form owned by the caller.
func (s *FormService) OpenForm(ctx context.Context, req *connect.Request[api.OpenFormRequest]) (*connect.Response[api.OpenFormResponse], error) {
	sess, err := s.store.Create(ctx, middleware.GetSubject(ctx))
	if err != nil {
		slog.Error("OpenForm failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Form opened", "form_id", sess.ID, "owner", sess.Owner)
	return connect.NewResponse(&api.OpenFormResponse{
		FormID:  sess.ID,
		Summary: toAPISummary(sess.Summary),
	}), nil
}

// GetForm returns the current state of a form.
func (s *FormService) GetForm(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	if err := s.authorize(ctx, req.Msg.FormID); err != nil {
		return nil, err
	}
	sess, err := s.store.Get(ctx, req.Msg.FormID)
	if err != nil {
		return nil, storeError(err)
	}
	return connect.NewResponse(&api.FormResponse{Summary: toAPISummary(sess.Summary)}), nil
}

// SetBillAmount replaces the bill text.
func (s *FormService) SetBillAmount(ctx context.Context, req *connect.Request[api.SetBillAmountRequest]) (*connect.Response[api.FormResponse], error) {
	return s.formResponse(ctx, req.Msg.FormID, func(f *form.Form) {
		f.SetBillAmount(req.Msg.Text)
	})
}

// IncrementSplit adds a person to the split.
func (s *FormService) IncrementSplit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	return s.formResponse(ctx, req.Msg.FormID, (*form.Form).IncrementSplit)
}

// DecrementSplit removes a person from the split, never going below one.
func (s *FormService) DecrementSplit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	return s.formResponse(ctx, req.Msg.FormID, (*form.Form).DecrementSplit)
}

// SetTipFraction moves the tip slider. Values outside [0, 1] are clamped.
func (s *FormService) SetTipFraction(ctx context.Context, req *connect.Request[api.SetTipFractionRequest]) (*connect.Response[api.FormResponse], error) {
	return s.formResponse(ctx, req.Msg.FormID, func(f *form.Form) {
		f.SetTipFraction(req.Msg.Fraction)
	})
}

// Submit confirms the bill entry. An invalid entry is not an error; the
// response reports submitted=false.
func (s *FormService) Submit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.SubmitResponse], error) {
	var submitted bool
	sess, err := s.update(ctx, req.Msg.FormID, func(f *form.Form) {
		submitted = f.Submit()
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSubmit(submitted)

	resp := &api.SubmitResponse{
		Submitted: submitted,
		Summary:   toAPISummary(sess.Summary),
	}
	if submitted {
		resp.Value = sess.LastSubmitted
	}
	return connect.NewResponse(resp), nil
}

// CloseForm discards the form.
func (s *FormService) CloseForm(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.CloseFormResponse], error) {
	if err := s.authorize(ctx, req.Msg.FormID); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, req.Msg.FormID); err != nil {
		return nil, storeError(err)
	}

	slog.Info("Form closed", "form_id", req.Msg.FormID)
	return connect.NewResponse(&api.CloseFormResponse{}), nil
}
