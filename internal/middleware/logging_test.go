package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
	"github.com/bauermateus/Bill-Splitter-App/pkg/logging"
)

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name    string
		req     connect.AnyRequest
		next    connect.UnaryFunc
		want    []string
		notWant []string
	}{
		{
			name: "form request with subject",
			req:  connect.NewRequest(&api.FormRequest{FormID: "form-1"}),
			next: func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				WithSubject(ctx, "alice")
				return connect.NewResponse(&api.FormResponse{}), nil
			},
			want:    []string{"INF", "RPC ok", "subject=alice", "form_id=form-1"},
			notWant: []string{"code="},
		},
		{
			name: "open form logs the new ID",
			req:  connect.NewRequest(&api.OpenFormRequest{}),
			next: func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				return connect.NewResponse(&api.OpenFormResponse{FormID: "form-2"}), nil
			},
			want:    []string{"RPC ok", "form_id=form-2"},
			notWant: []string{"subject="},
		},
		{
			name: "client error",
			req:  connect.NewRequest(&api.SetBillAmountRequest{FormID: "form-3"}),
			next: func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				return nil, connect.NewError(connect.CodeNotFound, errors.New("gone"))
			},
			want: []string{"WRN", "RPC error", "code=not_found", "form_id=form-3"},
		},
		{
			name: "plain error",
			req:  connect.NewRequest(&api.CalculateRequest{}),
			next: func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				return nil, errors.New("boom")
			},
			want:    []string{"ERR", "RPC error", "code=unknown"},
			notWant: []string{"form_id="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			_, _ = LoggingInterceptor()(tt.next)(context.Background(), tt.req)

			got := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("log missing %q:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("log unexpectedly contains %q:\n%s", notWant, got)
				}
			}
		})
	}
}
