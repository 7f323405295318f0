package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// formAddressed is implemented by messages that name a form.
type formAddressed interface {
	GetFormID() string
}

// formID returns the form a call addresses. OpenForm carries it only in the
// response, which may be a typed nil when the call failed.
func formID(req connect.AnyRequest, resp connect.AnyResponse, err error) string {
	if m, ok := req.Any().(formAddressed); ok {
		return m.GetFormID()
	}
	if err == nil && resp != nil {
		if m, ok := resp.Any().(formAddressed); ok {
			return m.GetFormID()
		}
	}
	return ""
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, token subject, form ID, code and duration.
// Client errors log at warn; internal and unknown failures log at error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			call := &callInfo{subject: GetSubject(ctx)}
			resp, err := next(context.WithValue(ctx, callKey, call), req)

			attrs := []any{"procedure", req.Spec().Procedure}
			if call.subject != "" {
				attrs = append(attrs, "subject", call.subject)
			}
			if id := formID(req, resp, err); id != "" {
				attrs = append(attrs, "form_id", id)
			}
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			if err == nil {
				slog.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, "code", code.String(), "error", err)
			switch code {
			case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss:
				slog.ErrorContext(ctx, "RPC error", attrs...)
			default:
				slog.WarnContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}
