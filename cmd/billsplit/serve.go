package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/bauermateus/Bill-Splitter-App/internal/auth"
	"github.com/bauermateus/Bill-Splitter-App/internal/config"
	"github.com/bauermateus/Bill-Splitter-App/internal/form"
	"github.com/bauermateus/Bill-Splitter-App/internal/metrics"
	"github.com/bauermateus/Bill-Splitter-App/internal/middleware"
	"github.com/bauermateus/Bill-Splitter-App/internal/service"
	"github.com/bauermateus/Bill-Splitter-App/internal/storage"
	"github.com/bauermateus/Bill-Splitter-App/internal/storage/memory"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api/apiconnect"
	"github.com/bauermateus/Bill-Splitter-App/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect RPC server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

// newSessionStore builds the in-memory form store.
func newSessionStore(cfg config.Config) *memory.Store {
	return memory.New(
		memory.WithTTL(cfg.SessionTTL),
		memory.WithFormOptions(form.WithValidation(cfg.FormValidation())),
		memory.WithSubmitHook(func(id, value string) {
			slog.Info("Bill submitted", "form_id", id, "value", value)
		}),
	)
}

// newHandler mounts the RPC services and /metrics on one handler.
func newHandler(cfg config.Config, store storage.SessionStore, m *metrics.Metrics) http.Handler {
	calcInterceptors := []connect.Interceptor{middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)}
	formInterceptors := []connect.Interceptor{middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)}

	// Auth runs innermost so failed auth is still logged and counted
	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
		calcInterceptors = append(calcInterceptors, middleware.OptionalAuth(jwtManager))
		formInterceptors = append(formInterceptors, middleware.RequireAuth(jwtManager))
		slog.Info("Bearer token auth enabled")
	} else {
		slog.Warn("No jwt_secret configured, RPCs are unauthenticated")
	}

	mux := http.NewServeMux()

	// Register Connect services
	calcPath, calcHandler := apiconnect.NewCalculatorServiceHandler(
		service.NewCalculatorService(m),
		connect.WithInterceptors(calcInterceptors...),
	)
	mux.Handle(calcPath, calcHandler)

	formPath, formHandler := apiconnect.NewFormServiceHandler(
		service.NewFormService(store, m),
		connect.WithInterceptors(formInterceptors...),
	)
	mux.Handle(formPath, formHandler)

	mux.Handle("/metrics", m.Handler())

	return loggingMiddleware(corsMiddleware(cfg.CORSOrigin, mux))
}

func runServer(ctx context.Context, cfg config.Config) error {
	m := metrics.New()
	store := newSessionStore(cfg)
	defer store.Close()
	m.TrackSessions(store.Len)
	slog.Info("Session store initialized", "ttl", cfg.SessionTTL, "validation", cfg.Validation)

	go storage.RunSweeper(ctx, store, cfg.SweepInterval)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(newHandler(cfg, store, m), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// statusRecorder keeps the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// loggingMiddleware logs every HTTP request at debug with its status.
// Failed requests outside the RPC paths, such as a broken /metrics scrape,
// log at warn.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware lets browser clients on origin call the Connect endpoints
// with a bearer token.
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		if origin != "*" {
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		h.Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
