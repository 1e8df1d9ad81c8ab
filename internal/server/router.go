package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/viewkit/pkg/browser"
	"github.com/dmitrymomot/viewkit/pkg/httpserver"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/requestid"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	logger *slog.Logger
	checks []func(context.Context) error
}

// WithRouterLogger sets the logger for access and error logs.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(c *routerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReadinessCheck adds a dependency check to /readyz.
func WithReadinessCheck(check func(context.Context) error) RouterOption {
	return func(c *routerConfig) {
		if check != nil {
			c.checks = append(c.checks, check)
		}
	}
}

// NewRouter wires the HTTP API:
//
//	GET /v1/parse?ua=...   classify an arbitrary header (defaults to the caller's)
//	GET /v1/me             classification of the calling client
//	GET /healthz           liveness
//	GET /readyz            readiness
//	GET /metrics           Prometheus exposition
func NewRouter(d *browser.Detector, m *Metrics, opts ...RouterOption) http.Handler {
	cfg := &routerConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	h := &handlers{detector: d, logger: cfg.logger}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		m.instrument,
		browser.Middleware(d),
		accessLog(cfg.logger),
		middleware.Recoverer,
	)
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Get("/healthz", httpserver.HealthCheckHandler(cfg.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(cfg.logger, cfg.checks...))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/parse", h.parse)
		r.Get("/me", h.me)
	})

	return r
}

// accessLog writes one record per request once the handler returns. The
// request context already carries request_id and the ua group.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := r.Context()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.LogAttrs(ctx, levelFor(status), "http request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					logger.Status(status),
					logger.Duration(time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
