// Package server exposes the solver over HTTP.
//
//	GET  /healthz    liveness check
//	POST /v1/solve   {"dims": [[6,7],[7,5],[5,4]]} -> evaluation report
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/matchain/mcm"
)

// maxBodyBytes bounds a solve request body.
const maxBodyBytes = 1 << 20

// shutdownTimeout is how long Serve waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// Handler serves the solve API with fixed solver options.
type Handler struct {
	logger   *log.Logger
	opts     mcm.Options
	maxChain int
}

// NewHandler returns a Handler that evaluates every request with opts and
// rejects chains longer than maxChain matrices.
func NewHandler(logger *log.Logger, opts mcm.Options, maxChain int) *Handler {
	return &Handler{logger: logger, opts: opts, maxChain: maxChain}
}

// Router mounts the API routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLog)

	r.Get("/healthz", h.Health)
	r.Post("/v1/solve", h.Solve)

	return r
}

// requestLog logs one line per request once it completes.
func (h *Handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, logger *log.Logger, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
