// Package api implements the graphgen HTTP API.
//
// # Endpoints
//
//	GET    /healthz                  - liveness check
//	POST   /api/v1/graphs            - generate a graph, optionally persisting it
//	GET    /api/v1/graphs            - list stored records (documents omitted)
//	GET    /api/v1/graphs/{name}     - fetch a stored record with its document
//	GET    /api/v1/graphs/{name}/dot - Graphviz DOT rendering of a stored graph
//	DELETE /api/v1/graphs/{name}     - delete a stored graph
//
// # Errors
//
// Failures are reported as a JSON envelope with a machine-readable code:
//
//	{"error": {"code": "GRAPH_NOT_FOUND", "message": "graph \"demo\" not found"}}
//
// Codes map onto HTTP status: validation failures are 400, missing graphs
// 404, duplicate names 409, everything else 500.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/graphforge/graphgen/pkg/pipeline"
	"github.com/graphforge/graphgen/pkg/store"
)

// Server serves the graphgen HTTP API backed by a record store and a
// generation pipeline.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a Server. A nil logger falls back to the default logger.
func NewServer(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, runner: runner, logger: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1/graphs", func(r chi.Router) {
		r.Post("/", s.handleGenerate)
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleGet)
		r.Get("/{name}/dot", s.handleDOT)
		r.Delete("/{name}", s.handleDelete)
	})
	return r
}

// Serve runs the API server on addr until ctx is cancelled, then shuts
// down gracefully with a 10 second drain window.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
