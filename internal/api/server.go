// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kiji/internal/core/article"
	"github.com/taibuivan/kiji/internal/core/comment"
	"github.com/taibuivan/kiji/internal/core/topic"
	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/config"
	"github.com/taibuivan/kiji/internal/platform/constants"
	"github.com/taibuivan/kiji/internal/platform/middleware"
	"github.com/taibuivan/kiji/internal/platform/respond"
	"github.com/taibuivan/kiji/internal/users/account"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Directory is the GET /api handler describing every available endpoint.
	Directory http.HandlerFunc

	// Topic serves the topic taxonomy.
	Topic *topic.Handler

	// Article serves the article listing, detail, and vote endpoints.
	Article *article.Handler

	// Comment serves per-article threads and comment deletion.
	Comment *comment.Handler

	// Account serves the public user directory.
	Account *account.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// cache may be nil; the rate limiter then falls back to per-process buckets.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, cache *redis.Client, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, cache))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Unknown routes and wrong methods get the same envelope as every
	// other client error.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain route groups mounted under the /api prefix.
	r.Route("/api", func(api chi.Router) {
		api.Get("/", h.Directory)
		api.Mount("/topics", h.Topic.Routes())
		api.Mount("/users", h.Account.Routes())
		api.Route("/articles", func(articles chi.Router) {
			h.Article.RegisterRoutes(articles)
			h.Comment.RegisterArticleRoutes(articles)
		})
		api.Route("/comments", func(comments chi.Router) {
			h.Comment.RegisterRoutes(comments)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the composed router, primarily for tests.
func (s *Server) Handler() http.Handler { return s.router }

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
