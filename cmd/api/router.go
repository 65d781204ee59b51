package main

import (
	"context"
	"net/http"
	"time"

	"blogapi/internal/author"
	"blogapi/internal/config"
	"blogapi/internal/httpx"
	"blogapi/internal/post"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pinger is the part of the pool the readiness probe needs.
type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(ctx context.Context, cfg config.Config, log zerolog.Logger, dbPool *pgxpool.Pool) http.Handler {
	authorHandler := author.NewHTTPHandler(author.NewService(author.NewPostgresRepo(dbPool, cfg.QueryTimeout)), log)
	postHandler := post.NewHTTPHandler(post.NewService(post.NewPostgresRepo(dbPool, cfg.QueryTimeout)), log)
	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	return buildRouter(cfg, log, dbPool, rateLimiter, authorHandler, postHandler)
}

func buildRouter(
	cfg config.Config,
	log zerolog.Logger,
	db pinger,
	rateLimiter *httpx.RateLimitMiddleware,
	authorHandler *author.HTTPHandler,
	postHandler *post.HTTPHandler,
) http.Handler {
	router := chi.NewRouter()
	router.Use(
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
	)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/v1", func(r chi.Router) {
		r.Use(rateLimiter.Middleware, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
		authorHandler.Routes(r)
		postHandler.Routes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})
	return router
}
