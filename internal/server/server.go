package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"weathervault/internal/auth"
	"weathervault/internal/config"
	"weathervault/internal/http/handlers"
	"weathervault/internal/middleware"
	"weathervault/internal/observability"
	"weathervault/internal/storage"
	"weathervault/internal/weather"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, logger *zap.Logger, users storage.UserStore, readings storage.ReadingStore, provider weather.Provider) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewRouter(cfg, logger, users, readings, provider),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewRouter assembles the full route tree. Split out from New so tests can
// drive the handler stack without binding a listener.
func NewRouter(cfg config.Config, logger *zap.Logger, users storage.UserStore, readings storage.ReadingStore, provider weather.Provider) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	service := weather.NewService(provider, readings, logger)

	authHandler := handlers.NewAuthHandler(users, tokens, logger)
	weatherHandler := handlers.NewWeatherHandler(service, logger)
	healthHandler := handlers.NewHealthHandler(time.Now())

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", observability.MetricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// The auth gate runs before any city validation or repository access.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))
			r.Post("/weather", weatherHandler.Fetch)
			r.Get("/weather/{city}", weatherHandler.Latest)
		})
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
