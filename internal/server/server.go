package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/config"
	"github.com/hongminglow/newsroom-be/internal/http/handlers"
	"github.com/hongminglow/newsroom-be/internal/middleware"
	"github.com/hongminglow/newsroom-be/internal/service"
	"github.com/hongminglow/newsroom-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner  *http.Server
	auth   *service.AuthService
	logger *slog.Logger
}

// New wires up services, middleware and routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger *slog.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL())
	authSvc := service.NewAuthService(store, tokens, cfg.BcryptCost)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(chimw.RequestSize(cfg.MaxBodyBytes))

	handlers.NewHealthHandler(time.Now()).Register(r)

	authHandler := handlers.NewAuthHandler(authSvc)
	adminHandler := handlers.NewAdminHandler(service.NewUserService(store))
	newsHandler := handlers.NewNewsHandler(service.NewNewsService(store))
	contactHandler := handlers.NewContactHandler(service.NewContactService(store))

	r.Route("/api", func(r chi.Router) {
		authHandler.Register(r)
		newsHandler.Register(r)
		contactHandler.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(authSvc))
			r.Use(middleware.RequireAdmin)

			adminHandler.Register(r)
			newsHandler.RegisterAdmin(r)
			contactHandler.RegisterAdmin(r)
		})
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// Bodies may carry inline images up to MAX_BODY_BYTES.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{inner: httpServer, auth: authSvc, logger: logger}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// EnsureSuperAdmin creates the reserved admin account if it is missing.
func (s *Server) EnsureSuperAdmin(ctx context.Context, password string) error {
	created, err := s.auth.EnsureSuperAdmin(ctx, password)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("created super admin account")
	}
	return nil
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
