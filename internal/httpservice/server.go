// Package httpservice exposes the admin API surface over HTTP and
// wires the local bypass gate into the authentication middleware.
package httpservice

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"webadmin-core/internal/config"
	"webadmin-core/internal/config/schema"
	"webadmin-core/internal/log"
)

// Server is the admin HTTP service
type Server struct {
	manager *config.Manager
	auth    Authenticator

	router *mux.Router
	server *http.Server

	authLimiter     *ipRateLimiter
	mutationLimiter *ipRateLimiter
}

// NewServer creates the admin HTTP service. The Authenticator is the
// fall-through path when the bypass gate denies; nil means every denied
// request gets a 401.
func NewServer(manager *config.Manager, auth Authenticator) *Server {
	cfg := manager.Get()

	s := &Server{
		manager:         manager,
		auth:            auth,
		router:          mux.NewRouter(),
		authLimiter:     newIPRateLimiter(cfg.AuthRateLimitWindowMs, cfg.AuthRateLimitMax),
		mutationLimiter: newIPRateLimiter(cfg.MutationRateLimitWindowMs, cfg.MutationRateLimitMax),
	}

	// Rate limit tuning follows configuration reloads
	manager.OnChange(func(next *schema.AdminConfig) {
		s.authLimiter.configure(next.AuthRateLimitWindowMs, next.AuthRateLimitMax)
		s.mutationLimiter.configure(next.MutationRateLimitWindowMs, next.MutationRateLimitMax)
	})

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(loggingMiddleware)

	// Liveness endpoint stays outside authentication
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/admin").Subrouter()
	api.Use(rateLimitMiddleware(s.authLimiter))
	api.Use(authMiddleware(s.manager.Get, s.auth))

	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	api.HandleFunc("/gate/preview", s.handleGatePreview).Methods(http.MethodGet)

	mutations := api.NewRoute().Subrouter()
	mutations.Use(rateLimitMiddleware(s.mutationLimiter))
	mutations.HandleFunc("/reload", s.handleReload).Methods(http.MethodPost)
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving and blocks until the listener fails or the
// server is shut down
func (s *Server) Start() error {
	log.Infof("admin http service listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("admin http service shutting down")
	return s.server.Shutdown(ctx)
}
