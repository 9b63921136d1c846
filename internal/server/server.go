package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/goseek/internal/config"
	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/internal/ui"
)

const serverVersion = "0.1.0"

// Server is the GoSeek REST API server. Scheduling itself is stateless, so
// the server carries no persistence: every request is computed from its own
// payload.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	validator *request.Validator
	sampler   *request.Sampler
	ui        *ui.UI
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithSampler replaces the random queue sampler, letting tests pin a seed.
func WithSampler(sampler *request.Sampler) Option {
	return func(s *Server) {
		s.sampler = sampler
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		validator: request.NewValidator(logger),
		sampler:   request.NewSampler(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ui = ui.New(logger, s.validator, s.sampler)

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// UI routes (HTML)
	s.ui.RegisterRoutes(r)

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.handleDiscovery)
		r.Get("/health", s.handleHealth)
		r.Get("/policies", s.handleListPolicies)
		r.Get("/random", s.handleRandomQueue)
		r.Post("/schedule", s.handleSchedule)
		r.Post("/compare", s.handleCompare)
	})
}
