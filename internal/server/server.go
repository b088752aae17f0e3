// Package server provides the HTTP server and routing for greenmix.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aristath/greenmix/internal/config"
	"github.com/aristath/greenmix/internal/di"
	allocationhandlers "github.com/aristath/greenmix/internal/modules/allocation/handlers"
	communityhandlers "github.com/aristath/greenmix/internal/modules/community/handlers"
	dashboardhandlers "github.com/aristath/greenmix/internal/modules/dashboard/handlers"
	loadprofilehandlers "github.com/aristath/greenmix/internal/modules/loadprofiles/handlers"
	projecthandlers "github.com/aristath/greenmix/internal/modules/projects/handlers"
	recommendationhandlers "github.com/aristath/greenmix/internal/modules/recommendation/handlers"
	scenariohandlers "github.com/aristath/greenmix/internal/modules/scenarios/handlers"
	sessionhandlers "github.com/aristath/greenmix/internal/modules/sessions/handlers"
	sizinghandlers "github.com/aristath/greenmix/internal/modules/sizing/handlers"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Config    *config.Config
	Container *di.Container // DI container with all services
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	container      *di.Container
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		cfg:            cfg.Config,
		container:      cfg.Container,
		systemHandlers: NewSystemHandlers(cfg.Container, cfg.Log),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)

	// Logging and request metrics
	s.router.Use(s.loggingMiddleware)

	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Compress responses
	if !s.cfg.DevMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.systemHandlers.HandleHealth)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.container.Registry, promhttp.HandlerOpts{}))

	c := s.container
	s.router.Route("/api", func(r chi.Router) {
		sizinghandlers.NewHandler(s.log).RegisterRoutes(r)
		allocationhandlers.NewHandler(c.Allocator, s.log).RegisterRoutes(r)
		scenariohandlers.NewHandler(s.log).RegisterRoutes(r)
		loadprofilehandlers.NewHandler(s.log).RegisterRoutes(r)
		recommendationhandlers.NewHandler(c.RecommendationService, s.log).RegisterRoutes(r)
		sessionhandlers.NewHandler(c.SessionService, s.log).RegisterRoutes(r)
		projecthandlers.NewHandler(c.ProjectRepo, s.log).RegisterRoutes(r)
		dashboardhandlers.NewHandler(c.DashboardService, s.log).RegisterRoutes(r)
		communityhandlers.NewHandler(c.Community, s.log).RegisterRoutes(r)

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Get("/database-stats", s.systemHandlers.HandleDatabaseStats)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests and records request metrics
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		s.container.Metrics.ObserveHTTP(r.Method, routePattern(r), status, duration)

		event := s.log.Info()
		if status >= http.StatusInternalServerError {
			event = s.log.Error()
		} else if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			event = s.log.Debug()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", duration).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// routePattern returns the matched chi route so metric labels stay bounded
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
