// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"foodtrend/internal/config"
	"foodtrend/internal/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	runner handlers.Runner,
	store handlers.RunStore,
	locations []string,
	logger *slog.Logger,
) *Server {
	router := NewRouter(cfg, runner, store, locations, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// NewRouter builds the route tree
func NewRouter(
	cfg config.ServerConfig,
	runner handlers.Runner,
	store handlers.RunStore,
	locations []string,
	logger *slog.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	trendHandler := handlers.NewTrendHandler(runner, locations, logger)
	runHandler := handlers.NewRunHandler(runner, store, logger)

	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/options", trendHandler.GetOptions)

			r.With(middleware.Timeout(30*time.Second)).Get("/posts", trendHandler.GetPosts)
			r.With(middleware.Timeout(30*time.Second)).Get("/trends", trendHandler.GetTrends)

			r.Route("/runs", func(r chi.Router) {
				r.Post("/", runHandler.CreateRun)
				r.Get("/{id}", runHandler.GetRun)
				r.Get("/{id}/report", runHandler.DownloadReport)
			})
		})
	})

	// WebSocket endpoint for run progress
	router.Get("/ws/runs", handlers.RunWebSocketHandler(runner, store, logger))

	return router
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
