// internal/api/server.go
package api

import (
	"context"
	"database/sql"
	"net/http"

	"career-advisor/internal/common/auth"
	"career-advisor/internal/common/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the HTTP transport around the advice pipeline.
type Server struct {
	httpServer *http.Server
	db         *sql.DB
	logger     Logger
}

func NewServer(
	cfg *config.Config,
	advice *AdviceHandler,
	verifier auth.Verifier,
	db *sql.DB,
	rec requestRecorder,
	log Logger,
) *Server {
	s := &Server{
		db:     db,
		logger: log.With(map[string]interface{}{"component": "http-server"}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.GetDuration(cfg.Server.RequestTimeout)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RequestMetrics(rec))
		r.Use(AuthMiddleware(verifier, s.logger))
		r.Post("/advice", advice.HandleAdvice)
	})

	s.httpServer = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady checks the stores the pipeline cannot start a request without.
// Redis and elasticsearch are degradable dependencies and deliberately not
// part of readiness.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": "postgres unreachable",
			})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
