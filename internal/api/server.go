package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/designdoc/internal/analyze"
	"github.com/dgallion1/designdoc/internal/config"
	"github.com/dgallion1/designdoc/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for designdoc.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	groq         *analyze.GroqClient
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, groq *analyze.GroqClient, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		groq:         groq,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DesigndocAPIKey, s.log))

		r.Post("/api/documents", s.handleGenerate)
		r.Get("/api/documents/{jobID}/status", s.handleStatus)
		r.Get("/api/documents/{jobID}/download", s.handleDownload)
		r.Get("/api/documents/{jobID}/preview", s.handlePreview)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
