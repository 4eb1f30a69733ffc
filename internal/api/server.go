package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/clearprose/internal/config"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/pipeline"
	"github.com/dgallion1/clearprose/internal/telemetry"
)

// Server is the HTTP API server for clearprose.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	metrics      *telemetry.Metrics
	latency      *telemetry.Latency
	jobIDs       idgen.Func
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. metrics and latency may
// be nil, which disables /metrics and /api/stats/latency.
func NewServer(orch *pipeline.Orchestrator, metrics *telemetry.Metrics, latency *telemetry.Latency, log *slog.Logger, cfg config.Config) *Server {
	jobIDs, err := idgen.ByName(cfg.IDScheme)
	if err != nil {
		jobIDs = idgen.ULID()
	}
	s := &Server{
		orchestrator: orch,
		metrics:      metrics,
		latency:      latency,
		jobIDs:       jobIDs,
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
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Post("/api/analyze/upload", s.handleUpload)
		r.Post("/api/analyze/batch", s.handleBatchUpload)

		r.Get("/api/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/jobs/{jobID}/result", s.handleJobResult)

		r.Get("/api/stats/latency", s.handleLatencyStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
