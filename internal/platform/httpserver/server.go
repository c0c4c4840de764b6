package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	generationservice "adforge/contexts/campaign-generation/generation-service"
	projectservice "adforge/contexts/project-management/project-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "adforge/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	generation generationservice.Module
	projects   projectservice.Module
}

func New(
	generation generationservice.Module,
	projects projectservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		generation: generation,
		projects:   projects,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the route table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/campaigns/generate", s.handleGenerateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("GET /v1/projects/{project_id}/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /v1/projects/{project_id}/sources", s.handleListSources)
	s.mux.HandleFunc("GET /v1/usage/logs", s.handleListGenerationLogs)

	s.mux.HandleFunc("POST /v1/projects", s.handleCreateProject)
	s.mux.HandleFunc("GET /v1/projects", s.handleListProjects)
	s.mux.HandleFunc("GET /v1/projects/{project_id}", s.handleGetProject)
	s.mux.HandleFunc("DELETE /v1/projects/{project_id}", s.handleDeleteProject)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
