package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	projecterrors "adforge/contexts/project-management/project-service/domain/errors"
	projecthttp "adforge/contexts/project-management/project-service/transport/http"
)

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeProjectError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}

	var req projecthttp.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProjectError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.projects.Handler.CreateProjectHandler(r.Context(), userID, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeProjectError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}
	resp, err := s.projects.Handler.ListProjectsHandler(r.Context(), userID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeProjectError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}
	resp, err := s.projects.Handler.GetProjectHandler(r.Context(), r.PathValue("project_id"), userID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeProjectError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}
	if err := s.projects.Handler.DeleteProjectHandler(r.Context(), r.PathValue("project_id"), userID); err != nil {
		writeProjectDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeProjectDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projecterrors.ErrInvalidProjectData):
		writeProjectError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, projecterrors.ErrProjectNotFound):
		writeProjectError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, projecterrors.ErrNotProjectOwner):
		writeProjectError(w, http.StatusForbidden, err.Error())
	default:
		writeProjectError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeProjectError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, projecthttp.ErrorResponse{Error: message})
}
