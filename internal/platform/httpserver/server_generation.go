package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	generationerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	generationhttp "adforge/contexts/campaign-generation/generation-service/transport/http"
)

// handleGenerateCampaign godoc
// @Summary Generate an ad campaign from a URL
// @Tags campaigns
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param request body http.GenerateCampaignRequest true "Generation request"
// @Success 200 {object} http.GenerateCampaignResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 403 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/campaigns/generate [post]
func (s *Server) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeGenerationError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}

	var req generationhttp.GenerateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGenerationError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.generation.Handler.GenerateCampaignHandler(r.Context(), userID, req)
	if err != nil {
		writeGenerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaign_id")
	resp, err := s.generation.Handler.GetCampaignHandler(r.Context(), campaignID)
	if err != nil {
		writeGenerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("project_id")
	resp, err := s.generation.Handler.ListCampaignsHandler(r.Context(), projectID)
	if err != nil {
		writeGenerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("project_id")
	resp, err := s.generation.Handler.ListSourcesHandler(r.Context(), projectID)
	if err != nil {
		writeGenerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListGenerationLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeGenerationError(w, http.StatusUnauthorized, "X-User-Id header is required")
		return
	}
	resp, err := s.generation.Handler.ListGenerationLogsHandler(r.Context(), userID)
	if err != nil {
		writeGenerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeGenerationDomainError(w http.ResponseWriter, err error) {
	var stageErr *generationerrors.StageError
	switch {
	case errors.Is(err, generationerrors.ErrInvalidGenerationInput):
		writeGenerationError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, generationerrors.ErrProjectNotFound):
		writeGenerationError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, generationerrors.ErrNotProjectOwner):
		writeGenerationError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, generationerrors.ErrSourceNotFound),
		errors.Is(err, generationerrors.ErrCampaignNotFound):
		writeGenerationError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, generationerrors.ErrInvalidStatusTransition):
		writeGenerationError(w, http.StatusConflict, err.Error())
	case errors.As(err, &stageErr):
		writeGenerationError(w, http.StatusBadGateway, stageErr.Error())
	default:
		writeGenerationError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeGenerationError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, generationhttp.ErrorResponse{Error: message})
}
