package httpadapter

import (
	"context"
	"log/slog"

	"adforge/contexts/campaign-generation/generation-service/application/commands"
	"adforge/contexts/campaign-generation/generation-service/application/queries"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	httptransport "adforge/contexts/campaign-generation/generation-service/transport/http"
)

type Handler struct {
	GenerateCampaign commands.GenerateCampaignUseCase
	GetCampaign      queries.GetCampaignUseCase
	ListCampaigns    queries.ListCampaignsUseCase
	ListSources      queries.ListSourcesUseCase
	ListLogs         queries.ListGenerationLogsUseCase
	Logger           *slog.Logger
}

func (h Handler) GenerateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.GenerateCampaignRequest,
) (httptransport.GenerateCampaignResponse, error) {
	result, err := h.GenerateCampaign.Execute(ctx, commands.GenerateCampaignCommand{
		UserID:    userID,
		ProjectID: req.ProjectID,
		URL:       req.URL,
		Objective: req.Objective,
	})
	if err != nil {
		return httptransport.GenerateCampaignResponse{}, err
	}
	return httptransport.GenerateCampaignResponse{
		Success:    true,
		CampaignID: result.CampaignID,
		Data:       result.Result,
	}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	campaign, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, projectID string) (httptransport.ListCampaignsResponse, error) {
	campaigns, err := h.ListCampaigns.Execute(ctx, projectID)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	items := make([]httptransport.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, mapCampaign(campaign))
	}
	return httptransport.ListCampaignsResponse{Campaigns: items}, nil
}

func (h Handler) ListSourcesHandler(ctx context.Context, projectID string) (httptransport.ListSourcesResponse, error) {
	sources, err := h.ListSources.Execute(ctx, projectID)
	if err != nil {
		return httptransport.ListSourcesResponse{}, err
	}
	items := make([]httptransport.SourceResponse, 0, len(sources))
	for _, source := range sources {
		items = append(items, httptransport.SourceResponse{
			SourceID:  source.SourceID,
			ProjectID: source.ProjectID,
			InputType: string(source.InputType),
			URL:       source.URL,
			Status:    string(source.Status),
			CreatedAt: source.CreatedAt,
			UpdatedAt: source.UpdatedAt,
		})
	}
	return httptransport.ListSourcesResponse{Sources: items}, nil
}

func (h Handler) ListGenerationLogsHandler(ctx context.Context, userID string) (httptransport.ListGenerationLogsResponse, error) {
	logs, err := h.ListLogs.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListGenerationLogsResponse{}, err
	}
	items := make([]httptransport.GenerationLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, httptransport.GenerationLogResponse{
			LogID:            log.LogID,
			CampaignID:       log.CampaignID,
			AgentName:        log.AgentName,
			PromptTokens:     log.PromptTokens,
			CompletionTokens: log.CompletionTokens,
			TotalTokens:      log.TotalTokens,
			EstimatedCost:    log.EstimatedCost,
			CreatedAt:        log.CreatedAt,
		})
	}
	return httptransport.ListGenerationLogsResponse{Logs: items}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignResponse {
	return httptransport.CampaignResponse{
		CampaignID: campaign.CampaignID,
		ProjectID:  campaign.ProjectID,
		SourceID:   campaign.SourceID,
		Name:       campaign.Name,
		Objective:  campaign.Objective,
		Platforms:  append([]string(nil), campaign.Platforms...),
		Result:     campaign.Result,
		CreatedAt:  campaign.CreatedAt,
	}
}
