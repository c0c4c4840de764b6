package queries

import (
	"context"
	"log/slog"
	"strings"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	"adforge/contexts/campaign-generation/generation-service/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, projectID string) ([]entities.Campaign, error) {
	return uc.Campaigns.ListCampaignsByProject(ctx, strings.TrimSpace(projectID))
}

type ListSourcesUseCase struct {
	Sources ports.SourceRepository
	Logger  *slog.Logger
}

func (uc ListSourcesUseCase) Execute(ctx context.Context, projectID string) ([]entities.Source, error) {
	return uc.Sources.ListSourcesByProject(ctx, strings.TrimSpace(projectID))
}

type ListGenerationLogsUseCase struct {
	Logs   ports.GenerationLogRepository
	Logger *slog.Logger
}

func (uc ListGenerationLogsUseCase) Execute(ctx context.Context, userID string) ([]entities.GenerationLog, error) {
	return uc.Logs.ListGenerationLogsByUser(ctx, strings.TrimSpace(userID))
}
