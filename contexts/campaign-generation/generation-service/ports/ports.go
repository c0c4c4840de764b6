package ports

import (
	"context"
	"time"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
)

type SourceRepository interface {
	CreateSource(ctx context.Context, source entities.Source) error
	GetSource(ctx context.Context, sourceID string) (entities.Source, error)
	UpdateSourceStatus(ctx context.Context, sourceID string, from, to entities.SourceStatus, updatedAt time.Time) error
	ListSourcesByProject(ctx context.Context, projectID string) ([]entities.Source, error)
	ListStaleProcessingSources(ctx context.Context, olderThan time.Time, limit int) ([]entities.Source, error)
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaignsByProject(ctx context.Context, projectID string) ([]entities.Campaign, error)
}

type GenerationLogRepository interface {
	CreateGenerationLog(ctx context.Context, log entities.GenerationLog) error
	ListGenerationLogsByUser(ctx context.Context, userID string) ([]entities.GenerationLog, error)
}

// ProjectAuthorizer is the ownership check collaborator from the project
// context. It runs before any Source is created.
type ProjectAuthorizer interface {
	AuthorizeProjectOwner(ctx context.Context, projectID, userID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
