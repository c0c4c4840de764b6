package ports

import (
	"context"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
)

// StageInvoker is the closed set of typed operations backing the six-step
// chain. The single production implementation dispatches by tool name over an
// untyped JSON boundary; that translation lives entirely behind this interface
// so stage inputs and outputs stay compile-time checked.
type StageInvoker interface {
	Fetch(ctx context.Context, in entities.FetchInput) (entities.FetchOutput, error)
	Extract(ctx context.Context, in entities.ExtractInput) (entities.ExtractOutput, error)
	Analyze(ctx context.Context, in entities.AnalyzeInput) (entities.AnalyzeOutput, error)
	BuildAudience(ctx context.Context, in entities.AudienceInput) (entities.AudienceOutput, error)
	GenerateAds(ctx context.Context, in entities.AdsInput) (entities.AdsOutput, error)
	BuildCampaign(ctx context.Context, in entities.CampaignPlanInput) (entities.CampaignPlanOutput, error)
}
