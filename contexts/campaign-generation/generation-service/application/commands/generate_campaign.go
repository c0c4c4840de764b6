package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "adforge/contexts/campaign-generation/generation-service/application"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	"adforge/contexts/campaign-generation/generation-service/domain/services"
	"adforge/contexts/campaign-generation/generation-service/ports"
)

type GenerateCampaignCommand struct {
	UserID    string
	ProjectID string
	URL       string
	Objective string
}

type GenerateCampaignResult struct {
	CampaignID string
	SourceID   string
	Result     entities.GenerationResult
	Usage      services.Usage
}

// GenerateCampaignUseCase runs the six-stage chain. Stages execute strictly in
// order because each input is derived from the previous output; the first
// failure aborts the run and fails the Source. Separate runs share nothing but
// the repositories, so concurrent executions need no coordination here.
type GenerateCampaignUseCase struct {
	Lifecycle   SourceLifecycle
	Campaigns   ports.CampaignRepository
	Logs        ports.GenerationLogRepository
	Projects    ports.ProjectAuthorizer
	Stages      ports.StageInvoker
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Usage       services.UsageEstimator
	AgentName   string
	Logger      *slog.Logger
}

func (uc GenerateCampaignUseCase) Execute(ctx context.Context, cmd GenerateCampaignCommand) (GenerateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	projectID := strings.TrimSpace(cmd.ProjectID)
	url := strings.TrimSpace(cmd.URL)
	if projectID == "" || url == "" {
		return GenerateCampaignResult{}, domainerrors.ErrInvalidGenerationInput
	}
	if err := uc.Projects.AuthorizeProjectOwner(ctx, projectID, cmd.UserID); err != nil {
		return GenerateCampaignResult{}, err
	}

	sourceID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return GenerateCampaignResult{}, err
	}
	if err := uc.Lifecycle.Start(ctx, entities.Source{
		SourceID:  sourceID,
		ProjectID: projectID,
		InputType: entities.SourceInputURL,
		URL:       url,
	}); err != nil {
		return GenerateCampaignResult{}, err
	}

	result, err := uc.runStages(ctx, url, cmd.Objective)
	if err != nil {
		uc.failSource(ctx, sourceID, err)
		return GenerateCampaignResult{}, err
	}

	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		uc.failSource(ctx, sourceID, err)
		return GenerateCampaignResult{}, err
	}
	now := uc.Clock.Now().UTC()
	campaign := entities.Campaign{
		CampaignID: campaignID,
		ProjectID:  projectID,
		SourceID:   sourceID,
		Name:       finalName(result.CampaignStrategy, now),
		Objective:  finalObjective(result.CampaignStrategy, cmd.Objective),
		Platforms:  finalPlatforms(result.CampaignStrategy),
		Result:     result,
		CreatedAt:  now,
	}
	// Persistence is not optional: a campaign write failure fails the run even
	// though every stage succeeded.
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		uc.failSource(ctx, sourceID, err)
		return GenerateCampaignResult{}, err
	}
	if err := uc.Lifecycle.Complete(ctx, sourceID); err != nil {
		uc.failSource(ctx, sourceID, err)
		return GenerateCampaignResult{}, err
	}

	usage, err := uc.writeLog(ctx, cmd, campaignID, result)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	logger.Info("campaign generated",
		"event", "campaign_generated",
		"module", "campaign-generation/generation-service",
		"layer", "application",
		"campaign_id", campaignID,
		"source_id", sourceID,
		"project_id", projectID,
		"total_tokens", usage.TotalTokens,
	)
	return GenerateCampaignResult{
		CampaignID: campaignID,
		SourceID:   sourceID,
		Result:     result,
		Usage:      usage,
	}, nil
}

// runStages threads each stage output into the next stage input and returns on
// the first error, so stages after a failure are never invoked.
func (uc GenerateCampaignUseCase) runStages(ctx context.Context, url, objective string) (entities.GenerationResult, error) {
	fetched, err := uc.Stages.Fetch(ctx, entities.FetchInput{URL: url})
	if err != nil {
		return entities.GenerationResult{}, err
	}
	extracted, err := uc.Stages.Extract(ctx, entities.ExtractInput{Content: fetched.Content})
	if err != nil {
		return entities.GenerationResult{}, err
	}
	analysis, err := uc.Stages.Analyze(ctx, entities.AnalyzeInput{Text: extracted.JoinedText()})
	if err != nil {
		return entities.GenerationResult{}, err
	}
	audience, err := uc.Stages.BuildAudience(ctx, entities.AudienceInput{
		Persona:  analysis.Persona,
		Keywords: analysis.Keywords,
		Category: analysis.Category,
		Segments: analysis.Segments,
	})
	if err != nil {
		return entities.GenerationResult{}, err
	}
	ads, err := uc.Stages.GenerateAds(ctx, entities.AdsInput{
		ProductSummary:   analysis.ProductSummary,
		Keywords:         analysis.Keywords,
		ValueProposition: analysis.ValueProposition,
		BrandTone:        analysis.BrandTone,
		Category:         analysis.Category,
		Platforms:        append([]string(nil), entities.AdPlatforms...),
	})
	if err != nil {
		return entities.GenerationResult{}, err
	}
	if strings.TrimSpace(objective) == "" {
		objective = entities.DefaultObjective
	}
	strategy, err := uc.Stages.BuildCampaign(ctx, entities.CampaignPlanInput{
		Objective: objective,
		Creatives: ads.Creatives,
		Audience:  audience,
	})
	if err != nil {
		return entities.GenerationResult{}, err
	}

	return entities.GenerationResult{
		ProductSummary: analysis,
		MarketingInsights: entities.MarketingInsights{
			Keywords:         analysis.Keywords,
			ValueProposition: analysis.ValueProposition,
			BrandTone:        analysis.BrandTone,
			Category:         analysis.Category,
		},
		AdCreatives:       ads.Creatives,
		AudienceTargeting: audience,
		CampaignStrategy:  strategy,
	}, nil
}

func (uc GenerateCampaignUseCase) writeLog(
	ctx context.Context,
	cmd GenerateCampaignCommand,
	campaignID string,
	result entities.GenerationResult,
) (services.Usage, error) {
	request, err := json.Marshal(map[string]string{
		"project_id": cmd.ProjectID,
		"url":        cmd.URL,
		"objective":  cmd.Objective,
	})
	if err != nil {
		return services.Usage{}, err
	}
	response, err := json.Marshal(result)
	if err != nil {
		return services.Usage{}, err
	}
	usage := uc.Usage.Estimate(request, response)

	logID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return services.Usage{}, err
	}
	if err := uc.Logs.CreateGenerationLog(ctx, entities.GenerationLog{
		LogID:            logID,
		UserID:           cmd.UserID,
		CampaignID:       &campaignID,
		AgentName:        uc.AgentName,
		RequestPayload:   request,
		ResponsePayload:  response,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		EstimatedCost:    usage.Cost,
		CreatedAt:        uc.Clock.Now().UTC(),
	}); err != nil {
		return services.Usage{}, err
	}
	return usage, nil
}

// failSource records the terminal state before the error reaches the caller,
// so the durable record reflects the outcome even if the response is lost.
func (uc GenerateCampaignUseCase) failSource(ctx context.Context, sourceID string, cause error) {
	if err := uc.Lifecycle.Fail(ctx, sourceID); err != nil {
		application.ResolveLogger(uc.Logger).Error("source fail transition lost",
			"event", "source_fail_write_failed",
			"module", "campaign-generation/generation-service",
			"layer", "application",
			"source_id", sourceID,
			"cause", cause.Error(),
			"error", err.Error(),
		)
	}
}

// The three finalization fallbacks apply independently; a missing optional
// field degrades the result, it never fails the run.

func finalName(strategy entities.CampaignPlanOutput, now time.Time) string {
	if name := strings.TrimSpace(strategy.CampaignName); name != "" {
		return name
	}
	return entities.FallbackCampaignName(now)
}

func finalObjective(strategy entities.CampaignPlanOutput, requested string) string {
	if objective := strings.TrimSpace(strategy.Objective); objective != "" {
		return objective
	}
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	return entities.DefaultObjective
}

func finalPlatforms(strategy entities.CampaignPlanOutput) []string {
	if len(strategy.PlatformMix) > 0 {
		return append([]string(nil), strategy.PlatformMix...)
	}
	return append([]string(nil), entities.DefaultPlatformMix...)
}
