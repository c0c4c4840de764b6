package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	generationservice "adforge/contexts/campaign-generation/generation-service"
	"adforge/contexts/campaign-generation/generation-service/adapters/memory"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	httptransport "adforge/contexts/campaign-generation/generation-service/transport/http"
)

func fullStageScript() memory.StageScript {
	return memory.StageScript{
		FetchOutput: entities.FetchOutput{Content: "<html>acme running shoes</html>", ContentType: "text/html"},
		ExtractOutput: entities.ExtractOutput{Blocks: []entities.TextBlock{
			{Type: "text", Text: "Acme running shoes."},
			{Type: "text", Text: "Light and fast."},
		}},
		AnalyzeOutput: entities.AnalyzeOutput{
			ProductSummary:   "Lightweight running shoes",
			Keywords:         []string{"running", "shoes"},
			ValueProposition: "Run faster with less weight",
			BrandTone:        "energetic",
			Category:         "sportswear",
			Persona:          "amateur runners",
			Segments:         []string{"fitness"},
		},
		AudienceOutput: entities.AudienceOutput{
			AgeRange:  "18-34",
			Genders:   []string{"all"},
			Locations: []string{"US"},
			Interests: []string{"running"},
			Behaviors: []string{"online shoppers"},
		},
		AdsOutput: entities.AdsOutput{Creatives: []entities.AdCreative{
			{Platform: "facebook", Headline: "Run Light", PrimaryText: "Acme shoes", CallToAction: "Shop Now", Format: "single_image"},
		}},
		PlanOutput: entities.CampaignPlanOutput{
			CampaignName: "Acme Launch",
			Objective:    "Conversions",
			DailyBudget:  50,
			DurationDays: 14,
			PlatformMix:  []string{"facebook", "instagram"},
			AdFormats:    []string{"single_image"},
		},
	}
}

func TestGenerateCampaignSuccess(t *testing.T) {
	module := generationservice.NewInMemoryModule(fullStageScript(), map[string]string{"project-1": "user-1"}, nil)

	resp, err := module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		ProjectID: "project-1",
		URL:       "https://acme.example/shoes",
	})
	if err != nil {
		t.Fatalf("generate campaign failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response")
	}
	if resp.CampaignID == "" {
		t.Fatalf("expected campaign id")
	}
	if resp.Data.ProductSummary.ProductSummary != "Lightweight running shoes" {
		t.Fatalf("unexpected product summary: %q", resp.Data.ProductSummary.ProductSummary)
	}
	if resp.Data.MarketingInsights.ValueProposition != "Run faster with less weight" {
		t.Fatalf("unexpected value proposition: %q", resp.Data.MarketingInsights.ValueProposition)
	}
	if len(resp.Data.AdCreatives) != 1 {
		t.Fatalf("expected one creative, got %d", len(resp.Data.AdCreatives))
	}
	if resp.Data.AudienceTargeting.AgeRange != "18-34" {
		t.Fatalf("unexpected audience age range: %q", resp.Data.AudienceTargeting.AgeRange)
	}
	if resp.Data.CampaignStrategy.CampaignName != "Acme Launch" {
		t.Fatalf("unexpected campaign name: %q", resp.Data.CampaignStrategy.CampaignName)
	}

	if got := module.Store.CountCampaigns(); got != 1 {
		t.Fatalf("expected 1 campaign, got %d", got)
	}
	if got := module.Store.CountGenerationLogs(); got != 1 {
		t.Fatalf("expected 1 generation log, got %d", got)
	}

	sources, err := module.Store.ListSourcesByProject(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("list sources failed: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Status != entities.SourceStatusCompleted {
		t.Fatalf("expected completed source, got %s", sources[0].Status)
	}
}

func TestGenerateCampaignValidatesInput(t *testing.T) {
	module := generationservice.NewInMemoryModule(fullStageScript(), map[string]string{"project-1": "user-1"}, nil)

	_, err := module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		ProjectID: "project-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidGenerationInput) {
		t.Fatalf("expected invalid input for missing url, got %v", err)
	}

	_, err = module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		URL: "https://acme.example",
	})
	if !errors.Is(err, domainerrors.ErrInvalidGenerationInput) {
		t.Fatalf("expected invalid input for missing project id, got %v", err)
	}

	if got := module.Store.CountSources(); got != 0 {
		t.Fatalf("expected no sources for rejected input, got %d", got)
	}
}

func TestGenerateCampaignAuthorization(t *testing.T) {
	module := generationservice.NewInMemoryModule(fullStageScript(), map[string]string{"project-1": "user-1"}, nil)

	_, err := module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		ProjectID: "missing-project",
		URL:       "https://acme.example",
	})
	if !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected project not found, got %v", err)
	}

	_, err = module.Handler.GenerateCampaignHandler(context.Background(), "user-2", httptransport.GenerateCampaignRequest{
		ProjectID: "project-1",
		URL:       "https://acme.example",
	})
	if !errors.Is(err, domainerrors.ErrNotProjectOwner) {
		t.Fatalf("expected not project owner, got %v", err)
	}

	if got := module.Store.CountSources(); got != 0 {
		t.Fatalf("expected no sources for unauthorized runs, got %d", got)
	}
}

// completionFailingSources rejects the processing-to-completed write while
// delegating everything else to the in-memory store.
type completionFailingSources struct {
	*memory.Store
}

func (s completionFailingSources) UpdateSourceStatus(ctx context.Context, sourceID string, from, to entities.SourceStatus, updatedAt time.Time) error {
	if to == entities.SourceStatusCompleted {
		return errors.New("db connection lost")
	}
	return s.Store.UpdateSourceStatus(ctx, sourceID, from, to, updatedAt)
}

func TestGenerateCampaignCompletionWriteFailureFailsSource(t *testing.T) {
	store := memory.NewStore()
	module := generationservice.NewModule(generationservice.Dependencies{
		Sources:     completionFailingSources{Store: store},
		Campaigns:   store,
		Logs:        store,
		Projects:    memory.Authorizer{Owners: map[string]string{"project-1": "user-1"}},
		Stages:      memory.NewScriptedInvoker(fullStageScript()),
		Clock:       store,
		IDGenerator: store,
	})

	_, err := module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		ProjectID: "project-1",
		URL:       "https://acme.example/shoes",
	})
	if err == nil {
		t.Fatalf("expected error when completion write fails")
	}

	sources, listErr := store.ListSourcesByProject(context.Background(), "project-1")
	if listErr != nil {
		t.Fatalf("list sources failed: %v", listErr)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Status != entities.SourceStatusFailed {
		t.Fatalf("expected failed source after lost completion write, got %s", sources[0].Status)
	}
	if got := store.CountGenerationLogs(); got != 0 {
		t.Fatalf("expected no log for a failed run, got %d", got)
	}
}

func TestListGenerationLogsAfterRun(t *testing.T) {
	module := generationservice.NewInMemoryModule(fullStageScript(), map[string]string{"project-1": "user-1"}, nil)

	resp, err := module.Handler.GenerateCampaignHandler(context.Background(), "user-1", httptransport.GenerateCampaignRequest{
		ProjectID: "project-1",
		URL:       "https://acme.example/shoes",
	})
	if err != nil {
		t.Fatalf("generate campaign failed: %v", err)
	}

	logs, err := module.Handler.ListGenerationLogsHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(logs.Logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs.Logs))
	}
	entry := logs.Logs[0]
	if entry.CampaignID == nil || *entry.CampaignID != resp.CampaignID {
		t.Fatalf("expected log linked to campaign %s", resp.CampaignID)
	}
	if entry.TotalTokens != entry.PromptTokens+entry.CompletionTokens {
		t.Fatalf("token totals do not add up: %d != %d + %d", entry.TotalTokens, entry.PromptTokens, entry.CompletionTokens)
	}
	if entry.PromptTokens <= 0 || entry.CompletionTokens <= 0 {
		t.Fatalf("expected positive token counts, got %d and %d", entry.PromptTokens, entry.CompletionTokens)
	}
	if entry.EstimatedCost <= 0 {
		t.Fatalf("expected positive estimated cost, got %f", entry.EstimatedCost)
	}
}
