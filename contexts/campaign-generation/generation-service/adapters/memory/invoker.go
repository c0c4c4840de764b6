package memory

import (
	"context"
	"sync"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
)

// StageScript configures what the scripted invoker returns per stage. A nil
// error field means the stage succeeds with the configured output.
type StageScript struct {
	FetchOutput    entities.FetchOutput
	FetchErr       error
	ExtractOutput  entities.ExtractOutput
	ExtractErr     error
	AnalyzeOutput  entities.AnalyzeOutput
	AnalyzeErr     error
	AudienceOutput entities.AudienceOutput
	AudienceErr    error
	AdsOutput      entities.AdsOutput
	AdsErr         error
	PlanOutput     entities.CampaignPlanOutput
	PlanErr        error
}

// ScriptedInvoker replays a fixed script and records every call, in order.
// It backs the in-memory module so pipeline behavior is testable without a
// tool server.
type ScriptedInvoker struct {
	mu     sync.Mutex
	script StageScript
	calls  []string

	lastExtractInput  entities.ExtractInput
	lastAnalyzeInput  entities.AnalyzeInput
	lastAdsInput      entities.AdsInput
	lastAudienceInput entities.AudienceInput
	lastPlanInput     entities.CampaignPlanInput
}

func NewScriptedInvoker(script StageScript) *ScriptedInvoker {
	return &ScriptedInvoker{script: script}
}

func (s *ScriptedInvoker) record(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, stage)
}

// Calls returns the stage names invoked so far, in invocation order.
func (s *ScriptedInvoker) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *ScriptedInvoker) Fetch(_ context.Context, in entities.FetchInput) (entities.FetchOutput, error) {
	s.record("fetch")
	if s.script.FetchErr != nil {
		return entities.FetchOutput{}, s.script.FetchErr
	}
	return s.script.FetchOutput, nil
}

func (s *ScriptedInvoker) Extract(_ context.Context, in entities.ExtractInput) (entities.ExtractOutput, error) {
	s.record("extract")
	s.mu.Lock()
	s.lastExtractInput = in
	s.mu.Unlock()
	if s.script.ExtractErr != nil {
		return entities.ExtractOutput{}, s.script.ExtractErr
	}
	return s.script.ExtractOutput, nil
}

func (s *ScriptedInvoker) Analyze(_ context.Context, in entities.AnalyzeInput) (entities.AnalyzeOutput, error) {
	s.record("analyze")
	s.mu.Lock()
	s.lastAnalyzeInput = in
	s.mu.Unlock()
	if s.script.AnalyzeErr != nil {
		return entities.AnalyzeOutput{}, s.script.AnalyzeErr
	}
	return s.script.AnalyzeOutput, nil
}

func (s *ScriptedInvoker) BuildAudience(_ context.Context, in entities.AudienceInput) (entities.AudienceOutput, error) {
	s.record("build_audience")
	s.mu.Lock()
	s.lastAudienceInput = in
	s.mu.Unlock()
	if s.script.AudienceErr != nil {
		return entities.AudienceOutput{}, s.script.AudienceErr
	}
	return s.script.AudienceOutput, nil
}

func (s *ScriptedInvoker) GenerateAds(_ context.Context, in entities.AdsInput) (entities.AdsOutput, error) {
	s.record("generate_ads")
	s.mu.Lock()
	s.lastAdsInput = in
	s.mu.Unlock()
	if s.script.AdsErr != nil {
		return entities.AdsOutput{}, s.script.AdsErr
	}
	return s.script.AdsOutput, nil
}

func (s *ScriptedInvoker) BuildCampaign(_ context.Context, in entities.CampaignPlanInput) (entities.CampaignPlanOutput, error) {
	s.record("build_campaign")
	s.mu.Lock()
	s.lastPlanInput = in
	s.mu.Unlock()
	if s.script.PlanErr != nil {
		return entities.CampaignPlanOutput{}, s.script.PlanErr
	}
	return s.script.PlanOutput, nil
}

// LastAnalyzeInput exposes the text handed to the analyze stage; used by tests
// to check the extract-to-analyze join.
func (s *ScriptedInvoker) LastAnalyzeInput() entities.AnalyzeInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAnalyzeInput
}

// LastAdsInput exposes the payload handed to the ads stage.
func (s *ScriptedInvoker) LastAdsInput() entities.AdsInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAdsInput
}

// LastPlanInput exposes the payload handed to the campaign build stage.
func (s *ScriptedInvoker) LastPlanInput() entities.CampaignPlanInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPlanInput
}
