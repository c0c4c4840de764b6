package entities

import "strings"

// Stage contracts for the six-step generation chain. Pure data; each struct
// mirrors the JSON payload exchanged with the backing tool. Tools may omit
// fields, so every consumer must tolerate zero values.

type FetchInput struct {
	URL string `json:"url"`
}

type FetchOutput struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

type ExtractInput struct {
	Content string `json:"content"`
}

type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ExtractOutput struct {
	Blocks []TextBlock `json:"blocks"`
}

// JoinedText concatenates block texts with single spaces. An empty block list
// yields the empty string, not an error.
func (o ExtractOutput) JoinedText() string {
	parts := make([]string, 0, len(o.Blocks))
	for _, block := range o.Blocks {
		parts = append(parts, block.Text)
	}
	return strings.Join(parts, " ")
}

type AnalyzeInput struct {
	Text string `json:"text"`
}

// AnalyzeOutput is the pivot artifact: three later stages derive their inputs
// from it.
type AnalyzeOutput struct {
	ProductSummary   string   `json:"product_summary"`
	Keywords         []string `json:"keywords"`
	ValueProposition string   `json:"value_proposition"`
	BrandTone        string   `json:"brand_tone"`
	Category         string   `json:"category"`
	Persona          string   `json:"persona"`
	Segments         []string `json:"segments"`
}

type AudienceInput struct {
	Persona  string   `json:"persona"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
	Segments []string `json:"segments"`
}

type AudienceOutput struct {
	AgeRange  string   `json:"age_range"`
	Genders   []string `json:"genders"`
	Locations []string `json:"locations"`
	Interests []string `json:"interests"`
	Behaviors []string `json:"behaviors"`
}

type AdsInput struct {
	ProductSummary   string   `json:"product_summary"`
	Keywords         []string `json:"keywords"`
	ValueProposition string   `json:"value_proposition"`
	BrandTone        string   `json:"brand_tone"`
	Category         string   `json:"category"`
	Platforms        []string `json:"platforms"`
}

type AdCreative struct {
	Platform     string `json:"platform"`
	Headline     string `json:"headline"`
	PrimaryText  string `json:"primary_text"`
	Description  string `json:"description"`
	CallToAction string `json:"call_to_action"`
	Format       string `json:"format"`
}

type AdsOutput struct {
	Creatives []AdCreative `json:"creatives"`
}

type CampaignPlanInput struct {
	Objective string         `json:"objective"`
	Creatives []AdCreative   `json:"creatives"`
	Audience  AudienceOutput `json:"audience"`
}

type CampaignPlanOutput struct {
	CampaignName string   `json:"campaign_name"`
	Objective    string   `json:"objective"`
	DailyBudget  float64  `json:"daily_budget"`
	DurationDays int      `json:"duration_days"`
	PlatformMix  []string `json:"platform_mix"`
	AdFormats    []string `json:"ad_formats"`
}
