package entities

import "time"

// MarketingInsights is the projection of the analyze output that ships inside
// the unified result alongside the full analysis.
type MarketingInsights struct {
	Keywords         []string `json:"keywords"`
	ValueProposition string   `json:"value_proposition"`
	BrandTone        string   `json:"brand_tone"`
	Category         string   `json:"category"`
}

// GenerationResult is the unified output of one successful run. Every field is
// populated in a persisted result; a partially built value never reaches
// storage.
type GenerationResult struct {
	ProductSummary    AnalyzeOutput      `json:"product_summary"`
	MarketingInsights MarketingInsights  `json:"marketing_insights"`
	AdCreatives       []AdCreative       `json:"ad_creatives"`
	AudienceTargeting AudienceOutput     `json:"audience_targeting"`
	CampaignStrategy  CampaignPlanOutput `json:"campaign_strategy"`
}

const DefaultObjective = "Conversions"

// AdPlatforms is the fixed platform list handed to the ad generation stage.
var AdPlatforms = []string{"facebook", "instagram", "tiktok", "google"}

// DefaultPlatformMix is the safe fallback when the strategy omits platform_mix.
var DefaultPlatformMix = []string{"facebook", "instagram"}

// FallbackCampaignName embeds the run date so repeated runs on the same day
// synthesize the same name.
func FallbackCampaignName(now time.Time) string {
	return "Campaign - " + now.UTC().Format("2006-01-02")
}
