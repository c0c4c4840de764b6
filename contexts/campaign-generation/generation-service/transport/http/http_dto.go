package http

import (
	"time"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type GenerateCampaignRequest struct {
	ProjectID string `json:"project_id"`
	URL       string `json:"url"`
	Objective string `json:"objective"`
}

type GenerateCampaignResponse struct {
	Success    bool                      `json:"success"`
	CampaignID string                    `json:"campaign_id"`
	Data       entities.GenerationResult `json:"data"`
}

type CampaignResponse struct {
	CampaignID string                    `json:"campaign_id"`
	ProjectID  string                    `json:"project_id"`
	SourceID   string                    `json:"source_id"`
	Name       string                    `json:"name"`
	Objective  string                    `json:"objective"`
	Platforms  []string                  `json:"platforms"`
	Result     entities.GenerationResult `json:"result"`
	CreatedAt  time.Time                 `json:"created_at"`
}

type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

type SourceResponse struct {
	SourceID  string    `json:"source_id"`
	ProjectID string    `json:"project_id"`
	InputType string    `json:"input_type"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListSourcesResponse struct {
	Sources []SourceResponse `json:"sources"`
}

type GenerationLogResponse struct {
	LogID            string    `json:"log_id"`
	CampaignID       *string   `json:"campaign_id,omitempty"`
	AgentName        string    `json:"agent_name"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	EstimatedCost    float64   `json:"estimated_cost"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListGenerationLogsResponse struct {
	Logs []GenerationLogResponse `json:"logs"`
}
