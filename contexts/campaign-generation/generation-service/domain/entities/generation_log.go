package entities

import (
	"encoding/json"
	"time"
)

// GenerationLog is the audit/billing record for one run. Written once after the
// Campaign and Source finalize; never mutated.
type GenerationLog struct {
	LogID            string
	UserID           string
	CampaignID       *string
	AgentName        string
	RequestPayload   json.RawMessage
	ResponsePayload  json.RawMessage
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	EstimatedCost    float64
	CreatedAt        time.Time
}
