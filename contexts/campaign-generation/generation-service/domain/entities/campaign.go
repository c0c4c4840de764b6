package entities

import "time"

// Campaign is the persisted unified output of one completed generation run.
type Campaign struct {
	CampaignID string
	ProjectID  string
	SourceID   string
	Name       string
	Objective  string
	Platforms  []string
	Result     GenerationResult
	CreatedAt  time.Time
}
