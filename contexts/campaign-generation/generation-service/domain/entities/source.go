package entities

import "time"

type SourceStatus string
type SourceInputType string

const (
	SourceStatusPending    SourceStatus = "pending"
	SourceStatusProcessing SourceStatus = "processing"
	SourceStatusCompleted  SourceStatus = "completed"
	SourceStatusFailed     SourceStatus = "failed"

	SourceInputURL SourceInputType = "url"
)

// Source is the durable record of one generation attempt.
// Status only moves forward: pending -> processing -> completed | failed.
type Source struct {
	SourceID  string
	ProjectID string
	InputType SourceInputType
	URL       string
	Status    SourceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Source) IsTerminal() bool {
	return s.Status == SourceStatusCompleted || s.Status == SourceStatusFailed
}

// CanTransition reports whether moving to next respects the forward-only lifecycle.
func (s Source) CanTransition(next SourceStatus) bool {
	switch s.Status {
	case SourceStatusPending:
		return next == SourceStatusProcessing || next == SourceStatusCompleted || next == SourceStatusFailed
	case SourceStatusProcessing:
		return next == SourceStatusCompleted || next == SourceStatusFailed
	default:
		return false
	}
}
