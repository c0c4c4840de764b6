package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGenerationInput  = errors.New("project id and url are required")
	ErrProjectNotFound         = errors.New("project not found")
	ErrNotProjectOwner         = errors.New("caller does not own the project")
	ErrSourceNotFound          = errors.New("source not found")
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrInvalidStatusTransition = errors.New("invalid source status transition")
)

// StageError marks a failed external tool call. The wrapped error keeps the
// tool's original message; callers surface it verbatim.
type StageError struct {
	Tool string
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Tool, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
