package commands

import (
	"context"
	"log/slog"

	application "adforge/contexts/campaign-generation/generation-service/application"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	"adforge/contexts/campaign-generation/generation-service/ports"
)

// SourceLifecycle owns the status transitions of one generation attempt.
// Each transition is an at-most-once write: moving out of a terminal state
// returns ErrInvalidStatusTransition.
type SourceLifecycle struct {
	Sources ports.SourceRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

// Start records the attempt in `processing`. It runs before the first tool
// call so a crash mid-pipeline still leaves a durable record.
func (l SourceLifecycle) Start(ctx context.Context, source entities.Source) error {
	now := l.Clock.Now().UTC()
	source.Status = entities.SourceStatusProcessing
	source.CreatedAt = now
	source.UpdatedAt = now
	if err := l.Sources.CreateSource(ctx, source); err != nil {
		return err
	}
	application.ResolveLogger(l.Logger).Info("generation started",
		"event", "source_processing",
		"module", "campaign-generation/generation-service",
		"layer", "application",
		"source_id", source.SourceID,
		"project_id", source.ProjectID,
	)
	return nil
}

func (l SourceLifecycle) Complete(ctx context.Context, sourceID string) error {
	return l.transition(ctx, sourceID, entities.SourceStatusCompleted)
}

func (l SourceLifecycle) Fail(ctx context.Context, sourceID string) error {
	return l.transition(ctx, sourceID, entities.SourceStatusFailed)
}

func (l SourceLifecycle) transition(ctx context.Context, sourceID string, next entities.SourceStatus) error {
	source, err := l.Sources.GetSource(ctx, sourceID)
	if err != nil {
		return err
	}
	if !source.CanTransition(next) {
		return domainerrors.ErrInvalidStatusTransition
	}
	if err := l.Sources.UpdateSourceStatus(ctx, sourceID, source.Status, next, l.Clock.Now().UTC()); err != nil {
		return err
	}
	application.ResolveLogger(l.Logger).Info("source status changed",
		"event", "source_"+string(next),
		"module", "campaign-generation/generation-service",
		"layer", "application",
		"source_id", sourceID,
	)
	return nil
}
