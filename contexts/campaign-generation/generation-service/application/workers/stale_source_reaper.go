package workers

import (
	"context"
	"log/slog"
	"time"

	application "adforge/contexts/campaign-generation/generation-service/application"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	"adforge/contexts/campaign-generation/generation-service/ports"
)

// StaleSourceReaper sweeps sources stuck in `processing`. A run that dies
// between the start write and a terminal write leaves such a record; the sweep
// converts it to `failed` once it is older than the TTL.
type StaleSourceReaper struct {
	Sources   ports.SourceRepository
	Clock     ports.Clock
	TTL       time.Duration
	BatchSize int
	Logger    *slog.Logger
}

func (j StaleSourceReaper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}
	ttl := j.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}

	stale, err := j.Sources.ListStaleProcessingSources(ctx, now.Add(-ttl), limit)
	if err != nil {
		logger.Error("stale source sweep failed",
			"event", "stale_source_sweep_failed",
			"module", "campaign-generation/generation-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	failed := 0
	for _, source := range stale {
		err := j.Sources.UpdateSourceStatus(ctx, source.SourceID, entities.SourceStatusProcessing, entities.SourceStatusFailed, now)
		if err != nil {
			// Another writer finished the run first; leave it alone.
			continue
		}
		failed++
	}
	if failed > 0 {
		logger.Info("stale source sweep completed",
			"event", "stale_source_sweep_completed",
			"module", "campaign-generation/generation-service",
			"layer", "worker",
			"failed_count", failed,
		)
	}
	return nil
}
