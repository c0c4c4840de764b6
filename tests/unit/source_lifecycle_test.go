package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"adforge/contexts/campaign-generation/generation-service/adapters/memory"
	"adforge/contexts/campaign-generation/generation-service/application/commands"
	"adforge/contexts/campaign-generation/generation-service/application/workers"
	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
)

func TestSourceLifecycleTerminalStatesAreFinal(t *testing.T) {
	store := memory.NewStore()
	lifecycle := commands.SourceLifecycle{Sources: store, Clock: store}

	source := entities.Source{
		SourceID:  "source-1",
		ProjectID: "project-1",
		InputType: entities.SourceInputURL,
		URL:       "https://acme.example",
	}
	if err := lifecycle.Start(context.Background(), source); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	stored, err := store.GetSource(context.Background(), "source-1")
	if err != nil {
		t.Fatalf("get source failed: %v", err)
	}
	if stored.Status != entities.SourceStatusProcessing {
		t.Fatalf("expected processing after start, got %s", stored.Status)
	}

	if err := lifecycle.Complete(context.Background(), "source-1"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	err = lifecycle.Fail(context.Background(), "source-1")
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition after complete, got %v", err)
	}
	err = lifecycle.Complete(context.Background(), "source-1")
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid repeat complete, got %v", err)
	}

	stored, err = store.GetSource(context.Background(), "source-1")
	if err != nil {
		t.Fatalf("get source failed: %v", err)
	}
	if stored.Status != entities.SourceStatusCompleted {
		t.Fatalf("terminal status changed, got %s", stored.Status)
	}
}

func TestSourceLifecycleCompleteAfterFailRejected(t *testing.T) {
	store := memory.NewStore()
	lifecycle := commands.SourceLifecycle{Sources: store, Clock: store}

	source := entities.Source{
		SourceID:  "source-2",
		ProjectID: "project-1",
		InputType: entities.SourceInputURL,
		URL:       "https://acme.example",
	}
	if err := lifecycle.Start(context.Background(), source); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := lifecycle.Fail(context.Background(), "source-2"); err != nil {
		t.Fatalf("fail failed: %v", err)
	}

	err := lifecycle.Complete(context.Background(), "source-2")
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition after fail, got %v", err)
	}

	stored, err := store.GetSource(context.Background(), "source-2")
	if err != nil {
		t.Fatalf("get source failed: %v", err)
	}
	if stored.Status != entities.SourceStatusFailed {
		t.Fatalf("terminal status changed, got %s", stored.Status)
	}
}

func TestSourceLifecycleUnknownSource(t *testing.T) {
	store := memory.NewStore()
	lifecycle := commands.SourceLifecycle{Sources: store, Clock: store}

	err := lifecycle.Complete(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrSourceNotFound) {
		t.Fatalf("expected source not found, got %v", err)
	}
}

func TestStaleSourceReaperFailsOldProcessingSources(t *testing.T) {
	store := memory.NewStore()
	old := time.Now().UTC().Add(-2 * time.Hour)

	seed := []entities.Source{
		{SourceID: "stale-1", ProjectID: "project-1", InputType: entities.SourceInputURL, URL: "https://a", Status: entities.SourceStatusProcessing, CreatedAt: old, UpdatedAt: old},
		{SourceID: "fresh-1", ProjectID: "project-1", InputType: entities.SourceInputURL, URL: "https://b", Status: entities.SourceStatusProcessing, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()},
		{SourceID: "done-1", ProjectID: "project-1", InputType: entities.SourceInputURL, URL: "https://c", Status: entities.SourceStatusCompleted, CreatedAt: old, UpdatedAt: old},
	}
	for _, source := range seed {
		if err := store.CreateSource(context.Background(), source); err != nil {
			t.Fatalf("seed source failed: %v", err)
		}
	}

	reaper := workers.StaleSourceReaper{Sources: store, Clock: store, TTL: 30 * time.Minute}
	if err := reaper.RunOnce(context.Background()); err != nil {
		t.Fatalf("reaper run failed: %v", err)
	}

	assertStatus := func(id string, want entities.SourceStatus) {
		t.Helper()
		source, err := store.GetSource(context.Background(), id)
		if err != nil {
			t.Fatalf("get source %s failed: %v", id, err)
		}
		if source.Status != want {
			t.Fatalf("source %s: expected %s, got %s", id, want, source.Status)
		}
	}
	assertStatus("stale-1", entities.SourceStatusFailed)
	assertStatus("fresh-1", entities.SourceStatusProcessing)
	assertStatus("done-1", entities.SourceStatusCompleted)
}
