package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adforge/contexts/campaign-generation/generation-service/domain/entities"
	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	sources   map[string]entities.Source
	campaigns map[string]entities.Campaign
	logs      []entities.GenerationLog
}

func NewStore() *Store {
	return &Store{
		sources:   make(map[string]entities.Source),
		campaigns: make(map[string]entities.Campaign),
		logs:      make([]entities.GenerationLog, 0),
	}
}

func (s *Store) CreateSource(_ context.Context, source entities.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sources[source.SourceID]; exists {
		return domainerrors.ErrInvalidGenerationInput
	}
	s.sources[source.SourceID] = source
	return nil
}

func (s *Store) GetSource(_ context.Context, sourceID string) (entities.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.sources[strings.TrimSpace(sourceID)]
	if !exists {
		return entities.Source{}, domainerrors.ErrSourceNotFound
	}
	return item, nil
}

func (s *Store) UpdateSourceStatus(_ context.Context, sourceID string, from, to entities.SourceStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.sources[sourceID]
	if !exists {
		return domainerrors.ErrSourceNotFound
	}
	if item.Status != from {
		return domainerrors.ErrInvalidStatusTransition
	}
	item.Status = to
	item.UpdatedAt = updatedAt
	s.sources[sourceID] = item
	return nil
}

func (s *Store) ListSourcesByProject(_ context.Context, projectID string) ([]entities.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Source, 0)
	for _, item := range s.sources {
		if item.ProjectID == projectID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ListStaleProcessingSources(_ context.Context, olderThan time.Time, limit int) ([]entities.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Source, 0)
	for _, item := range s.sources {
		if item.Status == entities.SourceStatusProcessing && item.UpdatedAt.Before(olderThan) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UpdatedAt.Before(items[j].UpdatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidGenerationInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) ListCampaignsByProject(_ context.Context, projectID string) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0)
	for _, item := range s.campaigns {
		if item.ProjectID == projectID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateGenerationLog(_ context.Context, log entities.GenerationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, log)
	return nil
}

func (s *Store) ListGenerationLogsByUser(_ context.Context, userID string) ([]entities.GenerationLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.GenerationLog, 0)
	for _, item := range s.logs {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// CountSources reports how many sources are currently held; used by tests.
func (s *Store) CountSources() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sources)
}

// CountCampaigns reports how many campaigns are currently held; used by tests.
func (s *Store) CountCampaigns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.campaigns)
}

// CountGenerationLogs reports how many logs are currently held; used by tests.
func (s *Store) CountGenerationLogs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
