package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adforge/contexts/project-management/project-service/domain/entities"
	domainerrors "adforge/contexts/project-management/project-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	projects map[string]entities.Project
}

func NewStore(seed []entities.Project) *Store {
	projects := make(map[string]entities.Project, len(seed))
	for _, item := range seed {
		projects[item.ProjectID] = item
	}
	return &Store{projects: projects}
}

func (s *Store) CreateProject(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[project.ProjectID]; exists {
		return domainerrors.ErrInvalidProjectData
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *Store) GetProject(_ context.Context, projectID string) (entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.projects[strings.TrimSpace(projectID)]
	if !exists {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return item, nil
}

func (s *Store) ListProjectsByOwner(_ context.Context, ownerID string) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Project, 0)
	for _, item := range s.projects {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[projectID]; !exists {
		return domainerrors.ErrProjectNotFound
	}
	delete(s.projects, projectID)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
