package application

import (
	"context"
	"log/slog"
	"strings"

	"adforge/contexts/project-management/project-service/domain/entities"
	domainerrors "adforge/contexts/project-management/project-service/domain/errors"
	"adforge/contexts/project-management/project-service/ports"
)

type Service struct {
	Projects    ports.ProjectRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateProjectCommand struct {
	OwnerID     string
	Name        string
	Description string
}

func (s Service) CreateProject(ctx context.Context, cmd CreateProjectCommand) (entities.Project, error) {
	now := s.Clock.Now().UTC()
	projectID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	project := entities.Project{
		ProjectID:   projectID,
		OwnerID:     strings.TrimSpace(cmd.OwnerID),
		Name:        strings.TrimSpace(cmd.Name),
		Description: strings.TrimSpace(cmd.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !project.ValidateBasics() {
		return entities.Project{}, domainerrors.ErrInvalidProjectData
	}
	if err := s.Projects.CreateProject(ctx, project); err != nil {
		return entities.Project{}, err
	}
	s.resolveLogger().Info("project created",
		"event", "project_created",
		"module", "project-management/project-service",
		"layer", "application",
		"project_id", project.ProjectID,
		"owner_id", project.OwnerID,
	)
	return project, nil
}

func (s Service) GetProject(ctx context.Context, projectID, userID string) (entities.Project, error) {
	project, err := s.Projects.GetProject(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return entities.Project{}, err
	}
	if project.OwnerID != userID {
		return entities.Project{}, domainerrors.ErrNotProjectOwner
	}
	return project, nil
}

func (s Service) ListProjects(ctx context.Context, ownerID string) ([]entities.Project, error) {
	return s.Projects.ListProjectsByOwner(ctx, strings.TrimSpace(ownerID))
}

func (s Service) DeleteProject(ctx context.Context, projectID, userID string) error {
	project, err := s.Projects.GetProject(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return domainerrors.ErrNotProjectOwner
	}
	if err := s.Projects.DeleteProject(ctx, project.ProjectID); err != nil {
		return err
	}
	s.resolveLogger().Info("project deleted",
		"event", "project_deleted",
		"module", "project-management/project-service",
		"layer", "application",
		"project_id", project.ProjectID,
	)
	return nil
}

// CheckOwnership is the collaborator contract consumed by the generation
// pipeline before it creates any durable record.
func (s Service) CheckOwnership(ctx context.Context, projectID, userID string) error {
	project, err := s.Projects.GetProject(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return domainerrors.ErrNotProjectOwner
	}
	return nil
}

func (s Service) resolveLogger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
