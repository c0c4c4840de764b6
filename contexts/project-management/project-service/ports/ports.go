package ports

import (
	"context"
	"time"

	"adforge/contexts/project-management/project-service/domain/entities"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project entities.Project) error
	GetProject(ctx context.Context, projectID string) (entities.Project, error)
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
