package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adforge/contexts/project-management/project-service/domain/entities"
	domainerrors "adforge/contexts/project-management/project-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type projectModel struct {
	ProjectID   string    `gorm:"column:project_id;primaryKey"`
	OwnerID     string    `gorm:"column:owner_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func (r *Repository) CreateProject(ctx context.Context, project entities.Project) error {
	row := projectModel{
		ProjectID:   project.ProjectID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidProjectData
		}
		return err
	}
	return nil
}

func (r *Repository) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	var row projectModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, domainerrors.ErrProjectNotFound
		}
		return entities.Project{}, err
	}
	return projectFromModel(row), nil
}

func (r *Repository) ListProjectsByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	var rows []projectModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", strings.TrimSpace(ownerID)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Project, 0, len(rows))
	for _, row := range rows {
		items = append(items, projectFromModel(row))
	}
	return items, nil
}

// DeleteProject removes the project row; campaign and source rows cascade at
// the schema level.
func (r *Repository) DeleteProject(ctx context.Context, projectID string) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		Delete(&projectModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProjectNotFound
	}
	return nil
}

func projectFromModel(row projectModel) entities.Project {
	return entities.Project{
		ProjectID:   row.ProjectID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
