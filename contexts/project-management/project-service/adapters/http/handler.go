package httpadapter

import (
	"context"
	"log/slog"

	"adforge/contexts/project-management/project-service/application"
	"adforge/contexts/project-management/project-service/domain/entities"
	transporthttp "adforge/contexts/project-management/project-service/transport/http"
)

// Handler adapts the application service to the transport DTOs. Status code
// mapping stays in the platform http server.
type Handler struct {
	Service *application.Service
	Logger  *slog.Logger
}

func (h *Handler) CreateProjectHandler(ctx context.Context, ownerID string, req transporthttp.CreateProjectRequest) (transporthttp.ProjectResponse, error) {
	project, err := h.Service.CreateProject(ctx, application.CreateProjectCommand{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return transporthttp.ProjectResponse{}, err
	}
	return mapProject(project), nil
}

func (h *Handler) GetProjectHandler(ctx context.Context, projectID, userID string) (transporthttp.ProjectResponse, error) {
	project, err := h.Service.GetProject(ctx, projectID, userID)
	if err != nil {
		return transporthttp.ProjectResponse{}, err
	}
	return mapProject(project), nil
}

func (h *Handler) ListProjectsHandler(ctx context.Context, ownerID string) (transporthttp.ListProjectsResponse, error) {
	projects, err := h.Service.ListProjects(ctx, ownerID)
	if err != nil {
		return transporthttp.ListProjectsResponse{}, err
	}
	out := transporthttp.ListProjectsResponse{Projects: make([]transporthttp.ProjectResponse, 0, len(projects))}
	for _, project := range projects {
		out.Projects = append(out.Projects, mapProject(project))
	}
	return out, nil
}

func (h *Handler) DeleteProjectHandler(ctx context.Context, projectID, userID string) error {
	return h.Service.DeleteProject(ctx, projectID, userID)
}

func mapProject(project entities.Project) transporthttp.ProjectResponse {
	return transporthttp.ProjectResponse{
		ProjectID:   project.ProjectID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
