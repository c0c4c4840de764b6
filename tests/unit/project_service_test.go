package unit

import (
	"context"
	"errors"
	"testing"

	projectservice "adforge/contexts/project-management/project-service"
	domainerrors "adforge/contexts/project-management/project-service/domain/errors"
	httptransport "adforge/contexts/project-management/project-service/transport/http"
)

func TestProjectCreateAndGet(t *testing.T) {
	module := projectservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateProjectHandler(context.Background(), "user-1", httptransport.CreateProjectRequest{
		Name:        "Shoe Launch",
		Description: "Acme spring launch",
	})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if created.ProjectID == "" {
		t.Fatalf("expected project id")
	}
	if created.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %s", created.OwnerID)
	}

	fetched, err := module.Handler.GetProjectHandler(context.Background(), created.ProjectID, "user-1")
	if err != nil {
		t.Fatalf("get project failed: %v", err)
	}
	if fetched.Name != "Shoe Launch" {
		t.Fatalf("unexpected name: %q", fetched.Name)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	module := projectservice.NewInMemoryModule(nil, nil)

	_, err := module.Handler.CreateProjectHandler(context.Background(), "user-1", httptransport.CreateProjectRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidProjectData) {
		t.Fatalf("expected invalid project data, got %v", err)
	}
}

func TestProjectOwnershipEnforced(t *testing.T) {
	module := projectservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateProjectHandler(context.Background(), "user-1", httptransport.CreateProjectRequest{Name: "Private"})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	_, err = module.Handler.GetProjectHandler(context.Background(), created.ProjectID, "user-2")
	if !errors.Is(err, domainerrors.ErrNotProjectOwner) {
		t.Fatalf("expected not project owner, got %v", err)
	}

	err = module.Handler.DeleteProjectHandler(context.Background(), created.ProjectID, "user-2")
	if !errors.Is(err, domainerrors.ErrNotProjectOwner) {
		t.Fatalf("expected delete blocked for non-owner, got %v", err)
	}

	if err := module.Service.CheckOwnership(context.Background(), created.ProjectID, "user-1"); err != nil {
		t.Fatalf("owner check failed for owner: %v", err)
	}
	err = module.Service.CheckOwnership(context.Background(), "missing", "user-1")
	if !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected project not found, got %v", err)
	}
}

func TestProjectListAndDelete(t *testing.T) {
	module := projectservice.NewInMemoryModule(nil, nil)

	for _, name := range []string{"One", "Two"} {
		if _, err := module.Handler.CreateProjectHandler(context.Background(), "user-1", httptransport.CreateProjectRequest{Name: name}); err != nil {
			t.Fatalf("create project %s failed: %v", name, err)
		}
	}
	if _, err := module.Handler.CreateProjectHandler(context.Background(), "user-2", httptransport.CreateProjectRequest{Name: "Other"}); err != nil {
		t.Fatalf("create project for second user failed: %v", err)
	}

	listed, err := module.Handler.ListProjectsHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if len(listed.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(listed.Projects))
	}

	if err := module.Handler.DeleteProjectHandler(context.Background(), listed.Projects[0].ProjectID, "user-1"); err != nil {
		t.Fatalf("delete project failed: %v", err)
	}
	listed, err = module.Handler.ListProjectsHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if len(listed.Projects) != 1 {
		t.Fatalf("expected 1 project after delete, got %d", len(listed.Projects))
	}
}
