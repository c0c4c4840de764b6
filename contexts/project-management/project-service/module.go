package projectservice

import (
	"log/slog"

	httpadapter "adforge/contexts/project-management/project-service/adapters/http"
	"adforge/contexts/project-management/project-service/adapters/memory"
	"adforge/contexts/project-management/project-service/application"
	"adforge/contexts/project-management/project-service/domain/entities"
	"adforge/contexts/project-management/project-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Projects    ports.ProjectRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Projects:    deps.Projects,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: &service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the module against the in-memory store, optionally
// seeded with projects.
func NewInMemoryModule(seed []entities.Project, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Projects:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
