package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	generationservice "adforge/contexts/campaign-generation/generation-service"
	mcpadapter "adforge/contexts/campaign-generation/generation-service/adapters/mcp"
	generationpostgres "adforge/contexts/campaign-generation/generation-service/adapters/postgres"
	generationworkers "adforge/contexts/campaign-generation/generation-service/application/workers"
	generationerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
	"adforge/contexts/campaign-generation/generation-service/domain/services"
	projectservice "adforge/contexts/project-management/project-service"
	projectpostgres "adforge/contexts/project-management/project-service/adapters/postgres"
	"adforge/contexts/project-management/project-service/application"
	projecterrors "adforge/contexts/project-management/project-service/domain/errors"
	"adforge/internal/platform/config"
	"adforge/internal/platform/db"
	"adforge/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	reaper       generationworkers.StaleSourceReaper
	pollInterval time.Duration
	logger       *slog.Logger
}

// projectAuthorizer bridges the project module's ownership check into the
// generation context's error vocabulary.
type projectAuthorizer struct {
	projects application.Service
}

func (a projectAuthorizer) AuthorizeProjectOwner(ctx context.Context, projectID, userID string) error {
	err := a.projects.CheckOwnership(ctx, projectID, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, projecterrors.ErrProjectNotFound):
		return generationerrors.ErrProjectNotFound
	case errors.Is(err, projecterrors.ErrNotProjectOwner):
		return generationerrors.ErrNotProjectOwner
	default:
		return err
	}
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	projectRepo := projectpostgres.NewRepository(pg.DB, logger)
	projects := projectservice.NewModule(projectservice.Dependencies{
		Projects:    projectRepo,
		Clock:       projectpostgres.SystemClock{},
		IDGenerator: projectpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	toolClient, err := mcpadapter.Dial(ctx, cfg.ToolServerURL)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	generationRepo := generationpostgres.NewRepository(pg.DB, logger)
	generation := generationservice.NewModule(generationservice.Dependencies{
		Sources:     generationRepo,
		Campaigns:   generationRepo,
		Logs:        generationRepo,
		Projects:    projectAuthorizer{projects: projects.Service},
		Stages:      mcpadapter.NewInvoker(toolClient, cfg.ToolNamespace, cfg.ToolTimeout, logger),
		Clock:       generationpostgres.SystemClock{},
		IDGenerator: generationpostgres.UUIDGenerator{},
		Rates: services.Rates{
			PromptPerMillion:     cfg.PromptRatePerMillion,
			CompletionPerMillion: cfg.CompletionRatePerMillion,
		},
		AgentName: cfg.AgentName,
		Logger:    logger,
	})

	server := httpserver.New(generation, projects, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := generationpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		reaper: generationworkers.StaleSourceReaper{
			Sources:   repo,
			Clock:     generationpostgres.SystemClock{},
			TTL:       cfg.StaleSourceTTL,
			BatchSize: cfg.StaleSweepBatchSize,
			Logger:    logger,
		},
		pollInterval: cfg.StaleSweepInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.reaper.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
