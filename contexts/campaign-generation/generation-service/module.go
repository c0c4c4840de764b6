package generationservice

import (
	"log/slog"

	httpadapter "adforge/contexts/campaign-generation/generation-service/adapters/http"
	"adforge/contexts/campaign-generation/generation-service/adapters/memory"
	"adforge/contexts/campaign-generation/generation-service/application/commands"
	"adforge/contexts/campaign-generation/generation-service/application/queries"
	"adforge/contexts/campaign-generation/generation-service/domain/services"
	"adforge/contexts/campaign-generation/generation-service/ports"
)

type Module struct {
	Handler   httpadapter.Handler
	Lifecycle commands.SourceLifecycle
	Store     *memory.Store
	Invoker   *memory.ScriptedInvoker
}

type Dependencies struct {
	Sources     ports.SourceRepository
	Campaigns   ports.CampaignRepository
	Logs        ports.GenerationLogRepository
	Projects    ports.ProjectAuthorizer
	Stages      ports.StageInvoker
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Rates       services.Rates
	AgentName   string
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	rates := deps.Rates
	if rates == (services.Rates{}) {
		rates = services.DefaultRates
	}
	agent := deps.AgentName
	if agent == "" {
		agent = "campaign-generator"
	}

	lifecycle := commands.SourceLifecycle{
		Sources: deps.Sources,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	generateCampaign := commands.GenerateCampaignUseCase{
		Lifecycle:   lifecycle,
		Campaigns:   deps.Campaigns,
		Logs:        deps.Logs,
		Projects:    deps.Projects,
		Stages:      deps.Stages,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Usage:       services.UsageEstimator{Rates: rates},
		AgentName:   agent,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			GenerateCampaign: generateCampaign,
			GetCampaign: queries.GetCampaignUseCase{
				Campaigns: deps.Campaigns,
				Logger:    deps.Logger,
			},
			ListCampaigns: queries.ListCampaignsUseCase{
				Campaigns: deps.Campaigns,
				Logger:    deps.Logger,
			},
			ListSources: queries.ListSourcesUseCase{
				Sources: deps.Sources,
				Logger:  deps.Logger,
			},
			ListLogs: queries.ListGenerationLogsUseCase{
				Logs:   deps.Logs,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
		Lifecycle: lifecycle,
	}
}

// NewInMemoryModule wires the module against the in-memory store and a
// scripted stage invoker; owners maps project id to owning user id.
func NewInMemoryModule(script memory.StageScript, owners map[string]string, logger *slog.Logger) Module {
	store := memory.NewStore()
	invoker := memory.NewScriptedInvoker(script)
	module := NewModule(Dependencies{
		Sources:     store,
		Campaigns:   store,
		Logs:        store,
		Projects:    memory.Authorizer{Owners: owners},
		Stages:      invoker,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	module.Invoker = invoker
	return module
}
