package app

import (
	"fmt"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/config"
	"github.com/bobmcallan/ghl-mcp/internal/crm"
	"github.com/bobmcallan/ghl-mcp/internal/groups"
	"github.com/bobmcallan/ghl-mcp/internal/handlers"
	"github.com/bobmcallan/ghl-mcp/internal/mcp"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Client  *crm.Client
	Groups  []registry.Group
	Catalog *registry.Catalog
	Router  *registry.Router
	Engine  *mcp.Engine

	// HTTP transport
	SSE                 *mcp.SSEServer
	HealthHandler       *handlers.HealthHandler
	VersionHandler      *handlers.VersionHandler
	CapabilitiesHandler *handlers.CapabilitiesHandler
	ToolsHandler        *handlers.ToolsHandler
}

// New initializes the application with all dependencies. It fails when the
// catalog holds a duplicate name or a group's ownership claim disagrees with
// its definitions; no transport may start in that case.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	client := crm.NewClient(crm.Options{
		BaseURL:    cfg.CRM.BaseURL,
		APIKey:     cfg.CRM.APIKey,
		Version:    cfg.CRM.Version,
		LocationID: cfg.CRM.LocationID,
		Timeout:    cfg.CRM.GetTimeout(),
	}, logger)

	return NewWithGroups(cfg, logger, client, groups.All(client)...)
}

// NewWithGroups wires the application around an explicit group list.
func NewWithGroups(cfg *config.Config, logger *common.Logger, client *crm.Client, gs ...registry.Group) (*App, error) {
	catalog, err := registry.BuildCatalog(gs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool catalog: %w", err)
	}

	router, err := registry.NewRouter(catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool index: %w", err)
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Groups:  gs,
		Catalog: catalog,
		Router:  router,
		Engine:  mcp.NewEngine(router, cfg.Server.Name, common.GetVersion(), logger),
	}
	a.initHandlers()

	logger.Info().
		Int("groups", len(gs)).
		Int("tools", catalog.Len()).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.SSE = mcp.NewSSEServer(a.Engine, a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Config.Server.Name, a.Catalog, a.Logger)
	a.VersionHandler = handlers.NewVersionHandler()
	a.CapabilitiesHandler = handlers.NewCapabilitiesHandler(a.Config.Server.Name)
	a.ToolsHandler = handlers.NewToolsHandler(a.Catalog, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources. Open SSE streams are ended.
func (a *App) Close() error {
	if a.SSE != nil {
		a.SSE.Close()
	}
	return nil
}
