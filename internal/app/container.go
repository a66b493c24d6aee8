// Package app assembles the dependency graph.
package app

import (
	"context"
	"os"

	"github.com/magikvoice/callctl/internal/application/call"
	"github.com/magikvoice/callctl/internal/application/doctor"
	"github.com/magikvoice/callctl/internal/application/prompt"
	"github.com/magikvoice/callctl/internal/infrastructure/api"
	"github.com/magikvoice/callctl/internal/infrastructure/auth"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
	"github.com/magikvoice/callctl/internal/infrastructure/config"
	"github.com/magikvoice/callctl/internal/infrastructure/history"
	"github.com/magikvoice/callctl/internal/pkg/logger"
	"github.com/magikvoice/callctl/internal/pkg/telemetry"
	"github.com/magikvoice/callctl/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	ConfigLoader   *config.FileLoader
	ConfigProvider ports.ConfigProvider
	Catalog        *catalog.Store
	PromptService  *prompt.Service
	CallService    *call.Service
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryRepository
	APIClient      *api.Client
	Identity       *auth.IdentityClient
	Telemetry      *telemetry.Client
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewZap(verbose)

	identity := auth.NewIdentityClient(
		cfg.Auth.IdentityURL,
		cfg.Auth.TokenURL,
		os.Getenv(cfg.Auth.APIKeyEnvVar),
		cfgLoader,
		cfgLoader,
		log,
	)

	apiClient := api.NewClient(cfg.ResolveBaseURL(), identity, log)
	historyStore := history.NewSQLiteStore()
	catalogStore := catalog.NewStore()

	tel := telemetry.NewClient(log)
	tel.Init(cfg.Telemetry)

	return &Container{
		ConfigLoader:   cfgLoader,
		ConfigProvider: cfgLoader,
		Catalog:        catalogStore,
		PromptService:  prompt.NewService(catalogStore),
		CallService:    call.NewService(catalogStore, historyStore, apiClient, log),
		DoctorService:  doctor.NewService(cfgLoader, catalogStore, identity, apiClient),
		HistoryStore:   historyStore,
		APIClient:      apiClient,
		Identity:       identity,
		Telemetry:      tel,
		Logger:         log,
	}, nil
}
