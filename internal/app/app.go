package app

import (
	"log/slog"

	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	CountDeployments *usecase.CountDeployments
	ListDeployments  *usecase.ListDeployments
	AuditDeployments *usecase.AuditDeployments
	CheckCoverage    *usecase.CheckCoverage
	ListNetworks     *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	countDeployments *usecase.CountDeployments,
	listDeployments *usecase.ListDeployments,
	auditDeployments *usecase.AuditDeployments,
	checkCoverage *usecase.CheckCoverage,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:           cfg,
		Logger:           logger,
		CountDeployments: countDeployments,
		ListDeployments:  listDeployments,
		AuditDeployments: auditDeployments,
		CheckCoverage:    checkCoverage,
		ListNetworks:     listNetworks,
	}, nil
}
