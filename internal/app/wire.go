//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/evm-deployment-info/internal/adapters"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/logging"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewCountDeployments,
		usecase.NewListDeployments,
		usecase.NewAuditDeployments,
		usecase.NewCheckCoverage,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
