//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-diamond/internal/adapters"
	"github.com/trebuchet-org/treb-diamond/internal/config"
	"github.com/trebuchet-org/treb-diamond/internal/logging"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
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
		usecase.NewContractResolver,
		usecase.NewShowSelectors,
		usecase.NewLocateFacet,
		usecase.NewListFacetActions,

		// App
		NewApp,
	)
	return nil, nil
}
