package app

import (
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ShowSelectors    *usecase.ShowSelectors
	LocateFacet      *usecase.LocateFacet
	ListFacetActions *usecase.ListFacetActions
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	showSelectors *usecase.ShowSelectors,
	locateFacet *usecase.LocateFacet,
	listFacetActions *usecase.ListFacetActions,
) (*App, error) {
	return &App{
		Config:           cfg,
		ShowSelectors:    showSelectors,
		LocateFacet:      locateFacet,
		ListFacetActions: listFacetActions,
	}, nil
}
