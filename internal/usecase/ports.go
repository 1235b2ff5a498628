package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	// GetContract resolves a contract by name, "path:name", or artifact file path
	GetContract(ctx context.Context, key string) (*models.Contract, error)
	SearchContracts(ctx context.Context, query string) []*models.Contract
}

// InteractiveSelector picks one contract when a query is ambiguous
type InteractiveSelector interface {
	SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error)
}

// FacetLoupe reads facet records from a deployed diamond
type FacetLoupe interface {
	Facets(ctx context.Context, network *config.Network, diamond common.Address) ([]diamond.Facet, error)
}

// FacetFileReader reads facet records from a JSON or YAML file
type FacetFileReader interface {
	ReadFacets(ctx context.Context, path string) ([]diamond.Facet, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
