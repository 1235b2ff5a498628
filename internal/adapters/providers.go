package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/treb-diamond/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-diamond/internal/adapters/fs"
	"github.com/trebuchet-org/treb-diamond/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-diamond/internal/adapters/repository/contracts"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// RepositorySet provides artifact-backed implementations
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Repository)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFacetFileReaderAdapter,
	wire.Bind(new(usecase.FacetFileReader), new(*fs.FacetFileReaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewLoupeClient,
	wire.Bind(new(usecase.FacetLoupe), new(*blockchain.LoupeClient)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	FSSet,
	InteractiveSet,
	BlockchainSet,
)
