package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-diamond/internal/domain"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// LocateFacetParams contains parameters for locating a facet
type LocateFacetParams struct {
	// FacetAddress is the facet to look for
	FacetAddress string
	// Diamond is the diamond to query through the loupe, requires a network
	Diamond string
	// FacetsFile is a JSON or YAML file of facet records, used instead of the loupe
	FacetsFile string
}

// LocateFacetResult contains the position of a facet in the facet records
type LocateFacetResult struct {
	Source models.FacetSource `json:"source" yaml:"source"`
	Index  int                `json:"index" yaml:"index"`
	Facet  diamond.Facet      `json:"facet" yaml:"facet"`
	Total  int                `json:"total" yaml:"total"`
}

// LocateFacet finds a facet's position in a diamond's facet records
type LocateFacet struct {
	config *config.RuntimeConfig
	loupe  FacetLoupe
	files  FacetFileReader
	sink   ProgressSink
}

// NewLocateFacet creates a new LocateFacet use case
func NewLocateFacet(cfg *config.RuntimeConfig, loupe FacetLoupe, files FacetFileReader, sink ProgressSink) *LocateFacet {
	return &LocateFacet{
		config: cfg,
		loupe:  loupe,
		files:  files,
		sink:   sink,
	}
}

// Run executes the locate facet use case
func (uc *LocateFacet) Run(ctx context.Context, params LocateFacetParams) (*LocateFacetResult, error) {
	facets, source, err := uc.loadFacets(ctx, params)
	if err != nil {
		return nil, err
	}

	address := params.FacetAddress
	if source == models.FacetSourceLoupe {
		// Loupe output is checksummed, match it
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
		}
		address = common.HexToAddress(address).Hex()
	}

	idx, err := diamond.FindFacetIndex(address, facets)
	if err != nil {
		return nil, err
	}

	return &LocateFacetResult{
		Source: source,
		Index:  idx,
		Facet:  facets[idx],
		Total:  len(facets),
	}, nil
}

func (uc *LocateFacet) loadFacets(ctx context.Context, params LocateFacetParams) ([]diamond.Facet, models.FacetSource, error) {
	if params.FacetsFile != "" {
		facets, err := uc.files.ReadFacets(ctx, params.FacetsFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read facets from %s: %w", params.FacetsFile, err)
		}
		return facets, models.FacetSourceFile, nil
	}

	if params.Diamond == "" {
		return nil, "", fmt.Errorf("either a diamond address or a facets file is required")
	}
	if uc.config.Network == nil {
		return nil, "", fmt.Errorf("%w: use --network to query diamond %s", domain.ErrNoNetwork, params.Diamond)
	}
	if !common.IsHexAddress(params.Diamond) {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Diamond)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loupe",
		Message: fmt.Sprintf("Querying facets of %s on %s", params.Diamond, uc.config.Network.Name),
		Spinner: true,
	})
	facets, err := uc.loupe.Facets(ctx, uc.config.Network, common.HexToAddress(params.Diamond))
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Facets loaded"})
	if err != nil {
		return nil, "", fmt.Errorf("failed to query facets: %w", err)
	}
	return facets, models.FacetSourceLoupe, nil
}
