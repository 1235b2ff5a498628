package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trebuchet-org/treb-diamond/internal/domain"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
)

// ContractResolver resolves a user supplied contract reference, falling back
// to an interactive pick when the reference is ambiguous
type ContractResolver struct {
	config    *config.RuntimeConfig
	contracts ContractRepository
	selector  InteractiveSelector
}

// NewContractResolver creates a new contract resolver
func NewContractResolver(cfg *config.RuntimeConfig, contracts ContractRepository, selector InteractiveSelector) *ContractResolver {
	return &ContractResolver{
		config:    cfg,
		contracts: contracts,
		selector:  selector,
	}
}

// Resolve returns the contract for ref, which must have a compiled artifact
func (r *ContractResolver) Resolve(ctx context.Context, ref string) (*models.Contract, error) {
	contract, err := r.contracts.GetContract(ctx, ref)

	var ambiguous domain.AmbiguousContractErr
	if errors.As(err, &ambiguous) && !r.config.NonInteractive {
		contract, err = r.selector.SelectContract(ctx, ambiguous.Matches, fmt.Sprintf("Multiple contracts match %q, select one", ref))
	}
	if err != nil {
		return nil, err
	}

	if contract.Artifact == nil {
		return nil, domain.MissingArtifactErr{Contract: contract}
	}
	return contract, nil
}
