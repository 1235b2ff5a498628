package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrContractNotFound is returned when a contract can't be found
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoNetwork is returned when an on-chain operation runs without a network
	ErrNoNetwork = errors.New("no network configured")
)

type NoContractsMatchErr struct {
	Query string
}

func (e NoContractsMatchErr) Error() string {
	return fmt.Sprintf("no contracts match query: %s", e.Query)
}

func (e NoContractsMatchErr) Is(target error) bool {
	return target == ErrContractNotFound
}

type AmbiguousContractErr struct {
	Query   string
	Matches []*models.Contract
}

func (e AmbiguousContractErr) Error() string {
	// Sort contracts by artifact path for consistent output
	sorted := make([]*models.Contract, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FullName() < sorted[j].FullName()
	})

	var suggestions []string
	for _, contract := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s (%s)", contract.Name, contract.Path))
	}

	return fmt.Sprintf("multiple contracts found matching %s - use full path:contract format to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}

type MissingArtifactErr struct {
	Contract *models.Contract
}

func (e MissingArtifactErr) Error() string {
	return fmt.Sprintf("contract %s has no compiled artifact, run forge build", e.Contract.FullName())
}
