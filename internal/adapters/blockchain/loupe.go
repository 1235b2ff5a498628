package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// loupeABI is the facets() function of IDiamondLoupe (EIP-2535)
const loupeABI = `[{
  "type": "function",
  "name": "facets",
  "inputs": [],
  "outputs": [{
    "name": "facets_",
    "type": "tuple[]",
    "internalType": "struct IDiamondLoupe.Facet[]",
    "components": [
      {"name": "facetAddress", "type": "address"},
      {"name": "functionSelectors", "type": "bytes4[]"}
    ]
  }],
  "stateMutability": "view"
}]`

const callTimeout = 10 * time.Second

// loupeFacet mirrors IDiamondLoupe.Facet for abi decoding
type loupeFacet struct {
	FacetAddress      common.Address
	FunctionSelectors [][4]byte
}

// Dialer opens a contract caller for an RPC endpoint
type Dialer func(ctx context.Context, rpcURL string) (ethereum.ContractCaller, error)

// LoupeClient reads facet records from a deployed diamond
type LoupeClient struct {
	abi  abi.ABI
	dial Dialer
	log  *slog.Logger
}

// NewLoupeClient creates a loupe client that dials RPC endpoints with ethclient
func NewLoupeClient(log *slog.Logger) (*LoupeClient, error) {
	return NewLoupeClientWithDialer(log, func(ctx context.Context, rpcURL string) (ethereum.ContractCaller, error) {
		client, err := ethclient.DialContext(ctx, rpcURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}

// NewLoupeClientWithDialer creates a loupe client with a custom dialer
func NewLoupeClientWithDialer(log *slog.Logger, dial Dialer) (*LoupeClient, error) {
	parsed, err := abi.JSON(strings.NewReader(loupeABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse loupe ABI: %w", err)
	}
	return &LoupeClient{abi: parsed, dial: dial, log: log}, nil
}

// Facets calls facets() on the diamond and returns its facet records.
// Facet addresses are returned in checksum form.
func (c *LoupeClient) Facets(ctx context.Context, network *config.Network, diamondAddr common.Address) ([]diamond.Facet, error) {
	if network == nil {
		return nil, fmt.Errorf("no network to query")
	}

	caller, err := c.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	if closer, ok := caller.(interface{ Close() }); ok {
		defer closer.Close()
	}

	input, err := c.abi.Pack("facets")
	if err != nil {
		return nil, fmt.Errorf("failed to encode facets call: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	c.log.Debug("calling facets()", "network", network.Name, "diamond", diamondAddr.Hex())
	output, err := caller.CallContract(ctx, ethereum.CallMsg{To: &diamondAddr, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("facets() call failed: %w", err)
	}
	if len(output) == 0 {
		return nil, fmt.Errorf("facets() returned no data, is %s a diamond?", diamondAddr.Hex())
	}

	return c.decodeFacets(output)
}

func (c *LoupeClient) decodeFacets(output []byte) ([]diamond.Facet, error) {
	values, err := c.abi.Unpack("facets", output)
	if err != nil {
		return nil, fmt.Errorf("failed to decode facets() output: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected facets() output: %d values", len(values))
	}

	raw := *abi.ConvertType(values[0], new([]loupeFacet)).(*[]loupeFacet)
	facets := make([]diamond.Facet, 0, len(raw))
	for _, f := range raw {
		selectors := make([]diamond.Selector, len(f.FunctionSelectors))
		for i, s := range f.FunctionSelectors {
			selectors[i] = diamond.Selector(s)
		}
		facets = append(facets, diamond.Facet{
			Address:   f.FacetAddress.Hex(),
			Selectors: selectors,
		})
	}
	return facets, nil
}

// Ensure the client implements the interface
var _ usecase.FacetLoupe = (*LoupeClient)(nil)
