package blockchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

type fakeCaller struct {
	output []byte
	err    error
	calls  []ethereum.CallMsg
}

func (f *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	return f.output, f.err
}

func newTestClient(t *testing.T, caller *fakeCaller) *LoupeClient {
	t.Helper()
	client, err := NewLoupeClientWithDialer(slog.New(slog.NewTextHandler(io.Discard, nil)),
		func(ctx context.Context, rpcURL string) (ethereum.ContractCaller, error) {
			return caller, nil
		})
	require.NoError(t, err)
	return client
}

func TestLoupeClient_Facets(t *testing.T) {
	ctx := context.Background()
	network := &config.Network{Name: "local", RPCURL: "http://localhost:8545"}
	diamondAddr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	facetAddr := common.HexToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")

	t.Run("decodes facet records", func(t *testing.T) {
		caller := &fakeCaller{}
		client := newTestClient(t, caller)

		encoded, err := client.abi.Methods["facets"].Outputs.Pack([]loupeFacet{
			{FacetAddress: facetAddr, FunctionSelectors: [][4]byte{{0x7a, 0x0e, 0xd6, 0x27}, {0xcd, 0xff, 0xac, 0xc6}}},
		})
		require.NoError(t, err)
		caller.output = encoded

		facets, err := client.Facets(ctx, network, diamondAddr)
		require.NoError(t, err)
		require.Len(t, facets, 1)
		assert.Equal(t, facetAddr.Hex(), facets[0].Address)
		assert.Equal(t, []string{"0x7a0ed627", "0xcdffacc6"}, diamond.HexSelectors(facets[0].Selectors))

		require.Len(t, caller.calls, 1)
		assert.Equal(t, diamondAddr, *caller.calls[0].To)
		assert.Equal(t, common.FromHex("0x7a0ed627"), caller.calls[0].Data)
	})

	t.Run("empty output", func(t *testing.T) {
		client := newTestClient(t, &fakeCaller{})
		_, err := client.Facets(ctx, network, diamondAddr)
		assert.ErrorContains(t, err, "is 0x1111111111111111111111111111111111111111 a diamond")
	})

	t.Run("call error", func(t *testing.T) {
		client := newTestClient(t, &fakeCaller{err: errors.New("execution reverted")})
		_, err := client.Facets(ctx, network, diamondAddr)
		assert.ErrorContains(t, err, "execution reverted")
	})

	t.Run("garbage output", func(t *testing.T) {
		client := newTestClient(t, &fakeCaller{output: []byte{0x01, 0x02}})
		_, err := client.Facets(ctx, network, diamondAddr)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("no network", func(t *testing.T) {
		client := newTestClient(t, &fakeCaller{})
		_, err := client.Facets(ctx, nil, diamondAddr)
		assert.Error(t, err)
	})
}
