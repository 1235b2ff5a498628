package diamond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalSignature(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want string
	}{
		{"no params", "foo()", "foo()"},
		{"function keyword", "function foo()", "foo()"},
		{"named params", "transfer(address to, uint256 amount)", "transfer(address,uint256)"},
		{"uint alias", "bar(uint)", "bar(uint256)"},
		{"int array alias", "baz(int[] values)", "baz(int256[])"},
		{"spaces", "  transfer( address , uint256 )  ", "transfer(address,uint256)"},
		{"modifiers and returns", "function balanceOf(address owner) external view returns (uint256)", "balanceOf(address)"},
		{"returns without space", "totalSupply() view returns(uint256)", "totalSupply()"},
		{"data location", "init(bytes calldata data)", "init(bytes)"},
		{"tuple", "set((uint256,address) item)", "set((uint256,address))"},
		{"tuple keyword", "set(tuple(uint256 a, address b))", "set((uint256,address))"},
		{"tuple array", "diamondCut((address,uint8,bytes4[])[],address,bytes)", "diamondCut((address,uint8,bytes4[])[],address,bytes)"},
		{"nested tuple", "deep((uint8,(bool,string)[2]))", "deep((uint8,(bool,string)[2]))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalSignature(tt.decl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalSignature_Invalid(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{"unknown type", "foo(unknowntype)"},
		{"missing parens", "foo"},
		{"empty", ""},
		{"bad name", "1foo()"},
		{"unbalanced", "foo(uint256"},
		{"empty parameter", "foo(uint256,)"},
		{"empty tuple", "foo(())"},
		{"trailing garbage", "foo() banana"},
		{"returns without list", "foo() returns uint256"},
		{"two names", "foo(uint256 a b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CanonicalSignature(tt.decl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSignature))

			var sigErr InvalidSignatureErr
			require.True(t, errors.As(err, &sigErr))
			assert.Equal(t, tt.decl, sigErr.Signature)
		})
	}
}

func TestSelectorOf(t *testing.T) {
	tests := []struct {
		decl string
		want string
	}{
		{"totalSupply()", selTotalSupply},
		{"balanceOf(address)", selBalanceOf},
		{"transfer(address,uint256)", selTransfer},
		{"function transfer(address to, uint amount) returns (bool)", selTransfer},
		{"approve(address,uint256)", selApprove},
		{"diamondCut((address,uint8,bytes4[])[],address,bytes)", selDiamondCut},
		{"facets()", selFacets},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			sel, err := SelectorOf(tt.decl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Hex())
		})
	}
}
