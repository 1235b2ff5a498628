package diamond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterface(t *testing.T) {
	t.Run("keeps declaration order and skips non-functions", func(t *testing.T) {
		iface, err := ParseInterface([]byte(erc20ABI))
		require.NoError(t, err)

		sigs := make([]string, 0, iface.Len())
		for _, fn := range iface.Functions() {
			sigs = append(sigs, fn.Signature)
		}
		assert.Equal(t, []string{
			"totalSupply()",
			"balanceOf(address)",
			"transfer(address,uint256)",
			"approve(address,uint256)",
			"init(bytes)",
		}, sigs)
	})

	t.Run("artifact object", func(t *testing.T) {
		iface, err := ParseInterface([]byte(`{"abi":` + erc20ABI + `,"methodIdentifiers":{}}`))
		require.NoError(t, err)
		assert.Equal(t, 5, iface.Len())
	})

	t.Run("tuple components", func(t *testing.T) {
		iface, err := ParseInterface([]byte(diamondCutABI))
		require.NoError(t, err)
		require.Equal(t, 1, iface.Len())

		fn := iface.Functions()[0]
		assert.Equal(t, "diamondCut((address,uint8,bytes4[])[],address,bytes)", fn.Signature)
		assert.Equal(t, selDiamondCut, fn.Selector.Hex())
	})

	t.Run("empty", func(t *testing.T) {
		iface, err := ParseInterface([]byte(`[]`))
		require.NoError(t, err)
		assert.Equal(t, 0, iface.Len())
		assert.Empty(t, iface.Functions())
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseInterface([]byte(`{"abi":`))
		assert.True(t, errors.Is(err, ErrInvalidABI))

		_, err = ParseInterface([]byte(`{"bytecode":"0x"}`))
		assert.True(t, errors.Is(err, ErrInvalidABI))

		_, err = ParseInterface([]byte(`[{"type":"function","name":"f","inputs":[{"name":"x","type":"nope"}]}]`))
		assert.True(t, errors.Is(err, ErrInvalidABI))
	})
}

func TestInterface_GetFunction(t *testing.T) {
	iface := MustNewInterface(
		"transfer(address,uint256)",
		"safeTransferFrom(address,address,uint256)",
		"safeTransferFrom(address,address,uint256,bytes)",
		"owner() view returns (address)",
	)

	tests := []struct {
		name  string
		key   string
		want  string
		found bool
	}{
		{"exact signature", "transfer(address,uint256)", "transfer(address,uint256)", true},
		{"equivalent signature", "function transfer(address to, uint amount)", "transfer(address,uint256)", true},
		{"bare name", "owner", "owner()", true},
		{"overloaded bare name", "safeTransferFrom", "", false},
		{"overload by signature", "safeTransferFrom(address,address,uint256,bytes)", "safeTransferFrom(address,address,uint256,bytes)", true},
		{"wrong types", "transfer(address,uint128)", "", false},
		{"typo", "tranfser(address,uint256)", "", false},
		{"malformed", "transfer(address", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := iface.GetFunction(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, fn.Signature)
		})
	}

	assert.ElementsMatch(t, []string{
		"safeTransferFrom(address,address,uint256)",
		"safeTransferFrom(address,address,uint256,bytes)",
	}, iface.Overloads("safeTransferFrom"))
}

func TestInterface_FunctionBySelector(t *testing.T) {
	iface, err := ParseInterface([]byte(erc20ABI))
	require.NoError(t, err)

	fn, ok := iface.FunctionBySelector(MustParseSelector(selApprove))
	require.True(t, ok)
	assert.Equal(t, "approve", fn.Name)
	assert.Equal(t, "nonpayable", fn.StateMutability)
	assert.Len(t, fn.Inputs, 2)

	_, ok = iface.FunctionBySelector(MustParseSelector(selFacets))
	assert.False(t, ok)
}

func TestNewInterface_Invalid(t *testing.T) {
	_, err := NewInterface("foo()", "bar(unknowntype)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSignature))
}

func TestInterface_Nil(t *testing.T) {
	var iface *Interface
	assert.Equal(t, 0, iface.Len())
	assert.Nil(t, iface.Functions())
	_, ok := iface.GetFunction("foo()")
	assert.False(t, ok)
}
