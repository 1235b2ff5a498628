package diamond

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Selector is the 4-byte function identifier used by the diamond for dispatch
type Selector [4]byte

// SelectorOf returns the selector of a human-readable function declaration.
// The declaration is canonicalised first, so "transfer(address to, uint amount)"
// and "transfer(address,uint256)" yield the same selector.
func SelectorOf(signature string) (Selector, error) {
	fn, err := parseFunction(signature)
	if err != nil {
		return Selector{}, err
	}
	return fn.Selector, nil
}

// ParseSelector parses a hex selector, with or without the 0x prefix
func ParseSelector(s string) (Selector, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		raw = "0x" + raw
	}
	b, err := hexutil.Decode(raw)
	if err != nil {
		return Selector{}, fmt.Errorf("%w %q: %v", ErrInvalidSelector, s, err)
	}
	if len(b) != len(Selector{}) {
		return Selector{}, fmt.Errorf("%w %q: expected 4 bytes, got %d", ErrInvalidSelector, s, len(b))
	}
	var sel Selector
	copy(sel[:], b)
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on malformed input
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// Hex returns the 0x-prefixed lowercase hex form
func (s Selector) Hex() string {
	return hexutil.Encode(s[:])
}

func (s Selector) String() string {
	return s.Hex()
}

// Bytes returns a copy of the selector bytes
func (s Selector) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.Hex()), nil
}

func (s *Selector) UnmarshalText(text []byte) error {
	sel, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

// HexSelectors converts selectors to their hex strings
func HexSelectors(selectors []Selector) []string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		out[i] = s.Hex()
	}
	return out
}

// ParseSelectors parses a list of hex selectors, failing on the first malformed entry
func ParseSelectors(values []string) ([]Selector, error) {
	out := make([]Selector, 0, len(values))
	for _, v := range values {
		sel, err := ParseSelector(v)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}
