package diamond

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Interface is an ordered view of the callable functions of a contract ABI.
// It is immutable once built and safe for concurrent use.
type Interface struct {
	functions  []Function
	bySig      map[string]int
	byName     map[string][]int
	bySelector map[Selector]int
}

// abiFragment is one entry of an ABI JSON array. Fragments are decoded one at a
// time rather than through abi.JSON, whose Methods map loses declaration order.
type abiFragment struct {
	Name            string        `json:"name"`
	StateMutability string        `json:"stateMutability"`
	Constant        bool          `json:"constant"`
	Payable         bool          `json:"payable"`
	Inputs          abi.Arguments `json:"inputs"`
	Outputs         abi.Arguments `json:"outputs"`
}

func newInterface(functions []Function) *Interface {
	iface := &Interface{
		functions:  functions,
		bySig:      make(map[string]int, len(functions)),
		byName:     make(map[string][]int),
		bySelector: make(map[Selector]int, len(functions)),
	}
	for i, fn := range functions {
		// Malformed ABIs may repeat a function; lookups resolve to the first one.
		if _, ok := iface.bySig[fn.Signature]; !ok {
			iface.bySig[fn.Signature] = i
			iface.byName[fn.Name] = append(iface.byName[fn.Name], i)
		}
		if _, ok := iface.bySelector[fn.Selector]; !ok {
			iface.bySelector[fn.Selector] = i
		}
	}
	return iface
}

// ParseInterface builds an Interface from ABI JSON. Both a bare fragment array
// and an artifact object with an "abi" field are accepted. Fragments that are
// not functions (events, errors, constructor, fallback, receive) are skipped.
func ParseInterface(data []byte) (*Interface, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidABI, err)
		}
		if len(artifact.ABI) == 0 {
			return nil, fmt.Errorf("%w: artifact has no abi field", ErrInvalidABI)
		}
		trimmed = artifact.ABI
	}

	var fragments []json.RawMessage
	if err := json.Unmarshal(trimmed, &fragments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidABI, err)
	}

	functions := make([]Function, 0, len(fragments))
	for i, raw := range fragments {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return nil, fmt.Errorf("%w: fragment %d: %v", ErrInvalidABI, i, err)
		}
		// An omitted type means function in the ABI JSON format
		if head.Type != "function" && head.Type != "" {
			continue
		}

		var frag abiFragment
		if err := json.Unmarshal(raw, &frag); err != nil {
			return nil, fmt.Errorf("%w: fragment %d: %v", ErrInvalidABI, i, err)
		}
		if frag.Name == "" {
			return nil, fmt.Errorf("%w: fragment %d: function without a name", ErrInvalidABI, i)
		}
		method := abi.NewMethod(frag.Name, frag.Name, abi.Function, frag.StateMutability,
			frag.Constant, frag.Payable, frag.Inputs, frag.Outputs)
		functions = append(functions, functionFromMethod(method))
	}

	return newInterface(functions), nil
}

// NewInterface builds an Interface from human-readable function declarations
// such as "transfer(address,uint256)" or "function balanceOf(address) view returns (uint256)".
// Any malformed declaration fails the whole call with an InvalidSignatureErr.
func NewInterface(declarations ...string) (*Interface, error) {
	functions := make([]Function, 0, len(declarations))
	for _, decl := range declarations {
		fn, err := parseFunction(decl)
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return newInterface(functions), nil
}

// MustNewInterface is like NewInterface but panics on error
func MustNewInterface(declarations ...string) *Interface {
	iface, err := NewInterface(declarations...)
	if err != nil {
		panic(err)
	}
	return iface
}

// Functions returns the function fragments in declaration order
func (i *Interface) Functions() []Function {
	if i == nil {
		return nil
	}
	out := make([]Function, len(i.functions))
	copy(out, i.functions)
	return out
}

// Len returns the number of function fragments
func (i *Interface) Len() int {
	if i == nil {
		return 0
	}
	return len(i.functions)
}

// GetFunction resolves a function by signature or, when it is not overloaded, by bare name.
// Signatures are canonicalised before lookup, so parameter names, whitespace,
// the "function" keyword and the uint/int aliases do not matter.
func (i *Interface) GetFunction(key string) (Function, bool) {
	if i == nil {
		return Function{}, false
	}
	key = strings.TrimSpace(key)

	if !strings.Contains(key, "(") {
		idx := i.byName[key]
		if len(idx) != 1 {
			return Function{}, false
		}
		return i.functions[idx[0]], true
	}

	if idx, ok := i.bySig[key]; ok {
		return i.functions[idx], true
	}
	sig, err := CanonicalSignature(key)
	if err != nil {
		return Function{}, false
	}
	idx, ok := i.bySig[sig]
	if !ok {
		return Function{}, false
	}
	return i.functions[idx], true
}

// FunctionBySelector returns the function whose selector matches
func (i *Interface) FunctionBySelector(sel Selector) (Function, bool) {
	if i == nil {
		return Function{}, false
	}
	idx, ok := i.bySelector[sel]
	if !ok {
		return Function{}, false
	}
	return i.functions[idx], true
}

// Overloads returns the signatures sharing a function name
func (i *Interface) Overloads(name string) []string {
	if i == nil {
		return nil
	}
	var sigs []string
	for _, idx := range i.byName[name] {
		sigs = append(sigs, i.functions[idx].Signature)
	}
	return sigs
}
