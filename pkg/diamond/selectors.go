package diamond

import (
	"github.com/samber/lo"
)

// InitializerSignature is the diamond initializer convention. It is never
// routed through the diamond, so GetSelectors always leaves it out.
const InitializerSignature = "init(bytes)"

// SelectorSet is an ordered list of selectors bound to the Interface they were
// derived from. The binding lets RestrictTo and Exclude resolve signatures
// against the same ABI. Sets are values: filtering returns a new set and
// never touches the receiver.
//
// A SelectorSet must come from GetSelectors. The zero value has no Interface,
// so every signature is unresolvable and filters return the set as-is
// (RestrictTo returns an empty set).
type SelectorSet struct {
	Selectors []Selector
	iface     *Interface
}

// GetSelectors returns the selectors of every function in iface, in
// declaration order, except InitializerSignature. An empty ABI yields an empty set.
func GetSelectors(iface *Interface) SelectorSet {
	functions := lo.Filter(iface.Functions(), func(fn Function, _ int) bool {
		return fn.Signature != InitializerSignature
	})
	return SelectorSet{
		Selectors: lo.Map(functions, func(fn Function, _ int) Selector { return fn.Selector }),
		iface:     iface,
	}
}

// Interface returns the ABI the set is bound to
func (s SelectorSet) Interface() *Interface {
	return s.iface
}

// Len returns the number of selectors in the set
func (s SelectorSet) Len() int {
	return len(s.Selectors)
}

// Contains reports whether sel is in the set
func (s SelectorSet) Contains(sel Selector) bool {
	return lo.Contains(s.Selectors, sel)
}

// Hex returns the selectors as hex strings
func (s SelectorSet) Hex() []string {
	return HexSelectors(s.Selectors)
}

// RestrictTo keeps only the selectors of the given signatures. Signatures the
// bound Interface cannot resolve match nothing.
func (s SelectorSet) RestrictTo(signatures ...string) SelectorSet {
	return s.filter(signatures, true)
}

// Exclude drops the selectors of the given signatures. Signatures the bound
// Interface cannot resolve exclude nothing.
func (s SelectorSet) Exclude(signatures ...string) SelectorSet {
	return s.filter(signatures, false)
}

// Unresolved returns the signatures the bound Interface cannot resolve.
// RestrictTo and Exclude silently treat these as no match.
func (s SelectorSet) Unresolved(signatures ...string) []string {
	return lo.Filter(signatures, func(sig string, _ int) bool {
		_, ok := s.iface.GetFunction(sig)
		return !ok
	})
}

// Signatures maps each selector back to its signature in the bound Interface.
// Selectors that cannot be mapped produce an empty string.
func (s SelectorSet) Signatures() []string {
	return lo.Map(s.Selectors, func(sel Selector, _ int) string {
		fn, _ := s.iface.FunctionBySelector(sel)
		return fn.Signature
	})
}

func (s SelectorSet) filter(signatures []string, keep bool) SelectorSet {
	targets := s.resolve(signatures)
	return SelectorSet{
		Selectors: lo.Filter(s.Selectors, func(sel Selector, _ int) bool {
			_, ok := targets[sel]
			return ok == keep
		}),
		iface: s.iface,
	}
}

func (s SelectorSet) resolve(signatures []string) map[Selector]struct{} {
	targets := make(map[Selector]struct{}, len(signatures))
	for _, sig := range signatures {
		if fn, ok := s.iface.GetFunction(sig); ok {
			targets[fn.Selector] = struct{}{}
		}
	}
	return targets
}

// RemoveSelectors drops from selectors every selector of the given function
// declarations. Unlike Exclude it needs no bound ABI: the declarations are
// parsed on their own, so a malformed one fails the whole call with an
// InvalidSignatureErr. With no declarations the input is returned unchanged.
func RemoveSelectors(selectors []Selector, signatures []string) ([]Selector, error) {
	if len(signatures) == 0 {
		return selectors, nil
	}
	iface, err := NewInterface(signatures...)
	if err != nil {
		return nil, err
	}
	return lo.Filter(selectors, func(sel Selector, _ int) bool {
		_, found := iface.FunctionBySelector(sel)
		return !found
	}), nil
}
