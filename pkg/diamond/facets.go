package diamond

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FacetCutAction is the kind of change applied to a diamond's routing table.
// The numeric values are the on-chain IDiamondCut encoding and must not change.
type FacetCutAction uint8

const (
	FacetCutAdd     FacetCutAction = 0
	FacetCutReplace FacetCutAction = 1
	FacetCutRemove  FacetCutAction = 2
)

var facetCutActionNames = map[FacetCutAction]string{
	FacetCutAdd:     "Add",
	FacetCutReplace: "Replace",
	FacetCutRemove:  "Remove",
}

// FacetCutActions lists every action in numeric order
func FacetCutActions() []FacetCutAction {
	return []FacetCutAction{FacetCutAdd, FacetCutReplace, FacetCutRemove}
}

func (a FacetCutAction) String() string {
	if name, ok := facetCutActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("FacetCutAction(%d)", uint8(a))
}

// ParseFacetCutAction parses an action name, case-insensitively
func ParseFacetCutAction(name string) (FacetCutAction, error) {
	for action, n := range facetCutActionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return action, nil
		}
	}
	return 0, fmt.Errorf("unknown facet cut action %q", name)
}

// Facet is one deployed facet and the selectors the diamond routes to it.
// JSON tags follow the IDiamondLoupe.facets() output.
type Facet struct {
	Address   string     `json:"facetAddress" yaml:"facetAddress"`
	Selectors []Selector `json:"functionSelectors" yaml:"functionSelectors"`
}

// FindFacetIndex returns the index of the first facet whose address equals
// address. Addresses are compared as given, so callers must normalise both
// sides the same way (checksummed or lowercase).
func FindFacetIndex(address string, facets []Facet) (int, error) {
	_, idx, ok := lo.FindIndexOf(facets, func(f Facet) bool {
		return f.Address == address
	})
	if !ok {
		return -1, FacetNotFoundErr{Address: address, Facets: len(facets)}
	}
	return idx, nil
}
