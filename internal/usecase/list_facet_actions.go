package usecase

import (
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// FacetActionInfo is one facet cut action and its on-chain code
type FacetActionInfo struct {
	Name string `json:"name" yaml:"name"`
	Code uint8  `json:"code" yaml:"code"`
}

// ListFacetActions lists the IDiamondCut action codes
type ListFacetActions struct{}

// NewListFacetActions creates a new ListFacetActions use case
func NewListFacetActions() *ListFacetActions {
	return &ListFacetActions{}
}

// Run executes the list facet actions use case
func (uc *ListFacetActions) Run() []FacetActionInfo {
	return lo.Map(diamond.FacetCutActions(), func(a diamond.FacetCutAction, _ int) FacetActionInfo {
		return FacetActionInfo{Name: a.String(), Code: uint8(a)}
	})
}
