package models

import (
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// SelectorEntry pairs a selector with the signature it was derived from
type SelectorEntry struct {
	Selector  diamond.Selector `json:"selector" yaml:"selector"`
	Signature string           `json:"signature" yaml:"signature"`
}

// FacetSource describes where a list of facet records came from
type FacetSource string

const (
	FacetSourceLoupe FacetSource = "loupe"
	FacetSourceFile  FacetSource = "file"
)
