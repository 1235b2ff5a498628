package diamond

import (
	"errors"
	"fmt"
)

// Sentinel errors for selector and facet operations
var (
	// ErrInvalidSignature is returned when a function declaration cannot be parsed
	ErrInvalidSignature = errors.New("invalid function signature")

	// ErrInvalidSelector is returned when a selector string is not 4 bytes of hex
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrFacetNotFound is returned when no facet record matches an address
	ErrFacetNotFound = errors.New("facet not found")

	// ErrInvalidABI is returned when ABI JSON cannot be decoded
	ErrInvalidABI = errors.New("invalid ABI")
)

// InvalidSignatureErr carries the declaration that failed to parse
type InvalidSignatureErr struct {
	Signature string
	Reason    error
}

func (e InvalidSignatureErr) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("invalid function signature %q", e.Signature)
	}
	return fmt.Sprintf("invalid function signature %q: %v", e.Signature, e.Reason)
}

func (e InvalidSignatureErr) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrInvalidSignature}
	}
	return []error{ErrInvalidSignature, e.Reason}
}

// FacetNotFoundErr is returned by FindFacetIndex when no record has the address
type FacetNotFoundErr struct {
	Address string
	Facets  int
}

func (e FacetNotFoundErr) Error() string {
	return fmt.Sprintf("no facet found with address %s (searched %d facets)", e.Address, e.Facets)
}

func (e FacetNotFoundErr) Is(target error) bool {
	return target == ErrFacetNotFound
}

func invalidSignature(sig string, format string, args ...any) error {
	return InvalidSignatureErr{Signature: sig, Reason: fmt.Errorf(format, args...)}
}
