package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// maxSuggestions bounds the "did you mean" list for an unresolved signature
const maxSuggestions = 3

// ShowSelectorsParams contains parameters for deriving a contract's selectors
type ShowSelectorsParams struct {
	// Contract is a contract name, "path:name", or a path to an artifact file
	Contract string
	// Only restricts the selectors to these signatures
	Only []string
	// Except drops the selectors of these signatures
	Except []string
	// Remove drops selectors by standalone declarations, validated strictly
	Remove []string
}

// UnresolvedSignature is an --only/--except entry the contract ABI does not declare
type UnresolvedSignature struct {
	Signature   string   `json:"signature" yaml:"signature"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ShowSelectorsResult contains the derived selectors
type ShowSelectorsResult struct {
	Contract    *models.Contract       `json:"-" yaml:"-"`
	Name        string                 `json:"contract" yaml:"contract"`
	Functions   int                    `json:"functions" yaml:"functions"`
	Initializer bool                   `json:"initializerSkipped" yaml:"initializerSkipped"`
	Selectors   []models.SelectorEntry `json:"selectors" yaml:"selectors"`
	Unresolved  []UnresolvedSignature  `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

// SelectorList returns the bare selectors, in order
func (r *ShowSelectorsResult) SelectorList() []diamond.Selector {
	return lo.Map(r.Selectors, func(e models.SelectorEntry, _ int) diamond.Selector { return e.Selector })
}

// ShowSelectors derives the selectors a contract would register as a facet
type ShowSelectors struct {
	resolver *ContractResolver
	log      *slog.Logger
}

// NewShowSelectors creates a new ShowSelectors use case
func NewShowSelectors(resolver *ContractResolver, log *slog.Logger) *ShowSelectors {
	return &ShowSelectors{
		resolver: resolver,
		log:      log,
	}
}

// Run executes the show selectors use case
func (uc *ShowSelectors) Run(ctx context.Context, params ShowSelectorsParams) (*ShowSelectorsResult, error) {
	contract, err := uc.resolver.Resolve(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	iface, err := diamond.ParseInterface(contract.Artifact.ABI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.Name, err)
	}
	uc.checkMethodIdentifiers(contract, iface)

	set := diamond.GetSelectors(iface)
	_, hasInit := iface.GetFunction(diamond.InitializerSignature)

	var unresolved []string
	if len(params.Only) > 0 {
		unresolved = append(unresolved, set.Unresolved(params.Only...)...)
		set = set.RestrictTo(params.Only...)
	}
	if len(params.Except) > 0 {
		unresolved = append(unresolved, set.Unresolved(params.Except...)...)
		set = set.Exclude(params.Except...)
	}

	selectors, err := diamond.RemoveSelectors(set.Selectors, params.Remove)
	if err != nil {
		return nil, err
	}

	result := &ShowSelectorsResult{
		Contract:    contract,
		Name:        contract.Name,
		Functions:   iface.Len(),
		Initializer: hasInit,
		Selectors: lo.Map(selectors, func(sel diamond.Selector, _ int) models.SelectorEntry {
			fn, _ := iface.FunctionBySelector(sel)
			return models.SelectorEntry{Selector: sel, Signature: fn.Signature}
		}),
	}

	for _, sig := range lo.Uniq(unresolved) {
		suggestions := suggestSignatures(iface, sig)
		uc.log.Warn("signature not found in ABI, ignoring", "contract", contract.Name, "signature", sig, "suggestions", suggestions)
		result.Unresolved = append(result.Unresolved, UnresolvedSignature{Signature: sig, Suggestions: suggestions})
	}

	return result, nil
}

// checkMethodIdentifiers compares derived selectors with the compiler's methodIdentifiers
func (uc *ShowSelectors) checkMethodIdentifiers(contract *models.Contract, iface *diamond.Interface) {
	ids := contract.Artifact.MethodIdentifiers
	if len(ids) == 0 {
		return
	}
	for _, fn := range iface.Functions() {
		want, ok := ids[fn.Signature]
		if !ok {
			uc.log.Debug("function missing from methodIdentifiers", "contract", contract.Name, "signature", fn.Signature)
			continue
		}
		if !strings.EqualFold("0x"+strings.TrimPrefix(want, "0x"), fn.Selector.Hex()) {
			uc.log.Debug("selector differs from methodIdentifiers", "contract", contract.Name,
				"signature", fn.Signature, "derived", fn.Selector.Hex(), "compiler", want)
		}
	}
}

// suggestSignatures proposes declared signatures close to an unresolved one:
// overloads of the same name first, then fuzzy matches on the name
func suggestSignatures(iface *diamond.Interface, sig string) []string {
	name, _, _ := strings.Cut(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(sig), "function ")), "(")
	name = strings.TrimSpace(name)

	suggestions := iface.Overloads(name)

	signatures := lo.Map(iface.Functions(), func(fn diamond.Function, _ int) string { return fn.Signature })
	if name != "" {
		for _, match := range fuzzy.Find(name, signatures) {
			suggestions = append(suggestions, match.Str)
		}
	}

	suggestions = lo.Uniq(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
