package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
	"gopkg.in/yaml.v3"
)

// FacetFileReaderAdapter reads facet records saved from IDiamondLoupe.facets()
type FacetFileReaderAdapter struct {
	projectRoot string
}

// NewFacetFileReaderAdapter creates a new FacetFileReaderAdapter
func NewFacetFileReaderAdapter(cfg *config.RuntimeConfig) *FacetFileReaderAdapter {
	return &FacetFileReaderAdapter{projectRoot: cfg.ProjectRoot}
}

// ReadFacets reads a JSON or YAML list of {facetAddress, functionSelectors}.
// Relative paths are tried against the working directory, then the project root.
func (a *FacetFileReaderAdapter) ReadFacets(ctx context.Context, path string) ([]diamond.Facet, error) {
	data, err := a.read(path)
	if err != nil {
		return nil, err
	}

	var facets []diamond.Facet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &facets)
	default:
		err = json.Unmarshal(data, &facets)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse facets file: %w", err)
	}
	return facets, nil
}

func (a *FacetFileReaderAdapter) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil || filepath.IsAbs(path) || !os.IsNotExist(err) {
		return data, err
	}
	return os.ReadFile(filepath.Join(a.projectRoot, path))
}

// Ensure the adapter implements the interface
var _ usecase.FacetFileReader = (*FacetFileReaderAdapter)(nil)
