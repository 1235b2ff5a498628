package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/trebuchet-org/treb-diamond/internal/domain"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// Repository discovers and indexes compiled artifacts in the Foundry out directory.
// It never compiles: run forge build first.
type Repository struct {
	projectRoot   string
	outDir        string
	contracts     map[string]*models.Contract   // key: "path:contractName"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new contract repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot:   cfg.ProjectRoot,
		outDir:        cfg.OutDir,
		log:           log,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
	}
}

// Index discovers all artifacts
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	if _, err := os.Stat(r.outDir); os.IsNotExist(err) {
		return fmt.Errorf("artifacts directory %s not found, run forge build", r.outDir)
	}

	err := filepath.WalkDir(r.outDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}

		contract, err := r.loadArtifact(path)
		if err != nil {
			// Skip files that are not artifacts
			r.log.Debug("skipping file", "path", path, "error", err)
			return nil
		}
		r.add(contract)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.indexed = true
	return nil
}

// loadArtifact reads a single artifact file
func (r *Repository) loadArtifact(path string) (*models.Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, err
	}
	if len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("no abi in %s", path)
	}

	// Prefer the compilation target, fall back to the out/<File>.sol/<Name>.json layout
	source, name := artifact.CompilationTarget()
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
		if i := strings.IndexByte(name, '.'); i > 0 {
			name = name[:i] // Name.0.8.20.json when several compilers are used
		}
		source = filepath.Base(filepath.Dir(path))
	}

	relPath, err := filepath.Rel(r.projectRoot, path)
	if err != nil {
		relPath = path
	}

	return &models.Contract{
		Name:         name,
		Path:         source,
		ArtifactPath: relPath,
		Artifact:     &artifact,
	}, nil
}

func (r *Repository) add(contract *models.Contract) {
	key := contract.FullName()
	if _, exists := r.contracts[key]; exists {
		return
	}
	r.contracts[key] = contract
	r.contractNames[contract.Name] = append(r.contractNames[contract.Name], contract)
}

// GetContract retrieves a contract by artifact file path, "path:name", or name
func (r *Repository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if strings.HasSuffix(key, ".json") {
		return r.getByArtifactPath(key)
	}

	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.Contains(key, ":") {
		if contract, exists := r.contracts[key]; exists {
			return contract, nil
		}
		return nil, domain.NoContractsMatchErr{Query: key}
	}

	matches := r.contractNames[key]
	switch len(matches) {
	case 0:
		return nil, domain.NoContractsMatchErr{Query: key}
	case 1:
		return matches[0], nil
	default:
		return nil, domain.AmbiguousContractErr{Query: key, Matches: matches}
	}
}

func (r *Repository) getByArtifactPath(path string) (*models.Contract, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates, filepath.Join(r.projectRoot, path))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		contract, err := r.loadArtifact(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to load artifact %s: %w", candidate, err)
		}
		return contract, nil
	}
	return nil, fmt.Errorf("%w: artifact file %s", domain.ErrContractNotFound, path)
}

// SearchContracts returns contracts whose "path:name" contains query, case-insensitively
func (r *Repository) SearchContracts(ctx context.Context, query string) []*models.Contract {
	if err := r.Index(); err != nil {
		r.log.Warn("failed to index artifacts", "error", err)
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var results []*models.Contract
	for key, contract := range r.contracts {
		if strings.Contains(strings.ToLower(key), query) {
			results = append(results, contract)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].FullName() < results[j].FullName()
	})
	return results
}

// Ensure the repository implements the interface
var _ usecase.ContractRepository = (*Repository)(nil)
