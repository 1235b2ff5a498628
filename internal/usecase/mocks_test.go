package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/domain/models"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// MockContractRepository is a mock implementation of ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contract), args.Error(1)
}

func (m *MockContractRepository) SearchContracts(ctx context.Context, query string) []*models.Contract {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Contract)
}

// MockInteractiveSelector is a mock implementation of InteractiveSelector
type MockInteractiveSelector struct {
	mock.Mock
}

func (m *MockInteractiveSelector) SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error) {
	args := m.Called(ctx, contracts, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contract), args.Error(1)
}

// MockFacetLoupe is a mock implementation of FacetLoupe
type MockFacetLoupe struct {
	mock.Mock
}

func (m *MockFacetLoupe) Facets(ctx context.Context, network *config.Network, diamondAddr common.Address) ([]diamond.Facet, error) {
	args := m.Called(ctx, network, diamondAddr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]diamond.Facet), args.Error(1)
}

// MockFacetFileReader is a mock implementation of FacetFileReader
type MockFacetFileReader struct {
	mock.Mock
}

func (m *MockFacetFileReader) ReadFacets(ctx context.Context, path string) ([]diamond.Facet, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]diamond.Facet), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
