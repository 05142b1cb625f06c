// Package testutil dobles de prueba (testify/mock) para los puertos de catálogo e inventario.
package testutil

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/domain/repository"
)

var (
	_ repository.CatalogRepository     = (*MockCatalogRepository)(nil)
	_ repository.StockStatusRepository = (*MockStockStatusRepository)(nil)
)

// MockCatalogRepository mock de repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListComposites(ctx context.Context, filter repository.ProductFilter) ([]*entity.CompositeProduct, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.CompositeProduct)
	return products, args.Error(1)
}

func (m *MockCatalogRepository) GetChildIDs(ctx context.Context, parentID int64) ([]int64, error) {
	args := m.Called(ctx, parentID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

// MockStockStatusRepository mock de repository.StockStatusRepository.
type MockStockStatusRepository struct {
	mock.Mock
}

func (m *MockStockStatusRepository) GetStatus(ctx context.Context, productID int64, scopeID int) (*entity.StockStatus, error) {
	args := m.Called(ctx, productID, scopeID)
	status, _ := args.Get(0).(*entity.StockStatus)
	return status, args.Error(1)
}

func (m *MockStockStatusRepository) GetAvailableQty(ctx context.Context, memberID int64, scopeID int) (decimal.Decimal, error) {
	args := m.Called(ctx, memberID, scopeID)
	qty, _ := args.Get(0).(decimal.Decimal)
	return qty, args.Error(1)
}

func (m *MockStockStatusRepository) SaveStatus(ctx context.Context, status *entity.StockStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}
