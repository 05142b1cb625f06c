package testutil

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
)

// Fixture describe un producto compuesto con su estado actual y las cantidades de sus hijos.
type Fixture struct {
	Product    *entity.CompositeProduct
	Status     entity.AggregateStatus
	Quantities []decimal.Decimal // una por hijo; vacío = sin hijos
}

// MemberID id determinista del i-ésimo hijo de un producto.
func MemberID(productID int64, i int) int64 {
	return productID*1000 + int64(i) + 1
}

// Qty atajo para cantidades enteras.
func Qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// ExpectFixtures registra en los mocks las lecturas de cada fixture (hijos, estado y cantidades).
// Las cantidades se marcan como Maybe: el motor puede cortar en el primer hijo con stock.
func ExpectFixtures(catalog *MockCatalogRepository, stock *MockStockStatusRepository, scopeID int, fixtures ...Fixture) {
	for _, f := range fixtures {
		ids := make([]int64, 0, len(f.Quantities))
		for i := range f.Quantities {
			ids = append(ids, MemberID(f.Product.ID, i))
		}
		catalog.On("GetChildIDs", mock.Anything, f.Product.ID).Return(ids, nil)
		stock.On("GetStatus", mock.Anything, f.Product.ID, scopeID).
			Return(&entity.StockStatus{ProductID: f.Product.ID, ScopeID: scopeID, Status: f.Status}, nil)
		for i, q := range f.Quantities {
			stock.On("GetAvailableQty", mock.Anything, ids[i], scopeID).Return(q, nil).Maybe()
		}
	}
}

// Products extrae los productos de las fixtures en orden.
func Products(fixtures ...Fixture) []*entity.CompositeProduct {
	out := make([]*entity.CompositeProduct, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, f.Product)
	}
	return out
}

// SavedIn matcher para SaveStatus: producto+scope con estado IN_STOCK.
func SavedIn(productID int64, scopeID int) interface{} {
	return mock.MatchedBy(func(s *entity.StockStatus) bool {
		return s != nil && s.ProductID == productID && s.ScopeID == scopeID && s.Status == entity.InStock
	})
}
