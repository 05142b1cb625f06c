package stockreset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-status-reset/internal/application/stockreset"
	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/testutil"
)

const testScope = 0

func product(id int64, sku, name string) *entity.CompositeProduct {
	return &entity.CompositeProduct{ID: id, SKU: sku, Name: name, TypeID: entity.ProductTypeConfigurable}
}

func newEngine() (*stockreset.Engine, *testutil.MockCatalogRepository, *testutil.MockStockStatusRepository) {
	catalog := new(testutil.MockCatalogRepository)
	stock := new(testutil.MockStockStatusRepository)
	return stockreset.NewEngine(catalog, stock), catalog, stock
}

func TestEngine_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.AggregateStatus
		quantities []decimal.Decimal
		wantReset  bool
	}{
		{"sin hijos y sin stock", entity.OutOfStock, nil, false},
		{"sin hijos y en stock", entity.InStock, nil, false},
		{"sin stock con un hijo disponible", entity.OutOfStock, []decimal.Decimal{testutil.Qty(0), testutil.Qty(0), testutil.Qty(3)}, true},
		{"sin stock con hijos en cero", entity.OutOfStock, []decimal.Decimal{testutil.Qty(0), testutil.Qty(0)}, false},
		{"cantidades negativas no cuentan", entity.OutOfStock, []decimal.Decimal{testutil.Qty(-2), testutil.Qty(0)}, false},
		{"cantidad fraccionaria positiva cuenta", entity.OutOfStock, []decimal.Decimal{decimal.RequireFromString("0.5")}, true},
		{"en stock con hijos disponibles", entity.InStock, []decimal.Decimal{testutil.Qty(7)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, catalog, stock := newEngine()
			p := product(10, "CFG-10", "Test")
			testutil.ExpectFixtures(catalog, stock, testScope, testutil.Fixture{Product: p, Status: tc.status, Quantities: tc.quantities})

			decision, err := engine.Evaluate(context.Background(), p, testScope)
			require.NoError(t, err)
			assert.Equal(t, tc.wantReset, decision.NeedsReset)
			assert.Equal(t, "CFG-10", decision.SKU)
			assert.Equal(t, "Test", decision.Name)
			stock.AssertNotCalled(t, "SaveStatus", mock.Anything, mock.Anything)
		})
	}
}

// Con el producto ya en stock no se consulta ninguna cantidad.
func TestEngine_Evaluate_EnStockNoConsultaCantidades(t *testing.T) {
	engine, catalog, stock := newEngine()
	p := product(3, "CFG-3", "Gizmo")
	testutil.ExpectFixtures(catalog, stock, testScope, testutil.Fixture{
		Product: p, Status: entity.InStock, Quantities: []decimal.Decimal{testutil.Qty(0)},
	})

	decision, err := engine.Evaluate(context.Background(), p, testScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"CFG-3", "Gizmo", "No"}, decision.Row())
	stock.AssertNotCalled(t, "GetAvailableQty", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Evaluate_SinHijosNoConsultaCantidades(t *testing.T) {
	engine, catalog, stock := newEngine()
	p := product(4, "CFG-4", "Empty")
	testutil.ExpectFixtures(catalog, stock, testScope, testutil.Fixture{Product: p, Status: entity.OutOfStock})

	decision, err := engine.Evaluate(context.Background(), p, testScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"CFG-4", "Empty", "No"}, decision.Row())
	stock.AssertNotCalled(t, "GetAvailableQty", mock.Anything, mock.Anything, mock.Anything)
}

// El recorrido de hijos se detiene en el primero con stock.
func TestEngine_Evaluate_CortaEnPrimerHijoDisponible(t *testing.T) {
	engine, catalog, stock := newEngine()
	p := product(5, "CFG-5", "Early")
	testutil.ExpectFixtures(catalog, stock, testScope, testutil.Fixture{
		Product: p, Status: entity.OutOfStock, Quantities: []decimal.Decimal{testutil.Qty(5), testutil.Qty(0)},
	})

	decision, err := engine.Evaluate(context.Background(), p, testScope)
	require.NoError(t, err)
	assert.True(t, decision.NeedsReset)
	stock.AssertCalled(t, "GetAvailableQty", mock.Anything, testutil.MemberID(5, 0), testScope)
	stock.AssertNotCalled(t, "GetAvailableQty", mock.Anything, testutil.MemberID(5, 1), testScope)
}

// El scope configurado se propaga a estado y cantidades.
func TestEngine_Evaluate_UsaScopeConfigurado(t *testing.T) {
	engine, catalog, stock := newEngine()
	p := product(6, "CFG-6", "Scoped")
	testutil.ExpectFixtures(catalog, stock, 2, testutil.Fixture{
		Product: p, Status: entity.OutOfStock, Quantities: []decimal.Decimal{testutil.Qty(1)},
	})

	decision, err := engine.Evaluate(context.Background(), p, 2)
	require.NoError(t, err)
	assert.True(t, decision.NeedsReset)
	stock.AssertCalled(t, "GetStatus", mock.Anything, int64(6), 2)
}

func TestEngine_Evaluate_ErroresDePuertos(t *testing.T) {
	errDB := errors.New("conexión perdida")
	p := product(7, "CFG-7", "Failing")

	t.Run("hijos", func(t *testing.T) {
		engine, catalog, _ := newEngine()
		catalog.On("GetChildIDs", mock.Anything, int64(7)).Return(nil, errDB)

		_, err := engine.Evaluate(context.Background(), p, testScope)
		require.ErrorIs(t, err, errDB)
		assert.Contains(t, err.Error(), "CFG-7")
	})

	t.Run("estado", func(t *testing.T) {
		engine, catalog, stock := newEngine()
		catalog.On("GetChildIDs", mock.Anything, int64(7)).Return([]int64{1}, nil)
		stock.On("GetStatus", mock.Anything, int64(7), testScope).Return(nil, errDB)

		_, err := engine.Evaluate(context.Background(), p, testScope)
		require.ErrorIs(t, err, errDB)
	})

	t.Run("cantidad", func(t *testing.T) {
		engine, catalog, stock := newEngine()
		catalog.On("GetChildIDs", mock.Anything, int64(7)).Return([]int64{1}, nil)
		stock.On("GetStatus", mock.Anything, int64(7), testScope).
			Return(&entity.StockStatus{ProductID: 7, Status: entity.OutOfStock}, nil)
		stock.On("GetAvailableQty", mock.Anything, int64(1), testScope).Return(decimal.Zero, errDB)

		_, err := engine.Evaluate(context.Background(), p, testScope)
		require.ErrorIs(t, err, errDB)
	})
}

func TestEngine_Apply(t *testing.T) {
	engine, _, stock := newEngine()
	p := product(1, "CFG-1", "Widget")
	stock.On("SaveStatus", mock.Anything, testutil.SavedIn(1, testScope)).Return(nil).Once()

	require.NoError(t, engine.Apply(context.Background(), p, testScope))
	stock.AssertExpectations(t)
}

func TestEngine_Apply_ErrorAlGuardar(t *testing.T) {
	engine, _, stock := newEngine()
	errSave := errors.New("deadlock")
	stock.On("SaveStatus", mock.Anything, mock.Anything).Return(errSave)

	err := engine.Apply(context.Background(), product(1, "CFG-1", "Widget"), testScope)
	require.ErrorIs(t, err, errSave)
}
