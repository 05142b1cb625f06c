package stockreset

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/domain/repository"
)

// Engine motor de reconciliación: decide si el estado agregado de un producto compuesto
// debe volver a IN_STOCK y, si el llamador lo permite, lo corrige.
// Nunca degrada IN_STOCK a OUT_OF_STOCK.
type Engine struct {
	catalog repository.CatalogRepository
	stock   repository.StockStatusRepository
}

// NewEngine construye el motor con los puertos de catálogo e inventario.
func NewEngine(catalog repository.CatalogRepository, stock repository.StockStatusRepository) *Engine {
	return &Engine{catalog: catalog, stock: stock}
}

// Evaluate calcula la decisión para un producto en el scope dado. No persiste nada.
// Los errores de los puertos se devuelven envueltos; el llamador decide si abortar.
func (e *Engine) Evaluate(ctx context.Context, product *entity.CompositeProduct, scopeID int) (entity.ResetDecision, error) {
	decision := entity.ResetDecision{SKU: product.SKU, Name: product.Name}

	// 1. Hijos del producto compuesto
	memberIDs, err := e.catalog.GetChildIDs(ctx, product.ID)
	if err != nil {
		return decision, fmt.Errorf("resolver hijos de %s: %w", product.SKU, err)
	}

	// 2. Estado agregado actual
	status, err := e.stock.GetStatus(ctx, product.ID, scopeID)
	if err != nil {
		return decision, fmt.Errorf("obtener estado de stock de %s: %w", product.SKU, err)
	}

	// 3. Sin hijos o ya en stock: no hay nada que corregir
	if len(memberIDs) == 0 || status.IsInStock() {
		return decision, nil
	}

	// 4. Basta un hijo con cantidad > 0
	for _, memberID := range memberIDs {
		qty, err := e.stock.GetAvailableQty(ctx, memberID, scopeID)
		if err != nil {
			return decision, fmt.Errorf("obtener cantidad del hijo %d de %s: %w", memberID, product.SKU, err)
		}
		if qty.GreaterThan(decimal.Zero) {
			decision.NeedsReset = true
			break
		}
	}
	return decision, nil
}

// Apply marca el producto como IN_STOCK en el scope y lo persiste. Único llamado que muta estado.
func (e *Engine) Apply(ctx context.Context, product *entity.CompositeProduct, scopeID int) error {
	status := &entity.StockStatus{
		ProductID: product.ID,
		ScopeID:   scopeID,
		Status:    entity.InStock,
	}
	if err := e.stock.SaveStatus(ctx, status); err != nil {
		return fmt.Errorf("guardar estado de stock de %s: %w", product.SKU, err)
	}
	return nil
}
