package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-status-reset/internal/domain"
	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/domain/repository"
)

var _ repository.StockStatusRepository = (*StockStatusRepo)(nil)

// StockStatusRepo implementación de StockStatusRepository sobre la tabla stock_items.
type StockStatusRepo struct {
	q Querier
}

// NewStockStatusRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewStockStatusRepository(q Querier) *StockStatusRepo {
	return &StockStatusRepo{q: q}
}

// GetStatus obtiene el estado agregado del producto en el scope. Sin fila: OUT_OF_STOCK.
func (r *StockStatusRepo) GetStatus(ctx context.Context, productID int64, scopeID int) (*entity.StockStatus, error) {
	status := &entity.StockStatus{ProductID: productID, ScopeID: scopeID, Status: entity.OutOfStock}

	var inStock bool
	err := r.q.QueryRow(ctx,
		`SELECT is_in_stock FROM stock_items WHERE product_id = $1 AND scope_id = $2`,
		productID, scopeID,
	).Scan(&inStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return status, nil
		}
		return nil, fmt.Errorf("get stock status: %w", err)
	}
	if inStock {
		status.Status = entity.InStock
	}
	return status, nil
}

// GetAvailableQty obtiene la cantidad disponible del hijo en el scope. Sin fila o NULL: cero.
func (r *StockStatusRepo) GetAvailableQty(ctx context.Context, memberID int64, scopeID int) (decimal.Decimal, error) {
	var qty decimal.NullDecimal
	err := r.q.QueryRow(ctx,
		`SELECT qty FROM stock_items WHERE product_id = $1 AND scope_id = $2`,
		memberID, scopeID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get available qty: %w", err)
	}
	if !qty.Valid {
		return decimal.Zero, nil
	}
	return qty.Decimal, nil
}

// SaveStatus inserta o actualiza is_in_stock para (producto, scope) sin tocar la cantidad.
func (r *StockStatusRepo) SaveStatus(ctx context.Context, status *entity.StockStatus) error {
	if status == nil {
		return fmt.Errorf("save stock status: %w", domain.ErrInvalidInput)
	}
	var inStock bool
	switch status.Status {
	case entity.InStock:
		inStock = true
	case entity.OutOfStock:
		inStock = false
	default:
		return fmt.Errorf("save stock status %s: %w", status.Status, domain.ErrUnknownStockStatus)
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_items (product_id, scope_id, is_in_stock, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, scope_id)
		DO UPDATE SET is_in_stock = EXCLUDED.is_in_stock, updated_at = now()`,
		status.ProductID, status.ScopeID, inStock,
	)
	if err != nil {
		return fmt.Errorf("save stock status: %w", err)
	}
	return nil
}
