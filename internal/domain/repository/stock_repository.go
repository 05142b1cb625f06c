package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
)

// StockStatusRepository define el puerto del subsistema de inventario:
// estado agregado por producto+scope y cantidad disponible por miembro+scope.
type StockStatusRepository interface {
	// GetStatus nunca devuelve nil sin error: sin fila registrada el estado es OUT_OF_STOCK.
	GetStatus(ctx context.Context, productID int64, scopeID int) (*entity.StockStatus, error)
	// GetAvailableQty devuelve cero cuando no hay fila o la cantidad es NULL.
	GetAvailableQty(ctx context.Context, memberID int64, scopeID int) (decimal.Decimal, error)
	SaveStatus(ctx context.Context, status *entity.StockStatus) error
}
