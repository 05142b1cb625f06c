package repository

import (
	"context"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
)

// ProductFilter filtros para listar productos compuestos. TypeID es obligatorio.
type ProductFilter struct {
	TypeID string
}

// CatalogRepository define el puerto de lectura del catálogo (DIP).
// Lista productos compuestos y resuelve la relación padre → hijos.
type CatalogRepository interface {
	ListComposites(ctx context.Context, filter ProductFilter) ([]*entity.CompositeProduct, error)
	GetChildIDs(ctx context.Context, parentID int64) ([]int64, error)
}
