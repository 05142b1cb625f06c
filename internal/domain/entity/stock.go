package entity

import "fmt"

// AggregateStatus estado de stock agregado de un producto compuesto.
type AggregateStatus int

const (
	OutOfStock AggregateStatus = iota
	InStock
)

// String devuelve la etiqueta legible del estado.
func (s AggregateStatus) String() string {
	switch s {
	case InStock:
		return "IN_STOCK"
	case OutOfStock:
		return "OUT_OF_STOCK"
	default:
		return fmt.Sprintf("AggregateStatus(%d)", int(s))
	}
}

// StockStatus estado de stock agregado de un producto en un scope (tienda/sitio web).
// ScopeID 0 es el scope global por defecto.
type StockStatus struct {
	ProductID int64
	ScopeID   int
	Status    AggregateStatus
}

// IsInStock indica si el estado guardado ya es IN_STOCK.
func (s *StockStatus) IsInStock() bool {
	return s != nil && s.Status == InStock
}
