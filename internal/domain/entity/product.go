package entity

// Tipo de producto compuesto por defecto (producto configurable con variantes).
const ProductTypeConfigurable = "configurable"

// CompositeProduct representa un producto compuesto (ej. configurable con variantes de talla/color).
// Es de solo lectura para este sistema; lo único que se corrige es su estado de stock agregado.
type CompositeProduct struct {
	ID     int64
	SKU    string // único en el catálogo
	Name   string
	TypeID string
}
