package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnknownStockStatus = errors.New("estado de stock desconocido")
)
