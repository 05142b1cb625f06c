package stockreset

import "github.com/jhoicas/stock-status-reset/internal/domain/entity"

// ReportSink acumula las decisiones de la corrida y, en modo reporte, las vuelca a un archivo.
type ReportSink interface {
	Record(decision entity.ResetDecision)
	Report() entity.Report
	// Flush escribe el archivo y devuelve su ruta; "" si no se pudo escribir (el error ya se registró).
	Flush() string
}

// ProgressLogger líneas de avance legibles para el operador.
type ProgressLogger interface {
	Logf(format string, args ...any)
}
