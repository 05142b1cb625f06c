package entity

// Encabezado fijo del reporte de reinicio de stock.
var ReportHeader = []string{"Parent SKU", "Parent Name", "Needs Reset"}

// ResetDecision resultado de evaluar un producto compuesto en una corrida.
// Err solo se llena cuando la corrida continúa ante errores por producto.
type ResetDecision struct {
	SKU        string
	Name       string
	NeedsReset bool
	Err        error
}

// NeedsResetLabel devuelve el valor de la columna "Needs Reset": Yes, No o Error.
func (d ResetDecision) NeedsResetLabel() string {
	switch {
	case d.Err != nil:
		return "Error"
	case d.NeedsReset:
		return "Yes"
	default:
		return "No"
	}
}

// Row devuelve la fila del reporte en el orden del encabezado.
func (d ResetDecision) Row() []string {
	return []string{d.SKU, d.Name, d.NeedsResetLabel()}
}

// Report secuencia ordenada de decisiones (una por producto escaneado, en orden de escaneo).
type Report struct {
	Decisions []ResetDecision
}

// Append agrega una decisión al final del reporte.
func (r *Report) Append(d ResetDecision) {
	r.Decisions = append(r.Decisions, d)
}

// Len cantidad de filas de datos.
func (r Report) Len() int {
	return len(r.Decisions)
}

// Rows devuelve las filas de datos (sin encabezado).
func (r Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		rows = append(rows, d.Row())
	}
	return rows
}
