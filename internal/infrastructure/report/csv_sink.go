package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-status-reset/internal/application/stockreset"
	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/pkg/logger"
)

// Prefijo del archivo generado: reset-configurable-stock-status-<uuid>.csv
const FilePrefix = "reset-configurable-stock-status-"

var _ stockreset.ReportSink = (*CSVSink)(nil)

// CSVSink acumula las decisiones en memoria y las escribe como CSV en un directorio temporal.
type CSVSink struct {
	dir    string
	log    *logger.Logger
	report entity.Report
	newID  func() string
}

// NewCSVSink construye el sink. dir vacío usa os.TempDir().
func NewCSVSink(dir string, log *logger.Logger) *CSVSink {
	if dir == "" {
		dir = os.TempDir()
	}
	return &CSVSink{dir: dir, log: log, newID: uuid.NewString}
}

// Record agrega una fila al reporte.
func (s *CSVSink) Record(decision entity.ResetDecision) {
	s.report.Append(decision)
}

// Report devuelve el reporte acumulado.
func (s *CSVSink) Report() entity.Report {
	return s.report
}

// Flush escribe encabezado + filas y devuelve la ruta del archivo.
// Si falla registra el error y devuelve ""; la corrida sigue.
func (s *CSVSink) Flush() string {
	path := filepath.Join(s.dir, FilePrefix+s.newID()+".csv")
	if err := s.write(path); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("no se pudo escribir el reporte CSV")
		return ""
	}
	s.log.Info().Str("path", path).Int("rows", s.report.Len()).Msg("reporte CSV escrito")
	return path
}

func (s *CSVSink) write(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cerrar archivo: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(entity.ReportHeader); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	if err := w.WriteAll(s.report.Rows()); err != nil {
		return fmt.Errorf("escribir filas: %w", err)
	}
	return nil
}
