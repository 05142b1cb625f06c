package stockreset

import (
	"strings"

	"golang.org/x/text/cases"
)

// RunMode modo de ejecución de la corrida; se resuelve una vez al inicio.
type RunMode int

const (
	ModeApply  RunMode = iota // corrige y persiste
	ModeDryRun                // solo evalúa
	ModeReport                // evalúa y escribe CSV; no persiste
)

// Argumentos que seleccionan el modo (comparación sin distinguir mayúsculas).
const (
	ArgDryRun     = "--dry-run"
	ArgReportMode = "--report-mode"
)

// String nombre del modo para el banner.
func (m RunMode) String() string {
	switch m {
	case ModeDryRun:
		return "DRY RUN"
	case ModeReport:
		return "REPORT"
	default:
		return "APPLY"
	}
}

// Mutates indica si el modo puede persistir cambios. REPORT implica semántica de dry-run.
func (m RunMode) Mutates() bool {
	return m == ModeApply
}

// ResolveMode deriva el modo a partir del último argumento de invocación.
// Cualquier otro valor (o ninguno) es APPLY; no se rechazan argumentos desconocidos.
func ResolveMode(args []string) RunMode {
	if len(args) == 0 {
		return ModeApply
	}
	last := args[len(args)-1]
	switch {
	case equalFold(last, ArgReportMode):
		return ModeReport
	case equalFold(last, ArgDryRun):
		return ModeDryRun
	default:
		return ModeApply
	}
}

// UnrecognizedFlag devuelve el último argumento si parece un flag (-x, --x) pero no selecciona ningún modo.
func UnrecognizedFlag(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	last := args[len(args)-1]
	if !strings.HasPrefix(last, "-") || equalFold(last, ArgReportMode) || equalFold(last, ArgDryRun) {
		return "", false
	}
	return last, true
}

// WantsHelp indica si algún argumento pide la ayuda (-h, --help). En ese caso no se escanea.
func WantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || equalFold(a, "--help") {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
