package stockreset

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/domain/repository"
	"github.com/jhoicas/stock-status-reset/pkg/logger"
)

// Options parámetros de la corrida que no dependen del modo.
type Options struct {
	ProductType     string
	SafetyPause     time.Duration
	ContinueOnError bool
}

// Summary conteos de la corrida.
type Summary struct {
	Scanned    int
	NeedsReset int
	Updated    int
	Failed     int
}

// Result salida de Run: el reporte acumulado, los conteos y la ruta del CSV (solo modo reporte).
type Result struct {
	Report     entity.Report
	Summary    Summary
	ReportPath string
}

// Orchestrator recorre los productos compuestos en orden y aplica el motor a cada uno.
type Orchestrator struct {
	catalog  repository.CatalogRepository
	engine   *Engine
	sink     ReportSink
	progress ProgressLogger
	log      *logger.Logger
	opts     Options
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewOrchestrator construye el orquestador con sus colaboradores explícitos.
func NewOrchestrator(
	catalog repository.CatalogRepository,
	engine *Engine,
	sink ReportSink,
	progress ProgressLogger,
	log *logger.Logger,
	opts Options,
) *Orchestrator {
	if opts.ProductType == "" {
		opts.ProductType = entity.ProductTypeConfigurable
	}
	return &Orchestrator{
		catalog:  catalog,
		engine:   engine,
		sink:     sink,
		progress: progress,
		log:      log,
		opts:     opts,
		sleep:    sleepContext,
	}
}

// Run ejecuta una corrida completa. En modo fail-fast (por defecto) el primer error de un puerto
// aborta la corrida y se devuelve; con ContinueOnError el producto se marca como Error y se sigue.
func (o *Orchestrator) Run(ctx context.Context, mode RunMode, scopeID int) (*Result, error) {
	if mode != ModeApply {
		o.progress.Logf("Running in %s mode; no stock status will be changed", mode)
	}
	if o.opts.SafetyPause > 0 {
		o.progress.Logf("Starting in %s (Ctrl+C to abort)", o.opts.SafetyPause)
		if err := o.sleep(ctx, o.opts.SafetyPause); err != nil {
			return nil, fmt.Errorf("pausa de seguridad: %w", err)
		}
	}

	products, err := o.catalog.ListComposites(ctx, repository.ProductFilter{TypeID: o.opts.ProductType})
	if err != nil {
		return nil, fmt.Errorf("listar productos compuestos: %w", err)
	}
	o.progress.Logf("Found %d %s products", len(products), o.opts.ProductType)
	o.log.Info().
		Int("products", len(products)).
		Int("scope_id", scopeID).
		Str("mode", mode.String()).
		Msg("inicio de escaneo")

	var summary Summary
	for _, product := range products {
		o.progress.Logf("Checking %s", product.SKU)

		decision, err := o.reconcile(ctx, mode, product, scopeID, &summary)
		if err != nil {
			// Una cancelación (SIGINT/SIGTERM) corta la corrida aun con ContinueOnError.
			if !o.opts.ContinueOnError || ctx.Err() != nil {
				return nil, err
			}
			o.log.Error().Err(err).Str("sku", product.SKU).Msg("producto omitido por error")
			o.progress.Logf("Error checking %s: %v", product.SKU, err)
			decision = entity.ResetDecision{SKU: product.SKU, Name: product.Name, Err: err}
			summary.Failed++
		}
		summary.Scanned++
		o.sink.Record(decision)
	}

	result := &Result{Report: o.sink.Report(), Summary: summary}
	if mode == ModeReport {
		if path := o.sink.Flush(); path != "" {
			result.ReportPath = path
			o.progress.Logf("Report written to %s", path)
		}
	}

	o.progress.Logf("Scanned %d, needing reset %d, updated %d, failed %d",
		summary.Scanned, summary.NeedsReset, summary.Updated, summary.Failed)
	o.progress.Logf("Done")
	return result, nil
}

// reconcile evalúa un producto y, si corresponde y el modo lo permite, aplica la corrección.
func (o *Orchestrator) reconcile(ctx context.Context, mode RunMode, product *entity.CompositeProduct, scopeID int, summary *Summary) (entity.ResetDecision, error) {
	decision, err := o.engine.Evaluate(ctx, product, scopeID)
	if err != nil {
		return decision, err
	}
	if !decision.NeedsReset {
		return decision, nil
	}
	summary.NeedsReset++
	if !mode.Mutates() {
		return decision, nil
	}
	if err := o.engine.Apply(ctx, product, scopeID); err != nil {
		return decision, err
	}
	summary.Updated++
	o.progress.Logf("Updated %s: stock status set to %s", product.SKU, entity.InStock)
	return decision, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
