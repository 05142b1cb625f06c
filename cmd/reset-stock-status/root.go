package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-status-reset/internal/application/stockreset"
	"github.com/jhoicas/stock-status-reset/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-status-reset/internal/infrastructure/report"
	"github.com/jhoicas/stock-status-reset/pkg/config"
	"github.com/jhoicas/stock-status-reset/pkg/logger"
	"github.com/jhoicas/stock-status-reset/pkg/progress"
)

// newRootCmd comando único. El parseo de flags está desactivado: el último argumento crudo
// llega tal cual al resolvedor de modo.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "reset-stock-status [--dry-run | --report-mode]",
		Short:              "Corrige el estado de stock de productos configurables según sus hijos",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stockreset.WantsHelp(args) {
				return cmd.Help()
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			return run(cmd, cfg, args)
		},
	}
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	ctx := cmd.Context()

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   cmd.ErrOrStderr(),
	})

	mode := stockreset.ResolveMode(args)
	if flag, ok := stockreset.UnrecognizedFlag(args); ok {
		log.Warn().Str("arg", flag).Msg("argumento no reconocido, se ejecuta en modo APPLY")
	}
	log.Info().
		Str("app", cfg.App.Name).
		Str("mode", mode.String()).
		Int("scope_id", cfg.Reset.ScopeID).
		Msg("iniciando corrida")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)
	stockRepo := postgres.NewStockStatusRepository(pool)
	engine := stockreset.NewEngine(catalogRepo, stockRepo)
	sink := report.NewCSVSink(cfg.Reset.ReportDir, log)

	orchestrator := stockreset.NewOrchestrator(
		catalogRepo, engine, sink, progress.New(os.Stdout), log,
		stockreset.Options{
			ProductType:     cfg.Reset.ProductType,
			SafetyPause:     cfg.Reset.SafetyPause,
			ContinueOnError: cfg.Reset.ContinueOnError,
		},
	)

	res, err := orchestrator.Run(ctx, mode, cfg.Reset.ScopeID)
	if err != nil {
		return err
	}
	if res.Summary.Failed > 0 {
		log.Warn().Int("failed", res.Summary.Failed).Msg("corrida terminada con productos fallidos")
	}
	return nil
}
