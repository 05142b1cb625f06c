// reset-stock-status corrige el estado de stock agregado de los productos configurables
// cuando algún hijo tiene cantidad disponible pero el padre figura sin stock.
//
// Uso: reset-stock-status [--dry-run | --report-mode]
// Solo cuenta el último argumento; sin ninguno de los dos se aplican los cambios.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
