// Command run-analyzer runs the analysis once and waits for Enter before
// exiting, so the transcript stays visible when launched from a desktop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/nepal-data-analyzer/internal/app"
	"github.com/couchcryptid/nepal-data-analyzer/internal/config"
	"github.com/couchcryptid/nepal-data-analyzer/internal/observability"
	"github.com/fatih/color"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Starting Nepalese Data Analyzer...")
	fmt.Println("This will analyze earthquake, temperature, and exam data.")

	a := app.New(cfg, logger, metrics, os.Stdout, !color.NoColor)
	_, runErr := a.Run(ctx)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		logger.Error("analysis failed", "error", runErr)
	}

	fmt.Println("\nPress Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n') //nolint:errcheck // any input or EOF exits

	a.Close()
	if runErr != nil {
		os.Exit(1)
	}
}
