// Command server runs the LeadFinder HTTP API.
//
// Flags:
//
//	--migrate  apply pending database migrations before serving
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/leadfinder-backend/internal/app"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{Migrate: *migrate}); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
