// Command cleanup removes search history entries older than the configured
// retention period unless they are saved or marked favorite. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/searchhistory"
	"github.com/heartmarshall/leadfinder-backend/internal/app"
	"github.com/heartmarshall/leadfinder-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.DataSource.IsFixture() {
		logger.Info("fixture data source selected, nothing to clean")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	historyRepo := searchhistory.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Search.HistoryRetentionDays)

	deleted, err := historyRepo.DeleteUnsavedBefore(ctx, threshold)
	if err != nil {
		logger.Error("history cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("history cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
