// Command seeder loads the demo dataset (one account, two profiles, three
// leads and two past searches) into PostgreSQL. Existing rows are skipped,
// so it is safe to run repeatedly.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        build the dataset without writing to DB
//	--migrate        apply pending migrations first
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/adapter/fixture"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/leadstatus"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/searchhistory"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/leadfinder-backend/internal/app"
	"github.com/heartmarshall/leadfinder-backend/internal/app/seeder"
	"github.com/heartmarshall/leadfinder-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "build the dataset without writing to DB")
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations first")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *phaseFlag != "" {
		seederCfg.Phases = *phaseFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *migrateFlag {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := seeder.Repos{
		Users:    user.New(pool),
		Leads:    lead.New(pool),
		Profiles: profile.New(pool),
		Statuses: leadstatus.New(pool),
		History:  searchhistory.New(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, *seederCfg)
	if err := pipeline.Run(ctx, fixture.DemoDataset(time.Now())); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully", slog.String("demo_email", fixture.DemoEmail))
}
