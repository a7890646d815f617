package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/leadfinder-backend/internal/config"
	"github.com/heartmarshall/leadfinder-backend/internal/metrics"
	"github.com/heartmarshall/leadfinder-backend/internal/transport/middleware"
)

// Options tunes Run.
type Options struct {
	// Migrate applies pending migrations before serving, in addition to
	// database.migrate_on_start.
	Migrate bool
}

// App is a fully wired application ready to serve.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	ds      *dataSource
	handler http.Handler
	limiter *middleware.RateLimiter
}

// New wires the data source, services and HTTP handler. The caller must
// Close the App.
func New(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (*App, error) {
	ds, err := openDataSource(ctx, cfg, opts.Migrate, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	handler, limiter := newRouter(cfg, newServices(cfg, ds, m, logger), ds.checks, m, logger)

	return &App{
		cfg:     cfg,
		log:     logger,
		ds:      ds,
		handler: handler,
		limiter: limiter,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases the data source and background workers.
func (a *App) Close() {
	a.limiter.Stop()
	a.ds.Close()
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:           a.handler,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Run is the application entry point. It loads configuration, wires the
// application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("data_source", cfg.DataSource.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, opts, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
