package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/adapter/fixture"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/leadstatus"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/searchhistory"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/redis"
	"github.com/heartmarshall/leadfinder-backend/internal/adapter/supabase"
	"github.com/heartmarshall/leadfinder-backend/internal/auth"
	"github.com/heartmarshall/leadfinder-backend/internal/config"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/transport/rest"
)

// fixtureTokenTTL is the access token lifetime of the fixture identity
// provider, matching the hosted service default.
const fixtureTokenTTL = time.Hour

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Ensure(ctx context.Context, au domain.AuthUser) (*domain.User, error)
	UpdatePreferences(ctx context.Context, u *domain.User) (*domain.User, error)
}

type profileStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
	ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error
	SetDefault(ctx context.Context, userID, profileID uuid.UUID) error
	PromoteMostRecent(ctx context.Context, userID, excludeID uuid.UUID) (bool, error)
	TouchLastUsed(ctx context.Context, userID, profileID uuid.UUID) error
}

type leadStore interface {
	Search(ctx context.Context, criteria domain.LeadCriteria) ([]domain.Lead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.LeadStatus) error
}

type statusStore interface {
	Upsert(ctx context.Context, rec *domain.LeadStatusRecord) (*domain.LeadStatusRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LeadStatusRecord, error)
}

type historyStore interface {
	Create(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error)
	UpdateFlags(ctx context.Context, userID, id uuid.UUID, upd domain.SearchHistoryUpdate) (*domain.SearchHistory, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type identityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, redirectTo, codeChallenge string) (*domain.Session, error)
	ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error)
}

type tokenVerifier interface {
	Verify(token string) (domain.AuthUser, error)
}

type resultStore interface {
	Put(ctx context.Context, userID uuid.UUID, leads []domain.Lead) error
	Get(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
}

// dataSource is the set of stores selected at startup.
type dataSource struct {
	users    userStore
	profiles profileStore
	leads    leadStore
	statuses statusStore
	history  historyStore
	tx       txRunner
	provider identityProvider
	// verifier is nil when tokens are validated by the provider.
	verifier tokenVerifier
	results  resultStore
	checks   map[string]rest.Pinger
	closers  []func()
}

func (ds *dataSource) Close() {
	for i := len(ds.closers) - 1; i >= 0; i-- {
		ds.closers[i]()
	}
}

// openDataSource builds the stores for the configured mode. The caller
// must Close the result.
func openDataSource(ctx context.Context, cfg *config.Config, migrate bool, logger *slog.Logger) (*dataSource, error) {
	var (
		ds  *dataSource
		err error
	)
	if cfg.DataSource.IsFixture() {
		ds, err = openFixture(cfg, logger)
	} else {
		ds, err = openLive(ctx, cfg, migrate, logger)
	}
	if err != nil {
		return nil, err
	}

	if err := openResultStore(ctx, cfg, ds, logger); err != nil {
		ds.Close()
		return nil, err
	}
	return ds, nil
}

func openLive(ctx context.Context, cfg *config.Config, migrate bool, logger *slog.Logger) (*dataSource, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if migrate || cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	ds := &dataSource{
		users:    user.New(pool),
		profiles: profile.New(pool),
		leads:    lead.New(pool),
		statuses: leadstatus.New(pool),
		history:  searchhistory.New(pool),
		tx:       postgres.NewTxManager(pool),
		provider: supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout, logger),
		checks:   map[string]rest.Pinger{"database": pool},
		closers:  []func(){pool.Close},
	}
	if cfg.Supabase.JWTSecret != "" {
		ds.verifier = auth.NewTokenManager(cfg.Supabase.JWTSecret, 0)
	}

	logger.Info("data source ready", slog.String("mode", config.DataSourceLive))
	return ds, nil
}

func openFixture(cfg *config.Config, logger *slog.Logger) (*dataSource, error) {
	tokens := auth.NewTokenManager(cfg.Supabase.JWTSecret, fixtureTokenTTL)
	provider, err := fixture.NewIdentityProvider(tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("fixture identity provider: %w", err)
	}

	store := fixture.NewStore(fixture.DemoDataset(time.Now()))
	ds := &dataSource{
		users:    store.Users(),
		profiles: store.Profiles(),
		leads:    store.Leads(),
		statuses: store.LeadStatuses(),
		history:  store.History(),
		tx:       store,
		provider: provider,
		verifier: tokens,
		checks:   map[string]rest.Pinger{},
	}

	logger.Info("data source ready",
		slog.String("mode", config.DataSourceFixture),
		slog.String("demo_email", fixture.DemoEmail))
	return ds, nil
}

// openResultStore selects Redis when an address is configured and the
// bounded in-process store otherwise.
func openResultStore(ctx context.Context, cfg *config.Config, ds *dataSource, logger *slog.Logger) error {
	if cfg.Redis.Addr == "" {
		ds.results = redis.NewMemoryStore(cfg.Search.ResultStoreSize, cfg.Search.ResultTTL)
		return nil
	}

	client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	store := redis.NewStore(client, cfg.Search.ResultTTL)
	ds.results = store
	ds.checks["result_store"] = store
	ds.closers = append(ds.closers, func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	})
	return nil
}
