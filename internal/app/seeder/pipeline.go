package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/adapter/fixture"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// allPhases defines the canonical execution order. Later phases reference
// rows written by earlier ones.
var allPhases = []string{"users", "leads", "profiles", "statuses", "history"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline writes a fixture dataset phase by phase. Rows that already
// exist are skipped, so the pipeline can be run repeatedly.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repos:   repos,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run writes ds. If the config names phases, only those run, still in
// canonical order.
func (p *Pipeline) Run(ctx context.Context, ds fixture.Dataset) error {
	toRun, err := selectPhases(p.cfg.Phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx, ds.Users)
		case "leads":
			result = runEach(ctx, p, ds.Leads, func(ctx context.Context, l domain.Lead) error {
				_, err := p.repos.Leads.Create(ctx, &l)
				return err
			})
		case "profiles":
			result = runEach(ctx, p, ds.Profiles, func(ctx context.Context, pr domain.Profile) error {
				_, err := p.repos.Profiles.Create(ctx, &pr)
				return err
			})
		case "statuses":
			result = runEach(ctx, p, ds.Statuses, func(ctx context.Context, rec domain.LeadStatusRecord) error {
				_, err := p.repos.Statuses.Upsert(ctx, &rec)
				return err
			})
		case "history":
			result = runEach(ctx, p, ds.History, func(ctx context.Context, h domain.SearchHistory) error {
				_, err := p.repos.History.Create(ctx, &h)
				return err
			})
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runUsers creates each account then applies its stored preferences.
func (p *Pipeline) runUsers(ctx context.Context, users []domain.User) PhaseResult {
	return runEach(ctx, p, users, func(ctx context.Context, u domain.User) error {
		if _, err := p.repos.Users.Ensure(ctx, domain.AuthUser{ID: u.ID, Email: u.Email, Role: u.Role}); err != nil {
			return err
		}
		_, err := p.repos.Users.UpdatePreferences(ctx, &u)
		return err
	})
}

// runEach applies write to every item. Existing rows count as skipped;
// the first other error aborts the phase.
func runEach[T any](ctx context.Context, p *Pipeline, items []T, write func(context.Context, T) error) PhaseResult {
	var res PhaseResult
	if p.cfg.DryRun {
		res.Skipped = len(items)
		return res
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}

		err := write(ctx, item)
		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
		default:
			res.Errors++
			res.Err = err
			return res
		}
	}
	return res
}

func selectPhases(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return allPhases, nil
	}

	filter := make(map[string]bool)
	for _, ph := range domain.SplitList(raw) {
		known := false
		for _, p := range allPhases {
			if p == ph {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		filter[ph] = true
	}

	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}
