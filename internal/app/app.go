// Package app implements the application layer for lithos.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/lithos/internal/adapters/graphql"
	"go.trai.ch/lithos/internal/adapters/state"
	"go.trai.ch/lithos/internal/adapters/watcher"
	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/lithos/internal/engine/queryrunner"
	"go.trai.ch/lithos/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	logger    ports.Logger
	reporter  ports.Reporter
	state     *state.Store
	output    ports.OutputStore
	tracer    ports.Tracer
	executors graphql.ExecutorFactory
	getwd     func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	reporter ports.Reporter,
	stateStore *state.Store,
	output ports.OutputStore,
	tracer ports.Tracer,
	executors graphql.ExecutorFactory,
) *App {
	return &App{
		loader:    loader,
		logger:    log,
		reporter:  reporter,
		state:     stateStore,
		output:    output,
		tracer:    tracer,
		executors: executors,
		getwd:     os.Getwd,
	}
}

// WithGetwd overrides working directory discovery. Used for testing.
func (a *App) WithGetwd(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Watch keeps the process alive and re-runs queries whose owning
	// components change.
	Watch bool
	// Parallelism overrides the configured job parallelism when positive.
	Parallelism int
}

// Run executes all configured queries once and, in watch mode, keeps
// re-running dirty queries until the context is cancelled.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return err
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = cfg.Parallelism
	}

	layout := domain.Layout{Root: cfg.Directory}
	cache := queryrunner.NewResultCache()
	runner := queryrunner.NewRunner(
		a.executors(cfg.Endpoint),
		a.reporter,
		a.state,
		a.output,
		a.tracer,
		cache,
		layout,
		queryrunner.Options{
			SlowQueryWarning: cfg.SlowQueryWarning,
			TrackChanges:     cfg.TrackChanges,
		},
	)
	sched := scheduler.New(runner, a.tracer)

	jobs := cfg.Jobs()
	summary, err := sched.Run(ctx, jobs, parallelism)
	if err != nil {
		return err
	}
	a.logSummary(summary)

	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, cfg, sched, jobs, parallelism)
}

func (a *App) logSummary(summary scheduler.Summary) {
	a.logger.Info(fmt.Sprintf(
		"ran %d queries (%d written, %d skipped)",
		summary.Total(), summary.Written, summary.Skipped,
	))
	if pending := a.state.PendingPageDataWrites(); len(pending) > 0 {
		a.logger.Info(fmt.Sprintf("%d page(s) awaiting page-data write", len(pending)))
	}
}

// watch re-runs queries whose owning components change until the context
// is cancelled.
func (a *App) watch(ctx context.Context, cfg *domain.SiteConfig, sched *scheduler.Scheduler, jobs []*domain.Job, parallelism int) error {
	registry := watcher.NewRegistry()
	jobsByID := make(map[string]*domain.Job, len(jobs))
	for _, job := range jobs {
		registry.Register(job.ComponentPath, job.ID)
		jobsByID[job.ID] = job
	}

	w := watcher.New(registry, a.logger, func(ids []string) {
		dirty := make([]*domain.Job, 0, len(ids))
		for _, id := range ids {
			if job, ok := jobsByID[id]; ok {
				dirty = append(dirty, job)
			}
		}
		summary, err := sched.Run(ctx, dirty, parallelism)
		if err != nil {
			a.logger.Error(err)
			return
		}
		a.logSummary(summary)
	})

	if err := w.Start(ctx, cfg.Directory); err != nil {
		return err
	}
	a.logger.Info("watching for component changes")

	<-ctx.Done()
	return w.Stop()
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All removes the whole build cache and page-data tree instead of
	// only the query outputs.
	All bool
}

// Clean removes generated query outputs from the site directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return err
	}
	layout := domain.Layout{Root: cfg.Directory}

	targets := []string{layout.StagingDir(), layout.StaticQueryDir()}
	if opts.All {
		targets = []string{layout.CacheDir(), layout.PublicDir()}
	}

	for _, target := range targets {
		if err := os.RemoveAll(target); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", target)
		}
	}
	a.logger.Info("cleaned build artifacts")
	return nil
}
