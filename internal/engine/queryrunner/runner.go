// Package queryrunner executes data queries, deduplicates their results
// against previously persisted output, and decides whether a result must
// be written and which downstream notifications fire.
package queryrunner

import (
	"context"
	"time"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome reports what one run did with a query's result.
type Outcome uint8

const (
	// OutcomeSkipped means the result matched the cached hash and the
	// output was already on disk; no filesystem write occurred.
	OutcomeSkipped Outcome = iota
	// OutcomeWritten means the serialized result was persisted.
	OutcomeWritten
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeWritten {
		return "written"
	}
	return "skipped"
}

// Options configures a Runner.
type Options struct {
	// SlowQueryWarning overrides the delay before a still-running query
	// is reported. Zero keeps the default.
	SlowQueryWarning time.Duration
	// TrackChanges enables hash-change notifications for page queries.
	TrackChanges bool
}

// Runner runs individual query jobs through the full pipeline: execution,
// error aggregation, context sanitization, hashing, the write-skip
// decision, persistence and state notification.
type Runner struct {
	executor ports.QueryExecutor
	reporter ports.Reporter
	state    ports.StateStore
	output   ports.OutputStore
	tracer   ports.Tracer
	cache    *ResultCache
	layout   domain.Layout

	slowWarning  time.Duration
	trackChanges bool
}

// NewRunner creates a Runner for one build session. The cache lives for
// the session and must be shared across all jobs of the build.
func NewRunner(
	executor ports.QueryExecutor,
	reporter ports.Reporter,
	state ports.StateStore,
	output ports.OutputStore,
	tracer ports.Tracer,
	cache *ResultCache,
	layout domain.Layout,
	opts Options,
) *Runner {
	slowWarning := opts.SlowQueryWarning
	if slowWarning <= 0 {
		slowWarning = domain.DefaultSlowQueryWarning
	}
	return &Runner{
		executor:     executor,
		reporter:     reporter,
		state:        state,
		output:       output,
		tracer:       tracer,
		cache:        cache,
		layout:       layout,
		slowWarning:  slowWarning,
		trackChanges: opts.TrackChanges,
	}
}

// Run executes one query job end to end. Engine errors are reported as a
// consolidated batch and returned as ErrQueryExecutionFailed; write
// failures propagate without notification.
func (r *Runner) Run(ctx context.Context, job *domain.Job) (Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "query "+job.ID)
	defer span.End()
	span.SetAttribute("query.id", job.ID)
	span.SetAttribute("query.page", job.IsPage)

	result, err := r.execute(ctx, job)
	if err != nil {
		span.RecordError(err)
		return OutcomeSkipped, err
	}

	if len(result.Errors) > 0 {
		r.reportErrors(job, result.Errors)
		err := zerr.With(domain.ErrQueryExecutionFailed, "path", job.ID)
		span.RecordError(err)
		return OutcomeSkipped, err
	}

	if job.IsPage && job.PageContext != nil {
		result.PageContext = job.PageContext.Public()
	}

	data, err := canonicalize(result)
	if err != nil {
		span.RecordError(err)
		return OutcomeSkipped, err
	}
	hash := digest(data)

	outcome, err := r.persist(job, data, hash)
	if err != nil {
		span.RecordError(err)
		return OutcomeSkipped, err
	}
	span.SetAttribute("query.outcome", outcome.String())

	r.notify(job, hash)
	return outcome, nil
}

// execute runs the query against the engine with the slow-query monitor
// racing alongside. An empty query is a no-op producing an empty result.
func (r *Runner) execute(ctx context.Context, job *domain.Job) (*domain.ExecutionResult, error) {
	if job.Query == "" {
		return &domain.ExecutionResult{}, nil
	}

	done := make(chan struct{})
	defer close(done)
	go r.watchSlow(ctx, job, done)

	result, err := r.executor.Execute(ctx, job.Query, job.Context, ports.ExecOptions{QueryName: job.ID})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrQueryExecutionFailed.Error()), "path", job.ID)
	}
	if result == nil {
		result = &domain.ExecutionResult{}
	}
	return result, nil
}

// reportErrors enriches every engine error with diagnostic context and
// hands the batch to the build-fatal reporting path in one call, so the
// user sees the full picture instead of fragmented per-error noise.
func (r *Runner) reportErrors(job *domain.Job, errs []domain.QueryError) {
	enriched := make([]domain.EnrichedQueryError, 0, len(errs))
	for _, qe := range errs {
		if qe.Message == "" && len(qe.Locations) == 0 {
			continue
		}

		e := domain.EnrichedQueryError{
			Message:   qe.Message,
			CodeFrame: codeFrameUnavailable,
			FilePath:  job.ComponentPath,
			Plugin:    job.PluginCreatorID,
		}
		if e.Plugin == "" {
			e.Plugin = "none"
		}
		if len(qe.Locations) > 0 {
			e.CodeFrame = renderCodeFrame(job.Query, &qe.Locations[0])
		}
		if job.IsPage && job.PageContext != nil {
			e.URLPath = job.PageContext.Path
			if len(job.PageContext.Context) > 0 {
				e.Context = job.PageContext.Context
			}
		}
		enriched = append(enriched, e)
	}
	r.reporter.PanicOnBuild(enriched)
}

// persist applies the write-skip decision and routes the result to its
// output layout. A write is required when the hash changed, or for page
// queries whose built page-data file is missing on disk (the in-memory
// cache is cold after a restart). Non-page outputs are content-addressed
// and self-healing, so they get no existence check.
func (r *Runner) persist(job *domain.Job, data []byte, hash string) (Outcome, error) {
	cached, ok := r.cache.Get(job.ID)
	unchanged := ok && cached == hash
	if unchanged && (!job.IsPage || r.output.PageDataExists(r.layout.PublicDir(), job.ID)) {
		return OutcomeSkipped, nil
	}

	var path string
	if job.IsPage {
		path = r.layout.PageResultPath(job.ID)
	} else {
		path = r.layout.StaticResultPath(job.Hash)
	}

	if err := r.output.Write(path, data); err != nil {
		return OutcomeSkipped, zerr.With(err, "path", path)
	}

	if job.IsPage {
		r.state.Dispatch(domain.PendingPageDataWrite{Path: job.ID})
	}

	// Update even when only the file was missing, so later checks stay in memory.
	r.cache.Put(job.ID, hash)
	return OutcomeWritten, nil
}

// notify always runs after the decision, even on a pure cache hit.
func (r *Runner) notify(job *domain.Job, hash string) {
	r.state.Dispatch(domain.QueryRun{
		Path:          job.ID,
		ComponentPath: job.ComponentPath,
		IsPage:        job.IsPage,
	})
	if r.trackChanges && job.IsPage {
		r.state.Dispatch(domain.SetPageData{ID: job.ID, ResultHash: hash})
	}
}
