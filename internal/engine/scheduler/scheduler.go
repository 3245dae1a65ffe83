// Package scheduler runs batches of query jobs with bounded parallelism.
package scheduler

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/lithos/internal/engine/queryrunner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status represents the status of a query job.
type Status string

const (
	// StatusPending indicates the job is waiting to be executed.
	StatusPending Status = "Pending"
	// StatusRunning indicates the job is currently executing.
	StatusRunning Status = "Running"
	// StatusWritten indicates the job finished and its result was persisted.
	StatusWritten Status = "Written"
	// StatusSkipped indicates the job finished as a pure cache hit.
	StatusSkipped Status = "Skipped"
	// StatusFailed indicates the job failed.
	StatusFailed Status = "Failed"
)

// JobRunner executes a single query job.
type JobRunner interface {
	Run(ctx context.Context, job *domain.Job) (queryrunner.Outcome, error)
}

// Summary aggregates the outcomes of one batch.
type Summary struct {
	Written int
	Skipped int
}

// Total returns the number of jobs that completed.
func (s Summary) Total() int {
	return s.Written + s.Skipped
}

// Scheduler fans query jobs out over a bounded worker group. Jobs are
// independent; identities are unique within one batch, so no two workers
// ever contend on the same cache entry or output file.
type Scheduler struct {
	runner JobRunner
	tracer ports.Tracer

	mu     sync.RWMutex
	status map[string]Status
}

// New creates a Scheduler with the given job runner.
func New(runner JobRunner, tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		runner: runner,
		tracer: tracer,
		status: make(map[string]Status),
	}
}

// Status returns the last known status of the given query identity.
func (s *Scheduler) Status(id string) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[id]
}

func (s *Scheduler) updateStatus(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[id] = status
}

// Run executes all jobs with the given parallelism. Zero or negative
// parallelism means one worker per CPU. The first failing job cancels the
// remaining work and fails the batch.
func (s *Scheduler) Run(ctx context.Context, jobs []*domain.Job, parallelism int) (Summary, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
		s.updateStatus(job.ID, StatusPending)
	}
	s.tracer.EmitPlan(ctx, ids)

	var (
		summaryMu sync.Mutex
		summary   Summary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, job := range jobs {
		g.Go(func() error {
			s.updateStatus(job.ID, StatusRunning)

			outcome, err := s.runner.Run(ctx, job)
			if err != nil {
				s.updateStatus(job.ID, StatusFailed)
				return err
			}

			summaryMu.Lock()
			if outcome == queryrunner.OutcomeWritten {
				summary.Written++
			} else {
				summary.Skipped++
			}
			summaryMu.Unlock()

			if outcome == queryrunner.OutcomeWritten {
				s.updateStatus(job.ID, StatusWritten)
			} else {
				s.updateStatus(job.ID, StatusSkipped)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	return summary, nil
}
