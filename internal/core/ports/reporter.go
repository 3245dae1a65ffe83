package ports

import "go.trai.ch/lithos/internal/core/domain"

// Reporter is the boundary to the build's diagnostics surface.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Warn emits an advisory warning. It never halts the build.
	Warn(msg string)

	// PanicOnBuild reports a batch of enriched query errors through the
	// build-fatal path in one consolidated report. The caller aborts the
	// build afterwards.
	PanicOnBuild(errs []domain.EnrichedQueryError)
}
