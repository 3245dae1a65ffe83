// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/lithos/internal/core/domain"
)

// ExecOptions carries per-execution engine options.
type ExecOptions struct {
	// QueryName correlates engine-side traces with the query identity.
	QueryName string
}

// QueryExecutor is the boundary to the external query execution engine.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type QueryExecutor interface {
	// Execute runs one query with the given variables. A non-nil result
	// may still carry engine errors; transport failures are returned as
	// an error.
	Execute(ctx context.Context, query string, vars map[string]any, opts ExecOptions) (*domain.ExecutionResult, error)
}
