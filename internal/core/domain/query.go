// Package domain contains the core types for the query pipeline.
package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Job describes one query execution request. It is immutable input,
// constructed by the caller once per execution.
type Job struct {
	// ID is the stable identity of the query within the build. For page
	// queries this is the page path. It keys the result cache and the
	// staging output filename.
	ID string
	// Hash is the content hash of the query text. Non-page results are
	// addressed by it on disk.
	Hash string
	// Query is the query source. Empty means "no-op, produce an empty result".
	Query string
	// ComponentPath points at the template that owns this query. Diagnostic only.
	ComponentPath string
	// Context carries the execution variables handed to the engine. For
	// page queries it is derived from PageContext.
	Context map[string]any
	// PageContext is set for page queries only.
	PageContext *PageContext
	// IsPage selects page vs. non-page handling throughout the pipeline.
	IsPage bool
	// PluginCreatorID identifies the plugin that registered this query.
	PluginCreatorID string
}

// ExecutionResult is the engine's response to one query. The runner adds
// PageContext for page queries after sanitization; the engine never sets it.
type ExecutionResult struct {
	Errors      []QueryError   `json:"errors,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	PageContext map[string]any `json:"pageContext,omitempty"`
}

// QueryError is one structured error reported by the engine.
type QueryError struct {
	Message   string          `json:"message"`
	Locations []ErrorLocation `json:"locations,omitempty"`
	Path      []any           `json:"path,omitempty"`
}

// ErrorLocation is a 1-based position in the query source.
type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// EnrichedQueryError is a QueryError with build diagnostic context
// attached, ready for the consolidated fatal report.
type EnrichedQueryError struct {
	Message   string
	CodeFrame string
	FilePath  string
	URLPath   string
	Context   map[string]any
	Plugin    string
}

// HashQueryText computes the content hash used to address non-page
// results on disk.
func HashQueryText(query string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(query))
}
