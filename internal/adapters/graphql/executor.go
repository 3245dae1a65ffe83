// Package graphql implements the query executor against an HTTP GraphQL
// engine.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.QueryExecutor = (*Executor)(nil)

// Executor executes queries against a GraphQL engine over HTTP. Long
// queries are allowed; cancellation comes from the request context, not a
// client timeout (the slow-query monitor only warns).
type Executor struct {
	endpoint string
	client   *http.Client
}

// NewExecutor creates an Executor for the given engine endpoint.
func NewExecutor(endpoint string) *Executor {
	return &Executor{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// request is the wire form of one engine call.
type request struct {
	Query      string         `json:"query"`
	Variables  map[string]any `json:"variables,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Execute posts the query to the engine and decodes the structured
// result. The query identity travels in the request extensions for
// engine-side trace correlation.
func (e *Executor) Execute(ctx context.Context, query string, vars map[string]any, opts ports.ExecOptions) (*domain.ExecutionResult, error) {
	payload := request{
		Query:     query,
		Variables: vars,
	}
	if opts.QueryName != "" {
		payload.Extensions = map[string]any{"queryName": opts.QueryName}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineRequestFailed.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineRequestFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineRequestFailed.Error())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(domain.ErrEngineRequestFailed, "status", resp.StatusCode)
	}

	var result domain.ExecutionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineDecodeFailed.Error())
	}
	return &result, nil
}
