package graphql_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/adapters/graphql"
	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
)

func TestExecutor_Execute_Success(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"site":{"title":"lithos"}}}`))
	}))
	defer srv.Close()

	e := graphql.NewExecutor(srv.URL)
	result, err := e.Execute(
		context.Background(),
		"query Site { site { title } }",
		map[string]any{"limit": 10},
		ports.ExecOptions{QueryName: "sq--site-title"},
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"site": map[string]any{"title": "lithos"}}, result.Data)
	assert.Empty(t, result.Errors)

	// The wire request carries query, variables and the identity extension.
	assert.Equal(t, "query Site { site { title } }", captured["query"])
	assert.Equal(t, map[string]any{"limit": float64(10)}, captured["variables"])
	assert.Equal(t, map[string]any{"queryName": "sq--site-title"}, captured["extensions"])
}

func TestExecutor_Execute_StructuredErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"bodyy\"","locations":[{"line":4,"column":5}]}]}`))
	}))
	defer srv.Close()

	e := graphql.NewExecutor(srv.URL)
	result, err := e.Execute(context.Background(), "{ bodyy }", nil, ports.ExecOptions{})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Cannot query field "bodyy"`, result.Errors[0].Message)
	require.Len(t, result.Errors[0].Locations, 1)
	assert.Equal(t, domain.ErrorLocation{Line: 4, Column: 5}, result.Errors[0].Locations[0])
}

func TestExecutor_Execute_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	e := graphql.NewExecutor(srv.URL)
	_, err := e.Execute(context.Background(), "{ site }", nil, ports.ExecOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEngineRequestFailed)
}

func TestExecutor_Execute_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	e := graphql.NewExecutor(srv.URL)
	_, err := e.Execute(context.Background(), "{ site }", nil, ports.ExecOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEngineDecodeFailed)
}

func TestExecutor_Execute_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := graphql.NewExecutor(srv.URL)
	_, err := e.Execute(ctx, "{ site }", nil, ports.ExecOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEngineRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_Execute_NoExtensionsWithoutName(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	e := graphql.NewExecutor(srv.URL)
	_, err := e.Execute(context.Background(), "{ site }", nil, ports.ExecOptions{})
	require.NoError(t, err)
	assert.NotContains(t, captured, "extensions")
}
