package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/core/domain"
)

func TestHashQueryText(t *testing.T) {
	t.Parallel()

	h := domain.HashQueryText("{ site { title } }")

	assert.Len(t, h, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", h)

	// Stable for equal input, distinct for different input.
	assert.Equal(t, h, domain.HashQueryText("{ site { title } }"))
	assert.NotEqual(t, h, domain.HashQueryText("{ site { author } }"))
}

func TestExecutionResult_EmptyMarshalsToEmptyObject(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&domain.ExecutionResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestExecutionResult_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	result := &domain.ExecutionResult{
		Data: map[string]any{"site": map[string]any{"title": "lithos"}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "pageContext")
}
