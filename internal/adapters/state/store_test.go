package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/adapters/state"
	"go.trai.ch/lithos/internal/core/domain"
)

func TestStore_RanQueries_SortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	s := state.NewStore()

	s.Dispatch(domain.QueryRun{Path: "/b", ComponentPath: "src/b.js", IsPage: true})
	s.Dispatch(domain.QueryRun{Path: "/a", ComponentPath: "src/a.js", IsPage: true})
	// A re-run of the same query replaces the earlier record.
	s.Dispatch(domain.QueryRun{Path: "/b", ComponentPath: "src/b2.js", IsPage: true})

	runs := s.RanQueries()
	require.Len(t, runs, 2)
	assert.Equal(t, "/a", runs[0].Path)
	assert.Equal(t, "/b", runs[1].Path)
	assert.Equal(t, "src/b2.js", runs[1].ComponentPath)
}

func TestStore_PendingPageDataWrites(t *testing.T) {
	t.Parallel()

	s := state.NewStore()

	s.Dispatch(domain.PendingPageDataWrite{Path: "/z"})
	s.Dispatch(domain.PendingPageDataWrite{Path: "/a"})
	s.Dispatch(domain.PendingPageDataWrite{Path: "/a"})

	assert.Equal(t, []string{"/a", "/z"}, s.PendingPageDataWrites())

	s.ClearPendingPageDataWrite("/a")
	assert.Equal(t, []string{"/z"}, s.PendingPageDataWrites())

	// Clearing an unknown path is a no-op.
	s.ClearPendingPageDataWrite("/never")
	assert.Equal(t, []string{"/z"}, s.PendingPageDataWrites())
}

func TestStore_PageDataHash(t *testing.T) {
	t.Parallel()

	s := state.NewStore()

	_, ok := s.PageDataHash("/about")
	assert.False(t, ok)

	s.Dispatch(domain.SetPageData{ID: "/about", ResultHash: "aaaa"})
	s.Dispatch(domain.SetPageData{ID: "/about", ResultHash: "bbbb"})

	hash, ok := s.PageDataHash("/about")
	require.True(t, ok)
	assert.Equal(t, "bbbb", hash)
}

func TestStore_EmptyViews(t *testing.T) {
	t.Parallel()

	s := state.NewStore()
	assert.Empty(t, s.RanQueries())
	assert.Empty(t, s.PendingPageDataWrites())
}
