package queryrunner_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/engine/queryrunner"
)

func TestResultCache_GetMiss(t *testing.T) {
	t.Parallel()

	c := queryrunner.NewResultCache()

	hash, ok := c.Get("/about")
	assert.False(t, ok)
	assert.Empty(t, hash)
	assert.Zero(t, c.Len())
}

func TestResultCache_PutOverwrites(t *testing.T) {
	t.Parallel()

	c := queryrunner.NewResultCache()

	c.Put("/about", "aaaa")
	c.Put("/about", "bbbb")

	hash, ok := c.Get("/about")
	require.True(t, ok)
	assert.Equal(t, "bbbb", hash)
	assert.Equal(t, 1, c.Len())
}

func TestResultCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := queryrunner.NewResultCache()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("/page-%d", i)
			c.Put(id, "hash")
			_, _ = c.Get(id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, c.Len())
}
