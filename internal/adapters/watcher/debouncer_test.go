package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu       sync.Mutex
			calls    int
			received []string
		)
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			received = paths
		})

		// Editor save bursts produce repeated events for the same file.
		d.Add("/site/src/templates/blog-post.js")
		d.Add("/site/src/templates/blog-post.js")
		d.Add("/site/src/components/header.js")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, calls)
		sort.Strings(received)
		assert.Equal(t, []string{
			"/site/src/components/header.js",
			"/site/src/templates/blog-post.js",
		}, received)
	})
}

func TestDebouncer_WindowResetsOnNewEvents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls int
		)
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			calls++
		})

		d.Add("/site/src/a.js")
		time.Sleep(60 * time.Millisecond)
		// Still inside the window: this event extends it.
		d.Add("/site/src/b.js")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 0, calls, "window should have been extended")
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu       sync.Mutex
			calls    int
			received []string
		)
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			received = paths
		})

		d.Add("/site/src/a.js")
		d.Flush()
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, calls)
		assert.Equal(t, []string{"/site/src/a.js"}, received)
	})
}

func TestDebouncer_FlushWithoutPending(t *testing.T) {
	d := watcher.NewDebouncer(time.Hour, func([]string) {
		t.Fatal("callback must not fire with no pending events")
	})
	d.Flush()
}
