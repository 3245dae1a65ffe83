package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/adapters/logger"
	"go.trai.ch/lithos/internal/adapters/watcher"
)

func TestWatcher_ReportsDirtyQueries(t *testing.T) {
	root := t.TempDir()
	componentDir := filepath.Join(root, "src", "templates")
	require.NoError(t, os.MkdirAll(componentDir, 0o750))
	component := filepath.Join(componentDir, "blog-post.js")
	require.NoError(t, os.WriteFile(component, []byte("// v1"), 0o644))

	registry := watcher.NewRegistry()
	registry.Register(component, "/blog/hello")
	registry.Register(component, "/blog/world")

	dirty := make(chan []string, 1)
	w := watcher.New(registry, logger.New(), func(ids []string) {
		select {
		case dirty <- ids:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(component, []byte("// v2"), 0o644))

	select {
	case ids := <-dirty:
		assert.Equal(t, []string{"/blog/hello", "/blog/world"}, ids)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for dirty notification")
	}
}

func TestWatcher_IgnoresUnregisteredFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	registry := watcher.NewRegistry()
	dirty := make(chan []string, 1)
	w := watcher.New(registry, logger.New(), func(ids []string) {
		dirty <- ids
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("y"), 0o644))

	select {
	case ids := <-dirty:
		t.Fatalf("unexpected dirty notification: %v", ids)
	case <-time.After(time.Second):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w := watcher.New(watcher.NewRegistry(), logger.New(), func([]string) {})
	require.NoError(t, w.Stop())
}
