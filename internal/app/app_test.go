package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lithos/internal/adapters/fs"
	"go.trai.ch/lithos/internal/adapters/logger"
	"go.trai.ch/lithos/internal/adapters/reporter"
	"go.trai.ch/lithos/internal/adapters/state"
	"go.trai.ch/lithos/internal/adapters/telemetry"
	"go.trai.ch/lithos/internal/app"
	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/lithos/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	executor *mocks.MockQueryExecutor
	state    *state.Store
	log      *bytes.Buffer
	siteDir  string
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)

	f := &appFixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockQueryExecutor(ctrl),
		state:    state.NewStore(),
		log:      buf,
		siteDir:  t.TempDir(),
	}
	f.app = app.New(
		f.loader,
		lg,
		reporter.New(lg),
		f.state,
		fs.NewOutputStore(),
		telemetry.NewNoopTracer(),
		func(string) ports.QueryExecutor { return f.executor },
	).WithGetwd(func() (string, error) { return f.siteDir, nil })
	return f
}

func (f *appFixture) config() *domain.SiteConfig {
	return &domain.SiteConfig{
		Directory: f.siteDir,
		Endpoint:  "http://localhost:4000/graphql",
		Pages: []domain.Page{
			{
				Path:          "/about",
				ComponentPath: "src/pages/about.js",
				Query:         "{ page(path: \"/about\") { title } }",
			},
		},
		StaticQueries: []domain.StaticQuery{
			{
				ID:            "sq--site-title",
				ComponentPath: "src/components/header.js",
				Query:         "{ site { title } }",
			},
		},
	}
}

func TestApp_Run_PersistsResults(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load(f.siteDir).Return(f.config(), nil)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ExecutionResult{Data: map[string]any{"ok": true}}, nil).
		Times(2)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Parallelism: 2}))

	// Page result staged under the cache, static result content-addressed
	// under public.
	assert.FileExists(t, filepath.Join(f.siteDir, ".cache", "json", "_about.json"))
	staticDir := filepath.Join(f.siteDir, "public", "page-data", "sq", "d")
	entries, err := os.ReadDir(staticDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Equal(t, []string{"/about"}, f.state.PendingPageDataWrites())
	assert.Len(t, f.state.RanQueries(), 2)
	assert.Contains(t, f.log.String(), "ran 2 queries (2 written, 0 skipped)")
	assert.Contains(t, f.log.String(), "1 page(s) awaiting page-data write")
}

func TestApp_Run_FailedQueryFailsBuild(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load(f.siteDir).Return(f.config(), nil)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ExecutionResult{
			Errors: []domain.QueryError{{Message: "Cannot query field \"titlee\""}},
		}, nil).
		MinTimes(1)

	err := f.app.Run(context.Background(), app.RunOptions{Parallelism: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorIs(t, err, domain.ErrQueryExecutionFailed)
	assert.Contains(t, f.log.String(), "failed to run query (1 error(s))")
}

func TestApp_Run_ConfigLoadFailure(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load(f.siteDir).Return(nil, domain.ErrConfigNotFound)

	err := f.app.Run(context.Background(), app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Clean(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load(f.siteDir).Return(f.config(), nil)

	layout := domain.Layout{Root: f.siteDir}
	require.NoError(t, os.MkdirAll(layout.StagingDir(), 0o750))
	require.NoError(t, os.MkdirAll(layout.StaticQueryDir(), 0o750))
	keeper := filepath.Join(layout.PublicDir(), "index.html")
	require.NoError(t, os.WriteFile(keeper, []byte("<html></html>"), 0o644))

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))

	assert.NoDirExists(t, layout.StagingDir())
	assert.NoDirExists(t, layout.StaticQueryDir())
	// The default clean leaves unrelated public output alone.
	assert.FileExists(t, keeper)
}

func TestApp_Clean_All(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load(f.siteDir).Return(f.config(), nil)

	layout := domain.Layout{Root: f.siteDir}
	require.NoError(t, os.MkdirAll(layout.StagingDir(), 0o750))
	require.NoError(t, os.MkdirAll(layout.PublicDir(), 0o750))

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{All: true}))

	assert.NoDirExists(t, layout.CacheDir())
	assert.NoDirExists(t, layout.PublicDir())
}
