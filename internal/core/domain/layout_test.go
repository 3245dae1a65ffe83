package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lithos/internal/core/domain"
)

func TestLayout_Paths(t *testing.T) {
	t.Parallel()

	l := domain.Layout{Root: "/site"}

	assert.Equal(t, filepath.Join("/site", ".cache"), l.CacheDir())
	assert.Equal(t, filepath.Join("/site", ".cache", "json"), l.StagingDir())
	assert.Equal(t, filepath.Join("/site", "public"), l.PublicDir())
	assert.Equal(t, filepath.Join("/site", "public", "page-data", "sq", "d"), l.StaticQueryDir())
}

func TestLayout_PageResultPath_FlattensSeparators(t *testing.T) {
	t.Parallel()

	l := domain.Layout{Root: "/site"}

	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "root page",
			id:   "/",
			want: "_.json",
		},
		{
			name: "nested page",
			id:   "/blog/hello-world",
			want: "_blog_hello-world.json",
		},
		{
			name: "static query identity",
			id:   "sq--site-title",
			want: "sq--site-title.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.PageResultPath(tt.id)
			assert.Equal(t, filepath.Join("/site", ".cache", "json", tt.want), got)
		})
	}
}

func TestLayout_StaticResultPath(t *testing.T) {
	t.Parallel()

	l := domain.Layout{Root: "/site"}
	got := l.StaticResultPath("deadbeef")
	assert.Equal(t, filepath.Join("/site", "public", "page-data", "sq", "d", "deadbeef.json"), got)
}

func TestFixedPagePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "index", domain.FixedPagePath("/"))
	assert.Equal(t, "/about", domain.FixedPagePath("/about"))
}

func TestPageDataPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join("/site/public", "page-data", "index", "page-data.json"),
		domain.PageDataPath("/site/public", "/"),
	)
	assert.Equal(t,
		filepath.Join("/site/public", "page-data", "blog", "hello", "page-data.json"),
		domain.PageDataPath("/site/public", "/blog/hello"),
	)
}
