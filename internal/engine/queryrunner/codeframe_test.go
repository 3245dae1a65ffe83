package queryrunner

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/lithos/internal/core/domain"
)

const sampleQuery = `query BlogPost($slug: String!) {
  blogPost(slug: $slug) {
    title
    bodyy
    author
  }
}`

func TestRenderCodeFrame_MidQuery(t *testing.T) {
	frame := renderCodeFrame(sampleQuery, &domain.ErrorLocation{Line: 4, Column: 5})

	g := goldie.New(t)
	g.Assert(t, "codeframe_mid_query", []byte(frame))
}

func TestRenderCodeFrame_FirstLine(t *testing.T) {
	frame := renderCodeFrame("{ site { title } }", &domain.ErrorLocation{Line: 1, Column: 3})

	g := goldie.New(t)
	g.Assert(t, "codeframe_first_line", []byte(frame))
}

func TestRenderCodeFrame_NoColumn(t *testing.T) {
	frame := renderCodeFrame(sampleQuery, &domain.ErrorLocation{Line: 7})

	g := goldie.New(t)
	g.Assert(t, "codeframe_no_column", []byte(frame))
}

func TestRenderCodeFrame_Degrades(t *testing.T) {
	tests := []struct {
		name string
		loc  *domain.ErrorLocation
	}{
		{name: "nil location", loc: nil},
		{name: "zero line", loc: &domain.ErrorLocation{Line: 0, Column: 3}},
		{name: "line past end", loc: &domain.ErrorLocation{Line: 99, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, codeFrameUnavailable, renderCodeFrame(sampleQuery, tt.loc))
		})
	}
}
