package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inovacc/findstar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightOrder(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "longest first",
			keywords: []string{"go", "golang"},
			want:     []string{"golang", "go"},
		},
		{
			name:     "equal length ties break lexicographically",
			keywords: []string{"bb", "aa"},
			want:     []string{"aa", "bb"},
		},
		{
			name:     "input order preserved otherwise",
			keywords: []string{"ccc", "aaa"},
			want:     []string{"aaa", "ccc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := highlightOrder(tt.keywords)
			assert.Equal(t, tt.want, got)

			// The caller's slice is untouched
			assert.NotSame(t, &tt.keywords[0], &got[0])
		})
	}
}

func TestHighlightKeepsKeywordText(t *testing.T) {
	out := Highlight("a cache proxy", highlightOrder([]string{"cache", "proxy"}))

	assert.Contains(t, out, "cache")
	assert.Contains(t, out, "proxy")
}

func TestHighlightLeavesNonMatchingTextAlone(t *testing.T) {
	// "caching" does not contain "cache" as a literal substring, so only
	// "proxy" gets wrapped and the rest of the line survives verbatim.
	out := Highlight("a caching proxy", highlightOrder([]string{"cache", "proxy"}))

	assert.Contains(t, out, "a caching ")
	assert.Contains(t, out, "proxy")
}

func TestRender(t *testing.T) {
	matches := []model.Match{
		{
			Star: model.Star{
				Name:    "findstar",
				HTMLURL: "https://github.com/octocat/findstar",
			},
			Lines: []string{"  grep over cached stars  ", "cache layer"},
		},
	}

	// Layout only; keyword emphasis is covered by the Highlight tests and
	// depends on the terminal color profile.
	var buf bytes.Buffer
	Render(&buf, matches, nil)

	out := buf.String()
	require.NotEmpty(t, out)

	assert.Contains(t, out, "findstar")
	assert.Contains(t, out, "https://github.com/octocat/findstar")

	// Matched lines are trimmed and bulleted
	assert.Contains(t, out, "- grep over cached stars")
	assert.Contains(t, out, "- cache layer")
	assert.False(t, strings.Contains(out, "  grep over"))
}

func TestRenderNoMatches(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil, []string{"cache"})

	assert.Empty(t, buf.String())
}
