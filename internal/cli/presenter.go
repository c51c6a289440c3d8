// Package cli renders results and hosts the interactive star browser.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/findstar/internal/model"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Render prints each matched star as a name/URL header followed by its
// matched lines with every keyword occurrence highlighted.
func Render(w io.Writer, matches []model.Match, keywords []string) {
	ordered := highlightOrder(keywords)

	for _, match := range matches {
		_, _ = fmt.Fprintf(w, "%s (%s)\n",
			nameStyle.Render(match.Star.Name),
			urlStyle.Render(match.Star.HTMLURL))

		for _, line := range match.Lines {
			_, _ = fmt.Fprintf(w, "- %s\n", Highlight(strings.TrimSpace(line), ordered))
		}

		_, _ = fmt.Fprintln(w)
	}
}

// Highlight wraps every literal occurrence of each keyword in the highlight
// style. Keywords must already be in highlight order (see highlightOrder) so
// a keyword that is a substring of another never splits the longer keyword's
// markers.
func Highlight(line string, keywords []string) string {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}

		line = strings.ReplaceAll(line, keyword, keywordStyle.Render(keyword))
	}

	return line
}

// highlightOrder returns the keywords sorted longest first, ties broken
// lexicographically, giving overlapping keywords a deterministic precedence.
func highlightOrder(keywords []string) []string {
	ordered := make([]string, len(keywords))
	copy(ordered, keywords)

	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}

		return ordered[i] < ordered[j]
	})

	return ordered
}
