package core

import (
	"strings"

	"github.com/inovacc/findstar/internal/model"
)

// Mode selects how keywords combine when deciding record inclusion.
type Mode int

const (
	// ModeAny includes a star when any keyword matches one of its lines.
	ModeAny Mode = iota

	// ModeAll additionally requires every keyword to appear in at least one
	// matched line. Different keywords may be satisfied by different lines.
	ModeAll
)

// Filter scans each star's description and README line by line and returns
// the stars whose lines satisfy the keywords under the given mode. Matching
// is case-sensitive literal substring containment. Matched lines keep their
// encounter order, description before README. Stars are never mutated; the
// selected lines travel in the returned Match values.
func Filter(stars []model.Star, keywords []string, mode Mode) []model.Match {
	var matches []model.Match

	for _, star := range stars {
		lines := matchLines(star, keywords)
		if len(lines) == 0 {
			continue
		}

		if mode == ModeAll && !allPresent(lines, keywords) {
			continue
		}

		matches = append(matches, model.Match{Star: star, Lines: lines})
	}

	return matches
}

// matchLines collects every line of the star's text fields containing at
// least one keyword.
func matchLines(star model.Star, keywords []string) []string {
	var out []string

	for _, field := range []string{star.Description, star.Readme} {
		if field == "" {
			continue
		}

		for _, line := range strings.Split(field, "\n") {
			if containsAny(line, keywords) {
				out = append(out, line)
			}
		}
	}

	return out
}

func containsAny(line string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}

	return false
}

// allPresent reports whether every keyword occurs in at least one line.
func allPresent(lines, keywords []string) bool {
	for _, keyword := range keywords {
		found := false

		for _, line := range lines {
			if strings.Contains(line, keyword) {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}
