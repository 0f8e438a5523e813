// Package discover expands the inputs of a render run.
// Explicit inputs are kept as given; glob patterns (with ** support) are
// expanded against the filesystem. The result is de-duplicated and stable.
package discover

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Inputs returns explicit inputs followed by every file matched by patterns.
// Matches of one pattern are sorted; a pattern matching nothing is not an
// error.
func Inputs(explicit []string, patterns []string) ([]string, error) {
	q := NewQueue()
	for _, in := range explicit {
		q.Add(in)
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			q.Add(m)
		}
	}

	return q.All(), nil
}
