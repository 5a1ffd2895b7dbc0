// Package glob wraps the pattern-matching engine behind a small
// compile/match contract so the rest of the resolver never touches the
// engine directly.
//
// Semantics follow doublestar: `*` matches any run of characters within one
// path segment, `?` matches exactly one such character, `[...]` is a
// character class, and a lone `**` segment matches zero or more whole
// segments. Matching is case-sensitive and anchored to the full relative
// path.
package glob

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Spec is a compiled glob over slash-separated relative paths.
type Spec struct {
	pattern   string
	segments  int
	recursive bool
}

// Compile validates pattern and returns a matcher for it.
func Compile(pattern string) (*Spec, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty glob pattern")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	segments := strings.Split(pattern, "/")
	recursive := false
	for _, seg := range segments {
		if seg == "**" {
			recursive = true
			break
		}
	}
	// Brace alternation may span segments, so depth pruning cannot be
	// trusted for it.
	if strings.Contains(pattern, "{") {
		recursive = true
	}

	return &Spec{
		pattern:   pattern,
		segments:  len(segments),
		recursive: recursive,
	}, nil
}

// Match reports whether the slash-separated relative path matches the
// compiled pattern. The whole path must match, not a substring.
func (s *Spec) Match(rel string) bool {
	matched, err := doublestar.Match(s.pattern, rel)
	if err != nil {
		// Pattern was validated at compile time.
		return false
	}
	return matched
}

// Recursive reports whether the pattern can match across directory
// boundaries, i.e. descent cannot be bounded by segment count.
func (s *Spec) Recursive() bool {
	return s.recursive
}

// Segments returns the number of slash-separated segments in the pattern.
// Meaningful for depth pruning only when Recursive is false.
func (s *Spec) Segments() int {
	return s.segments
}

// String returns the original pattern text.
func (s *Spec) String() string {
	return s.pattern
}
