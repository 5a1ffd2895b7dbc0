// Package pattern parses marked arguments into structured search patterns.
//
// The surface grammar is
//
//	@[ENTRY/**/]GLOB[^SELECTOR[,SELECTOR]...]
//
// where ENTRY is a literal path prefix ending at the first /**/, GLOB is a
// glob over the remaining path, and the optional selector after the last
// unescaped ^ picks candidates out of the match set. A trailing / on the
// glob restricts matches to directories. A glob with no path separator
// matches basenames at any depth below the entry point.
package pattern

import (
	"fmt"
	"strings"

	"github.com/harrison/atglob/internal/glob"
)

// TypeFilter restricts which entry types become candidates.
type TypeFilter int

const (
	// FilterAny admits files and directories.
	FilterAny TypeFilter = iota
	// FilterFiles admits regular files only.
	FilterFiles
	// FilterDirs admits directories only.
	FilterDirs
	// FilterParent admits any entry but substitutes its parent directory,
	// deduplicated in first-discovery order.
	FilterParent
)

// String returns the string representation of TypeFilter.
func (f TypeFilter) String() string {
	switch f {
	case FilterAny:
		return "any"
	case FilterFiles:
		return "files"
	case FilterDirs:
		return "dirs"
	case FilterParent:
		return "parent"
	default:
		return "unknown"
	}
}

// FilterFromString parses a TypeFilter name as used in config files.
func FilterFromString(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return FilterAny, nil
	case "files", "file":
		return FilterFiles, nil
	case "dirs", "dir":
		return FilterDirs, nil
	case "parent":
		return FilterParent, nil
	default:
		return FilterAny, fmt.Errorf("unknown type filter %q (want any, files, dirs or parent)", s)
	}
}

// Pattern is the parsed form of one marked token. Immutable after Parse.
type Pattern struct {
	Raw        string        // Pattern text without the sentinel
	EntryPoint string        // Directory the search starts in; "" means the base directory
	Body       *glob.Spec    // Compiled glob over paths relative to the entry point
	Selector   *SelectorExpr // nil when the pattern has no selector
	Filter     TypeFilter
}

// Parse decomposes the pattern text of a marked token. fallback supplies
// the type filter when the pattern itself does not force one; a trailing
// slash on the glob always wins over it.
func Parse(text string, fallback TypeFilter) (*Pattern, error) {
	if text == "" {
		return nil, NewParseError(text, "empty pattern", nil)
	}

	rest := text
	var selector *SelectorExpr

	// The selector starts at the last unescaped ^. Negated character
	// classes must be written [!...] so the class never swallows one.
	if i := lastUnescapedCaret(rest); i >= 0 {
		sel, err := ParseSelector(rest[i+1:])
		if err != nil {
			return nil, NewParseError(text, "invalid selector", err)
		}
		selector = sel
		rest = rest[:i]
	}

	// Everything before the first /**/ narrows the search root; the glob
	// keeps the ** so deeper doublestars still work.
	entry := ""
	globBody := rest
	if i := strings.Index(rest, "/**/"); i >= 0 {
		entry = rest[:i]
		globBody = rest[i+1:]
	}

	filter := fallback
	if strings.HasSuffix(globBody, "/") {
		filter = FilterDirs
		globBody = strings.TrimSuffix(globBody, "/")
	}

	if globBody == "" {
		return nil, NewParseError(text, "empty pattern", nil)
	}

	// A bare name searches the whole subtree by basename.
	if !strings.Contains(globBody, "/") && globBody != "**" {
		globBody = "**/" + globBody
	}

	spec, err := glob.Compile(globBody)
	if err != nil {
		return nil, NewParseError(text, "bad glob", err)
	}

	return &Pattern{
		Raw:        text,
		EntryPoint: entry,
		Body:       spec,
		Selector:   selector,
		Filter:     filter,
	}, nil
}

// lastUnescapedCaret returns the index of the rightmost ^ not preceded by a
// backslash, or -1.
func lastUnescapedCaret(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '^' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}
