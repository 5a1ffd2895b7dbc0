// Package walker discovers filesystem entries matching a parsed pattern.
//
// The traversal is breadth-first with children visited in lexical order, so
// an unchanged tree always yields the same candidate sequence. That
// determinism is load-bearing: selector indices and the interactive menu
// both refer to discovery order.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ef-ds/deque/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/harrison/atglob/internal/pattern"
)

// Logger receives traversal diagnostics. All methods must be safe for
// concurrent use.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

// Candidate is one discovered entry that satisfies the pattern's glob and
// type filter.
type Candidate struct {
	Path  string // Display path, ready to splice into the argument vector
	Dir   bool   // Entry type after resolving symlinks
	Index int    // 1-based discovery order; what selectors index
}

// Options control traversal behavior beyond what the pattern itself says.
type Options struct {
	IncludeHidden bool     // Visit entries whose name starts with a dot
	ExcludeDirs   []string // Directory names never entered
	Logger        Logger   // Optional; nil discards diagnostics
}

// Result is the outcome of one walk. Skipped holds per-directory read
// failures that were recovered by skipping the directory.
type Result struct {
	Candidates []Candidate
	Skipped    []error
}

// match is a raw hit before the parent transform and display formatting.
type match struct {
	joined string // Root-joined filesystem path
	dir    bool
}

// walkItem is one frontier entry of the breadth-first traversal.
type walkItem struct {
	rel   string // Slash-separated path relative to the search root
	path  string // Filesystem path
	depth int
}

// Walk searches for entries matching p, starting at base joined with the
// pattern's entry point. base stands in for the working directory and must
// be threaded explicitly so tests can inject a synthetic root.
func Walk(base string, p *pattern.Pattern, opts Options) (*Result, error) {
	root := searchRoot(base, p.EntryPoint)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewWalkError(root, "entry point not found", err)
		}
		return nil, NewWalkError(root, "entry point not accessible", err)
	}
	if !info.IsDir() {
		return nil, NewWalkError(root, "entry point is not a directory", nil)
	}

	// Canonical paths of every directory entered so far. Seeding with the
	// root makes a symlink back to it a no-op instead of a loop.
	visited := make(map[string]bool)
	if canon, err := filepath.EvalSymlinks(root); err == nil {
		visited[canon] = true
	} else {
		visited[root] = true
	}

	prune := !p.Body.Recursive()
	maxDepth := p.Body.Segments()

	logTrace(opts.Logger, fmt.Sprintf("walking %s for glob %q (filter %s)", root, p.Body, p.Filter))

	var matches []match
	var skipped []error

	var frontier deque.Deque[walkItem]
	frontier.PushBack(walkItem{rel: "", path: root, depth: 0})

	for frontier.Len() > 0 {
		item, _ := frontier.PopFront()

		entries, err := os.ReadDir(item.path)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping %s: %w", item.path, err))
			logDebug(opts.Logger, fmt.Sprintf("skipping unreadable directory %s: %v", item.path, err))
			continue
		}

		// os.ReadDir returns entries sorted by name.
		for _, ent := range entries {
			name := ent.Name()
			if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
				continue
			}

			childRel := name
			if item.rel != "" {
				childRel = item.rel + "/" + name
			}
			childPath := filepath.Join(item.path, name)
			childDepth := item.depth + 1

			isDir := ent.IsDir()
			if ent.Type()&fs.ModeSymlink != 0 {
				// Symlinks count as their target; broken links stay files.
				if fi, err := os.Stat(childPath); err == nil {
					isDir = fi.IsDir()
				}
			}

			if (!prune || childDepth == maxDepth) && p.Body.Match(childRel) && typeAllowed(p.Filter, isDir) {
				matches = append(matches, match{joined: childPath, dir: isDir})
			}

			if !isDir || (prune && childDepth >= maxDepth) {
				continue
			}
			if excluded(name, opts.ExcludeDirs) {
				logDebug(opts.Logger, fmt.Sprintf("not entering excluded directory %s", childPath))
				continue
			}

			canon, err := filepath.EvalSymlinks(childPath)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("skipping %s: %w", childPath, err))
				logDebug(opts.Logger, fmt.Sprintf("skipping unresolvable directory %s: %v", childPath, err))
				continue
			}
			if visited[canon] {
				logDebug(opts.Logger, fmt.Sprintf("not re-entering %s (already visited as %s)", childPath, canon))
				continue
			}
			visited[canon] = true

			frontier.PushBack(walkItem{rel: childRel, path: childPath, depth: childDepth})
		}
	}

	if p.Filter == pattern.FilterParent {
		matches = parentsOf(matches)
	}

	candidates := make([]Candidate, len(matches))
	for i, m := range matches {
		candidates[i] = Candidate{
			Path:  displayPath(m.joined),
			Dir:   m.dir,
			Index: i + 1,
		}
	}

	logTrace(opts.Logger, fmt.Sprintf("found %d candidate(s) under %s", len(candidates), root))

	return &Result{Candidates: candidates, Skipped: skipped}, nil
}

// searchRoot joins the base directory with the pattern's entry point. An
// absolute entry point stands on its own.
func searchRoot(base, entry string) string {
	if entry == "" {
		if base == "" {
			return "."
		}
		return base
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	if base == "" {
		base = "."
	}
	return filepath.Join(base, entry)
}

// parentsOf replaces each match with its containing directory, keeping the
// first discovery of every parent and dropping the rest.
func parentsOf(matches []match) []match {
	om := orderedmap.New[string, match]()
	for _, m := range matches {
		parent := filepath.Dir(m.joined)
		if _, ok := om.Get(parent); !ok {
			om.Set(parent, match{joined: parent, dir: true})
		}
	}

	out := make([]match, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// displayPath formats a root-joined path for substitution. Relative results
// keep an explicit ./ prefix so the child process sees an unambiguous path.
func displayPath(joined string) string {
	if filepath.IsAbs(joined) {
		return joined
	}
	if joined == "." || joined == ".." || strings.HasPrefix(joined, "../") {
		return joined
	}
	return "./" + joined
}

func typeAllowed(f pattern.TypeFilter, isDir bool) bool {
	switch f {
	case pattern.FilterFiles:
		return !isDir
	case pattern.FilterDirs:
		return isDir
	default:
		// FilterAny and FilterParent admit both entry types.
		return true
	}
}

func excluded(name string, excludeDirs []string) bool {
	for _, ex := range excludeDirs {
		if name == ex {
			return true
		}
	}
	return false
}

func logTrace(l Logger, msg string) {
	if l != nil {
		l.LogTrace(msg)
	}
}

func logDebug(l Logger, msg string) {
	if l != nil {
		l.LogDebug(msg)
	}
}
