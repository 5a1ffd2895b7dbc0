// Package rewrite orchestrates pattern resolution across a whole argument
// vector: detect marked tokens, parse, walk, select, splice.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/harrison/atglob/internal/pattern"
	"github.com/harrison/atglob/internal/resolve"
	"github.com/harrison/atglob/internal/walker"
)

// DefaultSentinel marks resolvable tokens unless configuration overrides it.
const DefaultSentinel = "@"

// Prompter asks a human to choose among candidates. Select receives the
// pattern text being resolved and the full discovery-ordered candidate set
// and returns the chosen subset.
type Prompter interface {
	Select(patternText string, cands []walker.Candidate) ([]walker.Candidate, error)
}

// WalkFunc performs the filesystem search for one parsed pattern. Tests
// substitute stubs to observe or suppress traversal.
type WalkFunc func(base string, p *pattern.Pattern, opts walker.Options) (*walker.Result, error)

// Logger receives rewrite diagnostics.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

// Rewriter resolves marked arguments one at a time, left to right. The
// zero value rewrites with the default sentinel, the current directory as
// base, no prompting, and the real filesystem walker.
type Rewriter struct {
	Sentinel      string             // Marker character; DefaultSentinel when empty
	BaseDir       string             // Search base for entry-point-less patterns
	Filter        pattern.TypeFilter // Default type filter (pattern syntax wins)
	IncludeHidden bool
	ExcludeDirs   []string
	Prompter      Prompter // nil disables interactive disambiguation
	Logger        Logger   // Optional
	WalkFn        WalkFunc // Optional; walker.Walk when nil
}

// Rewrite produces the final argument vector. Unmarked arguments pass
// through verbatim; escaped tokens lose the escape marker and never touch
// the filesystem; each marked token is replaced by its resolved path(s),
// expanding in place when a selector picks several. The first failure
// aborts with an Error naming the argument, leaving nothing executed.
func (r *Rewriter) Rewrite(args []string) ([]string, error) {
	sentinel := r.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	out := make([]string, 0, len(args))
	for _, arg := range args {
		tok, marked := pattern.Detect(arg, sentinel)
		if !marked {
			out = append(out, arg)
			continue
		}
		if tok.Escaped {
			out = append(out, tok.Body)
			continue
		}

		paths, err := r.resolveToken(tok)
		if err != nil {
			return nil, NewError(arg, err)
		}
		out = append(out, paths...)
	}
	return out, nil
}

// resolveToken runs parse, walk, and selection for one marked token.
func (r *Rewriter) resolveToken(tok pattern.Token) ([]string, error) {
	p, err := pattern.Parse(tok.Body, r.Filter)
	if err != nil {
		return nil, err
	}

	walk := r.WalkFn
	if walk == nil {
		walk = walker.Walk
	}
	result, err := walk(r.BaseDir, p, walker.Options{
		IncludeHidden: r.IncludeHidden,
		ExcludeDirs:   r.ExcludeDirs,
		Logger:        walkerLogger(r.Logger),
	})
	if err != nil {
		return nil, err
	}
	if n := len(result.Skipped); n > 0 {
		r.logDebug(fmt.Sprintf("pattern %q: skipped %d unreadable directories", tok.Raw, n))
	}

	outcome := resolve.Decide(result.Candidates, p.Selector, r.Prompter != nil)

	var chosen []walker.Candidate
	switch outcome.State {
	case resolve.StateResolved:
		chosen = outcome.Candidates
	case resolve.StateNeedsPrompt:
		chosen, err = r.Prompter.Select(p.Raw, outcome.Candidates)
		if err != nil {
			return nil, err
		}
	case resolve.StateFailed:
		return nil, outcome.Err
	}

	paths := make([]string, len(chosen))
	for i, c := range chosen {
		paths[i] = c.Path
	}
	r.logTrace(fmt.Sprintf("%s -> %s", tok.Raw, strings.Join(paths, " ")))
	return paths, nil
}

func (r *Rewriter) logTrace(msg string) {
	if r.Logger != nil {
		r.Logger.LogTrace(msg)
	}
}

func (r *Rewriter) logDebug(msg string) {
	if r.Logger != nil {
		r.Logger.LogDebug(msg)
	}
}

// walkerLogger adapts the rewrite logger for the walker without forcing a
// nil interface through.
func walkerLogger(l Logger) walker.Logger {
	if l == nil {
		return nil
	}
	return l
}
