// Package resolve reduces an ordered candidate set to the paths substituted
// for one marked argument.
//
// The branch between auto-resolution, strict selector application, and
// interactive disambiguation is a single decision function returning a
// tagged outcome, so the orchestrator and the prompt loop share one set of
// rules.
package resolve

import (
	"github.com/harrison/atglob/internal/pattern"
	"github.com/harrison/atglob/internal/walker"
)

// State tags a decision outcome.
type State int

const (
	// StateResolved means Candidates holds the final selection.
	StateResolved State = iota
	// StateNeedsPrompt means a human must choose among Candidates.
	StateNeedsPrompt
	// StateFailed means Err holds the failure.
	StateFailed
)

// Outcome is the result of deciding one pattern's candidate set.
// Err is non-nil exactly when State is StateFailed.
type Outcome struct {
	State      State
	Candidates []walker.Candidate
	Err        *Error
}

// Decide determines what happens to a candidate set.
//
// Zero candidates fail with NoMatch regardless of the selector. Exactly one
// candidate resolves immediately, selector or not, matching the original
// tool's behavior of never consulting the selector when the match is
// unique. With more than one candidate an explicit selector is applied
// strictly; without one, interactive callers get StateNeedsPrompt and
// non-interactive callers fail as ambiguous.
func Decide(cands []walker.Candidate, sel *pattern.SelectorExpr, interactive bool) Outcome {
	if len(cands) == 0 {
		return Outcome{State: StateFailed, Err: &Error{Kind: KindNoMatch}}
	}
	if len(cands) == 1 {
		return Outcome{State: StateResolved, Candidates: cands[:1]}
	}

	if sel != nil {
		chosen, err := Apply(cands, sel)
		if err != nil {
			return Outcome{State: StateFailed, Err: err}
		}
		return Outcome{State: StateResolved, Candidates: chosen}
	}

	if interactive {
		return Outcome{State: StateNeedsPrompt, Candidates: cands}
	}
	return Outcome{State: StateFailed, Err: &Error{Kind: KindAmbiguous, Count: len(cands)}}
}

// Apply evaluates a selector against the candidate set with strict bounds
// checking. Index lists preserve the selector's listed order and may repeat
// a candidate; negative indices count from the end. A regex keeps matching
// candidates in discovery order and fails with NoMatch when nothing
// survives.
func Apply(cands []walker.Candidate, sel *pattern.SelectorExpr) ([]walker.Candidate, *Error) {
	switch sel.Kind {
	case pattern.SelectorAll:
		return cands, nil

	case pattern.SelectorRegex:
		var kept []walker.Candidate
		for _, c := range cands {
			if sel.Regex.MatchString(c.Path) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return nil, &Error{Kind: KindNoMatch, Count: len(cands)}
		}
		return kept, nil

	default:
		n := len(cands)
		chosen := make([]walker.Candidate, 0, len(sel.Indices))
		for _, idx := range sel.Indices {
			pos := idx
			if idx < 0 {
				pos = n + idx + 1
			}
			if pos < 1 || pos > n {
				return nil, &Error{Kind: KindIndexOutOfRange, Index: idx, Count: n}
			}
			chosen = append(chosen, cands[pos-1])
		}
		return chosen, nil
	}
}
