package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SelectorKind identifies the form of a selector expression.
type SelectorKind int

const (
	// SelectorIndices is a list of 1-based candidate indices.
	SelectorIndices SelectorKind = iota
	// SelectorAll selects every candidate in discovery order.
	SelectorAll
	// SelectorRegex keeps candidates whose path matches the expression.
	SelectorRegex
)

// String returns the string representation of SelectorKind.
func (k SelectorKind) String() string {
	switch k {
	case SelectorIndices:
		return "indices"
	case SelectorAll:
		return "all"
	case SelectorRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// SelectorExpr is a parsed selector. Exactly one of the payload fields is
// meaningful, per Kind: Indices holds 1-based positions where negative
// values count from the end (-1 is the last candidate), Regex holds the
// compiled filter expression.
type SelectorExpr struct {
	Raw     string
	Kind    SelectorKind
	Indices []int
	Regex   *regexp.Regexp
}

// ParseSelector parses the text after the ^ marker.
//
// Grammar: comma-separated tokens, each a positive integer (1-based from
// the start), a negative integer (from the end), the alias l (last), the
// alias a (all, which must appear alone), or /regex/ (alone). Index zero is
// invalid. Whitespace around tokens is ignored so the same grammar works
// for interactive input.
func ParseSelector(text string) (*SelectorExpr, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty selector")
	}

	tokens := strings.Split(text, ",")
	expr := &SelectorExpr{Raw: text, Kind: SelectorIndices}

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		switch {
		case tok == "a":
			if len(tokens) > 1 {
				return nil, fmt.Errorf("selector %q: 'a' cannot be combined with other tokens", text)
			}
			expr.Kind = SelectorAll
			return expr, nil

		case tok == "l":
			expr.Indices = append(expr.Indices, -1)

		case len(tok) >= 2 && strings.HasPrefix(tok, "/") && strings.HasSuffix(tok, "/"):
			if len(tokens) > 1 {
				return nil, fmt.Errorf("selector %q: a regex cannot be combined with other tokens", text)
			}
			re, err := regexp.Compile(tok[1 : len(tok)-1])
			if err != nil {
				return nil, fmt.Errorf("selector %q: bad regex: %w", text, err)
			}
			expr.Kind = SelectorRegex
			expr.Regex = re
			return expr, nil

		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("selector %q: invalid token %q", text, tok)
			}
			if n == 0 {
				return nil, fmt.Errorf("selector %q: index is 1-based, 0 is invalid", text)
			}
			expr.Indices = append(expr.Indices, n)
		}
	}

	return expr, nil
}
