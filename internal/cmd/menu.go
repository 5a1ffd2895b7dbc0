package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/atglob/internal/pattern"
	"github.com/harrison/atglob/internal/resolve"
	"github.com/harrison/atglob/internal/walker"
)

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultMenuReader wraps bufio.Reader
type DefaultMenuReader struct {
	reader *bufio.Reader
}

func (d *DefaultMenuReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// MenuPrompter asks a human to disambiguate a pattern with several matches.
// It renders a numbered menu and reads a selection in the same grammar as
// the ^ suffix, so an index list, l, a, or /regex/ all work at the prompt.
// Implements rewrite.Prompter.
type MenuPrompter struct {
	Reader MenuReader
	Out    io.Writer // Menu destination; stdout is the child's, so stderr
}

// NewMenuPrompter creates a MenuPrompter reading stdin and writing stderr.
func NewMenuPrompter() *MenuPrompter {
	return &MenuPrompter{
		Reader: &DefaultMenuReader{reader: bufio.NewReader(os.Stdin)},
		Out:    os.Stderr,
	}
}

// Select shows the candidate menu for patternText and reads selections
// until one is valid. Invalid input re-prompts; 'q' or end of input
// cancels the whole invocation.
func (m *MenuPrompter) Select(patternText string, cands []walker.Candidate) ([]walker.Candidate, error) {
	out := m.Out
	if out == nil {
		out = os.Stderr
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)

	bold.Fprintf(out, "\n%d matches for @%s:\n", len(cands), patternText)
	fmt.Fprintln(out, strings.Repeat("-", 70))
	for _, cand := range cands {
		fmt.Fprintln(out, formatMenuLine(cand))
	}
	fmt.Fprintln(out, strings.Repeat("-", 70))
	fmt.Fprintf(out, "Pick 1-%d (also a list, l, a, or /regex/), 'q' to quit.\n", len(cands))

	for {
		cyan.Fprint(out, "Select> ")

		input, err := m.Reader.ReadString('\n')
		if err != nil && input == "" {
			return nil, &resolve.Error{Kind: resolve.KindCancelled}
		}

		input = strings.TrimSpace(input)
		if input == "q" || input == "Q" {
			return nil, &resolve.Error{Kind: resolve.KindCancelled}
		}

		sel, perr := pattern.ParseSelector(input)
		if perr != nil {
			red.Fprintf(out, "Invalid selection: %v\n", perr)
			continue
		}

		chosen, serr := resolve.Apply(cands, sel)
		if serr != nil {
			red.Fprintf(out, "Invalid selection: %v\n", serr)
			continue
		}
		return chosen, nil
	}
}

// formatMenuLine formats a single menu line with candidate info
func formatMenuLine(cand walker.Candidate) string {
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	kind := ""
	if cand.Dir {
		kind = green.Sprint("  (dir)")
	}

	// Format: [1] ./src/parser.go
	return fmt.Sprintf("  %s %s%s", yellow.Sprintf("[%d]", cand.Index), cand.Path, kind)
}
