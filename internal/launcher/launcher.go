// Package launcher starts the target process with the rewritten argument
// vector, falling back through alternative commands when the target cannot
// start, and formats the dry-run plan.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// Logger receives launch diagnostics.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

// Launcher runs the rewritten command. A fallback fires only when the
// previous command cannot start (binary not found or not executable),
// never on a non-zero child exit.
type Launcher struct {
	// Fallbacks are command strings from --fallback flags, tried in order
	// after the target. Each entry is shell-split.
	Fallbacks []string

	// Chains maps a command name to configured launch alternatives, tried
	// after the flag fallbacks. Looked up by the target's base name.
	Chains map[string][]string

	// Stdin, Stdout, Stderr default to the process streams when nil, so
	// the child inherits the terminal.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger Logger // Optional
}

// Plan formats the rewritten vector for dry-run mode: space-joined, exactly
// as the child would receive it.
func Plan(args []string) string {
	return strings.Join(args, " ")
}

// Launch runs the first startable candidate command and returns the child's
// exit status. args[0] is the target; the remaining arguments are passed to
// whichever candidate starts. Every candidate failing to start returns a
// *LaunchError.
func (l *Launcher) Launch(args []string) (int, error) {
	if len(args) == 0 {
		return 0, &LaunchError{Target: "", Err: errors.New("empty command")}
	}

	candidates, err := l.candidates(args)
	if err != nil {
		return 0, err
	}

	var tried []string
	var lastErr error
	for _, argv := range candidates {
		l.logTrace(fmt.Sprintf("launching %s", strings.Join(argv, " ")))

		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = l.stdin()
		cmd.Stdout = l.stdout()
		cmd.Stderr = l.stderr()

		err := cmd.Run()
		if err == nil {
			return 0, nil
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			// The child ran; its status is ours. Fallbacks are for
			// commands that never started.
			return exitErr.ExitCode(), nil
		}

		l.logDebug(fmt.Sprintf("cannot start %s: %v", argv[0], err))
		tried = append(tried, argv[0])
		lastErr = err
	}

	return 0, &LaunchError{Target: args[0], Tried: tried, Err: lastErr}
}

// candidates builds the ordered argument vectors to attempt: the target
// itself, then each --fallback command, then the configured chain for the
// target's base name. Fallback command strings are shell-split and receive
// the target's arguments.
func (l *Launcher) candidates(args []string) ([][]string, error) {
	out := [][]string{args}

	chain := append([]string{}, l.Fallbacks...)
	chain = append(chain, l.Chains[filepath.Base(args[0])]...)

	for _, entry := range chain {
		words, err := shlex.Split(entry)
		if err != nil {
			return nil, &LaunchError{Target: args[0], Err: fmt.Errorf("cannot split fallback %q: %w", entry, err)}
		}
		if len(words) == 0 {
			continue
		}
		out = append(out, append(words, args[1:]...))
	}
	return out, nil
}

func (l *Launcher) stdin() io.Reader {
	if l.Stdin != nil {
		return l.Stdin
	}
	return os.Stdin
}

func (l *Launcher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}

func (l *Launcher) logTrace(msg string) {
	if l.Logger != nil {
		l.Logger.LogTrace(msg)
	}
}

func (l *Launcher) logDebug(msg string) {
	if l.Logger != nil {
		l.Logger.LogDebug(msg)
	}
}
