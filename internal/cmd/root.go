// Package cmd wires the CLI surface: flag parsing, config merge, the
// interactive selection menu, and exit-code mapping.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/atglob/internal/config"
	"github.com/harrison/atglob/internal/launcher"
	"github.com/harrison/atglob/internal/logger"
	"github.com/harrison/atglob/internal/pattern"
	"github.com/harrison/atglob/internal/resolve"
	"github.com/harrison/atglob/internal/rewrite"
	"github.com/harrison/atglob/internal/walker"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Exit codes per the documented contract. A launched child's own status
// passes through unchanged.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitParse  = 2
	ExitWalk   = 3
	ExitSelect = 4
	ExitConfig = 5
	ExitLaunch = 127
)

// NewRootCommand creates and returns the root cobra command for atglob
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atglob [flags] <command> [args...]",
		Short: "Resolve @glob patterns in a command line, then run it",
		Long: `atglob scans the command line for arguments marked with @, resolves each
into filesystem path(s) by searching for entries matching the embedded
glob, splices the result back in, and runs the command.

Pattern syntax:
  @[ENTRY/**/]GLOB[^SELECTOR,...]

GLOB supports *, ?, [...] within one path segment and ** across segments;
a trailing / matches directories only. Text before the first /**/ narrows
where the search starts. The selector after ^ picks from the matches:
1-based indices, negative indices from the end, l (last), a (all), or
/regex/. Without a selector, a single match is substituted directly and
several matches open an interactive menu. \@ passes the argument through
literally.

Exit codes:
  0    success (or dry-run)
  2    pattern or selector syntax error
  3    search entry point missing or unreadable
  4    no match, index out of range, or ambiguous without a terminal
  5    configuration error
  127  neither the command nor any fallback could start
  else the command's own exit status

Examples:
  # Run the only foo below the current directory
  atglob cat @foo

  # Second *.rs file, by discovery order
  atglob vim '@*.rs^2'

  # All matches, expanded in place
  atglob rm '@target/**/*.tmp^a'

  # Narrow the search to src/ before the recursive part
  atglob wc -l '@src/**/parser/*.go'

  # Show the rewritten command without running it
  atglob --dry-run cp @config.yaml /tmp/`,
		Version:      Version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		// Errors are printed by Execute with exit-code mapping
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().BoolP("files", "f", false, "match files only")
	cmd.Flags().BoolP("dirs", "d", false, "match directories only")
	cmd.Flags().BoolP("parent", "P", false, "substitute the directory containing each match")
	cmd.Flags().BoolP("dry-run", "n", false, "print the rewritten command instead of running it")
	cmd.Flags().BoolP("hidden", "H", false, "include hidden entries in the search")
	cmd.Flags().StringArray("exclude", nil, "directory name to skip (repeatable)")
	cmd.Flags().StringArray("fallback", nil, "fallback command if the target fails to start (repeatable)")
	cmd.Flags().StringP("directory", "C", "", "base directory for searches (default \".\")")
	cmd.Flags().String("sentinel", "", "pattern marker character (default \"@\")")
	cmd.Flags().String("config", "", "config file path")
	cmd.Flags().String("log-level", "", "log level: trace, debug, info, warn, error (default \"warn\")")
	cmd.Flags().BoolP("verbose", "v", false, "shorthand for --log-level debug")

	cmd.MarkFlagsMutuallyExclusive("files", "dirs", "parent")

	// The first positional is the target command; everything after it
	// belongs to the child, flags included.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runRoot implements the root command logic
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return &configError{err: err}
	}
	mergeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	filter, err := pattern.FilterFromString(cfg.Filter)
	if err != nil {
		return &configError{err: err}
	}

	// The menu needs a human on both ends: stdin for the answer and
	// stderr for the rendering.
	var prompter rewrite.Prompter
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd()) {
		prompter = NewMenuPrompter()
	}

	rewriter := &rewrite.Rewriter{
		Sentinel:      cfg.Sentinel,
		BaseDir:       cfg.BaseDirectory,
		Filter:        filter,
		IncludeHidden: cfg.IncludeHidden,
		ExcludeDirs:   cfg.ExcludeDirs,
		Prompter:      prompter,
		Logger:        log,
	}

	rewritten, err := rewriter.Rewrite(args)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), launcher.Plan(rewritten))
		return nil
	}

	fallbacks, _ := cmd.Flags().GetStringArray("fallback")
	l := &launcher.Launcher{
		Fallbacks: fallbacks,
		Chains:    cfg.Fallbacks,
		Logger:    log,
	}
	code, err := l.Launch(rewritten)
	if err != nil {
		return err
	}
	if code != 0 {
		return &childExitError{code: code}
	}
	return nil
}

// loadConfig loads the config file named by --config, or discovers one
// relative to the working directory. An explicit --config path must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadConfig(path)
	}
	return config.Discover("")
}

// mergeFlags overlays explicitly set CLI flags onto the configuration,
// using pointer arguments so unset flags leave file values alone.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	var sentinel, filter, baseDir, logLevel *string
	var hidden *bool
	var exclude *[]string

	if cmd.Flags().Changed("sentinel") {
		v, _ := cmd.Flags().GetString("sentinel")
		sentinel = &v
	}
	for _, name := range []string{"files", "dirs", "parent"} {
		if set, _ := cmd.Flags().GetBool(name); set {
			v := name
			filter = &v
		}
	}
	if cmd.Flags().Changed("hidden") {
		v, _ := cmd.Flags().GetBool("hidden")
		hidden = &v
	}
	if cmd.Flags().Changed("exclude") {
		v, _ := cmd.Flags().GetStringArray("exclude")
		exclude = &v
	}
	if cmd.Flags().Changed("directory") {
		v, _ := cmd.Flags().GetString("directory")
		baseDir = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v := "debug"
		logLevel = &v
	}

	cfg.MergeWithFlags(sentinel, filter, hidden, exclude, baseDir, logLevel)
}

// Execute runs the root command with the given arguments and returns the
// process exit code.
func Execute(args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	// A non-zero child exit is not an atglob failure; pass it through
	// silently.
	var child *childExitError
	if errors.As(err, &child) {
		return child.code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitCode(err)
}

// exitCode maps an error to the documented exit-code contract.
func exitCode(err error) int {
	var ce *configError
	switch {
	case pattern.IsParseError(err):
		return ExitParse
	case walker.IsWalkError(err):
		return ExitWalk
	case resolve.IsSelectionError(err):
		return ExitSelect
	case launcher.IsLaunchError(err):
		return ExitLaunch
	case errors.As(err, &ce):
		return ExitConfig
	default:
		return ExitUsage
	}
}

// childExitError carries the child's exit status through cobra without
// being reported as an atglob error.
type childExitError struct {
	code int
}

// Error implements the error interface for childExitError.
func (e *childExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

// configError tags configuration failures for exit-code mapping.
type configError struct {
	err error
}

// Error implements the error interface for configError.
func (e *configError) Error() string {
	return fmt.Sprintf("configuration: %v", e.err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *configError) Unwrap() error {
	return e.err
}
