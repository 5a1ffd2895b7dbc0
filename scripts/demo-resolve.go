//go:build ignore
// +build ignore

// Demo script showing pattern resolution against a throwaway tree.
// Run with: go run scripts/demo-resolve.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/atglob/internal/launcher"
	"github.com/harrison/atglob/internal/rewrite"
)

func main() {
	dir, err := os.MkdirTemp("", "atglob-demo")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	for _, p := range []string{
		"src/main.rs",
		"src/parser/lex.rs",
		"src/parser/ast.rs",
		"target/debug/app",
		"docs/readme.md",
	} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	r := &rewrite.Rewriter{BaseDir: dir}

	demos := [][]string{
		{"cat", "@readme.md"},
		{"vim", "@src/**/*.rs^1"},
		{"wc", "-l", "@*/parser/*.rs^a"},
		{"ls", `\@literal`},
	}

	for _, args := range demos {
		out, err := r.Rewrite(args)
		if err != nil {
			fmt.Printf("%-35v -> error: %v\n", launcher.Plan(args), err)
			continue
		}
		fmt.Printf("%-35v -> %v\n", launcher.Plan(args), launcher.Plan(out))
	}
}
