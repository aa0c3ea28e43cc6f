// Command dump_tree parses a Paradox script file and prints its tree,
// diagnostics, and parse stats. Useful for eyeballing how a game file lands
// in the node model.
//
// Usage:
//
//	go run ./scripts/dump_tree path/to/file.txt
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shapestone/shape-paradox/pkg/ast"
	"github.com/shapestone/shape-paradox/pkg/paradox"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dump_tree <file>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	p := paradox.New(paradox.WithLogger(logger))
	root, err := p.ParseFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dump_tree: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(ast.Dump(root))

	for _, msg := range p.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	for _, msg := range p.Errors() {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}

	stats := p.Stats()
	fmt.Fprintf(os.Stderr, "%d tokens, %d statements, %d errors, %d warnings in %s\n",
		stats.Tokens, stats.Statements, stats.Errors, stats.Warnings, stats.Elapsed)
}
