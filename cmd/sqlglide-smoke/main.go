// Command sqlglide-smoke is a non-interactive driver that parses and lints
// a fixed SQL sample end to end, printing the violations found. It is
// deliberately not a general-purpose CLI (flags, file globs, SARIF/JSON
// output, autofix) — that surface is out of scope here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sqlglide/sqlglide"
	"github.com/sqlglide/sqlglide/parsectx"
	"github.com/sqlglide/sqlglide/rules"
	"github.com/sqlglide/sqlglide/rules/aliasing"
)

const sample = `SELECT foo, foo, bar AS baz FROM widgets WHERE bar > 10 ORDER BY bar;`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := parsectx.DefaultConfig()
	cfg.Logger = logger

	parsed, err := sqlglide.Parse(sample, "ansi", cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse failed:", err)
		os.Exit(1)
	}
	for _, le := range parsed.LexErrors {
		fmt.Printf("lex error: %s\n", le.Error())
	}
	for _, pe := range parsed.ParseErrors {
		fmt.Printf("parse error: %s\n", pe.Error())
	}

	violations, err := sqlglide.Lint(sample, "ansi", []rules.Rule{aliasing.AL08{}}, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lint failed:", err)
		os.Exit(1)
	}
	for _, v := range violations {
		fmt.Printf("%s:%d:%d: %s (%s)\n", "sample.sql", v.LineNo, v.LinePos, v.Description, v.Code)
	}
}
