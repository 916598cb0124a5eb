// Package rules implements the rule-evaluation substrate: a Crawler
// selects which segments a Rule gets to see, RuleContext hands each Rule
// enough ambient information to reason about a segment in place, and Engine
// drives the whole pass and produces a deterministically ordered violation
// list.
package rules

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/segment"
)

// Crawler decides which segments of a tree a Rule's Eval is invoked against.
type Crawler interface {
	// Seek returns every segment in root (root included) that this rule
	// wants to evaluate.
	Seek(root segment.Segment) []segment.Segment
}

// rootOnlyCrawler invokes a rule exactly once, against the file root.
type rootOnlyCrawler struct{}

// RootOnly builds a Crawler that visits only the tree root.
func RootOnly() Crawler { return rootOnlyCrawler{} }

func (rootOnlyCrawler) Seek(root segment.Segment) []segment.Segment {
	return []segment.Segment{root}
}

// segmentSeekerCrawler visits every segment whose Kind is one of the target
// kinds, anywhere in the tree.
type segmentSeekerCrawler struct {
	kinds map[string]struct{}
}

// SegmentSeeker builds a Crawler that visits every segment whose Kind is one
// of kinds.
func SegmentSeeker(kinds ...string) Crawler {
	set := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return segmentSeekerCrawler{kinds: set}
}

func (c segmentSeekerCrawler) Seek(root segment.Segment) []segment.Segment {
	var out []segment.Segment
	segment.Walk(root, func(s segment.Segment) bool {
		if _, ok := c.kinds[s.Kind()]; ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// Config carries rule-tunable settings through a lint pass. Individual
// rules read the keys they care about and ignore the rest.
type Config struct {
	Settings map[string]string
}

// Context is handed to Rule.Eval once per segment a Crawler selects.
type Context struct {
	Segment   segment.Segment
	Ancestors []segment.Segment
	Dialect   *dialect.Dialect
	Config    Config
	Memo      map[string]any
}

// Fix describes a proposed tree edit a rule's violation carries; applying
// fixes is left to a caller (e.g. an autofix command), not this package.
type Fix struct {
	Anchor      segment.Segment
	Replacement segment.Segment
}

// LintResult is a single finding produced by one Rule.Eval call.
type LintResult struct {
	Anchor      segment.Segment
	Fixes       []Fix
	Description string
	MemoKey     string
}

// Rule is the contract every concrete lint rule satisfies.
type Rule interface {
	Code() string
	Crawler() Crawler
	Eval(ctx Context) []LintResult
}

// Violation is a LintResult resolved to source position, the shape
// surfaced to callers of Engine.Lint.
type Violation struct {
	Code            string
	Description     string
	LineNo          int
	LinePos         int
	SourceSignature string
}

// Engine runs a fixed rule set against a parsed tree.
type Engine struct {
	Rules []Rule
	D     *dialect.Dialect
	Cfg   Config
}

// NewEngine builds an Engine over the given rules.
func NewEngine(d *dialect.Dialect, cfg Config, rulesList ...Rule) *Engine {
	return &Engine{Rules: rulesList, D: d, Cfg: cfg}
}

// Lint evaluates every rule against root and returns violations sorted by
// (line, column, code) for deterministic output across runs.
func (e *Engine) Lint(root segment.Segment) []Violation {
	ancestors := ancestorsByID(root)

	var out []Violation
	for _, rule := range e.Rules {
		memo := map[string]any{}
		for _, seg := range rule.Crawler().Seek(root) {
			ctx := Context{
				Segment:   seg,
				Ancestors: ancestors[seg.ID()],
				Dialect:   e.D,
				Config:    e.Cfg,
				Memo:      memo,
			}
			for _, res := range rule.Eval(ctx) {
				pos := res.Anchor.Position()
				out = append(out, Violation{
					Code:            rule.Code(),
					Description:     res.Description,
					LineNo:          pos.Line,
					LinePos:         pos.Column,
					SourceSignature: signature(res.Anchor),
				})
			}
		}
	}
	slices.SortFunc(out, func(a, b Violation) int {
		if a.LineNo != b.LineNo {
			return a.LineNo - b.LineNo
		}
		if a.LinePos != b.LinePos {
			return a.LinePos - b.LinePos
		}
		return strings.Compare(a.Code, b.Code)
	})
	return out
}

// ancestorsByID maps every segment in root's tree to its path from the root,
// root-first, not including itself. Built once per Lint pass rather than per
// Crawler, since every rule's Context needs the same answer for the same
// segment.
func ancestorsByID(root segment.Segment) map[string][]segment.Segment {
	out := map[string][]segment.Segment{}
	var walk func(seg segment.Segment, path []segment.Segment)
	walk = func(seg segment.Segment, path []segment.Segment) {
		out[seg.ID()] = path
		childPath := append(append([]segment.Segment{}, path...), seg)
		for _, c := range seg.Children() {
			walk(c, childPath)
		}
	}
	walk(root, nil)
	return out
}

func signature(seg segment.Segment) string {
	return fmt.Sprintf("%s@%d:%d", seg.Kind(), seg.Position().Line, seg.Position().Column)
}
