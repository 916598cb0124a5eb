package matcher

import (
	"strings"

	"github.com/sqlglide/sqlglide/segment"
)

// TypedParser accepts exactly one token whose Kind equals Kind, optionally
// retagging it as NewKind/NewClasses on success — the combinator-level
// counterpart of the lexer's matchers, used to turn a lexer "word" into a
// grammar-level "identifier" or similar.
type TypedParser struct {
	Kind       string
	NewKind    string
	NewClasses []string
}

// NewTypedParser accepts tokens of kind without retagging them.
func NewTypedParser(kind string) *TypedParser {
	return &TypedParser{Kind: kind, NewKind: kind}
}

// Retag returns a copy of p that retags a matched token to newKind with the
// given additional classes.
func (p *TypedParser) Retag(newKind string, newClasses ...string) *TypedParser {
	clone := *p
	clone.NewKind = newKind
	clone.NewClasses = newClasses
	return &clone
}

func (p *TypedParser) Name() string { return "TypedParser(" + p.Kind + ")" }

func (p *TypedParser) Match(ctx Context, segs []segment.Segment) MatchResult {
	gaps, rest := splitGaps(segs)
	if len(rest) == 0 || rest[0].Kind() != p.Kind {
		return NoMatch
	}
	tok := rest[0]
	if lf, ok := tok.(*segment.Leaf); ok && (p.NewKind != "" && p.NewKind != p.Kind || len(p.NewClasses) > 0) {
		tok = lf.Retag(p.NewKind, p.NewClasses...)
	}
	return MatchResult{
		Matched:    append(append([]segment.Segment{}, gaps...), tok),
		Unmatched:  rest[1:],
		IsComplete: true,
	}
}

// StringParser accepts a single token whose raw text equals Literal
// (case-insensitively), retagging it to Kind. If SourceKinds is non-empty,
// only tokens whose current Kind is one of them are eligible — used by
// dialect.Keyword so that, say, the string literal 'SELECT' is never
// mistaken for the SELECT keyword.
type StringParser struct {
	Literal     string
	Kind        string
	SourceKinds []string
}

// NewStringParser builds a StringParser that retags a matching token as
// Kind, eligible regardless of the token's current Kind.
func NewStringParser(kind, literal string) *StringParser {
	return &StringParser{Literal: literal, Kind: kind}
}

// WithSourceKinds restricts p to tokens whose current Kind is one of kinds.
func (p *StringParser) WithSourceKinds(kinds ...string) *StringParser {
	clone := *p
	clone.SourceKinds = kinds
	return &clone
}

func (p *StringParser) Name() string { return "StringParser(" + p.Literal + ")" }

func (p *StringParser) eligible(tok segment.Segment) bool {
	if len(p.SourceKinds) == 0 {
		return true
	}
	for _, k := range p.SourceKinds {
		if tok.Kind() == k {
			return true
		}
	}
	return false
}

func (p *StringParser) Match(ctx Context, segs []segment.Segment) MatchResult {
	gaps, rest := splitGaps(segs)
	if len(rest) == 0 || !strings.EqualFold(rest[0].Raw(), p.Literal) || !p.eligible(rest[0]) {
		return NoMatch
	}
	tok := rest[0]
	if lf, ok := tok.(*segment.Leaf); ok {
		tok = lf.Retag(p.Kind)
	}
	return MatchResult{
		Matched:    append(append([]segment.Segment{}, gaps...), tok),
		Unmatched:  rest[1:],
		IsComplete: true,
	}
}

// MultiStringParser accepts a single token whose raw text (case-insensitive)
// equals any of Words, retagging it as Kind.
type MultiStringParser struct {
	Words []string
	Kind  string
}

// NewMultiStringParser builds a MultiStringParser over words.
func NewMultiStringParser(kind string, words ...string) *MultiStringParser {
	return &MultiStringParser{Words: words, Kind: kind}
}

func (p *MultiStringParser) Name() string { return "MultiStringParser(" + p.Kind + ")" }

func (p *MultiStringParser) Match(ctx Context, segs []segment.Segment) MatchResult {
	gaps, rest := splitGaps(segs)
	if len(rest) == 0 {
		return NoMatch
	}
	for _, w := range p.Words {
		if strings.EqualFold(rest[0].Raw(), w) {
			tok := rest[0]
			if lf, ok := tok.(*segment.Leaf); ok {
				tok = lf.Retag(p.Kind)
			}
			return MatchResult{
				Matched:    append(append([]segment.Segment{}, gaps...), tok),
				Unmatched:  rest[1:],
				IsComplete: true,
			}
		}
	}
	return NoMatch
}

// RegexParser accepts a single token whose raw text the matches predicate
// accepts.
type RegexParser struct {
	Kind        string
	matches     func(string) bool
	SourceKinds []string
}

// NewRegexParser builds a RegexParser retagging a matching token as kind.
func NewRegexParser(kind string, matches func(string) bool) *RegexParser {
	return &RegexParser{Kind: kind, matches: matches}
}

// WithSourceKinds restricts p to tokens whose current Kind is one of kinds.
func (p *RegexParser) WithSourceKinds(kinds ...string) *RegexParser {
	clone := *p
	clone.SourceKinds = kinds
	return &clone
}

func (p *RegexParser) Name() string { return "RegexParser(" + p.Kind + ")" }

func (p *RegexParser) eligible(tok segment.Segment) bool {
	if len(p.SourceKinds) == 0 {
		return true
	}
	for _, k := range p.SourceKinds {
		if tok.Kind() == k {
			return true
		}
	}
	return false
}

func (p *RegexParser) Match(ctx Context, segs []segment.Segment) MatchResult {
	gaps, rest := splitGaps(segs)
	if len(rest) == 0 || !p.matches(rest[0].Raw()) || !p.eligible(rest[0]) {
		return NoMatch
	}
	tok := rest[0]
	if lf, ok := tok.(*segment.Leaf); ok {
		tok = lf.Retag(p.Kind)
	}
	return MatchResult{
		Matched:    append(append([]segment.Segment{}, gaps...), tok),
		Unmatched:  rest[1:],
		IsComplete: true,
	}
}
