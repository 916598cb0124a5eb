package lexer

import (
	"regexp"
	"strings"

	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/segment"
)

// StringMatcher matches a fixed literal and constructs a leaf of Kind.
type StringMatcher struct {
	Literal       string
	Kind          string
	CaseSensitive bool
}

// NewStringMatcher builds a case-insensitive literal matcher, the common
// case for SQL punctuation and operators.
func NewStringMatcher(kind, literal string) *StringMatcher {
	return &StringMatcher{Literal: literal, Kind: kind}
}

func (m *StringMatcher) Name() string { return "string:" + m.Kind }

func (m *StringMatcher) Match(file *position.TemplatedFile, input string, offset int) ([]segment.Segment, int, bool) {
	if len(input) < len(m.Literal) {
		return nil, 0, false
	}
	candidate := input[:len(m.Literal)]
	matches := candidate == m.Literal
	if !matches && !m.CaseSensitive {
		matches = strings.EqualFold(candidate, m.Literal)
	}
	if !matches {
		return nil, 0, false
	}
	pos := position.NewMarker(file, offset, offset+len(m.Literal))
	return []segment.Segment{segment.NewLeaf(m.Kind, candidate, pos)}, len(m.Literal), true
}

// RegexMatcher matches the prefix of input that Pattern finds at its start,
// with Go regexp's leftmost-first semantics: alternatives are tried in the
// order written and lazy quantifiers stay lazy, so the match is not
// necessarily the longest prefix the pattern could accept. If AntiTemplate
// is set, a match that *also* fully satisfies AntiTemplate is rejected — used
// to forbid reserved keywords from being lexed as naked identifiers.
type RegexMatcher struct {
	Kind         string
	Pattern      *regexp.Regexp
	AntiTemplate *regexp.Regexp
}

// NewRegexMatcher compiles pattern (anchored to the start of input) into a
// RegexMatcher.
func NewRegexMatcher(kind, pattern string) *RegexMatcher {
	return &RegexMatcher{Kind: kind, Pattern: regexp.MustCompile(`^(?:` + pattern + `)`)}
}

// WithAntiTemplate returns a copy of m that additionally rejects matches
// fully satisfying antiTemplate.
func (m *RegexMatcher) WithAntiTemplate(antiTemplate string) *RegexMatcher {
	clone := *m
	clone.AntiTemplate = regexp.MustCompile(`^(?:` + antiTemplate + `)$`)
	return &clone
}

func (m *RegexMatcher) Name() string { return "regex:" + m.Kind }

func (m *RegexMatcher) Match(file *position.TemplatedFile, input string, offset int) ([]segment.Segment, int, bool) {
	loc := m.Pattern.FindStringIndex(input)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return nil, 0, false
	}
	text := input[:loc[1]]
	if m.AntiTemplate != nil && m.AntiTemplate.MatchString(strings.ToUpper(text)) {
		return nil, 0, false
	}
	pos := position.NewMarker(file, offset, offset+len(text))
	return []segment.Segment{segment.NewLeaf(m.Kind, text, pos)}, len(text), true
}

// SubdividingMatcher wraps a Parent matcher and, once it succeeds, splits the
// matched text further: Subdivider finds inner boundary segments (e.g. a
// newline inside a block comment) and Trimmers strip leading/trailing
// remnants between pieces (e.g. interior whitespace) so that line counting
// across the matched span stays accurate.
type SubdividingMatcher struct {
	Parent     Matcher
	Subdivider Matcher
	Trimmers   []Matcher
	// OuterKind retags the untouched remainder pieces (the parts that are
	// neither the subdivider match nor a trimmer match); empty keeps the
	// Parent's kind.
	OuterKind string
}

func (m *SubdividingMatcher) Name() string { return "subdividing:" + m.Parent.Name() }

func (m *SubdividingMatcher) Match(file *position.TemplatedFile, input string, offset int) ([]segment.Segment, int, bool) {
	parentSegs, consumed, ok := m.Parent.Match(file, input, offset)
	if !ok {
		return nil, 0, false
	}
	// Parent is expected to emit exactly one leaf covering the whole match;
	// re-lex its raw text with the subdivider/trimmer matchers.
	var raw string
	for _, s := range parentSegs {
		raw += s.Raw()
	}

	var out []segment.Segment
	innerOffset := offset
	remaining := raw
	for len(remaining) > 0 {
		if segs, n, ok := m.Subdivider.Match(file, remaining, innerOffset); ok && n > 0 {
			out = append(out, segs...)
			remaining = remaining[n:]
			innerOffset += n
			continue
		}
		trimmed := false
		for _, trimmer := range m.Trimmers {
			if segs, n, ok := trimmer.Match(file, remaining, innerOffset); ok && n > 0 {
				out = append(out, segs...)
				remaining = remaining[n:]
				innerOffset += n
				trimmed = true
				break
			}
		}
		if trimmed {
			continue
		}
		// Consume one piece of "outer" text up to the next point where a
		// subdivider or trimmer could match, retagged under OuterKind.
		n := nextBoundary(remaining, m.Subdivider, m.Trimmers, file, innerOffset)
		kind := m.OuterKind
		if kind == "" && len(parentSegs) > 0 {
			kind = parentSegs[0].Kind()
		}
		piece := remaining[:n]
		pos := position.NewMarker(file, innerOffset, innerOffset+n)
		out = append(out, segment.NewLeaf(kind, piece, pos))
		remaining = remaining[n:]
		innerOffset += n
	}
	return out, consumed, true
}

// nextBoundary finds how many bytes of remaining belong to the next "outer"
// piece before subdivider or one of trimmers would match.
func nextBoundary(remaining string, subdivider Matcher, trimmers []Matcher, file *position.TemplatedFile, offset int) int {
	for i := 1; i <= len(remaining); i++ {
		candidate := remaining[i:]
		if candidate == "" {
			return i
		}
		if _, n, ok := subdivider.Match(file, candidate, offset+i); ok && n > 0 {
			return i
		}
		for _, trimmer := range trimmers {
			if _, n, ok := trimmer.Match(file, candidate, offset+i); ok && n > 0 {
				return i
			}
		}
	}
	return len(remaining)
}

// MultiStringMatcher matches the first literal (by declaration order) out of
// Words, used as the lexer-side counterpart of a dialect's MultiStringParser
// for multi-word operators the regex matchers don't cover.
type MultiStringMatcher struct {
	Kind  string
	Words []string
}

func (m *MultiStringMatcher) Name() string { return "multi:" + m.Kind }

func (m *MultiStringMatcher) Match(file *position.TemplatedFile, input string, offset int) ([]segment.Segment, int, bool) {
	for _, w := range m.Words {
		sm := &StringMatcher{Literal: w, Kind: m.Kind}
		if segs, n, ok := sm.Match(file, input, offset); ok {
			return segs, n, ok
		}
	}
	return nil, 0, false
}
