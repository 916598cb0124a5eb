package ansi

import (
	"strings"

	"github.com/sqlglide/sqlglide/lexer"
	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/segment"
)

// lexMatchers is the ordered matcher list for the ANSI dialect. Order
// matters: more specific matchers must precede their prefixes ("::" before
// a bare ":"), and the whitespace regex deliberately excludes \r\n so
// newline boundaries stay their own segments. Comparison operators like
// "<=" are NOT lexed as a single token here — the lexer emits raw
// less_than/equals tokens and the ANSI grammar's comparison-operator
// production assembles the combination, as the matchable substrate design
// calls for.
func lexMatchers() []lexer.Matcher {
	return []lexer.Matcher{
		lexer.NewRegexMatcher("whitespace", `[ \t]+`),
		lexer.NewRegexMatcher("newline", "\r\n|\n|\r"),
		lexer.NewRegexMatcher("inline_comment", `--[^\n]*|#[^\n]*`),
		newBlockCommentMatcher(),
		newDollarQuoteMatcher(),
		lexer.NewRegexMatcher("single_quote", `'([^'\\]|\\.|'')*'`),
		lexer.NewRegexMatcher("double_quote", `"([^"\\]|\\.|"")*"`),
		lexer.NewRegexMatcher("back_quote", "`([^`\\\\]|\\\\.)*`"),
		lexer.NewRegexMatcher("numeric_literal", `\d+\.\d+([eE][+-]?\d+)?|\.\d+([eE][+-]?\d+)?|\d+[eE][+-]?\d+|\d+`),
		lexer.NewStringMatcher("casting_operator", "::"),
		lexer.NewStringMatcher("concat_operator", "||"),
		lexer.NewStringMatcher("like_operator", "~~*"),
		lexer.NewStringMatcher("like_operator", "!~~*"),
		lexer.NewStringMatcher("like_operator", "~~"),
		lexer.NewStringMatcher("like_operator", "!~~"),
		lexer.NewStringMatcher("comma", ","),
		lexer.NewStringMatcher("dot", "."),
		lexer.NewStringMatcher("semicolon", ";"),
		lexer.NewStringMatcher("colon", ":"),
		lexer.NewStringMatcher("start_bracket", "("),
		lexer.NewStringMatcher("end_bracket", ")"),
		lexer.NewStringMatcher("start_square_bracket", "["),
		lexer.NewStringMatcher("end_square_bracket", "]"),
		lexer.NewStringMatcher("start_curly_bracket", "{"),
		lexer.NewStringMatcher("end_curly_bracket", "}"),
		lexer.NewStringMatcher("equals", "="),
		lexer.NewStringMatcher("not_operator", "!"),
		lexer.NewStringMatcher("less_than", "<"),
		lexer.NewStringMatcher("greater_than", ">"),
		lexer.NewStringMatcher("plus", "+"),
		lexer.NewStringMatcher("minus", "-"),
		lexer.NewStringMatcher("star", "*"),
		lexer.NewStringMatcher("divide", "/"),
		lexer.NewStringMatcher("modulo", "%"),
		lexer.NewStringMatcher("tilde", "~"),
		lexer.NewStringMatcher("pipe", "|"),
		lexer.NewStringMatcher("ampersand", "&"),
		lexer.NewRegexMatcher("word", `[a-zA-Z_][a-zA-Z0-9_$]*`),
	}
}

// newBlockCommentMatcher builds a subdividing matcher for "/* ... */"
// comments: the parent regex grabs the whole span, then the subdivider
// splits out embedded newlines (and trimmers strip surrounding whitespace)
// so line counting inside a multi-line comment stays accurate.
func newBlockCommentMatcher() lexer.Matcher {
	return &lexer.SubdividingMatcher{
		Parent:     lexer.NewRegexMatcher("block_comment", `(?s)/\*.*?\*/`),
		Subdivider: lexer.NewRegexMatcher("newline", "\r\n|\n|\r"),
		Trimmers:   []lexer.Matcher{lexer.NewRegexMatcher("whitespace", `[ \t]+`)},
		OuterKind:  "block_comment",
	}
}

// dollarQuoteMatcher hand-rolls PostgreSQL-style $tag$...$tag$ strings
// rather than using a regex, because RE2 (Go's regexp engine) cannot
// express the backreference a faithful pattern would need to ensure the
// closing tag matches the opening one. This is the "two-pass lexer" option
// from the design notes' open question: the opening delimiter is found
// first, its tag extracted, and the matching closing delimiter located by a
// plain string search, with no risk of matching an unrelated $othertag$.
type dollarQuoteMatcher struct{}

func newDollarQuoteMatcher() lexer.Matcher { return dollarQuoteMatcher{} }

func (dollarQuoteMatcher) Name() string { return "dollar_quote" }

func (dollarQuoteMatcher) Match(file *position.TemplatedFile, input string, offset int) ([]segment.Segment, int, bool) {
	if len(input) == 0 || input[0] != '$' {
		return nil, 0, false
	}
	end := strings.IndexByte(input[1:], '$')
	if end < 0 {
		return nil, 0, false
	}
	tag := input[1 : 1+end]
	for _, r := range tag {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return nil, 0, false
		}
	}
	delimiter := "$" + tag + "$"
	bodyStart := len(delimiter)
	closeIdx := strings.Index(input[bodyStart:], delimiter)
	if closeIdx < 0 {
		return nil, 0, false
	}
	total := bodyStart + closeIdx + len(delimiter)
	pos := position.NewMarker(file, offset, offset+total)
	return []segment.Segment{segment.NewLeaf("dollar_quote", input[:total], pos)}, total, true
}
