package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/lexer"
)

func matchers() []lexer.Matcher {
	return []lexer.Matcher{
		lexer.NewRegexMatcher("whitespace", `[ \t]+`),
		lexer.NewStringMatcher("comma", ","),
		lexer.NewStringMatcher("start_bracket", "("),
		lexer.NewStringMatcher("end_bracket", ")"),
		lexer.NewRegexMatcher("numeric_literal", `\d+`),
		lexer.NewRegexMatcher("word", `[a-zA-Z_][a-zA-Z0-9_]*`),
	}
}

func TestLexRoundTripsEveryByte(t *testing.T) {
	source := "select foo, 1 (bar)"
	segs, errs := lexer.Lex(source, matchers())
	require.Empty(t, errs)

	var rebuilt string
	for _, s := range segs {
		rebuilt += s.Raw()
	}
	require.Equal(t, source, rebuilt)
	require.Equal(t, "end_of_file", segs[len(segs)-1].Kind())
}

func TestLexEmitsUnlexableForUnknownCharacter(t *testing.T) {
	segs, errs := lexer.Lex("foo @ bar", matchers())
	require.Len(t, errs, 1)
	require.Equal(t, '@', errs[0].Char)

	var kinds []string
	for _, s := range segs {
		kinds = append(kinds, s.Kind())
	}
	require.Contains(t, kinds, "unlexable")
}

func TestLexOrdersMoreSpecificMatcherFirst(t *testing.T) {
	ms := []lexer.Matcher{
		lexer.NewStringMatcher("casting_operator", "::"),
		lexer.NewStringMatcher("colon", ":"),
	}
	segs, errs := lexer.Lex("::", ms)
	require.Empty(t, errs)
	require.Equal(t, "casting_operator", segs[0].Kind())
}
