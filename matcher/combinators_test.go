package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/lexer"
	"github.com/sqlglide/sqlglide/matcher"
	"github.com/sqlglide/sqlglide/parsectx"
	"github.com/sqlglide/sqlglide/segment"
)

func testLexMatchers() []lexer.Matcher {
	return []lexer.Matcher{
		lexer.NewRegexMatcher("whitespace", `[ \t]+`),
		lexer.NewStringMatcher("comma", ","),
		lexer.NewStringMatcher("start_bracket", "("),
		lexer.NewStringMatcher("end_bracket", ")"),
		lexer.NewRegexMatcher("word", `[a-zA-Z_][a-zA-Z0-9_]*`),
	}
}

func buildTestDialect() *dialect.Dialect {
	d := dialect.New("test", "Root")
	for _, m := range testLexMatchers() {
		d.AddLexMatcher(m)
	}
	d.AddBracketPair("round", "StartBracket", "EndBracket", true)
	d.Register("StartBracket", matcher.NewTypedParser("start_bracket"))
	d.Register("EndBracket", matcher.NewTypedParser("end_bracket"))

	d.Register("Word", matcher.NewTypedParser("word"))
	d.Register("Greeting", matcher.NewSequence("greeting",
		matcher.NewStringParser("hello_kw", "hello").WithSourceKinds("word"),
		matcher.NewRef("Word"),
	))
	d.Register("LongOrShort", matcher.NewOneOf("LongOrShort",
		matcher.NewRef("Word"),
		matcher.NewSequence("two_words", matcher.NewRef("Word"), matcher.NewRef("Word")),
	))
	d.Register("WordList", matcher.NewDelimited("word_list", matcher.NewRef("Word"), matcher.NewTypedParser("comma")))
	d.Register("Bracketed", matcher.NewBracketed("bracketed", matcher.NewRef("WordList"), "round"))

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}

func TestSequenceMatchesInOrder(t *testing.T) {
	d := buildTestDialect()
	segs, errs := lexer.Lex("hello world", d.LexMatchers())
	require.Empty(t, errs)

	ctx := parsectx.New(d, parsectx.DefaultConfig())
	greeting, err := d.Ref("Greeting")
	require.NoError(t, err)

	result := greeting.Match(ctx, segs)
	require.True(t, result.HasMatch())
	require.Equal(t, "hello world", result.Matched[0].Raw())
}

func TestOneOfPrefersLongerMatch(t *testing.T) {
	d := buildTestDialect()
	segs, errs := lexer.Lex("foo bar", d.LexMatchers())
	require.Empty(t, errs)

	ctx := parsectx.New(d, parsectx.DefaultConfig())
	grammar, err := d.Ref("LongOrShort")
	require.NoError(t, err)

	result := grammar.Match(ctx, segs)
	require.True(t, result.HasMatch())
	require.Equal(t, "foo bar", result.Matched[0].Raw())
}

func TestDelimitedMatchesCommaSeparatedWords(t *testing.T) {
	d := buildTestDialect()
	segs, errs := lexer.Lex("a, b, c", d.LexMatchers())
	require.Empty(t, errs)

	ctx := parsectx.New(d, parsectx.DefaultConfig())
	grammar, err := d.Ref("WordList")
	require.NoError(t, err)

	result := grammar.Match(ctx, segs)
	require.True(t, result.HasMatch())
	require.Equal(t, "a, b, c", result.Matched[0].Raw())
}

func TestBracketedUsesPrePairedSpan(t *testing.T) {
	d := buildTestDialect()
	segs, errs := lexer.Lex("(a, b)", d.LexMatchers())
	require.Empty(t, errs)

	ctx := parsectx.New(d, parsectx.DefaultConfig())
	ctx.SetBracketPairing(matcher.PairBrackets(segs, d.BracketPairs(), func(s segment.Segment) (string, bool, bool) {
		switch s.Kind() {
		case "start_bracket":
			return "round", true, false
		case "end_bracket":
			return "round", false, true
		}
		return "", false, false
	}))

	grammar, err := d.Ref("Bracketed")
	require.NoError(t, err)

	result := grammar.Match(ctx, segs)
	require.True(t, result.HasMatch())
	require.Equal(t, "(a, b)", result.Matched[0].Raw())
}
