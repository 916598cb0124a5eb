package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerOperators assembles the multi-character comparison operators from
// the single-character tokens the lexer actually emits (lexer.go
// deliberately does not lex "<=", ">=", "<>", or "!=" as one token each).
func registerOperators(d *dialect.Dialect) {
	d.Register("ComparisonOperatorGrammar", matcher.NewOneOf("ComparisonOperatorGrammar",
		matcher.NewSequence("comparison_operator", matcher.NewTypedParser("less_than"), matcher.NewTypedParser("equals")).WithoutGaps(),
		matcher.NewSequence("comparison_operator", matcher.NewTypedParser("greater_than"), matcher.NewTypedParser("equals")).WithoutGaps(),
		matcher.NewSequence("comparison_operator", matcher.NewTypedParser("less_than"), matcher.NewTypedParser("greater_than")).WithoutGaps(),
		matcher.NewSequence("comparison_operator", matcher.NewTypedParser("not_operator"), matcher.NewTypedParser("equals")).WithoutGaps(),
		matcher.NewTypedParser("equals").Retag("comparison_operator"),
		matcher.NewTypedParser("less_than").Retag("comparison_operator"),
		matcher.NewTypedParser("greater_than").Retag("comparison_operator"),
	))

	d.Register("ArithmeticBinaryOperatorGrammar", matcher.NewOneOf("ArithmeticBinaryOperatorGrammar",
		matcher.NewTypedParser("plus"),
		matcher.NewTypedParser("minus"),
		matcher.NewTypedParser("star"),
		matcher.NewTypedParser("divide"),
		matcher.NewTypedParser("modulo"),
	))

	d.Register("StringBinaryOperatorGrammar", matcher.NewTypedParser("concat_operator"))

	d.Register("BooleanBinaryOperatorGrammar", matcher.NewOneOf("BooleanBinaryOperatorGrammar",
		d.Keyword("AND"),
		d.Keyword("OR"),
	))

	d.Register("SignIndicatorGrammar", matcher.NewRef("SignedSegmentGrammar"))
}
