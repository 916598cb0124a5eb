package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerFunctions installs function-call syntax: a name, immediately
// followed (no gap) by a parenthesised, comma-delimited argument list.
func registerFunctions(d *dialect.Dialect) {
	d.Register("FunctionNameSegment", matcher.NewRef("SingleIdentifierGrammar"))

	d.Register("FunctionContentsGrammar", matcher.NewDelimited("function_contents",
		matcher.NewOneOf("function_argument", matcher.NewRef("WildcardExpressionSegment"), matcher.NewRef("ExpressionSegment")),
		matcher.NewTypedParser("comma"),
	))

	d.Register("FunctionSegment", matcher.NewSequence("function",
		matcher.NewRef("FunctionNameSegment"),
		matcher.NewBracketed("function_brackets",
			matcher.NewAnyNumberOf("", matcher.NewRef("FunctionContentsGrammar")).WithTimes(0, 1),
			"round"),
	).WithoutGaps())
}
