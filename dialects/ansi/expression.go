package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerExpressionGenerators installs the expression grammar with each
// binary precedence level split from a left-recursive "expr := expr op
// expr | atom" template, which a top-down combinator parser can't run
// directly (it would try to match its own production at the start of its
// own alternative set and loop forever). Each level instead matches one
// operand of the level below, then an AnyNumberOf of (operator, next
// operand) pairs: the repetition is a loop inside one Match call, not a Ref
// back to the level's own production, so a thousand-term AND chain costs
// one stack frame per level rather than one per term.
//
// Levels, loosest binding first: A (boolean AND/OR, comparison) wraps B
// (arithmetic + - * / % and || concat, all at one level) wraps C (unary
// +/-/NOT) wraps D (atoms: literals, references, bracketed expressions,
// function calls).
func registerExpressionGenerators(d *dialect.Dialect) {
	d.RegisterGenerator(dialect.Generator{
		Name: "Expression_D_Grammar",
		Build: func(d *dialect.Dialect) matcher.Matchable {
			return matcher.NewOneOf("Expression_D_Grammar",
				matcher.NewRef("LiteralGrammar"),
				matcher.NewRef("FunctionSegment"),
				matcher.NewBracketed("bracketed_expression", matcher.NewRef("ExpressionSegment"), "round"),
				matcher.NewRef("ColumnReferenceSegment"),
			)
		},
	})

	d.RegisterGenerator(dialect.Generator{
		Name:      "Expression_C_Grammar",
		DependsOn: []string{"Expression_D_Grammar"},
		Build: func(d *dialect.Dialect) matcher.Matchable {
			return matcher.NewOneOf("Expression_C_Grammar",
				matcher.NewSequence("unary_expression", d.Keyword("NOT"), matcher.NewRef("Expression_C_Grammar")),
				matcher.NewSequence("signed_expression", matcher.NewRef("SignedSegmentGrammar"), matcher.NewRef("Expression_C_Grammar")).WithoutGaps(),
				matcher.NewRef("Expression_D_Grammar"),
			)
		},
	})

	d.RegisterGenerator(dialect.Generator{
		Name:      "Expression_B_Grammar",
		DependsOn: []string{"Expression_C_Grammar"},
		Build: func(d *dialect.Dialect) matcher.Matchable {
			tailPair := matcher.NewSequence("binary_operator_operand",
				matcher.NewOneOf("expression_b_operator",
					matcher.NewRef("ArithmeticBinaryOperatorGrammar"),
					matcher.NewRef("StringBinaryOperatorGrammar"),
				),
				matcher.NewRef("Expression_C_Grammar"),
			)
			chain := matcher.NewSequence("binary_expression",
				matcher.NewRef("Expression_C_Grammar"),
				matcher.NewAnyNumberOf("binary_expression_tail", tailPair).WithTimes(1, 0),
			)
			return matcher.NewOneOf("Expression_B_Grammar", chain, matcher.NewRef("Expression_C_Grammar"))
		},
	})

	d.RegisterGenerator(dialect.Generator{
		Name:      "Expression_A_Grammar",
		DependsOn: []string{"Expression_B_Grammar"},
		Build: func(d *dialect.Dialect) matcher.Matchable {
			tailPair := matcher.NewSequence("binary_operator_operand",
				matcher.NewOneOf("expression_a_operator",
					matcher.NewRef("ComparisonOperatorGrammar"),
					matcher.NewRef("BooleanBinaryOperatorGrammar"),
					d.Keyword("LIKE"),
					d.Keyword("IN"),
				),
				matcher.NewRef("Expression_B_Grammar"),
			)
			chain := matcher.NewSequence("binary_expression",
				matcher.NewRef("Expression_B_Grammar"),
				matcher.NewAnyNumberOf("binary_expression_tail", tailPair).WithTimes(1, 0),
			)
			return matcher.NewOneOf("Expression_A_Grammar",
				chain,
				matcher.NewSequence("is_expression",
					matcher.NewRef("Expression_B_Grammar"),
					d.Keyword("IS"),
					matcher.NewAnyNumberOf("", d.Keyword("NOT")).WithTimes(0, 1),
					matcher.NewRef("Expression_B_Grammar"),
				),
				matcher.NewRef("Expression_B_Grammar"),
			)
		},
	})

	d.Register("ExpressionSegment", matcher.NewRef("Expression_A_Grammar"))

	// Open-question stubs: collation and null-test grammars are named by the
	// expression productions above in the original system but have no
	// syntax of their own distinct from a keyword sequence a caller hasn't
	// asked this module to recognise yet.
	d.Register("IsNullGrammar", matcher.NewNothing())
	d.Register("NotNullGrammar", matcher.NewNothing())
	d.Register("CollateGrammar", matcher.NewNothing())
}
