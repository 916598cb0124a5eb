package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerClauses installs the statement-level clause grammars and the
// terminator productions that let a Greedy-mode clause stop at the next
// clause's keyword instead of swallowing it.
func registerClauses(d *dialect.Dialect) {
	d.Register("SelectClauseTerminatorGrammar", matcher.NewOneOf("SelectClauseTerminatorGrammar",
		d.Keyword("FROM"), d.Keyword("WHERE"), d.Keyword("GROUP"), d.Keyword("ORDER"),
		d.Keyword("LIMIT"), d.Keyword("HAVING"), matcher.NewTypedParser("semicolon"),
	))

	d.Register("SelectClauseElementSegment", matcher.NewSequence("select_clause_element",
		matcher.NewOneOf("select_clause_element_content",
			matcher.NewRef("WildcardExpressionSegment"),
			matcher.NewRef("ExpressionSegment"),
		),
		matcher.NewAnyNumberOf("", matcher.NewRef("AliasExpressionSegment")).WithTimes(0, 1),
	))

	d.Register("SelectClauseSegment", matcher.NewSequence("select_clause",
		d.Keyword("SELECT"),
		matcher.NewAnyNumberOf("", d.Keyword("DISTINCT"), d.Keyword("ALL")).WithTimes(0, 1),
		matcher.NewDelimited("select_clause_elements",
			matcher.NewRef("SelectClauseElementSegment"), matcher.NewTypedParser("comma")),
	).WithTerminators(matcher.NewRef("SelectClauseTerminatorGrammar")).WithMode(matcher.GreedyOnceStarted))

	d.Register("FromClauseTerminatorGrammar", matcher.NewOneOf("FromClauseTerminatorGrammar",
		d.Keyword("WHERE"), d.Keyword("GROUP"), d.Keyword("ORDER"), d.Keyword("LIMIT"),
		d.Keyword("HAVING"), matcher.NewTypedParser("semicolon"),
	))

	d.Register("JoinKeywordsGrammar", matcher.NewOneOf("JoinKeywordsGrammar",
		matcher.NewSequence("join_keyword", d.Keyword("INNER"), d.Keyword("JOIN")),
		matcher.NewSequence("join_keyword", d.Keyword("LEFT"), matcher.NewAnyNumberOf("", d.Keyword("OUTER")).WithTimes(0, 1), d.Keyword("JOIN")),
		matcher.NewSequence("join_keyword", d.Keyword("RIGHT"), matcher.NewAnyNumberOf("", d.Keyword("OUTER")).WithTimes(0, 1), d.Keyword("JOIN")),
		matcher.NewSequence("join_keyword", d.Keyword("FULL"), matcher.NewAnyNumberOf("", d.Keyword("OUTER")).WithTimes(0, 1), d.Keyword("JOIN")),
		d.Keyword("JOIN"),
	))

	d.Register("JoinOnConditionGrammar", matcher.NewSequence("join_on_condition",
		d.Keyword("ON"),
		matcher.NewRef("ExpressionSegment"),
	))

	d.Register("FromExpressionElementSegment", matcher.NewSequence("from_expression_element",
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("AliasExpressionSegment")).WithTimes(0, 1),
	))

	d.Register("JoinClauseSegment", matcher.NewSequence("join_clause",
		matcher.NewRef("JoinKeywordsGrammar"),
		matcher.NewRef("FromExpressionElementSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("JoinOnConditionGrammar")).WithTimes(0, 1),
	))

	d.Register("FromClauseSegment", matcher.NewSequence("from_clause",
		d.Keyword("FROM"),
		matcher.NewDelimited("from_expression", matcher.NewRef("FromExpressionElementSegment"), matcher.NewTypedParser("comma")),
		matcher.NewAnyNumberOf("", matcher.NewRef("JoinClauseSegment")).WithTimes(0, 0),
	).WithTerminators(matcher.NewRef("FromClauseTerminatorGrammar")).WithMode(matcher.GreedyOnceStarted))

	d.Register("WhereClauseTerminatorGrammar", matcher.NewOneOf("WhereClauseTerminatorGrammar",
		d.Keyword("GROUP"), d.Keyword("ORDER"), d.Keyword("LIMIT"), d.Keyword("HAVING"),
		matcher.NewTypedParser("semicolon"),
	))

	d.Register("WhereClauseSegment", matcher.NewSequence("where_clause",
		d.Keyword("WHERE"),
		matcher.NewRef("ExpressionSegment"),
	).WithTerminators(matcher.NewRef("WhereClauseTerminatorGrammar")).WithMode(matcher.GreedyOnceStarted))

	d.Register("GroupByClauseTerminatorGrammar", matcher.NewOneOf("GroupByClauseTerminatorGrammar",
		d.Keyword("ORDER"), d.Keyword("LIMIT"), d.Keyword("HAVING"), matcher.NewTypedParser("semicolon"),
	))

	d.Register("GroupByClauseSegment", matcher.NewSequence("groupby_clause",
		d.Keyword("GROUP"), d.Keyword("BY"),
		matcher.NewDelimited("groupby_clause_elements", matcher.NewRef("ColumnReferenceSegment"), matcher.NewTypedParser("comma")),
	).WithTerminators(matcher.NewRef("GroupByClauseTerminatorGrammar")).WithMode(matcher.GreedyOnceStarted))

	d.Register("HavingClauseSegment", matcher.NewSequence("having_clause",
		d.Keyword("HAVING"),
		matcher.NewRef("ExpressionSegment"),
	).WithTerminators(matcher.NewOneOf("HavingClauseTerminatorGrammar", d.Keyword("ORDER"), d.Keyword("LIMIT"), matcher.NewTypedParser("semicolon"))).
		WithMode(matcher.GreedyOnceStarted))

	d.Register("OrderByClauseSegment", matcher.NewSequence("orderby_clause",
		d.Keyword("ORDER"), d.Keyword("BY"),
		matcher.NewDelimited("orderby_clause_elements", matcher.NewSequence("orderby_clause_element",
			matcher.NewRef("ColumnReferenceSegment"),
			matcher.NewAnyNumberOf("", matcher.NewOneOf("order_direction", d.Keyword("ASC"), d.Keyword("DESC"))).WithTimes(0, 1),
		), matcher.NewTypedParser("comma")),
	).WithTerminators(matcher.NewOneOf("OrderByClauseTerminatorGrammar", d.Keyword("LIMIT"), matcher.NewTypedParser("semicolon"))).
		WithMode(matcher.GreedyOnceStarted))

	d.Register("LimitClauseSegment", matcher.NewSequence("limit_clause",
		d.Keyword("LIMIT"),
		matcher.NewRef("NumericLiteralSegment"),
		matcher.NewAnyNumberOf("", matcher.NewSequence("limit_offset", d.Keyword("OFFSET"), matcher.NewRef("NumericLiteralSegment"))).WithTimes(0, 1),
	))
}
