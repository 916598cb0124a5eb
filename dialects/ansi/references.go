package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerReferences installs the dotted-identifier-path productions: a
// column, object, or table reference is just a SingleIdentifierGrammar
// delimited by dots, with the wildcard variant additionally allowing a bare
// "*" as its final element.
func registerReferences(d *dialect.Dialect) {
	d.Register("ObjectReferenceDelimiterGrammar", matcher.NewTypedParser("dot"))

	d.Register("ObjectReferenceSegment", matcher.NewDelimited("object_reference",
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewRef("ObjectReferenceDelimiterGrammar"),
	).WithMaxDelimiters(0))

	d.Register("ColumnReferenceSegment", matcher.NewDelimited("column_reference",
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewRef("ObjectReferenceDelimiterGrammar"),
	))

	d.Register("TableReferenceSegment", matcher.NewDelimited("table_reference",
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewRef("ObjectReferenceDelimiterGrammar"),
	))

	d.Register("WildcardExpressionSegment", matcher.NewSequence("wildcard_expression",
		matcher.NewAnyNumberOf("", matcher.NewSequence("wildcard_qualifier",
			matcher.NewRef("SingleIdentifierGrammar"),
			matcher.NewRef("ObjectReferenceDelimiterGrammar"),
		).WithoutGaps()).WithTimes(0, 0),
		matcher.NewTypedParser("star"),
	).WithoutGaps())

	d.Register("WildcardIdentifierSegment", matcher.NewRef("WildcardExpressionSegment"))

	d.Register("AliasExpressionSegment", matcher.NewSequence("alias_expression",
		matcher.NewAnyNumberOf("", d.Keyword("AS")).WithTimes(0, 1),
		matcher.NewRef("SingleIdentifierGrammar"),
	))
}
