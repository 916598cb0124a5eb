package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerLiterals installs the leaf-level literal grammars. Most are
// concrete immediately; BooleanLiteralGrammar resolves the spec's open
// question in favour of spec-faithful behaviour (accept both TRUE and
// FALSE) rather than reproducing the upstream OneOf(True, True) typo.
func registerLiterals(d *dialect.Dialect) {
	d.Register("NumericLiteralSegment", matcher.NewTypedParser("numeric_literal").Retag("numeric_literal"))
	d.Register("QuotedLiteralSegment", matcher.NewTypedParser("single_quote").Retag("quoted_literal"))
	d.Register("QuotedLiteralSegmentDollar", matcher.NewTypedParser("dollar_quote").Retag("quoted_literal"))

	d.Register("BooleanLiteralGrammar", matcher.NewOneOf("BooleanLiteralGrammar",
		d.Keyword("TRUE"),
		d.Keyword("FALSE"),
	))
	d.Register("NullLiteralSegment", d.Keyword("NULL"))
	d.Register("NanLiteralSegment", d.Keyword("NAN"))

	d.Register("SignedSegmentGrammar", matcher.NewOneOf("SignedSegmentGrammar",
		matcher.NewTypedParser("plus"),
		matcher.NewTypedParser("minus"),
	))
	d.Register("QualifiedNumericLiteralSegment", matcher.NewSequence("qualified_numeric_literal",
		matcher.NewAnyNumberOf("", matcher.NewRef("SignedSegmentGrammar")).WithTimes(0, 1),
		matcher.NewRef("NumericLiteralSegment"),
	).WithoutGaps())

	d.Register("DateTimeLiteralGrammar", matcher.NewSequence("datetime_literal",
		matcher.NewOneOf("datetime_literal_kind", d.Keyword("DATE"), d.Keyword("TIME"), d.Keyword("TIMESTAMP")),
		matcher.NewRef("QuotedLiteralSegment"),
	))

	d.Register("LiteralGrammar", matcher.NewOneOf("LiteralGrammar",
		matcher.NewRef("QuotedLiteralSegment"),
		matcher.NewRef("NumericLiteralSegment"),
		matcher.NewRef("BooleanLiteralGrammar"),
		matcher.NewRef("NullLiteralSegment"),
		matcher.NewRef("NanLiteralSegment"),
		matcher.NewRef("DateTimeLiteralGrammar"),
		matcher.NewRef("ArrayLiteralSegment"),
		matcher.NewRef("ObjectLiteralSegment"),
	))

	d.Register("ArrayLiteralSegment", matcher.NewSequence("array_literal",
		matcher.NewAnyNumberOf("", d.Keyword("ARRAY")).WithTimes(0, 1),
		matcher.NewBracketed("array_literal_brackets",
			matcher.NewDelimited("array_literal_elements", matcher.NewRef("ExpressionSegment"), matcher.NewTypedParser("comma")),
			"square"),
	))

	d.Register("ObjectLiteralSegment", matcher.NewSequence("object_literal",
		matcher.NewAnyNumberOf("", d.Keyword("STRUCT"), d.Keyword("OBJECT")).WithTimes(0, 1),
		matcher.NewBracketed("object_literal_brackets",
			matcher.NewDelimited("object_literal_elements", matcher.NewRef("ObjectLiteralElementSegment"), matcher.NewTypedParser("comma")).WithAllowTrailing(),
			"curly"),
	))
	d.Register("ObjectLiteralElementSegment", matcher.NewSequence("object_literal_element",
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewTypedParser("colon"),
		matcher.NewRef("ExpressionSegment"),
	))

	// Stub slots the design notes require to exist even when empty, so a
	// child dialect may populate them without the base dialect needing to
	// special-case "is this slot populated".
	d.Register("StructTypeSegment", matcher.NewNothing())
	d.Register("ArrayTypeSegment", matcher.NewNothing())
}
