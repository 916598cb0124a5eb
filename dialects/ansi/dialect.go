// Package ansi implements the ANSI SQL base dialect: keyword sets, lexer
// matchers, bracket pairs, and the full grammar tree from naked identifiers
// up through FileSegment. Other dialects (package dialects/sqlite) derive
// from it with dialect.NewChild rather than repeating this assembly.
package ansi

import "github.com/sqlglide/sqlglide/dialect"

// Build assembles and expands the ANSI dialect, ready for Ref resolution
// and parsing.
func Build() *dialect.Dialect {
	d := dialect.New("ansi", "FileSegment")

	d.ExtendSet("reserved_keywords", reservedKeywords...)
	d.ExtendSet("unreserved_keywords", unreservedKeywords...)
	d.ExtendSet("bare_functions", bareFunctions...)
	d.ExtendSet("datetime_units", datetimeUnits...)
	d.ExtendSet("date_part_function_name", datePartFunctionNames...)
	d.ExtendSet("value_table_functions", valueTableFunctions...)

	for _, m := range lexMatchers() {
		d.AddLexMatcher(m)
	}

	d.Register("StartBracketSegment", newBracketParser("start_bracket"))
	d.Register("EndBracketSegment", newBracketParser("end_bracket"))
	d.Register("StartSquareBracketSegment", newBracketParser("start_square_bracket"))
	d.Register("EndSquareBracketSegment", newBracketParser("end_square_bracket"))
	d.Register("StartCurlyBracketSegment", newBracketParser("start_curly_bracket"))
	d.Register("EndCurlyBracketSegment", newBracketParser("end_curly_bracket"))

	d.AddBracketPair("round", "StartBracketSegment", "EndBracketSegment", true)
	d.AddBracketPair("square", "StartSquareBracketSegment", "EndSquareBracketSegment", false)
	d.AddBracketPair("curly", "StartCurlyBracketSegment", "EndCurlyBracketSegment", false)

	registerIdentifierGenerators(d)
	registerLiterals(d)
	registerReferences(d)
	registerOperators(d)
	registerFunctions(d)
	registerExpressionGenerators(d)
	registerClauses(d)
	registerStatements(d)

	if err := d.Expand(); err != nil {
		// Every generator dependency here is declared against names this
		// file itself registers; a cycle or missing Build would be a
		// programming mistake in this package, not a user-input condition.
		panic(err)
	}
	return d
}
