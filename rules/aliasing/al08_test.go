package aliasing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/rules"
	"github.com/sqlglide/sqlglide/rules/aliasing"
	"github.com/sqlglide/sqlglide/segment"
)

// columnRef builds a bare column_reference element naming col, as the
// ANSI grammar would shape it (a single naked_identifier leaf wrapped in a
// column_reference composite, itself wrapped in a select_clause_element).
func columnRef(file *position.TemplatedFile, col string, start int) segment.Segment {
	end := start + len(col)
	ident := segment.NewLeaf("naked_identifier", col, position.NewMarker(file, start, end))
	ref := segment.NewComposite("column_reference", []segment.Segment{ident})
	return segment.NewComposite("select_clause_element", []segment.Segment{ref})
}

func TestAL08FlagsReusedAlias(t *testing.T) {
	file := position.NewTemplatedFile("select foo, foo")
	elements := []segment.Segment{
		columnRef(file, "foo", 7),
		columnRef(file, "foo", 12),
	}
	selectClause := segment.NewComposite("select_clause", elements)

	rule := aliasing.AL08{}
	results := rule.Eval(rules.Context{Segment: selectClause})

	require.Len(t, results, 1)
	require.Equal(t, "Reuse of column alias foo from line 1.", results[0].Description)
}

func TestAL08AllowsDistinctAliases(t *testing.T) {
	file := position.NewTemplatedFile("select foo, bar")
	elements := []segment.Segment{
		columnRef(file, "foo", 7),
		columnRef(file, "bar", 12),
	}
	selectClause := segment.NewComposite("select_clause", elements)

	rule := aliasing.AL08{}
	results := rule.Eval(rules.Context{Segment: selectClause})
	require.Empty(t, results)
}

func TestAL08IsCaseAndQuoteInsensitiveOnTheKey(t *testing.T) {
	file := position.NewTemplatedFile(`select "foo", FOO`)
	firstIdent := segment.NewLeaf("quoted_identifier", `"foo"`, position.NewMarker(file, 7, 12))
	first := segment.NewComposite("select_clause_element", []segment.Segment{
		segment.NewComposite("column_reference", []segment.Segment{firstIdent}),
	})
	secondIdent := segment.NewLeaf("naked_identifier", "FOO", position.NewMarker(file, 14, 17))
	second := segment.NewComposite("select_clause_element", []segment.Segment{
		segment.NewComposite("column_reference", []segment.Segment{secondIdent}),
	})
	selectClause := segment.NewComposite("select_clause", []segment.Segment{first, second})

	rule := aliasing.AL08{}
	results := rule.Eval(rules.Context{Segment: selectClause})
	require.Len(t, results, 1)
}
