package sqlglide_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide"
	"github.com/sqlglide/sqlglide/parsectx"
	"github.com/sqlglide/sqlglide/rules"
	"github.com/sqlglide/sqlglide/rules/aliasing"
	"github.com/sqlglide/sqlglide/segment"
)

func TestParseSimpleSelectRoundTrips(t *testing.T) {
	source := "SELECT a FROM t;"
	parsed, err := sqlglide.Parse(source, "ansi", parsectx.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, parsed.LexErrors)
	require.Empty(t, parsed.ParseErrors)
	require.Equal(t, source, parsed.Tree.Raw())
}

func TestParseUnknownDialectIsAGoError(t *testing.T) {
	_, err := sqlglide.Parse("SELECT 1", "nosuchdialect", parsectx.DefaultConfig())
	require.Error(t, err)
}

func TestLintFlagsReusedAliasOverRealGrammar(t *testing.T) {
	source := "SELECT foo, foo FROM widgets;"
	violations, err := sqlglide.Lint(source, "ansi", []rules.Rule{aliasing.AL08{}}, parsectx.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.Equal(t, "AL08", violations[0].Code)
}

func TestParsePreservesEveryByteEvenWithTrailingGarbage(t *testing.T) {
	source := "SELECT a FROM t @@@"
	parsed, err := sqlglide.Parse(source, "ansi", parsectx.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, source, parsed.Tree.Raw())

	var leafKinds []string
	for _, leaf := range segment.Leaves(parsed.Tree) {
		leafKinds = append(leafKinds, leaf.Kind())
	}
	require.Contains(t, leafKinds, "unlexable")
}
