package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

func TestChildOverridesProductionByName(t *testing.T) {
	parent := dialect.New("parent", "Root")
	parent.Register("Greeting", matcher.NewStringParser("hello", "hello"))
	require.NoError(t, parent.Expand())

	child := dialect.NewChild(parent, "child")
	child.Register("Greeting", matcher.NewStringParser("hi", "hi"))
	require.NoError(t, child.Expand())

	parentGrammar, err := parent.Ref("Greeting")
	require.NoError(t, err)
	require.Equal(t, "StringParser(hello)", parentGrammar.Name())

	childGrammar, err := child.Ref("Greeting")
	require.NoError(t, err)
	require.Equal(t, "StringParser(hi)", childGrammar.Name())
}

func TestExtendSetAccumulatesAcrossChild(t *testing.T) {
	parent := dialect.New("parent", "Root")
	parent.ExtendSet("reserved_keywords", "SELECT", "FROM")
	child := dialect.NewChild(parent, "child")
	child.ExtendSet("reserved_keywords", "PRAGMA")

	set := child.Set("reserved_keywords")
	require.True(t, set.Contains("SELECT"))
	require.True(t, set.Contains("PRAGMA"))
	require.False(t, parent.Set("reserved_keywords").Contains("PRAGMA"))
}

func TestRefBeforeExpandIsNotExpandedError(t *testing.T) {
	d := dialect.New("unexpanded", "Root")
	d.Register("Thing", matcher.NewNothing())
	_, err := d.Ref("Thing")
	require.ErrorIs(t, err, dialect.ErrNotExpanded)
}

func TestGeneratorRunsAtExpand(t *testing.T) {
	d := dialect.New("gen", "Root")
	d.RegisterGenerator(dialect.Generator{
		Name: "Built",
		Build: func(d *dialect.Dialect) matcher.Matchable {
			return matcher.NewStringParser("built", "ok")
		},
	})
	require.NoError(t, d.Expand())
	require.NoError(t, d.Expand()) // idempotent

	g, err := d.Ref("Built")
	require.NoError(t, err)
	require.Equal(t, "StringParser(ok)", g.Name())
}

func TestGeneratorCycleIsDetected(t *testing.T) {
	d := dialect.New("cyclic", "Root")
	d.RegisterGenerator(dialect.Generator{Name: "A", DependsOn: []string{"B"}, Build: func(d *dialect.Dialect) matcher.Matchable { return matcher.NewNothing() }})
	d.RegisterGenerator(dialect.Generator{Name: "B", DependsOn: []string{"A"}, Build: func(d *dialect.Dialect) matcher.Matchable { return matcher.NewNothing() }})
	require.Error(t, d.Expand())
}
