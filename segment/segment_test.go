package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/segment"
)

func TestCompositeRawIsConcatOfChildren(t *testing.T) {
	file := position.NewTemplatedFile("select 1")
	a := segment.NewLeaf("keyword", "select", position.NewMarker(file, 0, 6))
	b := segment.NewLeaf("whitespace", " ", position.NewMarker(file, 6, 7))
	c := segment.NewLeaf("numeric_literal", "1", position.NewMarker(file, 7, 8))

	comp := segment.NewComposite("select_statement", []segment.Segment{a, b, c})
	require.Equal(t, "select 1", comp.Raw())
	require.False(t, comp.IsLeaf())
	require.Len(t, comp.Children(), 3)
}

func TestRetagPreservesRawAndPosition(t *testing.T) {
	file := position.NewTemplatedFile("select")
	word := segment.NewLeaf("word", "select", position.NewMarker(file, 0, 6))
	kw := word.Retag("keyword")

	require.Equal(t, "select", kw.Raw())
	require.Equal(t, word.Position(), kw.Position())
	require.True(t, segment.HasClass(kw, "keyword"))
	require.NotEqual(t, word.ID(), kw.ID())
}

func TestSequentialIDGeneratorIsDeterministic(t *testing.T) {
	original := segment.DefaultIDGenerator
	segment.SetIDGenerator(segment.NewSequentialIDGenerator())
	defer segment.SetIDGenerator(original)

	file := position.NewTemplatedFile("x")
	a := segment.NewLeaf("word", "x", position.NewMarker(file, 0, 1))
	b := segment.NewLeaf("word", "x", position.NewMarker(file, 0, 1))
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, "seg-1", a.ID())
	require.Equal(t, "seg-2", b.ID())
}

func TestWalkVisitsPreOrder(t *testing.T) {
	file := position.NewTemplatedFile("ab")
	a := segment.NewLeaf("word", "a", position.NewMarker(file, 0, 1))
	b := segment.NewLeaf("word", "b", position.NewMarker(file, 1, 2))
	comp := segment.NewComposite("pair", []segment.Segment{a, b})

	var kinds []string
	segment.Walk(comp, func(s segment.Segment) bool {
		kinds = append(kinds, s.Kind())
		return true
	})
	require.Equal(t, []string{"pair", "word", "word"}, kinds)
}

func TestLeavesFlattensNestedComposites(t *testing.T) {
	file := position.NewTemplatedFile("ab")
	a := segment.NewLeaf("word", "a", position.NewMarker(file, 0, 1))
	b := segment.NewLeaf("word", "b", position.NewMarker(file, 1, 2))
	inner := segment.NewComposite("inner", []segment.Segment{a, b})
	outer := segment.NewComposite("outer", []segment.Segment{inner})

	require.Equal(t, []segment.Segment{a, b}, segment.Leaves(outer))
}
