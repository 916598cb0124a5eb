package position_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlglide/sqlglide/position"
)

func TestNewTemplatedFileLineCol(t *testing.T) {
	file := position.NewTemplatedFile("select 1\nfrom t\r\nwhere x")

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{7, 1, 8},
		{9, 2, 1},
		{17, 3, 1},
	}
	for _, tt := range tests {
		line, col := file.LineCol(tt.offset)
		require.Equal(t, tt.line, line, "offset %d line", tt.offset)
		require.Equal(t, tt.col, col, "offset %d col", tt.offset)
	}
}

func TestMarkerBefore(t *testing.T) {
	file := position.NewTemplatedFile("abcdef")
	a := position.NewMarker(file, 0, 2)
	b := position.NewMarker(file, 2, 4)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
}
