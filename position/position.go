// Package position describes where a segment of SQL text came from, both in
// the raw source the user wrote and in the templated text the lexer actually
// consumed. The two are the same length and the same bytes unless a future
// templater-aware caller feeds pre-expanded text whose offsets diverge from
// the source.
package position

import "fmt"

// Slice is a half-open byte range [Start, End) into some string.
type Slice struct {
	Start int
	End   int
}

// Len returns the number of bytes spanned by the slice.
func (s Slice) Len() int { return s.End - s.Start }

// TemplatedFile maps a templated string back to the source the user
// authored. Templating expansion itself is out of scope for this module; the
// identity mapping below is the only one constructed in-process, but the
// field exists on Marker so a templater-aware caller can supply a real
// mapping without changing the Segment contract.
type TemplatedFile struct {
	// Source is the original, user-authored text.
	Source string
	// Templated is the text that was actually lexed (== Source for an
	// untemplated file).
	Templated string
	// lineStarts holds the byte offset of the start of each line in
	// Templated, used to derive Line/Column for a given offset.
	lineStarts []int
}

// NewTemplatedFile builds an identity TemplatedFile: one where templated
// offsets equal source offsets. This is the only constructor this module
// needs since it never performs templating itself.
func NewTemplatedFile(source string) *TemplatedFile {
	tf := &TemplatedFile{Source: source, Templated: source}
	tf.lineStarts = []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			tf.lineStarts = append(tf.lineStarts, i+1)
		}
	}
	return tf
}

// LineCol derives the 1-based line and column for a templated-file byte
// offset.
func (tf *TemplatedFile) LineCol(offset int) (line, col int) {
	// Binary search would be more efficient, but files are small enough that
	// a linear scan of the precomputed line starts is simple and provably
	// correct; this is called once per leaf segment at construction time.
	line = 1
	for i, start := range tf.lineStarts {
		if start > offset {
			break
		}
		line = i + 1
	}
	col = offset - tf.lineStarts[line-1] + 1
	return line, col
}

// Marker is the PositionMarker of the data model: a source slice, a
// templated slice, and the derived line/column of the source slice's start.
type Marker struct {
	Source    Slice
	Templated Slice
	Line      int
	Column    int
	File      *TemplatedFile
}

// NewMarker builds a Marker for a templated-file span, assuming an identity
// mapping between source and templated offsets (true for every file this
// module lexes itself).
func NewMarker(file *TemplatedFile, start, end int) Marker {
	line, col := file.LineCol(start)
	return Marker{
		Source:    Slice{Start: start, End: end},
		Templated: Slice{Start: start, End: end},
		Line:      line,
		Column:    col,
		File:      file,
	}
}

// Zero reports whether this marker has never been assigned a span. Segments
// under construction may carry a zero marker transiently.
func (m Marker) Zero() bool { return m.File == nil }

func (m Marker) String() string {
	return fmt.Sprintf("%d:%d", m.Line, m.Column)
}

// Before reports whether m starts no later than other, used to check the
// non-overlapping/non-decreasing sibling invariant.
func (m Marker) Before(other Marker) bool {
	return m.Source.Start <= other.Source.Start
}
