// Package lexer tokenises SQL source into a flat, ordered sequence of leaf
// segments. It never loses source bytes: on failure to match a single
// character it emits an "unlexable" leaf for that character and continues,
// collecting a LexError rather than aborting.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/segment"
)

// Matcher tries to consume a prefix of input at the given templated offset.
// On success it returns the segments it produced (usually one, more for a
// subdividing matcher), the number of bytes of input it consumed, and
// ok=true.
type Matcher interface {
	// Name identifies the matcher for error messages and dialect
	// introspection.
	Name() string
	Match(file *position.TemplatedFile, input string, offset int) (segs []segment.Segment, consumed int, ok bool)
}

// LexError records a span of input no matcher accepted.
type LexError struct {
	Span position.Marker
	Char rune
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s: unlexable character %q", e.Span, e.Char)
}

// Lex runs matchers in order at each cursor position until the input is
// exhausted, always returning a segment stream whose concatenation equals
// source, plus a terminal end_of_file marker segment and any LexErrors
// collected along the way.
func Lex(source string, matchers []Matcher) ([]segment.Segment, []LexError) {
	file := position.NewTemplatedFile(source)
	var segs []segment.Segment
	var errs []LexError

	offset := 0
	remaining := source
	for len(remaining) > 0 {
		matched := false
		for _, m := range matchers {
			produced, consumed, ok := m.Match(file, remaining, offset)
			if !ok || consumed == 0 {
				continue
			}
			segs = append(segs, produced...)
			remaining = remaining[consumed:]
			offset += consumed
			matched = true
			break
		}
		if matched {
			continue
		}

		// No matcher accepted a single character: emit an unlexable leaf
		// and advance by one rune, never stalling and never losing bytes.
		r, size := decodeRune(remaining)
		pos := position.NewMarker(file, offset, offset+size)
		segs = append(segs, segment.NewLeaf("unlexable", remaining[:size], pos))
		errs = append(errs, LexError{Span: pos, Char: r})
		remaining = remaining[size:]
		offset += size
	}

	eofPos := position.NewMarker(file, offset, offset)
	segs = append(segs, segment.NewLeaf("end_of_file", "", eofPos))
	return segs, errs
}

// decodeRune returns the first rune of s and its byte width, falling back to
// a single byte for invalid UTF-8 so the lexer always makes progress.
func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		size = 1
	}
	return r, size
}
