package matcher

import (
	"github.com/sqlglide/sqlglide/segment"
)

// Sequence matches each of its elements in order, permitting gaps
// (whitespace/comments) between them unless AllowGaps is false. Reaching one
// of its Terminators (or one inherited from an enclosing Sequence) at a child
// boundary ends the sequence without failure once at least one element has
// matched, whatever its ParseMode; before that it is a failed match.
// ParseMode only governs what happens when an element fails to match (see
// recoverOrFail).
type Sequence struct {
	Elements    []Matchable
	AllowGaps   bool
	Terminators []Matchable
	Mode        ParseMode
	Kind        string
	SeqName     string
}

// NewSequence builds a gap-tolerant, strict-mode Sequence producing a
// composite of the given kind.
func NewSequence(kind string, elements ...Matchable) *Sequence {
	return &Sequence{Elements: elements, AllowGaps: true, Kind: kind, SeqName: kind}
}

// WithTerminators returns a copy of s with the given terminator grammars
// installed.
func (s *Sequence) WithTerminators(terminators ...Matchable) *Sequence {
	clone := *s
	clone.Terminators = terminators
	return &clone
}

// WithMode returns a copy of s using the given ParseMode.
func (s *Sequence) WithMode(mode ParseMode) *Sequence {
	clone := *s
	clone.Mode = mode
	return &clone
}

// WithoutGaps returns a copy of s that does not tolerate gaps between
// elements.
func (s *Sequence) WithoutGaps() *Sequence {
	clone := *s
	clone.AllowGaps = false
	return &clone
}

func (s *Sequence) Name() string {
	if s.SeqName != "" {
		return s.SeqName
	}
	return s.Kind
}

func (s *Sequence) atTerminator(ctx Context, segs []segment.Segment) bool {
	all := append(append([]Matchable{}, s.Terminators...), ctx.Terminators()...)
	for _, term := range all {
		if term.Match(ctx, segs).HasMatch() {
			return true
		}
	}
	return false
}

func (s *Sequence) Match(ctx Context, segs []segment.Segment) MatchResult {
	pop := ctx.PushTerminators(s.Terminators...)
	defer pop()

	var matched []segment.Segment
	rest := segs
	started := false
	complete := true

	for i, elem := range s.Elements {
		if !s.AllowGaps && started {
			if len(rest) > 0 && IsGap(rest[0]) {
				// Strict adjacency required between elements; a gap here is
				// a failed match. A gap before the first matched element is
				// left to that element's own matcher, which skips it.
				return s.recoverOrFail(ctx, matched, rest, started)
			}
		}

		if s.atTerminator(ctx, rest) {
			// Reaching a clause terminator before exhausting Elements is
			// only acceptable once the sequence has committed to matching
			// something.
			if started {
				complete = false
				break
			}
			return NoMatch
		}

		result := elem.Match(ctx, rest)
		if !result.HasMatch() && !isOptionalZero(elem, result) {
			if i == 0 {
				return NoMatch
			}
			return s.recoverOrFail(ctx, matched, rest, started)
		}
		matched = append(matched, result.Matched...)
		rest = result.Unmatched
		if result.HasMatch() {
			started = true
		}
	}

	composite := segment.NewComposite(s.Kind, matched)
	return MatchResult{Matched: []segment.Segment{composite}, Unmatched: rest, IsComplete: complete}
}

// isOptionalZero reports whether elem is an AnyNumberOf/optional-style
// grammar that is allowed to contribute nothing without failing the
// sequence.
func isOptionalZero(elem Matchable, result MatchResult) bool {
	if a, ok := elem.(*AnyNumberOf); ok {
		return a.MinTimes == 0
	}
	return false
}

// recoverOrFail applies Greedy/GreedyOnceStarted recovery: the remainder up
// to the next terminator (or end of input) is wrapped as "unparsable"
// instead of failing the whole sequence.
func (s *Sequence) recoverOrFail(ctx Context, matched []segment.Segment, rest []segment.Segment, started bool) MatchResult {
	if s.Mode == Strict || (s.Mode == GreedyOnceStarted && !started) {
		return NoMatch
	}
	end := len(rest)
	for i := range rest {
		if s.atTerminator(ctx, rest[i:]) {
			end = i
			break
		}
	}
	if end > 0 {
		matched = append(matched, NewUnparsable(rest[:end]))
	}
	composite := segment.NewComposite(s.Kind, matched)
	return MatchResult{Matched: []segment.Segment{composite}, Unmatched: rest[end:], IsComplete: true}
}
