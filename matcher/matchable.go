// Package matcher implements the grammar-combinator substrate: Matchable
// values describe how to consume a prefix of a segment stream and, on
// success, package matched segments (and possibly a fresh composite wrapping
// them) into a MatchResult. Combinators compose Matchables without ever
// holding a direct pointer to another grammar — late binding happens through
// Context.Dialect().Ref, so dialects can override a production by name after
// the fact.
package matcher

import (
	"fmt"
	"log/slog"

	"github.com/sqlglide/sqlglide/internal/stringset"
	"github.com/sqlglide/sqlglide/position"
	"github.com/sqlglide/sqlglide/segment"
)

// Matchable describes how to match a prefix of segs. It never owns the
// segments it matches; it only describes how to recognise and package them.
type Matchable interface {
	// Match attempts to consume a prefix of segs.
	Match(ctx Context, segs []segment.Segment) MatchResult
	// Name identifies this grammar for memoisation keys and Ref resolution.
	Name() string
}

// Context is the subset of parse-context behaviour combinators need:
// recursion depth tracking, the terminator stack, the memo cache, and
// late-bound grammar lookup through the active dialect. A concrete
// implementation lives in package parsectx; this interface exists here, not
// there, so that matcher need not import parsectx (which in turn needs
// Matchable) and the two packages avoid an import cycle.
type Context interface {
	// EnterDepth increments the recursion counter and returns a function
	// that must be deferred to decrement it again, and an error if the
	// configured cap was exceeded.
	EnterDepth() (leave func(), err error)
	// Memo looks up a previously computed result for (grammarName,
	// position).
	Memo(grammarName string, position int) (MatchResult, bool)
	// StoreMemo records a result for (grammarName, position).
	StoreMemo(grammarName string, position int, result MatchResult)
	// Terminators returns the currently active terminator set, innermost
	// first.
	Terminators() []Matchable
	// PushTerminators pushes a new terminator set and returns a function to
	// pop it again.
	PushTerminators(extra ...Matchable) (pop func())
	// Dialect resolves late-bound Ref(name) lookups and exposes the active
	// dialect's keyword/bracket sets.
	Dialect() DialectRef
	// Logger is used for the progress hook and other debug tracing.
	Logger() *slog.Logger
	// Progress reports that one more grammar attempt has been made, for the
	// periodic progress signal described by the parse context.
	Progress()
	// BracketPairing returns the ID of the end-bracket segment paired with
	// the start-bracket segment startID, if bracket pre-pairing has located
	// one. Only persisted bracket kinds (round, by default) are guaranteed
	// to have been pre-paired; others are computed on demand by Bracketed.
	BracketPairing(startID string) (endID string, ok bool)
}

// DialectRef is the read-only view of a Dialect that the matcher substrate
// needs: name-indexed grammar lookup, keyword/bracket sets, and the bracket
// pairing table. Package dialect's *Dialect implements this.
type DialectRef interface {
	Ref(name string) (Matchable, error)
	Set(name string) *stringset.Set
	BracketPairs() []BracketPair
}

// BracketPair names a start/end bracket grammar pair, e.g. round brackets
// matched by StartBracketSegment/EndBracketSegment. Persists indicates
// whether pairings of this kind should be cached on the segment stream by
// PairBrackets (true for round brackets, since Bracketed consults them
// directly) or computed on demand (square/curly).
type BracketPair struct {
	Name     string
	Start    string
	End      string
	Persists bool
}

// MatchResult holds the outcome of attempting to match a grammar against a
// segment stream: the segments that matched, the ones left over, and whether
// the grammar considered its match complete (terminated intentionally) as
// opposed to stopping at a soft boundary such as a terminator.
type MatchResult struct {
	Matched    []segment.Segment
	Unmatched  []segment.Segment
	IsComplete bool
}

// NoMatch is the zero-value result of a failed match attempt.
var NoMatch = MatchResult{}

// HasMatch reports whether this result consumed anything.
func (r MatchResult) HasMatch() bool { return len(r.Matched) > 0 }

// MatchedLen returns how many segments this result consumed.
func (r MatchResult) MatchedLen() int { return len(r.Matched) }

// ParseMode controls error recovery within Sequence-like grammars.
type ParseMode int

const (
	// Strict: if any element fails, the whole sequence fails and consumes
	// nothing.
	Strict ParseMode = iota
	// Greedy: once the first element matches, consume the remainder up to
	// the next terminator even if intermediate elements are malformed,
	// packaging the tail as an "unparsable" segment.
	Greedy
	// GreedyOnceStarted behaves like Greedy but only once the grammar has
	// taken its first committed step.
	GreedyOnceStarted
)

// ParseError records a root-grammar short match or an unparsable segment
// produced by a Greedy-mode grammar.
type ParseError struct {
	Span        position.Marker
	Description string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Description)
}

// unparsableKind is the segment kind used to wrap a Greedy-mode tail that
// could not be matched by the inner grammar.
const unparsableKind = "unparsable"

// NewUnparsable wraps the given segments in an "unparsable" composite,
// preserving every byte (invariant 1 still holds: raw(unparsable) equals the
// concatenation of its children).
func NewUnparsable(segs []segment.Segment) segment.Segment {
	return segment.NewComposite(unparsableKind, segs)
}
