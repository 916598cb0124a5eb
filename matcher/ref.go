package matcher

import (
	"github.com/sqlglide/sqlglide/segment"
)

// Ref late-binds to a grammar registered under Name in the active dialect.
// Because resolution happens at match time rather than at registration
// time, a child dialect that overrides Name transparently changes every Ref
// that points to it, with no rewriting of the referring grammars.
type Ref struct {
	RefName string
	// Exclude, if set, is a guard grammar that vetoes this Ref's match if it
	// also matches at the same position.
	Exclude Matchable
}

// NewRef builds a Ref to the grammar registered under name.
func NewRef(name string) *Ref { return &Ref{RefName: name} }

// WithExclude returns a copy of r that additionally vetoes a match when
// exclude also matches at the same position.
func (r *Ref) WithExclude(exclude Matchable) *Ref {
	clone := *r
	clone.Exclude = exclude
	return &clone
}

func (r *Ref) Name() string { return "Ref(" + r.RefName + ")" }

func (r *Ref) Match(ctx Context, segs []segment.Segment) MatchResult {
	if r.Exclude != nil {
		if r.Exclude.Match(ctx, segs).HasMatch() {
			return NoMatch
		}
	}

	leave, err := ctx.EnterDepth()
	if err != nil {
		panic(err)
	}
	defer leave()
	ctx.Progress()

	target, err := ctx.Dialect().Ref(r.RefName)
	if err != nil {
		panic(err)
	}

	pos := cursorKey(segs)
	if cached, ok := ctx.Memo(target.Name(), pos); ok {
		return cached
	}
	result := target.Match(ctx, segs)
	ctx.StoreMemo(target.Name(), pos, result)
	return result
}

// cursorKey derives a memoisation key from the remaining segment stream,
// using the source byte offset of its first element. Source offsets are
// absolute, so this stays a stable, collision-free key even when a
// combinator (Bracketed, in particular) hands a sub-slice of the full
// stream to an inner grammar — unlike a plain remaining-length count, which
// would alias positions across different spans of the same size.
func cursorKey(segs []segment.Segment) int {
	if len(segs) == 0 {
		return -1
	}
	return segs[0].Position().Source.Start
}

// Nothing never matches. It is registered as a stub production so dialects
// may override it by name without the base dialect needing to special-case
// "is this slot populated".
type Nothing struct{}

// NewNothing returns the Nothing grammar.
func NewNothing() *Nothing { return &Nothing{} }

func (Nothing) Name() string { return "Nothing" }

func (Nothing) Match(ctx Context, segs []segment.Segment) MatchResult { return NoMatch }
