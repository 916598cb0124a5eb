package matcher

import "github.com/sqlglide/sqlglide/segment"

// OneOf tries every alternative and keeps the longest match, ties broken by
// declaration order (the first-declared alternative among equal-length
// matches wins).
type OneOf struct {
	Alternatives []Matchable
	OneOfName    string
}

// NewOneOf builds a OneOf over the given alternatives.
func NewOneOf(name string, alternatives ...Matchable) *OneOf {
	return &OneOf{Alternatives: alternatives, OneOfName: name}
}

func (o *OneOf) Name() string { return o.OneOfName }

func (o *OneOf) Match(ctx Context, segs []segment.Segment) MatchResult {
	var best MatchResult
	bestConsumed := -1
	found := false
	for _, alt := range o.Alternatives {
		result := alt.Match(ctx, segs)
		if !result.HasMatch() {
			continue
		}
		consumed := len(segs) - len(result.Unmatched)
		if !found || consumed > bestConsumed {
			best = result
			bestConsumed = consumed
			found = true
		}
	}
	if !found {
		return NoMatch
	}
	return best
}
