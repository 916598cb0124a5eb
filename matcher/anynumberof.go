package matcher

import "github.com/sqlglide/sqlglide/segment"

// AnyNumberOf greedily repeats its alternatives, between MinTimes and
// MaxTimes (0 meaning unbounded) successful matches. There is no separate
// optional flag: MinTimes == 0 makes the repetition optional.
type AnyNumberOf struct {
	Alternatives []Matchable
	MinTimes     int
	MaxTimes     int
	Kind         string
}

// NewAnyNumberOf builds an unbounded, zero-or-more repetition producing a
// composite of kind (empty kind means "splice the matches in without
// wrapping them").
func NewAnyNumberOf(kind string, alternatives ...Matchable) *AnyNumberOf {
	return &AnyNumberOf{Alternatives: alternatives, Kind: kind}
}

// WithTimes returns a copy of a with the given [min, max] repetition bounds
// (max == 0 means unbounded).
func (a *AnyNumberOf) WithTimes(min, max int) *AnyNumberOf {
	clone := *a
	clone.MinTimes = min
	clone.MaxTimes = max
	return &clone
}

func (a *AnyNumberOf) Name() string {
	if a.Kind != "" {
		return a.Kind
	}
	return "AnyNumberOf"
}

func (a *AnyNumberOf) Match(ctx Context, segs []segment.Segment) MatchResult {
	var matched []segment.Segment
	rest := segs
	count := 0

	for a.MaxTimes == 0 || count < a.MaxTimes {
		one := NewOneOf(a.Name()+"#alt", a.Alternatives...)
		result := one.Match(ctx, rest)
		if !result.HasMatch() {
			break
		}
		matched = append(matched, result.Matched...)
		rest = result.Unmatched
		count++
	}

	if count < a.MinTimes {
		return NoMatch
	}
	if a.Kind == "" {
		return MatchResult{Matched: matched, Unmatched: rest, IsComplete: true}
	}
	composite := segment.NewComposite(a.Kind, matched)
	return MatchResult{Matched: []segment.Segment{composite}, Unmatched: rest, IsComplete: true}
}
