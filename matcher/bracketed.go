package matcher

import "github.com/sqlglide/sqlglide/segment"

// Bracketed matches a start-bracket token of the named BracketType, applies
// Inner to the span up to its matched end-bracket (located via the
// dialect's persistent bracket pairing when available, or a local scan
// otherwise), and consumes the end-bracket.
type Bracketed struct {
	Inner       Matchable
	BracketType string
	Kind        string
}

// NewBracketed builds a Bracketed grammar over the named bracket type
// ("round" by default).
func NewBracketed(kind string, inner Matchable, bracketType string) *Bracketed {
	if bracketType == "" {
		bracketType = "round"
	}
	return &Bracketed{Inner: inner, BracketType: bracketType, Kind: kind}
}

func (b *Bracketed) Name() string { return b.Kind }

func (b *Bracketed) pair(ctx Context) (BracketPair, bool) {
	for _, p := range ctx.Dialect().BracketPairs() {
		if p.Name == b.BracketType {
			return p, true
		}
	}
	return BracketPair{}, false
}

func (b *Bracketed) Match(ctx Context, segs []segment.Segment) MatchResult {
	pair, ok := b.pair(ctx)
	if !ok {
		return NoMatch
	}
	startGrammar, err := ctx.Dialect().Ref(pair.Start)
	if err != nil {
		return NoMatch
	}
	endGrammar, err := ctx.Dialect().Ref(pair.End)
	if err != nil {
		return NoMatch
	}

	startResult := startGrammar.Match(ctx, segs)
	if !startResult.HasMatch() {
		return NoMatch
	}
	startTok := lastLeaf(startResult.Matched)
	rest := startResult.Unmatched

	endIdx := -1
	if startTok != nil {
		if endID, ok := ctx.BracketPairing(startTok.ID()); ok {
			endIdx = indexByID(rest, endID)
		}
	}
	if endIdx < 0 {
		endIdx = scanForEnd(ctx, rest, startGrammar, endGrammar)
	}
	if endIdx < 0 {
		return NoMatch
	}

	span := rest[:endIdx]
	afterSpan := rest[endIdx:]
	endResult := endGrammar.Match(ctx, afterSpan)
	if !endResult.HasMatch() {
		return NoMatch
	}

	var innerMatched []segment.Segment
	if b.Inner != nil && len(span) > 0 {
		innerResult := b.Inner.Match(ctx, span)
		innerMatched = innerResult.Matched
		if len(innerResult.Unmatched) > 0 {
			innerMatched = append(innerMatched, NewUnparsable(innerResult.Unmatched))
		}
	} else {
		innerMatched = span
	}

	all := append([]segment.Segment{}, startResult.Matched...)
	all = append(all, innerMatched...)
	all = append(all, endResult.Matched...)
	composite := segment.NewComposite(b.Kind, all)
	return MatchResult{Matched: []segment.Segment{composite}, Unmatched: endResult.Unmatched, IsComplete: true}
}

func lastLeaf(segs []segment.Segment) segment.Segment {
	for i := len(segs) - 1; i >= 0; i-- {
		if !IsGap(segs[i]) {
			return segs[i]
		}
	}
	return nil
}

func indexByID(segs []segment.Segment, id string) int {
	for i, s := range segs {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// scanForEnd does a bracket-depth-aware local scan for the matching end
// token when no pre-pairing is available (square/curly brackets, or round
// brackets in a context where PairBrackets was never run).
func scanForEnd(ctx Context, segs []segment.Segment, startGrammar, endGrammar Matchable) int {
	depth := 1
	i := 0
	for i < len(segs) {
		if startGrammar.Match(ctx, segs[i:]).HasMatch() {
			depth++
			i++
			continue
		}
		if endGrammar.Match(ctx, segs[i:]).HasMatch() {
			depth--
			if depth == 0 {
				return i
			}
			i++
			continue
		}
		i++
	}
	return -1
}
