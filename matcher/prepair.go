package matcher

import "github.com/sqlglide/sqlglide/segment"

// PairBrackets scans the raw token stream once, before statement parsing,
// and pairs every start/end bracket token for the given bracket pairs whose
// Persists flag is set. The result maps a start-bracket segment's ID to its
// paired end-bracket segment's ID. This turns Bracketed.Match into an O(1)
// span lookup for persisted kinds, independent of how complex Inner is.
//
// kindOf classifies a leaf segment's Kind as a start-bracket name, an
// end-bracket name, or "" if it is neither — callers pass the dialect's
// lexer-level bracket leaf kinds (e.g. "start_bracket"/"end_bracket" for
// round brackets).
func PairBrackets(segs []segment.Segment, pairs []BracketPair, kindOf func(segment.Segment) (pairName string, isStart bool, isEnd bool)) map[string]string {
	out := map[string]string{}
	persisted := map[string]bool{}
	for _, p := range pairs {
		if p.Persists {
			persisted[p.Name] = true
		}
	}

	type frame struct {
		pairName string
		segID    string
	}
	var stack []frame

	for _, s := range segs {
		name, isStart, isEnd := kindOf(s)
		if name == "" || !persisted[name] {
			continue
		}
		switch {
		case isStart:
			stack = append(stack, frame{pairName: name, segID: s.ID()})
		case isEnd:
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].pairName == name {
					out[stack[i].segID] = s.ID()
					stack = stack[:i]
					break
				}
			}
		}
	}
	return out
}
