package ansi

import "github.com/sqlglide/sqlglide/matcher"

// newBracketParser accepts a single lexer token of the given bracket kind
// unchanged — brackets don't need retagging, just a named Matchable the
// dialect's BracketPairs table can Ref by name.
func newBracketParser(kind string) matcher.Matchable {
	return matcher.NewTypedParser(kind)
}
