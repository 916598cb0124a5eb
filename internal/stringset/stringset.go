// Package stringset is a small case-insensitive string set shared by the
// dialect registry (reserved/unreserved keyword sets, function-name sets)
// and the ANSI identifier generator (the naked-identifier anti-template).
// Keywords arrive from call sites in whatever case the author typed them;
// membership must not depend on that.
package stringset

import (
	"sort"
	"strings"
)

// Set is a case-insensitive set of strings. The zero value is not usable;
// construct with New.
type Set struct {
	m map[string]struct{}
}

// New builds an empty Set, optionally seeded with words.
func New(words ...string) *Set {
	s := &Set{m: map[string]struct{}{}}
	s.Add(words...)
	return s
}

// Add inserts words into the set, case-insensitively.
func (s *Set) Add(words ...string) {
	for _, w := range words {
		s.m[strings.ToUpper(w)] = struct{}{}
	}
}

// Contains reports whether word is in the set, ignoring case.
func (s *Set) Contains(word string) bool {
	_, ok := s.m[strings.ToUpper(word)]
	return ok
}

// Len returns the number of distinct (case-folded) words in the set.
func (s *Set) Len() int { return len(s.m) }

// Sorted returns the set's words in upper-cased, sorted order — used where
// a deterministic listing matters (diagnostics, tests).
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for w := range s.m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	clone := New()
	for w := range s.m {
		clone.m[w] = struct{}{}
	}
	return clone
}
