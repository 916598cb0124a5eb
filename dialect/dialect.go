// Package dialect implements the name-indexed grammar registry: a Dialect
// holds productions, keyword/bracket/function sets, and a lexer-matcher
// list; dialects compose by cloning a parent and overriding productions by
// name, so a child dialect can change one production and have every Ref to
// it pick up the change without rewriting consumers.
package dialect

import (
	"log/slog"
	"sort"

	"github.com/samber/oops"

	"github.com/sqlglide/sqlglide/internal/stringset"
	"github.com/sqlglide/sqlglide/lexer"
	"github.com/sqlglide/sqlglide/matcher"
)

// ErrUnknownDialect is returned by Registry.Get for a name with no
// registered Dialect.
var ErrUnknownDialect = oops.In("dialect").Code("UNKNOWN_DIALECT").Errorf("unknown dialect")

// ErrNotExpanded is returned when a grammar is resolved (or a parse is
// attempted) against a Dialect whose expand() pass has not yet run.
var ErrNotExpanded = oops.In("dialect").Code("NOT_EXPANDED").Errorf("dialect not expanded")

// Generator materialises a Matchable once the whole dialect is assembled,
// for productions that depend on a set only final after every other
// registration has run (the naked-identifier anti-template needs every
// reserved keyword, for instance). DependsOn names other generators (or
// already-concrete grammars) that must resolve first.
type Generator struct {
	Name      string
	DependsOn []string
	Build     func(d *Dialect) matcher.Matchable
}

// Dialect is a named registry of grammars, sets, bracket pairs, and
// lexer-matchers. It is immutable after Expand() returns and may then be
// shared by reference across any number of concurrent parses.
type Dialect struct {
	Name string
	Root string

	grammars    map[string]matcher.Matchable
	generators  map[string]Generator
	sets        map[string]*stringset.Set
	brackets    []matcher.BracketPair
	lexMatchers []lexer.Matcher

	expanded bool
	logger   *slog.Logger
}

// New creates an empty Dialect named name, rooted at root (conventionally
// "FileSegment").
func New(name, root string) *Dialect {
	return &Dialect{
		Name:       name,
		Root:       root,
		grammars:   map[string]matcher.Matchable{},
		generators: map[string]Generator{},
		sets:       map[string]*stringset.Set{},
		logger:     slog.Default(),
	}
}

// WithLogger overrides the logger used during Expand(), returning d for
// chaining.
func (d *Dialect) WithLogger(logger *slog.Logger) *Dialect {
	d.logger = logger
	return d
}

// NewChild clones parent's grammar, set, and bracket maps into a new
// Dialect. The child may then override productions by re-registering the
// same name (Register/ReplaceGrammar) and extend or clear sets; anything
// not touched is inherited unchanged.
func NewChild(parent *Dialect, name string) *Dialect {
	child := New(name, parent.Root)
	child.logger = parent.logger
	for k, v := range parent.grammars {
		child.grammars[k] = v
	}
	for k, v := range parent.generators {
		child.generators[k] = v
	}
	for k, set := range parent.sets {
		child.sets[k] = set.Clone()
	}
	child.brackets = append([]matcher.BracketPair{}, parent.brackets...)
	child.lexMatchers = append([]lexer.Matcher{}, parent.lexMatchers...)
	return child
}

// Register installs grammar under name, overriding any existing production
// (or generator) of the same name — this is how a child dialect replaces a
// parent's production while every Ref("name") transparently follows.
func (d *Dialect) Register(name string, grammar matcher.Matchable) {
	d.grammars[name] = grammar
	delete(d.generators, name)
	d.expanded = false
}

// RegisterGenerator installs a deferred Generator under name. It is
// materialised into a concrete grammar during Expand().
func (d *Dialect) RegisterGenerator(gen Generator) {
	d.generators[gen.Name] = gen
	delete(d.grammars, gen.Name)
	d.expanded = false
}

// ReplaceGrammar is an alias for Register kept for readability at dialect
// call sites that are explicitly overriding a parent production.
func (d *Dialect) ReplaceGrammar(name string, grammar matcher.Matchable) { d.Register(name, grammar) }

// ExtendSet adds words to the named set, creating it if absent. Sets are
// extended, not replaced, by child dialects unless ClearSet is called
// first.
func (d *Dialect) ExtendSet(name string, words ...string) {
	set, ok := d.sets[name]
	if !ok {
		set = stringset.New()
		d.sets[name] = set
	}
	set.Add(words...)
}

// ClearSet empties the named set (used by a child dialect that wants to
// start a set over rather than extend the parent's).
func (d *Dialect) ClearSet(name string) {
	d.sets[name] = stringset.New()
}

// Set returns the named set (reserved_keywords, unreserved_keywords,
// bare_functions, datetime_units, date_part_function_name,
// value_table_functions, ...), or an empty set if never registered.
// Membership tests against it are case-insensitive.
func (d *Dialect) Set(name string) *stringset.Set {
	if set, ok := d.sets[name]; ok {
		return set
	}
	return stringset.New()
}

// AddBracketPair registers a bracket pairing. persists controls whether
// PairBrackets caches this kind's pairings on the segment stream up front.
func (d *Dialect) AddBracketPair(name, start, end string, persists bool) {
	d.brackets = append(d.brackets, matcher.BracketPair{Name: name, Start: start, End: end, Persists: persists})
}

func (d *Dialect) BracketPairs() []matcher.BracketPair { return d.brackets }

// AddLexMatcher appends m to this dialect's ordered lexer-matcher list.
// More specific matchers must be registered before their prefixes (e.g.
// "::" before ":").
func (d *Dialect) AddLexMatcher(m lexer.Matcher) {
	d.lexMatchers = append(d.lexMatchers, m)
}

// LexMatchers returns this dialect's ordered lexer-matcher list.
func (d *Dialect) LexMatchers() []lexer.Matcher { return d.lexMatchers }

// Ref resolves a production by name, the table lookup Ref() grammars use at
// match time. The result is not cached at registration time because
// dialects may override productions by name after Ref values already exist.
func (d *Dialect) Ref(name string) (matcher.Matchable, error) {
	if !d.expanded {
		return nil, ErrNotExpanded
	}
	if g, ok := d.grammars[name]; ok {
		return g, nil
	}
	return nil, oops.In("dialect").Code("UNKNOWN_PRODUCTION").With("dialect", d.Name).With("production", name).Errorf("unknown production %q", name)
}

// Keyword returns a StringParser accepting a "word" token whose upper-cased
// raw equals k, retagged as a keyword. It does not consult the dialect's
// keyword sets, so it may be called while the dialect is still being
// assembled, before Expand().
func (d *Dialect) Keyword(k string) matcher.Matchable {
	return matcher.NewStringParser("keyword", k).WithSourceKinds("word")
}

// Expand materialises every registered Generator in dependency order and
// marks the dialect ready for Ref resolution and parsing. It is idempotent:
// calling it twice produces an identical Matchable graph, since generators
// are pure functions of the (by-then-stable) dialect and Expand only ever
// assigns, never mutates in place, into d.grammars.
func (d *Dialect) Expand() error {
	if d.expanded {
		return nil
	}
	order, err := topoSort(d.generators)
	if err != nil {
		return err
	}
	for _, name := range order {
		gen := d.generators[name]
		d.grammars[name] = gen.Build(d)
	}
	d.expanded = true
	d.logger.Debug("dialect expanded", "dialect", d.Name, "generators", len(order), "grammars", len(d.grammars))
	return nil
}

// topoSort orders generators so that each runs only after every generator
// it DependsOn (generators depending on already-concrete grammars need no
// ordering constraint, since the grammars map already holds those).
func topoSort(gens map[string]Generator) ([]string, error) {
	var order []string
	visited := map[string]int{} // 0 unvisited, 1 in-progress, 2 done
	var visit func(name string) error
	visit = func(name string) error {
		switch visited[name] {
		case 2:
			return nil
		case 1:
			return oops.In("dialect").Code("GENERATOR_CYCLE").Errorf("generator dependency cycle at %q", name)
		}
		visited[name] = 1
		gen, ok := gens[name]
		if ok {
			for _, dep := range gen.DependsOn {
				if _, isGen := gens[dep]; isGen {
					if err := visit(dep); err != nil {
						return err
					}
				}
			}
		}
		visited[name] = 2
		order = append(order, name)
		return nil
	}
	names := make([]string, 0, len(gens))
	for name := range gens {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Registry is the name-indexed dialect store of §6 (`dialect(name) ->
// Dialect`). It holds no mutable state beyond the map itself; individual
// Dialects become immutable once Expand()ed.
type Registry struct {
	dialects map[string]*Dialect
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{dialects: map[string]*Dialect{}}
}

// Register installs d under its own (case-insensitively normalised) name.
func (r *Registry) Register(d *Dialect) {
	r.dialects[normalizeName(d.Name)] = d
}

// Get looks up a dialect by case-insensitive name.
func (r *Registry) Get(name string) (*Dialect, error) {
	d, ok := r.dialects[normalizeName(name)]
	if !ok {
		return nil, ErrUnknownDialect
	}
	return d, nil
}

func normalizeName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
