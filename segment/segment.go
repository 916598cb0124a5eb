// Package segment implements the single polymorphic tree node of the data
// model: leaves carry raw text, composites carry an ordered child list, and
// every node exposes a uniform interface so lint rules never need to know
// which concrete implementation they are holding.
package segment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sqlglide/sqlglide/position"
)

// Segment is the uniform tree-node interface consumed by the parser and by
// rule crawlers alike. There are exactly two implementations, Leaf and
// Composite; callers should not add a third without also updating every
// crawler that type-switches on IsLeaf.
type Segment interface {
	// ID is a stable per-node identifier assigned at construction. Two
	// distinct nodes, even with identical content, never compare equal by
	// ID.
	ID() string
	// Kind is the node's primary tag, e.g. "whitespace" or
	// "select_statement".
	Kind() string
	// ClassTypes is the superset of Kind used by rule matchers, e.g. a
	// "concat" node is also in class "binary_operator".
	ClassTypes() map[string]struct{}
	// Raw is this segment's source text. For a composite this is always
	// the concatenation of its children's Raw, computed on demand so it
	// can never drift from the invariant.
	Raw() string
	// Position is this segment's PositionMarker.
	Position() position.Marker
	// IsLeaf reports whether this segment is a Leaf. A Composite reports
	// false even when its child list is empty.
	IsLeaf() bool
	// Children returns this segment's ordered child list, nil for leaves.
	Children() []Segment
}

// HasClass reports whether seg carries the given class-type, which is true
// for its Kind and for every class it was additionally tagged with.
func HasClass(seg Segment, class string) bool {
	_, ok := seg.ClassTypes()[class]
	return ok
}

// IDGenerator produces stable segment identifiers. The default is a real
// UUID generator; NewSequentialIDGenerator is offered for callers who would
// rather not pull a random source onto the hot path, behind the same
// interface.
type IDGenerator interface {
	NextID() string
}

type uuidIDGenerator struct{}

func (uuidIDGenerator) NextID() string { return uuid.New().String() }

// DefaultIDGenerator is used by New{Leaf,Composite} unless overridden via
// SetIDGenerator.
var DefaultIDGenerator IDGenerator = uuidIDGenerator{}

// SetIDGenerator swaps the package-level ID generator, primarily so tests can
// get deterministic IDs.
func SetIDGenerator(g IDGenerator) { DefaultIDGenerator = g }

type sequentialIDGenerator struct{ n int }

// NewSequentialIDGenerator returns an IDGenerator that hands out
// monotonically increasing, process-local identifiers instead of UUIDs.
func NewSequentialIDGenerator() IDGenerator { return &sequentialIDGenerator{} }

func (s *sequentialIDGenerator) NextID() string {
	s.n++
	return "seg-" + itoa(s.n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

func classSet(kind string, extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(extra)+1)
	set[kind] = struct{}{}
	for _, c := range extra {
		set[c] = struct{}{}
	}
	return set
}

// Leaf is a terminal segment: whitespace, a keyword, a literal, punctuation.
type Leaf struct {
	id      string
	kind    string
	classes map[string]struct{}
	raw     string
	pos     position.Marker
}

// NewLeaf constructs a Leaf with a fresh identifier. extraClasses, if any,
// are added to the class-type set alongside kind itself.
func NewLeaf(kind, raw string, pos position.Marker, extraClasses ...string) *Leaf {
	return &Leaf{
		id:      DefaultIDGenerator.NextID(),
		kind:    kind,
		classes: classSet(kind, extraClasses...),
		raw:     raw,
		pos:     pos,
	}
}

func (l *Leaf) ID() string                        { return l.id }
func (l *Leaf) Kind() string                      { return l.kind }
func (l *Leaf) ClassTypes() map[string]struct{}   { return l.classes }
func (l *Leaf) Raw() string                       { return l.raw }
func (l *Leaf) Position() position.Marker         { return l.pos }
func (l *Leaf) IsLeaf() bool                      { return true }
func (l *Leaf) Children() []Segment               { return nil }

// Retag returns a new Leaf with the same raw text and position but a
// different kind/class set — used when the lexer emits a plain "word" and
// the dialect's keyword() helper retags it as a keyword.
func (l *Leaf) Retag(kind string, extraClasses ...string) *Leaf {
	return &Leaf{
		id:      DefaultIDGenerator.NextID(),
		kind:    kind,
		classes: classSet(kind, extraClasses...),
		raw:     l.raw,
		pos:     l.pos,
	}
}

// Composite is a non-terminal segment built from an ordered list of
// children. Its Raw() is always the concatenation of its children's Raw(),
// so invariant 1 of the data model cannot be violated by construction.
type Composite struct {
	id       string
	kind     string
	classes  map[string]struct{}
	children []Segment
	pos      position.Marker
}

// NewComposite constructs a Composite with a fresh identifier. The position
// marker spans from the first child's source start to the last child's
// source end.
func NewComposite(kind string, children []Segment, extraClasses ...string) *Composite {
	return &Composite{
		id:       DefaultIDGenerator.NextID(),
		kind:     kind,
		classes:  classSet(kind, extraClasses...),
		children: children,
		pos:      spanOf(children),
	}
}

func spanOf(children []Segment) position.Marker {
	for _, c := range children {
		if !c.Position().Zero() {
			first := c.Position()
			last := lastNonZero(children)
			return position.Marker{
				Source:    position.Slice{Start: first.Source.Start, End: last.Source.End},
				Templated: position.Slice{Start: first.Templated.Start, End: last.Templated.End},
				Line:      first.Line,
				Column:    first.Column,
				File:      first.File,
			}
		}
	}
	return position.Marker{}
}

func lastNonZero(children []Segment) position.Marker {
	var last position.Marker
	for _, c := range children {
		if !c.Position().Zero() {
			last = c.Position()
		}
	}
	return last
}

func (c *Composite) ID() string                      { return c.id }
func (c *Composite) Kind() string                    { return c.kind }
func (c *Composite) ClassTypes() map[string]struct{} { return c.classes }
func (c *Composite) Position() position.Marker       { return c.pos }
func (c *Composite) IsLeaf() bool                    { return false }
func (c *Composite) Children() []Segment             { return c.children }

func (c *Composite) Raw() string {
	var b strings.Builder
	for _, child := range c.children {
		b.WriteString(child.Raw())
	}
	return b.String()
}

// Fix describes a proposed subtree replacement. Producing fixes is the
// traversal contract's concession to auto-fixing tooling living outside this
// module: the core only guarantees enough information survives to build one.
type Fix struct {
	// Anchor is the segment being replaced.
	Anchor Segment
	// Replacement is the new subtree, or nil to delete Anchor outright.
	Replacement Segment
}

// WithFix returns root with every segment equal (by ID) to fix.Anchor
// replaced by fix.Replacement (or dropped when Replacement is nil). Each
// composite above a replaced node is rebuilt as a new Composite; root itself
// is returned unchanged when nothing in it matched.
// Segments are immutable after insertion into a parent, so fixes always
// produce new nodes with fresh identities rather than mutating in place.
func WithFix(root Segment, fix Fix) Segment {
	if root.ID() == fix.Anchor.ID() {
		if fix.Replacement == nil {
			return nil
		}
		return fix.Replacement
	}
	if root.IsLeaf() {
		return root
	}
	children := root.Children()
	newChildren := make([]Segment, 0, len(children))
	changed := false
	for _, child := range children {
		replaced := WithFix(child, fix)
		if replaced != child {
			changed = true
		}
		if replaced != nil {
			newChildren = append(newChildren, replaced)
		}
	}
	if !changed {
		return root
	}
	return NewComposite(root.Kind(), newChildren, classSliceWithoutKind(root)...)
}

func classSliceWithoutKind(s Segment) []string {
	out := make([]string, 0, len(s.ClassTypes()))
	for c := range s.ClassTypes() {
		if c != s.Kind() {
			out = append(out, c)
		}
	}
	return out
}

// Leaves flattens seg to its ordered leaf sequence, used to check the
// round-trip invariant and to feed fixes.
func Leaves(seg Segment) []Segment {
	if seg.IsLeaf() {
		return []Segment{seg}
	}
	var out []Segment
	for _, c := range seg.Children() {
		out = append(out, Leaves(c)...)
	}
	return out
}

// Walk visits seg and every descendant, pre-order, invoking fn on each.
// Returning false from fn skips that segment's descendants; the walk still
// goes on to its later siblings.
func Walk(seg Segment, fn func(Segment) bool) {
	if !fn(seg) {
		return
	}
	for _, c := range seg.Children() {
		Walk(c, fn)
	}
}
