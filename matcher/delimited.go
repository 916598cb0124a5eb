package matcher

import "github.com/sqlglide/sqlglide/segment"

// Delimited matches one-or-more Item, separated by Delimiter (which callers
// always supply; there is no default). AllowTrailing permits a trailing delimiter with no following
// item. MaxDelimiters, if non-zero, caps how many delimiters may appear.
type Delimited struct {
	Item          Matchable
	Delimiter     Matchable
	AllowTrailing bool
	MaxDelimiters int
	Kind          string
}

// NewDelimited builds a Delimited grammar wrapping its matches in a
// composite of kind.
func NewDelimited(kind string, item, delimiter Matchable) *Delimited {
	return &Delimited{Item: item, Delimiter: delimiter, Kind: kind}
}

// WithAllowTrailing returns a copy of d permitting a trailing delimiter.
func (d *Delimited) WithAllowTrailing() *Delimited {
	clone := *d
	clone.AllowTrailing = true
	return &clone
}

// WithMaxDelimiters returns a copy of d capping the number of delimiters
// accepted.
func (d *Delimited) WithMaxDelimiters(n int) *Delimited {
	clone := *d
	clone.MaxDelimiters = n
	return &clone
}

func (d *Delimited) Name() string { return d.Kind }

func (d *Delimited) Match(ctx Context, segs []segment.Segment) MatchResult {
	first := d.Item.Match(ctx, segs)
	if !first.HasMatch() {
		return NoMatch
	}
	matched := append([]segment.Segment{}, first.Matched...)
	rest := first.Unmatched
	delimiterCount := 0

	for {
		if d.MaxDelimiters > 0 && delimiterCount >= d.MaxDelimiters {
			break
		}
		delim := d.Delimiter.Match(ctx, rest)
		if !delim.HasMatch() {
			break
		}
		next := d.Item.Match(ctx, delim.Unmatched)
		if !next.HasMatch() {
			if d.AllowTrailing {
				matched = append(matched, delim.Matched...)
				rest = delim.Unmatched
				delimiterCount++
			}
			break
		}
		matched = append(matched, delim.Matched...)
		matched = append(matched, next.Matched...)
		rest = next.Unmatched
		delimiterCount++
	}

	composite := segment.NewComposite(d.Kind, matched)
	return MatchResult{Matched: []segment.Segment{composite}, Unmatched: rest, IsComplete: true}
}
