// Package aliasing holds rules concerned with column and table aliasing.
package aliasing

import (
	"fmt"
	"strings"

	"github.com/sqlglide/sqlglide/rules"
	"github.com/sqlglide/sqlglide/segment"
)

// AL08 flags column aliases reused within a single select_clause: the
// second occurrence of an identical alias shadows the first silently,
// which is almost always a copy-paste mistake rather than intent.
type AL08 struct{}

func (AL08) Code() string { return "AL08" }

func (AL08) Crawler() rules.Crawler { return rules.SegmentSeeker("select_clause") }

func (AL08) Eval(ctx rules.Context) []rules.LintResult {
	type seen struct {
		anchor segment.Segment
		lineNo int
	}
	used := map[string]seen{}
	var results []rules.LintResult

	// select_clause_element sits under a select_clause_elements Delimited
	// composite, not directly under select_clause, so this must descend
	// rather than inspect only direct children.
	segment.Walk(ctx.Segment, func(s segment.Segment) bool {
		if s.Kind() != "select_clause_element" {
			return true
		}

		alias := aliasAnchor(s)
		if alias == nil {
			return false
		}

		key := normalize(alias.Raw())
		if prior, ok := used[key]; ok {
			results = append(results, rules.LintResult{
				Anchor:      alias,
				Description: fmt.Sprintf("Reuse of column alias %s from line %d.", alias.Raw(), prior.lineNo),
			})
			return false
		}
		used[key] = seen{anchor: alias, lineNo: alias.Position().Line}
		return false
	})

	return results
}

// aliasAnchor returns the segment whose raw text names this select-clause
// element: the explicit alias if there is one, else the final identifier of
// a bare column_reference. Expressions with neither (literals, function
// calls with no alias) contribute nothing to trip the rule.
func aliasAnchor(clauseElement segment.Segment) segment.Segment {
	for _, child := range clauseElement.Children() {
		if child.Kind() == "alias_expression" {
			leaves := segment.Leaves(child)
			if len(leaves) > 0 {
				return leaves[len(leaves)-1]
			}
		}
	}
	for _, child := range clauseElement.Children() {
		if child.Kind() == "column_reference" {
			leaves := segment.Leaves(child)
			if len(leaves) > 0 {
				return leaves[len(leaves)-1]
			}
		}
	}
	return nil
}

func normalize(raw string) string {
	raw = strings.ToUpper(raw)
	return strings.NewReplacer(`"`, "", "'", "", "`", "").Replace(raw)
}
