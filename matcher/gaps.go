package matcher

import "github.com/sqlglide/sqlglide/segment"

// gapKinds are the leaf kinds treated as "gaps" that Sequence silently
// passes over between its matched elements unless AllowGaps is false.
var gapKinds = map[string]struct{}{
	"whitespace":      {},
	"newline":         {},
	"inline_comment":  {},
	"block_comment":   {},
}

// IsGap reports whether seg is a whitespace/comment leaf that a
// gap-tolerant grammar should skip over without consuming it as part of the
// match proper.
func IsGap(seg segment.Segment) bool {
	if seg == nil {
		return false
	}
	_, ok := gapKinds[seg.Kind()]
	return ok
}

// splitGaps scans segs from the front, returning the leading run of gap
// segments and the rest.
func splitGaps(segs []segment.Segment) (gaps []segment.Segment, rest []segment.Segment) {
	i := 0
	for i < len(segs) && IsGap(segs[i]) {
		i++
	}
	return segs[:i], segs[i:]
}
