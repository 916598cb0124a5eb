// Package sqlite derives the SQLite dialect from ansi.Build by cloning and
// overriding by name rather than re-registering the whole grammar tree.
package sqlite

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/dialects/ansi"
	"github.com/sqlglide/sqlglide/matcher"
)

// reservedKeywords is a representative transcription of SQLite's reserved
// keyword list (sqlite_keywords.rs), covering names ANSI's set omits
// entirely (AUTOINCREMENT, GLOB, ISNULL, NOTNULL, PRAGMA, ...) rather than
// every one of the upstream file's ~140 entries.
var reservedKeywords = []string{
	"ABORT", "ACTION", "AFTER", "ATTACH", "AUTOINCREMENT", "BEFORE", "CONFLICT",
	"DEFERRABLE", "DEFERRED", "DETACH", "EXCLUSIVE", "EXPLAIN", "FAIL", "GLOB",
	"IGNORE", "IMMEDIATE", "INDEXED", "INITIALLY", "INSTEAD", "ISNULL", "NOTNULL",
	"OFFSET", "PLAN", "PRAGMA", "QUERY", "RAISE", "RECURSIVE", "REGEXP",
	"REINDEX", "RELEASE", "RENAME", "REPLACE", "RESTRICT", "SAVEPOINT",
	"TEMP", "TEMPORARY", "VACUUM", "VIRTUAL",
}

var unreservedKeywords = []string{
	"ALWAYS", "CASCADE", "CURRENT", "EACH", "FILTER", "FIRST", "FOLLOWING",
	"GENERATED", "GROUPS", "LAST", "MATERIALIZED", "NULLS", "OTHERS",
	"PRECEDING", "RANGE", "STORED", "TIES", "TRIGGER", "UNBOUNDED", "WITHOUT",
}

// Build derives the SQLite dialect as a child of ansi.Build(), re-expanded
// after its overrides so every Ref resolves against the child's grammar
// map, never the parent's.
func Build() *dialect.Dialect {
	base := ansi.Build()
	d := dialect.NewChild(base, "sqlite")

	d.ExtendSet("reserved_keywords", reservedKeywords...)
	d.ExtendSet("unreserved_keywords", unreservedKeywords...)

	// SQLite has no TRUNCATE statement; DELETE FROM with no WHERE is the
	// idiom. Registering the name as Nothing demonstrates override-by-name:
	// every Ref("TruncateStatementSegment") in the inherited StatementSegment
	// OneOf now simply never matches, rather than the caller needing to know
	// to special-case SQLite's StatementSegment.
	d.Register("TruncateStatementSegment", matcher.NewNothing())

	// The naked-identifier anti-template generator is inherited, not
	// re-registered: NewChild cloned the generators map, so Expand() on the
	// child calls Build(d) with d pointing at the child, re-deriving
	// NakedIdentifierSegment against the union of ANSI's and SQLite's
	// reserved words.
	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
