package ansi

import (
	"regexp"

	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)

// registerIdentifierGenerators installs NakedIdentifierSegment as a
// deferred generator: its anti-template must exclude every reserved
// keyword, a set only final once the whole dialect (including any child
// dialect's keyword overrides) has finished registering. QuotedIdentifier
// and SingleIdentifierGrammar are concrete immediately since they depend on
// nothing but the lexer's quote kinds.
func registerIdentifierGenerators(d *dialect.Dialect) {
	d.RegisterGenerator(dialect.Generator{
		Name: "NakedIdentifierSegment",
		Build: func(d *dialect.Dialect) matcher.Matchable {
			reserved := d.Set("reserved_keywords")
			return matcher.NewRegexParser("naked_identifier", func(raw string) bool {
				if !identifierPattern.MatchString(raw) {
					return false
				}
				return !reserved.Contains(raw)
			}).WithSourceKinds("word")
		},
	})

	d.Register("QuotedIdentifierSegment", matcher.NewTypedParser("double_quote").Retag("quoted_identifier"))

	d.Register("SingleIdentifierGrammar", matcher.NewOneOf("SingleIdentifierGrammar",
		matcher.NewRef("NakedIdentifierSegment"),
		matcher.NewRef("QuotedIdentifierSegment"),
	))
}
