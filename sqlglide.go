// Package sqlglide is the CORE entry point: Parse lexes and parses a SQL
// source into a byte-preserving tree, and Lint runs a rule set over the
// result and returns deterministically ordered violations.
package sqlglide

import (
	"sync"

	"github.com/samber/oops"

	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/dialects/ansi"
	"github.com/sqlglide/sqlglide/dialects/sqlite"
	"github.com/sqlglide/sqlglide/lexer"
	"github.com/sqlglide/sqlglide/matcher"
	"github.com/sqlglide/sqlglide/parsectx"
	"github.com/sqlglide/sqlglide/rules"
	"github.com/sqlglide/sqlglide/segment"
)

var (
	registryOnce sync.Once
	registry     *dialect.Registry
)

func defaultRegistry() *dialect.Registry {
	registryOnce.Do(func() {
		registry = dialect.NewRegistry()
		registry.Register(ansi.Build())
		registry.Register(sqlite.Build())
	})
	return registry
}

// ParsedFile is the result of Parse: the root tree node plus every
// recoverable problem found along the way. LexErrors and ParseErrors are
// data, not Go errors — a file riddled with typos still parses to a tree
// the caller can inspect and lint.
type ParsedFile struct {
	Tree        segment.Segment
	LexErrors   []lexer.LexError
	ParseErrors []matcher.ParseError
}

// Parse lexes and parses source under the named dialect. The returned error
// is non-nil only for a programmer-facing condition: an unknown dialect
// name, an unresolved root production, or a grammar that recurses past
// parsectx.Config.MaxDepth without making progress (Ref.Match panics on
// both of the latter; Parse recovers the panic here and folds it into this
// return value rather than letting it cross into the caller's goroutine).
// Malformed SQL is never one of these — it is reported through
// ParsedFile.LexErrors/ParseErrors instead.
func Parse(source, dialectName string, cfg parsectx.Config) (pf *ParsedFile, err error) {
	d, err := defaultRegistry().Get(dialectName)
	if err != nil {
		return nil, oops.In("sqlglide").Code("UNKNOWN_DIALECT").Wrap(err)
	}

	segs, lexErrs := lexer.Lex(source, d.LexMatchers())

	pctx := parsectx.New(d, cfg)
	pctx.SetBracketPairing(matcher.PairBrackets(segs, d.BracketPairs(), bracketKindOf))

	root, err := d.Ref(d.Root)
	if err != nil {
		return nil, oops.In("sqlglide").Code("ROOT_UNRESOLVED").Wrap(err)
	}

	defer func() {
		if r := recover(); r != nil {
			pf = nil
			if rerr, ok := r.(error); ok {
				err = oops.In("sqlglide").Code("GRAMMAR_PANIC").Wrap(rerr)
				return
			}
			panic(r)
		}
	}()

	result := root.Match(pctx, segs)

	// The lexer always appends a zero-width end_of_file sentinel that no
	// grammar production ever matches explicitly; a grammar that otherwise
	// consumed the whole file leaves exactly that leaf in Unmatched. Fold it
	// into Matched rather than reporting it as leftover content.
	tail := result.Unmatched
	if len(tail) > 0 && tail[len(tail)-1].Kind() == "end_of_file" {
		result.Matched = append(append([]segment.Segment{}, result.Matched...), tail[len(tail)-1])
		tail = tail[:len(tail)-1]
	}

	var parseErrs []matcher.ParseError
	if len(tail) > 0 {
		parseErrs = append(parseErrs, matcher.ParseError{
			Span:        tail[0].Position(),
			Description: "unparsed input remaining after root grammar",
		})
		result.Matched = append(result.Matched, matcher.NewUnparsable(tail))
	}

	var tree segment.Segment
	if len(result.Matched) == 1 {
		tree = result.Matched[0]
	} else {
		tree = segment.NewComposite(d.Root, result.Matched)
	}

	return &ParsedFile{Tree: tree, LexErrors: lexErrs, ParseErrors: parseErrs}, nil
}

// bracketKindOf classifies a lexed leaf's Kind against the fixed lexer-level
// bracket token names the ANSI dialect (and its children) register.
func bracketKindOf(s segment.Segment) (string, bool, bool) {
	switch s.Kind() {
	case "start_bracket":
		return "round", true, false
	case "end_bracket":
		return "round", false, true
	case "start_square_bracket":
		return "square", true, false
	case "end_square_bracket":
		return "square", false, true
	case "start_curly_bracket":
		return "curly", true, false
	case "end_curly_bracket":
		return "curly", false, true
	}
	return "", false, false
}

// Lint parses source under dialectName and runs ruleSet over the result,
// returning violations sorted by position. A non-nil error means Parse
// itself failed (unknown dialect); parse-level problems are surfaced as
// ParseErrors are folded into the tree as "unparsable" segments rather than
// blocking linting outright, matching the fault-tolerant crawl model.
func Lint(source, dialectName string, ruleSet []rules.Rule, cfg parsectx.Config) ([]rules.Violation, error) {
	d, err := defaultRegistry().Get(dialectName)
	if err != nil {
		return nil, oops.In("sqlglide").Code("UNKNOWN_DIALECT").Wrap(err)
	}
	parsed, err := Parse(source, dialectName, cfg)
	if err != nil {
		return nil, err
	}
	engine := rules.NewEngine(d, rules.Config{}, ruleSet...)
	return engine.Lint(parsed.Tree), nil
}
