// Package parsectx implements the single-threaded, per-parse context shared
// by every combinator invocation during one parse: recursion depth
// tracking, the active terminator stack, (grammar, position) memoisation,
// and a periodic progress signal. No parsectx.Context is ever touched from
// more than one goroutine.
package parsectx

import (
	"log/slog"

	"github.com/samber/oops"

	"github.com/sqlglide/sqlglide/matcher"
)

// ErrRecursionCapExceeded is fatal: per the error model, exceeding the
// configured recursion depth indicates a grammar bug (mutual Ref cycles
// with no progress), not a problem with the user's SQL.
var ErrRecursionCapExceeded = oops.In("parsectx").Code("RECURSION_CAP_EXCEEDED").Errorf("recursion cap exceeded")

// Config bounds a single parse. The zero value is usable: New replaces a zero
// MaxDepth or MemoCapacity with DefaultConfig's value and a nil Logger with
// slog.Default(); a zero ProgressEvery turns the progress signal off.
type Config struct {
	// MaxDepth caps how deep Ref resolution may recurse before the parse is
	// aborted as a grammar bug.
	MaxDepth int
	// MemoCapacity caps how many (grammar, position) entries the memo table
	// will hold before it starts evicting the oldest entries.
	MemoCapacity int
	// ProgressEvery, if > 0, makes Progress() emit a slog.Debug record
	// every N grammar attempts.
	ProgressEvery int
	// Logger receives progress and expansion diagnostics. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
}

// DefaultConfig returns the bounds used when a caller passes a zero Config:
// a recursion cap generous enough for realistic SQL (a thousand-term AND
// chain included, since the A/B expression grammars are iterative rather
// than directly recursive) but still well short of a stack-exhausting
// runaway, and a memo capacity sized for multi-megabyte files.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      5000,
		MemoCapacity:  1 << 20,
		ProgressEvery: 10000,
	}
}

func (c Config) withDefaults() Config {
	out := c
	if out.MaxDepth == 0 {
		out.MaxDepth = DefaultConfig().MaxDepth
	}
	if out.MemoCapacity == 0 {
		out.MemoCapacity = DefaultConfig().MemoCapacity
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

type memoKey struct {
	grammar  string
	position int
}

// Context is the concrete, per-parse implementation of matcher.Context.
type Context struct {
	cfg         Config
	dialect     matcher.DialectRef
	depth       int
	memo        map[memoKey]matcher.MatchResult
	memoOrder   []memoKey
	terminators [][]matcher.Matchable
	bracketMap  map[string]string
	attempts    int
}

// New builds a Context bound to dialect for a single parse.
func New(dialect matcher.DialectRef, cfg Config) *Context {
	return &Context{
		cfg:        cfg.withDefaults(),
		dialect:    dialect,
		memo:       make(map[memoKey]matcher.MatchResult),
		bracketMap: map[string]string{},
	}
}

// SetBracketPairing installs the result of matcher.PairBrackets run over the
// token stream once, before statement parsing begins.
func (c *Context) SetBracketPairing(pairing map[string]string) {
	c.bracketMap = pairing
}

func (c *Context) BracketPairing(startID string) (string, bool) {
	endID, ok := c.bracketMap[startID]
	return endID, ok
}

func (c *Context) EnterDepth() (func(), error) {
	c.depth++
	if c.depth > c.cfg.MaxDepth {
		c.depth--
		return func() {}, ErrRecursionCapExceeded
	}
	return func() { c.depth-- }, nil
}

func (c *Context) Memo(grammarName string, position int) (matcher.MatchResult, bool) {
	r, ok := c.memo[memoKey{grammarName, position}]
	return r, ok
}

func (c *Context) StoreMemo(grammarName string, position int, result matcher.MatchResult) {
	key := memoKey{grammarName, position}
	if _, exists := c.memo[key]; exists {
		return
	}
	if len(c.memoOrder) >= c.cfg.MemoCapacity {
		oldest := c.memoOrder[0]
		c.memoOrder = c.memoOrder[1:]
		delete(c.memo, oldest)
	}
	c.memo[key] = result
	c.memoOrder = append(c.memoOrder, key)
}

func (c *Context) Terminators() []matcher.Matchable {
	if len(c.terminators) == 0 {
		return nil
	}
	return c.terminators[len(c.terminators)-1]
}

func (c *Context) PushTerminators(extra ...matcher.Matchable) func() {
	if len(extra) == 0 {
		c.terminators = append(c.terminators, c.Terminators())
		return func() { c.terminators = c.terminators[:len(c.terminators)-1] }
	}
	combined := append(append([]matcher.Matchable{}, extra...), c.Terminators()...)
	c.terminators = append(c.terminators, combined)
	return func() { c.terminators = c.terminators[:len(c.terminators)-1] }
}

func (c *Context) Dialect() matcher.DialectRef { return c.dialect }

func (c *Context) Logger() *slog.Logger { return c.cfg.Logger }

func (c *Context) Progress() {
	c.attempts++
	if c.cfg.ProgressEvery > 0 && c.attempts%c.cfg.ProgressEvery == 0 {
		c.cfg.Logger.Debug("parse progress", "attempts", c.attempts, "depth", c.depth)
	}
}
