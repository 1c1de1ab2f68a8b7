package microre

import (
	"fmt"

	"github.com/coregx/microre/internal/matcher"
	"github.com/coregx/microre/internal/nfa"
	"github.com/coregx/microre/internal/syntax"
)

// Regex is a compiled pattern: an immutable NFA plus the source pattern
// text it was built from. It is safe to share across goroutines for
// matching — every match call allocates its own thread vectors and
// mutates nothing on Regex itself.
type Regex struct {
	nfa     *nfa.NFA
	pattern string
}

// Compile runs the full pipeline — lex, insert concatenation, convert to
// postfix with capture numbering, build the Thompson NFA — under
// DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit state budget.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	toks, err := syntax.Lex(pattern)
	if err != nil {
		return nil, err
	}
	toks = syntax.InsertConcat(toks)

	postfix, groups, err := syntax.ToPostfix(toks)
	if err != nil {
		return nil, err
	}

	b := nfa.NewBuilder(cfg.MaxStates)
	n, err := b.Build(postfix, groups)
	if err != nil {
		return nil, err
	}

	return &Regex{nfa: n, pattern: pattern}, nil
}

// MustCompile is Compile but panics on error, for patterns fixed at
// compile time (package-level var initialization and the like).
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("microre: Compile(%q): %v", pattern, err))
	}
	return re
}

// String returns the source pattern text.
func (re *Regex) String() string {
	return re.pattern
}

// NumGroups returns the number of capture groups the pattern declares.
func (re *Regex) NumGroups() int {
	return re.nfa.Groups
}

// IsMatch reports whether input, in its entirety, is accepted by re.
func (re *Regex) IsMatch(input []byte) bool {
	_, ok := matcher.Run(re.nfa, input)
	return ok
}

// IsMatchString is IsMatch over a string.
func (re *Regex) IsMatchString(input string) bool {
	return re.IsMatch([]byte(input))
}

// Captures matches input against re and, on success, returns the capture
// groups recorded by the winning thread. It returns nil if input is not
// accepted in its entirety.
func (re *Regex) Captures(input []byte) *Captures {
	c, ok := matcher.Run(re.nfa, input)
	if !ok {
		return nil
	}
	return &Captures{inner: c, whole: input}
}

// CapturesString is Captures over a string.
func (re *Regex) CapturesString(input string) *Captures {
	return re.Captures([]byte(input))
}

// Captures holds the result of a successful whole-input match. Slot 0 is
// always the entire input; slot g for g >= 1 is the substring captured by
// group g, if it participated in the match.
type Captures struct {
	inner *matcher.Captures
	whole []byte
}

// NumGroups returns the number of capture groups tracked (excluding the
// implicit whole-match slot 0).
func (c *Captures) NumGroups() int {
	return c.inner.NumGroups()
}

// Group returns the substring captured by group i, or ok=false if i is
// out of range or the group did not participate in this match. Group 0
// is always the whole input.
func (c *Captures) Group(i int) (sub []byte, ok bool) {
	if i == 0 {
		return c.whole, true
	}
	start, end, ok := c.inner.Group(i)
	if !ok {
		return nil, false
	}
	return c.whole[start:end], true
}

// GroupString is Group with the result converted to a string.
func (c *Captures) GroupString(i int) (string, bool) {
	b, ok := c.Group(i)
	if !ok {
		return "", false
	}
	return string(b), true
}
