// Package microre is a compact ASCII regular-expression engine: a
// hand-rolled lexer and shunting-yard postfix converter feed a Thompson
// NFA builder, matched by a thread-set simulator that tracks per-thread
// capture slots with no backtracking.
package microre

import "github.com/coregx/microre/internal/errs"

// ErrorKind identifies the category of a compile-time pattern defect.
type ErrorKind = errs.Kind

// Error kinds a pattern can fail to compile with. EmptyClass and BadRange
// are part of the taxonomy but, as specified, never actually raised by
// the lexer: an empty class `[]` runs on to UnbalancedClass, and a
// reversed range like `[z-a]` compiles to a class matching nothing
// instead of erroring. TooComplex is this package's own addition, raised
// when a pattern's NFA would exceed Config.MaxStates.
const (
	UnexpectedEof      = errs.UnexpectedEof
	UnexpectedToken    = errs.UnexpectedToken
	UnbalancedParen    = errs.UnbalancedParen
	UnbalancedClass    = errs.UnbalancedClass
	EmptyClass         = errs.EmptyClass
	BadRange           = errs.BadRange
	DanglingQuantifier = errs.DanglingQuantifier
	TooComplex         = errs.TooComplex
)

// Error is a compile-time pattern defect: what went wrong and at what
// byte offset into the pattern it was detected. Matching itself never
// errors — a non-match is simply an absent Captures.
type Error = errs.Error
