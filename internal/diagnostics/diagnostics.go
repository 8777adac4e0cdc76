package diagnostics

import (
	"fmt"

	"github.com/forge-lang/forge/internal/source"
)

// Severity orders how bad a message is. Error and Internal fail compilation.
type Severity int

const (
	SeveritySuggestion Severity = iota
	SeverityNote
	SeverityWarning
	SeverityError
	SeverityInternal
)

func (s Severity) String() string {
	switch s {
	case SeveritySuggestion:
		return "suggestion"
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInternal:
		return "internal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Code identifies the kind of diagnostic. Codes are stable so tests and
// tooling can match on them instead of on message text.
type Code string

const (
	// Lexical errors
	ErrL0001 Code = "L0001" // unexpected character

	// Syntax errors
	ErrP0001  Code = "P0001" // unexpected token
	ErrP0002  Code = "P0002" // expected declaration
	ErrP0003  Code = "P0003" // malformed numeric literal
	WarnP0004 Code = "P0004" // numeric literal truncated

	// Well-formedness errors
	ErrV0001 Code = "V0001" // required child missing
	ErrV0002 Code = "V0002" // empty name
	ErrV0003 Code = "V0003" // function type not allowed here
	ErrV0004 Code = "V0004" // function parameter with initializer
	ErrV0005 Code = "V0005" // member access target must be a symbol

	// Symbol resolution errors
	ErrS0001 Code = "S0001" // undeclared symbol
	ErrS0002 Code = "S0002" // duplicate declaration

	// Control flow errors
	ErrC0001 Code = "C0001" // unreachable statement
	ErrC0002 Code = "C0002" // function does not always return

	// Type errors
	ErrT0001 Code = "T0001" // operand type mismatch
	ErrT0002 Code = "T0002" // condition must be bool
	ErrT0003 Code = "T0003" // return type mismatch
	ErrT0004 Code = "T0004" // call of a non-function
	ErrT0005 Code = "T0005" // call arity mismatch
	ErrT0006 Code = "T0006" // call argument type mismatch
	ErrT0007 Code = "T0007" // invalid cast
	ErrT0008 Code = "T0008" // invalid assignment target
	ErrT0009 Code = "T0009" // unknown member
	ErrT0010 Code = "T0010" // type cannot be resolved

	// Internal errors
	ErrX0001 Code = "X0001" // invariant violation
)

// Message is one diagnostic produced by any pipeline stage.
type Message struct {
	Severity    Severity
	SourceRange source.Range
	Code        Code
	Text        string
	Suggestion  string
}

func (m Message) String() string {
	if m.Code != "" {
		return fmt.Sprintf("%s: %s[%s]: %s", m.SourceRange, m.Severity, m.Code, m.Text)
	}
	return fmt.Sprintf("%s: %s: %s", m.SourceRange, m.Severity, m.Text)
}

// Context is the append-only diagnostic sink threaded through every stage of
// the pipeline. Compilation fails iff MaxSeverity reaches SeverityError.
type Context struct {
	messages []Message
}

func NewContext() *Context {
	return &Context{}
}

// Emit appends a message with formatted text.
func (c *Context) Emit(severity Severity, rng source.Range, code Code, format string, args ...any) {
	c.messages = append(c.messages, Message{
		Severity:    severity,
		SourceRange: rng,
		Code:        code,
		Text:        fmt.Sprintf(format, args...),
	})
}

func (c *Context) Suggestion(rng source.Range, code Code, format string, args ...any) {
	c.Emit(SeveritySuggestion, rng, code, format, args...)
}

func (c *Context) Note(rng source.Range, code Code, format string, args ...any) {
	c.Emit(SeverityNote, rng, code, format, args...)
}

func (c *Context) Warning(rng source.Range, code Code, format string, args ...any) {
	c.Emit(SeverityWarning, rng, code, format, args...)
}

func (c *Context) Error(rng source.Range, code Code, format string, args ...any) {
	c.Emit(SeverityError, rng, code, format, args...)
}

// Internal records an invariant violation. Passes abort when they see one.
func (c *Context) Internal(rng source.Range, format string, args ...any) {
	c.Emit(SeverityInternal, rng, ErrX0001, format, args...)
}

// Messages returns the collected messages in emission order.
func (c *Context) Messages() []Message {
	return c.messages
}

func (c *Context) Len() int {
	return len(c.messages)
}

// MaxSeverity returns the highest severity emitted so far, or
// SeveritySuggestion when the context is empty.
func (c *Context) MaxSeverity() Severity {
	max := SeveritySuggestion
	for _, m := range c.messages {
		if m.Severity > max {
			max = m.Severity
		}
	}
	return max
}

// HasErrors reports whether compilation has failed.
func (c *Context) HasErrors() bool {
	return c.MaxSeverity() >= SeverityError
}

// CountBySeverity returns how many messages carry the given severity.
func (c *Context) CountBySeverity(severity Severity) int {
	n := 0
	for _, m := range c.messages {
		if m.Severity == severity {
			n++
		}
	}
	return n
}
