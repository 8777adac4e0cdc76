package parsing

import (
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/token"
)

// The combinators in this file distinguish two failure modes. "No match"
// leaves the cursor where it was and stays silent so the caller may try an
// alternative. "Matched a prefix then failed" emits a diagnostic and leaves
// the cursor where it stopped; callers must not recover from it. The two are
// told apart by whether the rule moved the cursor.

// TokenByKind consumes and returns the next token iff it has the wanted
// kind. Kinds compare by identity.
func TokenByKind(ctx *Context, kind *token.Kind) (token.Token, bool) {
	if !ctx.MoreTokens() || ctx.Peek().Kind != kind {
		return token.Token{}, false
	}
	return ctx.Next(), true
}

// ExpectTokenByKind is TokenByKind plus an "unexpected token" diagnostic on
// mismatch.
func ExpectTokenByKind(ctx *Context, kind *token.Kind) (token.Token, bool) {
	if tok, ok := TokenByKind(ctx, kind); ok {
		return tok, true
	}
	emitUnexpectedToken(ctx, kind.Label())
	return token.Token{}, false
}

func emitUnexpectedToken(ctx *Context, expected string) {
	if ctx.MoreTokens() {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001,
			"unexpected token: expected '%s', but got '%s'", expected, ctx.Peek().Value)
	} else {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001,
			"unexpected end of input: expected '%s'", expected)
	}
}

func kindIn(kinds []*token.Kind, kind *token.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// AnyOf tries each parser in order, backtracking after a silent failure and
// returning the first match. A parser that commits past its first token and
// then fails poisons the whole alternation: AnyOf returns failure without
// trying the rest, because a diagnostic has already been emitted.
func AnyOf[T comparable](ctx *Context, parsers ...func(*Context) T) T {
	var zero T
	for _, parser := range parsers {
		ctx.Save()
		result := parser(ctx)
		if result != zero {
			ctx.Discard()
			return result
		}
		if ctx.Cursor() != ctx.saved[len(ctx.saved)-1] {
			ctx.Discard()
			return zero
		}
		ctx.Restore()
	}
	return zero
}

// Optional runs a parser that is allowed to not match. A silent failure
// rewinds the cursor and yields the zero value; a match or a committed
// failure passes through unchanged.
func Optional[T comparable](ctx *Context, parser func(*Context) T) T {
	ctx.Save()
	result := parser(ctx)
	var zero T
	if result == zero && ctx.Cursor() == ctx.saved[len(ctx.saved)-1] {
		ctx.Restore()
		return zero
	}
	ctx.Discard()
	return result
}

// Bound parses `left inner right`. A missing left bound is a silent
// non-match; once left is consumed, a failing inner or a missing right bound
// is diagnosed at the current stream position.
func Bound[T comparable](ctx *Context, left *token.Kind, inner func(*Context) T, right *token.Kind) T {
	var zero T
	if _, ok := TokenByKind(ctx, left); !ok {
		return zero
	}

	result := inner(ctx)
	if result == zero {
		emitUnexpectedToken(ctx, "expression")
		return zero
	}

	ExpectTokenByKind(ctx, right)
	return result
}

// RepeatedResult carries the items of a repeated parse plus the bound tokens
// so callers can build source ranges spanning the whole construct.
type RepeatedResult[T any] struct {
	Items      []T
	LeftToken  token.Token
	RightToken token.Token
}

// RepeatedBound parses `left item* right`, stopping at right. A failed item
// is diagnosed and skipped one token at a time so one bad item does not
// swallow the diagnostics of the items after it.
func RepeatedBound[T comparable](ctx *Context, left *token.Kind, item func(*Context) T, right *token.Kind, itemLabel string) (RepeatedResult[T], bool) {
	var result RepeatedResult[T]
	var zero T

	leftToken, ok := TokenByKind(ctx, left)
	if !ok {
		return result, false
	}
	result.LeftToken = leftToken

	for ctx.MoreTokens() && ctx.Peek().Kind != right {
		before := ctx.Cursor()
		parsed := item(ctx)
		if parsed != zero {
			result.Items = append(result.Items, parsed)
			continue
		}
		if ctx.Cursor() == before {
			emitUnexpectedToken(ctx, itemLabel)
			ctx.Next()
		}
	}

	if rightToken, ok := ExpectTokenByKind(ctx, right); ok {
		result.RightToken = rightToken
	}
	return result, true
}

// RepeatedSeparatedBound parses `left (item (sep item)*)? right` with no
// trailing separator allowed.
func RepeatedSeparatedBound[T comparable](ctx *Context, left *token.Kind, item func(*Context) T, sep, right *token.Kind, itemLabel string) (RepeatedResult[T], bool) {
	var result RepeatedResult[T]
	var zero T

	leftToken, ok := TokenByKind(ctx, left)
	if !ok {
		return result, false
	}
	result.LeftToken = leftToken

	if ctx.MoreTokens() && ctx.Peek().Kind != right {
		for {
			parsed := item(ctx)
			if parsed == zero {
				emitUnexpectedToken(ctx, itemLabel)
				break
			}
			result.Items = append(result.Items, parsed)

			if _, ok := TokenByKind(ctx, sep); !ok {
				break
			}
			if ctx.MoreTokens() && ctx.Peek().Kind == right {
				// Trailing separator.
				emitUnexpectedToken(ctx, itemLabel)
				break
			}
		}
	}

	if rightToken, ok := ExpectTokenByKind(ctx, right); ok {
		result.RightToken = rightToken
	}
	return result, true
}

// PrefixedResult pairs a consumed prefix token with the child parsed after
// it.
type PrefixedResult[T any] struct {
	PrefixToken token.Token
	Child       T
}

// Prefixed consumes one of the prefix kinds, then parses the child. No
// matching prefix is a silent non-match; a failing child after a consumed
// prefix is diagnosed.
func Prefixed[T comparable](ctx *Context, prefixes []*token.Kind, inner func(*Context) T) (PrefixedResult[T], bool) {
	var result PrefixedResult[T]
	if !ctx.MoreTokens() || !kindIn(prefixes, ctx.Peek().Kind) {
		return result, false
	}
	result.PrefixToken = ctx.Next()

	result.Child = inner(ctx)
	var zero T
	if result.Child == zero {
		emitUnexpectedToken(ctx, "expression")
	}
	return result, true
}

// SuffixedResult pairs a parsed child with the suffix token consumed after
// it, if any.
type SuffixedResult[T any] struct {
	Child       T
	SuffixToken *token.Token
}

// Suffixed parses the child, then consumes one of the suffix kinds when
// present.
func Suffixed[T comparable](ctx *Context, inner func(*Context) T, suffixes []*token.Kind) (SuffixedResult[T], bool) {
	var result SuffixedResult[T]
	result.Child = inner(ctx)
	var zero T
	if result.Child == zero {
		return result, false
	}

	if ctx.MoreTokens() && kindIn(suffixes, ctx.Peek().Kind) {
		tok := ctx.Next()
		result.SuffixToken = &tok
	}
	return result, true
}

// BinaryOperationResult is the outcome of one binary-operation parse: an
// lhs, and when an operator token was consumed, the operator and rhs.
type BinaryOperationResult[T any] struct {
	LHS           T
	OperatorToken *token.Token
	RHS           T
}

// BinaryOperation parses `lhs (op rhs)?`. Passing the same rule as rhs makes
// the operator right-associative; looping in the caller makes it
// left-associative. A failing rhs after a consumed operator is diagnosed and
// reported through a zero RHS.
func BinaryOperation[T comparable](ctx *Context, lhs func(*Context) T, operators []*token.Kind, rhs func(*Context) T) (BinaryOperationResult[T], bool) {
	var result BinaryOperationResult[T]
	result.LHS = lhs(ctx)

	var zero T
	if result.LHS == zero {
		return result, false
	}

	if !ctx.MoreTokens() || !kindIn(operators, ctx.Peek().Kind) {
		return result, true
	}
	operatorToken := ctx.Next()
	result.OperatorToken = &operatorToken

	result.RHS = rhs(ctx)
	if result.RHS == zero {
		emitUnexpectedToken(ctx, "expression")
	}
	return result, true
}
