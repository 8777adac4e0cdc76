package parser

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// ParseValue parses any value expression. The ladder below runs from the
// weakest-binding level (assignments) down to terms; each level parses its
// operand at the next-stronger level and recurses into itself on the right,
// so every binary level is right-associative.
func ParseValue(ctx *parsing.Context) ast.Value {
	return parseValueAssignments(ctx)
}

var binaryOperators = map[*token.Kind]ast.BinaryOperator{
	token.Dot:          ast.BinaryMemberAccess,
	token.Add:          ast.BinaryAdd,
	token.Sub:          ast.BinarySub,
	token.Mul:          ast.BinaryMul,
	token.Div:          ast.BinaryDiv,
	token.Mod:          ast.BinaryMod,
	token.Exp:          ast.BinaryExp,
	token.BitAnd:       ast.BinaryBitAnd,
	token.BitOr:        ast.BinaryBitOr,
	token.BitXor:       ast.BinaryBitXor,
	token.BitShl:       ast.BinaryBitShl,
	token.BitShr:       ast.BinaryBitShr,
	token.BoolAnd:      ast.BinaryBoolAnd,
	token.BoolOr:       ast.BinaryBoolOr,
	token.Eq:           ast.BinaryEq,
	token.Ne:           ast.BinaryNe,
	token.Lt:           ast.BinaryLt,
	token.Le:           ast.BinaryLe,
	token.Gt:           ast.BinaryGt,
	token.Ge:           ast.BinaryGe,
	token.Assign:       ast.BinaryAssign,
	token.AddAssign:    ast.BinaryAddAssign,
	token.SubAssign:    ast.BinarySubAssign,
	token.MulAssign:    ast.BinaryMulAssign,
	token.DivAssign:    ast.BinaryDivAssign,
	token.ModAssign:    ast.BinaryModAssign,
	token.ExpAssign:    ast.BinaryExpAssign,
	token.BitAndAssign: ast.BinaryBitAndAssign,
	token.BitOrAssign:  ast.BinaryBitOrAssign,
	token.BitXorAssign: ast.BinaryBitXorAssign,
	token.BitShlAssign: ast.BinaryBitShlAssign,
	token.BitShrAssign: ast.BinaryBitShrAssign,
}

// parseBinaryLevel builds one level of the ladder: `operand (op level)?`.
// A consumed operator with a failed rhs has already been diagnosed by the
// combinator; the lhs is returned so later stages still see a tree.
func parseBinaryLevel(ctx *parsing.Context, operand func(*parsing.Context) ast.Value, operators []*token.Kind, level func(*parsing.Context) ast.Value) ast.Value {
	result, ok := parsing.BinaryOperation(ctx, operand, operators, level)
	if !ok {
		return nil
	}
	if result.OperatorToken == nil || result.RHS == nil {
		return result.LHS
	}
	return &ast.ValueBinary{
		SourceRange: source.Combine(result.LHS.Range(), result.RHS.Range()),
		Operator:    binaryOperators[result.OperatorToken.Kind],
		LHS:         result.LHS,
		RHS:         result.RHS,
	}
}

func parseValueLiteralBool(ctx *parsing.Context) ast.Value {
	if tok, ok := parsing.TokenByKind(ctx, token.KwTrue); ok {
		return &ast.ValueLiteralBool{SourceRange: tokenRange(tok), Value: true}
	}
	if tok, ok := parsing.TokenByKind(ctx, token.KwFalse); ok {
		return &ast.ValueLiteralBool{SourceRange: tokenRange(tok), Value: false}
	}
	return nil
}

func parseValueSymbol(ctx *parsing.Context) ast.Value {
	tok, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		return nil
	}
	return &ast.ValueSymbol{SourceRange: tokenRange(tok), Name: tok.Value}
}

func parseValueParenthesis(ctx *parsing.Context) ast.Value {
	return parsing.Bound(ctx, token.LParen, ParseValue, token.RParen)
}

func parseValueTerm(ctx *parsing.Context) ast.Value {
	return parsing.AnyOf(ctx,
		parseValueLiteralBool,
		parseValueLiteralNumber,
		parseValueSymbol,
		parseValueParenthesis,
	)
}

var memberAccessOperators = []*token.Kind{token.Dot}

func parseValueMemberAccess(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueTerm, memberAccessOperators, parseValueMemberAccess)
}

// parseValueFunctionCall parses `callee ( arg, ... )?`.
func parseValueFunctionCall(ctx *parsing.Context) ast.Value {
	callee := parsing.Optional(ctx, parseValueMemberAccess)
	if callee == nil {
		return nil
	}

	args, ok := parsing.RepeatedSeparatedBound(ctx, token.LParen, ParseValue, token.Comma, token.RParen, "value")
	if !ok {
		return callee
	}

	return &ast.ValueCall{
		SourceRange: source.Combine(callee.Range(), tokenRange(args.RightToken)),
		Callee:      callee,
		Args:        args.Items,
	}
}

var valueUnaryPrefixes = []*token.Kind{
	token.Mul, token.BitAnd, token.Sub, token.Add, token.BitNot, token.BoolNot,
}

var unaryOperators = map[*token.Kind]ast.UnaryOperator{
	token.Mul:     ast.UnaryDeref,
	token.BitAnd:  ast.UnaryGetAddr,
	token.Sub:     ast.UnaryNeg,
	token.Add:     ast.UnaryPos,
	token.BitNot:  ast.UnaryBitNot,
	token.BoolNot: ast.UnaryBoolNot,
}

func parseValueUnary(ctx *parsing.Context) ast.Value {
	result, ok := parsing.Prefixed(ctx, valueUnaryPrefixes, parseValueUnary)
	if !ok {
		return parseValueFunctionCall(ctx)
	}
	if result.Child == nil {
		return nil
	}

	return &ast.ValueUnary{
		SourceRange: combineToken(result.PrefixToken, result.Child.Range()),
		Operator:    unaryOperators[result.PrefixToken.Kind],
		Operand:     result.Child,
	}
}

var exponentiationOperators = []*token.Kind{token.Exp}

func parseValueExponentiation(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueUnary, exponentiationOperators, parseValueExponentiation)
}

var multiplicativeOperators = []*token.Kind{token.Mul, token.Div, token.Mod}

func parseValueMultiplicative(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueExponentiation, multiplicativeOperators, parseValueMultiplicative)
}

var additiveOperators = []*token.Kind{token.Add, token.Sub}

func parseValueAdditive(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueMultiplicative, additiveOperators, parseValueAdditive)
}

var bitShiftOperators = []*token.Kind{token.BitShl, token.BitShr}

func parseValueBitShifts(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueAdditive, bitShiftOperators, parseValueBitShifts)
}

var conjunctiveOperators = []*token.Kind{token.BitAnd, token.BitXor}

func parseValueBinaryConjunctive(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueBitShifts, conjunctiveOperators, parseValueBinaryConjunctive)
}

var disjunctiveOperators = []*token.Kind{token.BitOr}

func parseValueBinaryDisjunctive(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueBinaryConjunctive, disjunctiveOperators, parseValueBinaryDisjunctive)
}

var comparativeOperators = []*token.Kind{
	token.Eq, token.Ne, token.Lt, token.Le, token.Gt, token.Ge,
}

func parseValueComparative(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueBinaryDisjunctive, comparativeOperators, parseValueComparative)
}

var booleanAndOperators = []*token.Kind{token.BoolAnd}

func parseValueBooleanAnd(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueComparative, booleanAndOperators, parseValueBooleanAnd)
}

var booleanOrOperators = []*token.Kind{token.BoolOr}

func parseValueBooleanOr(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueBooleanAnd, booleanOrOperators, parseValueBooleanOr)
}

// parseValueCast parses `value (as type)*`. The rhs of `as` is a type, not a
// value, so the level loops instead of recursing.
func parseValueCast(ctx *parsing.Context) ast.Value {
	value := parseValueBooleanOr(ctx)
	if value == nil {
		return nil
	}

	for {
		if _, ok := parsing.TokenByKind(ctx, token.KwAs); !ok {
			return value
		}

		target := ParseType(ctx)
		if target == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
			return value
		}

		value = &ast.ValueCast{
			SourceRange: source.Combine(value.Range(), target.Range()),
			Value:       value,
			Type:        target,
		}
	}
}

var assignmentOperators = []*token.Kind{
	token.Assign, token.AddAssign, token.SubAssign, token.MulAssign,
	token.DivAssign, token.ModAssign, token.ExpAssign, token.BitAndAssign,
	token.BitOrAssign, token.BitXorAssign, token.BitShlAssign, token.BitShrAssign,
}

func parseValueAssignments(ctx *parsing.Context) ast.Value {
	return parseBinaryLevel(ctx, parseValueCast, assignmentOperators, parseValueAssignments)
}
