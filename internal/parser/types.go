package parser

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// ParseType parses any type, including pointer and const prefixes.
func ParseType(ctx *parsing.Context) ast.Type {
	return parseTypeUnary(ctx)
}

var typeBasicKinds = []struct {
	token *token.Kind
	kind  ast.TypeBasicKind
}{
	{token.KwBool, ast.TypeBasicBool},
	{token.KwVoid, ast.TypeBasicVoid},
	{token.KwIsize, ast.TypeBasicIsize},
	{token.KwUsize, ast.TypeBasicUsize},
}

func parseTypeBasic(ctx *parsing.Context) ast.Type {
	for _, entry := range typeBasicKinds {
		if tok, ok := parsing.TokenByKind(ctx, entry.token); ok {
			return &ast.TypeBasic{SourceRange: tokenRange(tok), BasicKind: entry.kind}
		}
	}
	return nil
}

var typeBitWidthKinds = []struct {
	token    *token.Kind
	kind     ast.TypeWithBitWidthKind
	bitWidth int
}{
	{token.KwI8, ast.TypeSignedInt, 8},
	{token.KwI16, ast.TypeSignedInt, 16},
	{token.KwI32, ast.TypeSignedInt, 32},
	{token.KwI64, ast.TypeSignedInt, 64},
	{token.KwU8, ast.TypeUnsignedInt, 8},
	{token.KwU16, ast.TypeUnsignedInt, 16},
	{token.KwU32, ast.TypeUnsignedInt, 32},
	{token.KwU64, ast.TypeUnsignedInt, 64},
	{token.KwF32, ast.TypeFloat, 32},
	{token.KwF64, ast.TypeFloat, 64},
}

func parseTypeWithBitWidth(ctx *parsing.Context) ast.Type {
	for _, entry := range typeBitWidthKinds {
		if tok, ok := parsing.TokenByKind(ctx, entry.token); ok {
			return &ast.TypeWithBitWidth{
				SourceRange: tokenRange(tok),
				WidthKind:   entry.kind,
				BitWidth:    entry.bitWidth,
			}
		}
	}
	return nil
}

func parseTypeSymbol(ctx *parsing.Context) ast.Type {
	tok, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		return nil
	}
	return &ast.TypeSymbol{SourceRange: tokenRange(tok), Name: tok.Value}
}

// parseTypeFunction parses `( type, ... ) -> type`.
func parseTypeFunction(ctx *parsing.Context) ast.Type {
	args, ok := parsing.RepeatedSeparatedBound(ctx, token.LParen, ParseType, token.Comma, token.RParen, "type")
	if !ok {
		return nil
	}

	if _, ok := parsing.ExpectTokenByKind(ctx, token.RArrow); !ok {
		return nil
	}

	returnType := ParseType(ctx)
	if returnType == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
		return nil
	}

	return &ast.TypeFunction{
		SourceRange: combineToken(args.LeftToken, returnType.Range()),
		ReturnType:  returnType,
		ArgTypes:    args.Items,
	}
}

// parseTypeStructured parses `{ declaration* }`.
func parseTypeStructured(ctx *parsing.Context) ast.Type {
	members, ok := parsing.RepeatedBound(ctx, token.LBrace, parseMemberDeclaration, token.RBrace, "declaration")
	if !ok {
		return nil
	}

	return &ast.TypeStructured{
		SourceRange: source.Combine(tokenRange(members.LeftToken), tokenRange(members.RightToken)),
		Members:     members.Items,
	}
}

func parseTypeTerm(ctx *parsing.Context) ast.Type {
	return parsing.AnyOf(ctx,
		parseTypeBasic,
		parseTypeSymbol,
		parseTypeWithBitWidth,
		parseTypeFunction,
		parseTypeStructured,
	)
}

var typeUnaryPrefixes = []*token.Kind{token.Mul, token.Exp, token.KwConst}

// parseTypeUnary handles the `*`, `**` and `const` prefixes. `**T` desugars
// to a pointer to a pointer; `const` marks the type it directly prefixes.
func parseTypeUnary(ctx *parsing.Context) ast.Type {
	result, ok := parsing.Prefixed(ctx, typeUnaryPrefixes, parseTypeUnary)
	if !ok {
		return parseTypeTerm(ctx)
	}
	if result.Child == nil {
		return nil
	}

	rng := combineToken(result.PrefixToken, result.Child.Range())

	switch result.PrefixToken.Kind {
	case token.Mul:
		return &ast.TypeUnary{SourceRange: rng, UnaryKind: ast.TypePointer, Operand: result.Child}
	case token.Exp:
		inner := &ast.TypeUnary{SourceRange: rng, UnaryKind: ast.TypePointer, Operand: result.Child}
		return &ast.TypeUnary{SourceRange: rng, UnaryKind: ast.TypePointer, Operand: inner}
	case token.KwConst:
		return markTypeConst(result.Child)
	default:
		ctx.Messages.Internal(rng, "unsupported type prefix %q", result.PrefixToken.Value)
		return nil
	}
}

// markTypeConst sets is_const on a parsed type in place.
func markTypeConst(t ast.Type) ast.Type {
	switch typed := t.(type) {
	case *ast.TypeBasic:
		typed.IsConst = true
	case *ast.TypeWithBitWidth:
		typed.IsConst = true
	case *ast.TypeSymbol:
		typed.IsConst = true
	case *ast.TypeUnary:
		typed.IsConst = true
	case *ast.TypeFunction:
		typed.IsConst = true
	case *ast.TypeStructured:
		typed.IsConst = true
	}
	return t
}
