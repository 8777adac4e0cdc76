package parser

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// ParseDeclaration parses any declaration that opens with its own keyword:
// variables (`let` / `const`), functions, type aliases, structured types,
// and namespaces.
func ParseDeclaration(ctx *parsing.Context) ast.Declaration {
	return parseDeclarationWithOptions(ctx, true)
}

// parseMemberDeclaration parses a declaration inside a structured-type body,
// where variable members drop the `let` / `const` keyword.
func parseMemberDeclaration(ctx *parsing.Context) ast.Declaration {
	return parseDeclarationWithOptions(ctx, false)
}

func parseDeclarationWithOptions(ctx *parsing.Context, withVariableKeyword bool) ast.Declaration {
	return parsing.AnyOf(ctx,
		func(ctx *parsing.Context) ast.Declaration {
			return parseDeclarationVariable(ctx, withVariableKeyword, true)
		},
		parseDeclarationFunction,
		parseDeclarationTypeAlias,
		parseDeclarationStructuredType,
		parseDeclarationNamespace,
	)
}

// parseDeclarationVariable parses `(let | const)? name (: type)? (= value)?
// ;?`. Function parameters omit both the keyword and the semicolon;
// structured-type members omit only the keyword.
func parseDeclarationVariable(ctx *parsing.Context, withKeyword, withSemicolon bool) ast.Declaration {
	isConst := false
	var keywordRange source.Range

	if withKeyword {
		if constToken, ok := parsing.TokenByKind(ctx, token.KwConst); ok {
			isConst = true
			keywordRange = tokenRange(constToken)
		} else if letToken, ok := parsing.TokenByKind(ctx, token.KwLet); ok {
			keywordRange = tokenRange(letToken)
		} else {
			return nil
		}
	}

	symbol, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		if withKeyword {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected symbol")
		}
		return nil
	}

	declaration := &ast.DeclarationVariable{
		SourceRange: source.Combine(keywordRange, tokenRange(symbol)),
		Name:        symbol.Value,
		IsConst:     isConst,
		IsParameter: !withSemicolon,
	}

	if _, ok := parsing.TokenByKind(ctx, token.Colon); ok {
		declaredType := ParseType(ctx)
		if declaredType == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
			return nil
		}
		declaration.Type = declaredType
		declaration.SourceRange = source.Combine(declaration.SourceRange, declaredType.Range())
	}

	if _, ok := parsing.TokenByKind(ctx, token.Assign); ok {
		value := ParseValue(ctx)
		if value == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected value")
			return nil
		}
		declaration.InitialValue = value
		declaration.SourceRange = source.Combine(declaration.SourceRange, value.Range())
	}

	if withSemicolon {
		semicolon, ok := parsing.ExpectTokenByKind(ctx, token.Semicolon)
		if !ok {
			return nil
		}
		declaration.SourceRange = source.Combine(declaration.SourceRange, tokenRange(semicolon))
	}

	return declaration
}

func parseFunctionParameter(ctx *parsing.Context) ast.Declaration {
	return parseDeclarationVariable(ctx, false, false)
}

// parseDeclarationFunction parses `func name ( params ) (-> type)?
// (body | ;)`. A semicolon instead of a body declares an external function.
func parseDeclarationFunction(ctx *parsing.Context) ast.Declaration {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwFunc)
	if !ok {
		return nil
	}

	symbol, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected symbol")
		return nil
	}

	params, ok := parsing.RepeatedSeparatedBound(ctx, token.LParen, parseFunctionParameter, token.Comma, token.RParen, "parameter")
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected '%s'", "(")
		return nil
	}

	declaration := &ast.DeclarationFunction{
		SourceRange: source.Combine(tokenRange(kwToken), tokenRange(params.RightToken)),
		Name:        symbol.Value,
	}
	for _, param := range params.Items {
		variable, ok := param.(*ast.DeclarationVariable)
		if !ok {
			ctx.Messages.Internal(param.Range(), "function parameter is not a variable declaration")
			continue
		}
		declaration.Args = append(declaration.Args, variable)
	}

	if _, ok := parsing.TokenByKind(ctx, token.RArrow); ok {
		returnType := ParseType(ctx)
		if returnType == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
			return nil
		}
		declaration.ReturnType = returnType
		declaration.SourceRange = source.Combine(declaration.SourceRange, returnType.Range())
	}

	if semicolon, ok := parsing.TokenByKind(ctx, token.Semicolon); ok {
		declaration.SourceRange = source.Combine(declaration.SourceRange, tokenRange(semicolon))
		return declaration
	}

	body := parseStatementBlock(ctx)
	if body == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected function body")
		return nil
	}
	declaration.Body = body
	declaration.SourceRange = source.Combine(declaration.SourceRange, body.Range())

	return declaration
}

// parseDeclarationTypeAlias parses `explicit? type name = type ;`.
func parseDeclarationTypeAlias(ctx *parsing.Context) ast.Declaration {
	isExplicit := false
	var startRange source.Range

	if explicitToken, ok := parsing.TokenByKind(ctx, token.KwExplicit); ok {
		isExplicit = true
		startRange = tokenRange(explicitToken)
	}

	kwToken, ok := parsing.TokenByKind(ctx, token.KwType)
	if !ok {
		if isExplicit {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected '%s'", "type")
		}
		return nil
	}
	startRange = source.Combine(startRange, tokenRange(kwToken))

	symbol, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected symbol")
		return nil
	}

	if _, ok := parsing.ExpectTokenByKind(ctx, token.Assign); !ok {
		return nil
	}

	aliased := ParseType(ctx)
	if aliased == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
		return nil
	}

	semicolon, ok := parsing.ExpectTokenByKind(ctx, token.Semicolon)
	if !ok {
		return nil
	}

	return &ast.DeclarationTypeAlias{
		SourceRange: source.Combine(startRange, tokenRange(semicolon)),
		Name:        symbol.Value,
		Type:        aliased,
		IsExplicit:  isExplicit,
	}
}

// parseDeclarationStructuredType parses `(struct | interface) name
// (inherits Type (, Type)*)? { member* }`.
func parseDeclarationStructuredType(ctx *parsing.Context) ast.Declaration {
	var kind ast.StructuredTypeKind
	var kwToken token.Token

	if structToken, ok := parsing.TokenByKind(ctx, token.KwStruct); ok {
		kind = ast.StructuredStruct
		kwToken = structToken
	} else if interfaceToken, ok := parsing.TokenByKind(ctx, token.KwInterface); ok {
		kind = ast.StructuredInterface
		kwToken = interfaceToken
	} else {
		return nil
	}

	symbol, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected symbol")
		return nil
	}

	declaration := &ast.DeclarationStructuredType{
		SourceRange:    source.Combine(tokenRange(kwToken), tokenRange(symbol)),
		Name:           symbol.Value,
		StructuredKind: kind,
	}

	if _, ok := parsing.TokenByKind(ctx, token.KwInherits); ok {
		for ctx.MoreTokens() {
			inherited := parseTypeSymbol(ctx)
			if inherited == nil {
				ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected type")
				return nil
			}
			declaration.Inherits = append(declaration.Inherits, inherited.(*ast.TypeSymbol))

			if _, ok := parsing.TokenByKind(ctx, token.Comma); !ok {
				break
			}
		}
	}

	members, ok := parsing.RepeatedBound(ctx, token.LBrace, parseMemberDeclaration, token.RBrace, "declaration")
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected '%s'", "{")
		return nil
	}
	declaration.Members = members.Items
	declaration.SourceRange = source.Combine(declaration.SourceRange, tokenRange(members.RightToken))

	return declaration
}

// parseDeclarationNamespace parses `namespace name { declaration* }`.
func parseDeclarationNamespace(ctx *parsing.Context) ast.Declaration {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwNamespace)
	if !ok {
		return nil
	}

	symbol, ok := parsing.TokenByKind(ctx, token.Symbol)
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected symbol")
		return nil
	}

	members, ok := parsing.RepeatedBound(ctx, token.LBrace, ParseDeclaration, token.RBrace, "declaration")
	if !ok {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected '%s'", "{")
		return nil
	}

	return &ast.DeclarationNamespace{
		SourceRange: source.Combine(tokenRange(kwToken), tokenRange(members.RightToken)),
		Name:        symbol.Value,
		Members:     members.Items,
	}
}
