package parser

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// ParseStatement parses any statement.
func ParseStatement(ctx *parsing.Context) ast.Statement {
	return parsing.AnyOf(ctx,
		parseStatementContinue,
		parseStatementBreak,
		parseStatementExecute,
		parseStatementReturn,
		parseStatementDeclaration,
		parseStatementBlockAsStatement,
		parseStatementIfAsStatement,
		parseStatementWhile,
		parseStatementDoWhile,
	)
}

func parseBasicKeywordStatement(ctx *parsing.Context, keyword *token.Kind, kind ast.StatementBasicKind) ast.Statement {
	kwToken, ok := parsing.TokenByKind(ctx, keyword)
	if !ok {
		return nil
	}

	semicolon, ok := parsing.ExpectTokenByKind(ctx, token.Semicolon)
	if !ok {
		return nil
	}

	return &ast.StatementBasic{
		SourceRange: source.Combine(tokenRange(kwToken), tokenRange(semicolon)),
		BasicKind:   kind,
	}
}

func parseStatementContinue(ctx *parsing.Context) ast.Statement {
	return parseBasicKeywordStatement(ctx, token.KwContinue, ast.StatementContinue)
}

func parseStatementBreak(ctx *parsing.Context) ast.Statement {
	return parseBasicKeywordStatement(ctx, token.KwBreak, ast.StatementBreak)
}

// parseStatementExecute parses `value ;`.
func parseStatementExecute(ctx *parsing.Context) ast.Statement {
	result, ok := parsing.Suffixed(ctx, ParseValue, []*token.Kind{token.Semicolon})
	if !ok {
		return nil
	}
	if result.SuffixToken == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected '%s'", ";")
		return nil
	}

	return &ast.StatementValue{
		SourceRange: source.Combine(result.Child.Range(), tokenRange(*result.SuffixToken)),
		ValueKind:   ast.StatementExecute,
		Value:       result.Child,
	}
}

// parseStatementReturn parses `return ;` into a StatementBasic and
// `return value ;` into a StatementValue.
func parseStatementReturn(ctx *parsing.Context) ast.Statement {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwReturn)
	if !ok {
		return nil
	}

	if semicolon, ok := parsing.TokenByKind(ctx, token.Semicolon); ok {
		return &ast.StatementBasic{
			SourceRange: source.Combine(tokenRange(kwToken), tokenRange(semicolon)),
			BasicKind:   ast.StatementReturnVoid,
		}
	}

	value := ParseValue(ctx)
	if value == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected value")
		return nil
	}

	semicolon, ok := parsing.ExpectTokenByKind(ctx, token.Semicolon)
	if !ok {
		return nil
	}

	return &ast.StatementValue{
		SourceRange: source.Combine(tokenRange(kwToken), tokenRange(semicolon)),
		ValueKind:   ast.StatementReturn,
		Value:       value,
	}
}

func parseStatementDeclaration(ctx *parsing.Context) ast.Statement {
	declaration := ParseDeclaration(ctx)
	if declaration == nil {
		return nil
	}
	return &ast.StatementDeclaration{
		SourceRange: declaration.Range(),
		Declaration: declaration,
	}
}

// parseStatementBlock parses `{ statement* }`.
func parseStatementBlock(ctx *parsing.Context) *ast.StatementBlock {
	statements, ok := parsing.RepeatedBound(ctx, token.LBrace, ParseStatement, token.RBrace, "statement")
	if !ok {
		return nil
	}

	return &ast.StatementBlock{
		SourceRange: source.Combine(tokenRange(statements.LeftToken), tokenRange(statements.RightToken)),
		Statements:  statements.Items,
	}
}

func parseStatementBlockAsStatement(ctx *parsing.Context) ast.Statement {
	block := parseStatementBlock(ctx)
	if block == nil {
		return nil
	}
	return block
}

// parseStatementIf parses `if value block (else (if | block))?`, so
// `else if` chains nest as the else branch without parentheses.
func parseStatementIf(ctx *parsing.Context) *ast.StatementIf {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwIf)
	if !ok {
		return nil
	}

	condition := ParseValue(ctx)
	if condition == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected condition")
		return nil
	}

	then := parseStatementBlock(ctx)
	if then == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected then clause")
		return nil
	}

	statement := &ast.StatementIf{
		SourceRange: source.Combine(tokenRange(kwToken), then.Range()),
		Condition:   condition,
		Then:        then,
	}

	if _, ok := parsing.TokenByKind(ctx, token.KwElse); !ok {
		return statement
	}

	if ctx.MoreTokens() && ctx.Peek().Kind == token.KwIf {
		elseIf := parseStatementIf(ctx)
		if elseIf == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected else if clause")
			return nil
		}
		statement.Else = elseIf
		statement.SourceRange = source.Combine(statement.SourceRange, elseIf.Range())
		return statement
	}

	elseBlock := parseStatementBlock(ctx)
	if elseBlock == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected else clause")
		return nil
	}
	statement.Else = elseBlock
	statement.SourceRange = source.Combine(statement.SourceRange, elseBlock.Range())
	return statement
}

func parseStatementIfAsStatement(ctx *parsing.Context) ast.Statement {
	statement := parseStatementIf(ctx)
	if statement == nil {
		return nil
	}
	return statement
}

// parseStatementWhile parses `while value block`.
func parseStatementWhile(ctx *parsing.Context) ast.Statement {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwWhile)
	if !ok {
		return nil
	}

	condition := ParseValue(ctx)
	if condition == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected condition")
		return nil
	}

	body := parseStatementBlock(ctx)
	if body == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected body clause")
		return nil
	}

	return &ast.StatementWhile{
		SourceRange: source.Combine(tokenRange(kwToken), body.Range()),
		Condition:   condition,
		Body:        body,
	}
}

// parseStatementDoWhile parses `do block while value ;`.
func parseStatementDoWhile(ctx *parsing.Context) ast.Statement {
	kwToken, ok := parsing.TokenByKind(ctx, token.KwDo)
	if !ok {
		return nil
	}

	body := parseStatementBlock(ctx)
	if body == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected body clause")
		return nil
	}

	if _, ok := parsing.ExpectTokenByKind(ctx, token.KwWhile); !ok {
		return nil
	}

	condition := ParseValue(ctx)
	if condition == nil {
		ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0001, "unexpected token: expected condition")
		return nil
	}

	semicolon, ok := parsing.ExpectTokenByKind(ctx, token.Semicolon)
	if !ok {
		return nil
	}

	return &ast.StatementWhile{
		SourceRange: source.Combine(tokenRange(kwToken), tokenRange(semicolon)),
		Condition:   condition,
		Body:        body,
		IsDoWhile:   true,
	}
}
