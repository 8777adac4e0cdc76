// Package parser implements the Forge grammar on top of the generic
// combinators in internal/parsing. Rules are free functions over a
// parsing.Context, one per grammar production, mirroring the shape of the
// grammar itself: types, values (a precedence ladder), statements, and
// declarations.
package parser

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// ParseTranslationUnit parses declarations until the token stream is
// exhausted. On a failed declaration it reports "expected declaration" and
// returns the partial tree.
func ParseTranslationUnit(ctx *parsing.Context) *ast.TranslationUnit {
	unit := &ast.TranslationUnit{}

	for ctx.MoreTokens() {
		declaration := ParseDeclaration(ctx)
		if declaration == nil {
			ctx.Messages.Error(ctx.CurrentRange(), diagnostics.ErrP0002, "expected declaration")
			break
		}
		unit.Declarations = append(unit.Declarations, declaration)
		unit.SourceRange = source.Combine(unit.SourceRange, declaration.Range())
	}

	return unit
}

func tokenRange(tok token.Token) source.Range {
	return tok.SourceRange
}

func combineToken(tok token.Token, rest source.Range) source.Range {
	return source.Combine(tokenRange(tok), rest)
}
