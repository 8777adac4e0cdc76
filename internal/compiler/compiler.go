// Package compiler assembles the standard Forge front-end pipeline: lex,
// parse, then the semantic passes in their required order. It is the entry
// point the CLI and the backend contract build on.
package compiler

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/handlers"
	"github.com/forge-lang/forge/internal/lexer"
	"github.com/forge-lang/forge/internal/parser"
	"github.com/forge-lang/forge/internal/pipeline"
	"github.com/forge-lang/forge/internal/source"
)

// NewPipeline builds the standard stage sequence. Later passes rely on the
// annotations of earlier ones, so the order is fixed.
func NewPipeline() *pipeline.Pipeline {
	return pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		handlers.NewWellFormednessProcessor(),
		handlers.NewSymbolResolutionProcessor(),
		handlers.NewTypeResolutionProcessor(),
		handlers.NewTypeValidationProcessor(),
		handlers.NewControlFlowProcessor(),
	)
}

// Compile runs a source through the whole front end. It returns the
// (possibly partial) tree together with every collected diagnostic; the
// compilation succeeded iff the context's max severity stayed below error.
func Compile(src *source.Source) (*ast.TranslationUnit, *diagnostics.Context) {
	ctx := pipeline.NewContext(src)
	ctx = NewPipeline().Run(ctx)
	return ctx.Unit, ctx.Messages
}

// CompileContext is Compile for callers that also want the token stream.
func CompileContext(src *source.Source) *pipeline.Context {
	return NewPipeline().Run(pipeline.NewContext(src))
}
