package parser

import (
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/pipeline"
)

// Processor adapts the parser to the pipeline.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	parsingContext := parsing.NewContext(ctx.Messages, ctx.Tokens)
	ctx.Unit = ParseTranslationUnit(parsingContext)
	return ctx
}
