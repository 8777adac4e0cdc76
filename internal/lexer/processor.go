package lexer

import (
	"github.com/forge-lang/forge/internal/pipeline"
)

// Processor adapts the lexer to the pipeline.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Source == nil {
		return ctx
	}
	ctx.Tokens = Lex(ctx.Messages, ctx.Source)
	return ctx
}
