package handlers

import (
	"github.com/forge-lang/forge/internal/pass"
	"github.com/forge-lang/forge/internal/pipeline"
)

// Processor runs one semantic pass as a pipeline stage. Stage state is built
// fresh on every Process call so nothing leaks between compilations sharing
// a processor value.
type Processor struct {
	run func(*pipeline.Context)
}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Unit == nil {
		return ctx
	}
	p.run(ctx)
	return ctx
}

func singlePass(build func() pass.Handler) *Processor {
	return &Processor{run: func(ctx *pipeline.Context) {
		pass.New(ctx.Messages, build()).Run(ctx.Unit)
	}}
}

func NewWellFormednessProcessor() *Processor {
	return singlePass(func() pass.Handler { return NewWellFormednessHandler() })
}

func NewSymbolResolutionProcessor() *Processor {
	return singlePass(func() pass.Handler { return NewSymbolResolutionHandler() })
}

// NewTypeResolutionProcessor iterates resolution to a fixpoint instead of
// running one pass; see ResolveTypes.
func NewTypeResolutionProcessor() *Processor {
	return &Processor{run: func(ctx *pipeline.Context) {
		ResolveTypes(ctx.Messages, ctx.Unit)
	}}
}

func NewTypeValidationProcessor() *Processor {
	return singlePass(func() pass.Handler { return NewTypeValidationHandler() })
}

func NewControlFlowProcessor() *Processor {
	return singlePass(func() pass.Handler { return NewControlFlowHandler() })
}
