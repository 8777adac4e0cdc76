// Package pipeline wires the compilation stages together. Each stage is a
// Processor over a shared Context; the stages run strictly in order and
// every one of them reports into the same diagnostic sink.
package pipeline

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// Context holds everything passed between pipeline stages.
type Context struct {
	Source   *source.Source
	Messages *diagnostics.Context
	Tokens   []token.Token
	Unit     *ast.TranslationUnit
}

// NewContext builds a compilation context for one source.
func NewContext(src *source.Source) *Context {
	return &Context{Source: src, Messages: diagnostics.NewContext()}
}

// Failed reports whether compilation has produced errors so far.
func (c *Context) Failed() bool {
	return c.Messages.HasErrors()
}

// Processor is one compilation stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. Stages keep running after errors so a
// single compile surfaces as many diagnostics as possible; each stage
// decides for itself whether a missing input makes it a no-op.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
