// Package pass implements the tree-traversal framework the semantic
// analyzers plug into. A Pass walks an AST depth-first, invoking every
// handler around each node with a live parent stack and the shared
// diagnostic sink. Handlers can continue, replace the current node in its
// parent slot, skip the node's children, or halt the pass.
package pass

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
)

// OutputKind tells the pass what to do after a handler callback.
type OutputKind int

const (
	// OutputContinue proceeds normally.
	OutputContinue OutputKind = iota
	// OutputReplace swaps the current node for Output.Replacement in its
	// parent slot. The replacement is not revisited.
	OutputReplace
	// OutputSkipChildren suppresses descent into the current node.
	OutputSkipChildren
	// OutputHalt aborts the whole pass.
	OutputHalt
)

// Output is a handler's verdict on one node.
type Output struct {
	Kind        OutputKind
	Replacement ast.Node
}

// Continue is the default verdict.
func Continue() Output {
	return Output{Kind: OutputContinue}
}

// Replace swaps the current node for replacement.
func Replace(replacement ast.Node) Output {
	return Output{Kind: OutputReplace, Replacement: replacement}
}

// SkipChildren keeps the node but does not descend into it.
func SkipChildren() Output {
	return Output{Kind: OutputSkipChildren}
}

// Halt aborts the pass.
func Halt() Output {
	return Output{Kind: OutputHalt}
}

// Input is what a handler sees for one node: the node itself, the read-only
// parent stack (innermost last), and the diagnostic sink.
type Input struct {
	Node     ast.Node
	Parents  []ast.Node
	Messages *diagnostics.Context
}

// Parent returns the innermost ancestor, or nil at the root.
func (in *Input) Parent() ast.Node {
	if len(in.Parents) == 0 {
		return nil
	}
	return in.Parents[len(in.Parents)-1]
}

// EnclosingFunction returns the nearest function declaration on the parent
// stack, or nil outside any function.
func (in *Input) EnclosingFunction() *ast.DeclarationFunction {
	for i := len(in.Parents) - 1; i >= 0; i-- {
		if fn, ok := in.Parents[i].(*ast.DeclarationFunction); ok {
			return fn
		}
	}
	return nil
}

// Handler observes every node of a pass on enter and on leave. Handlers
// dispatch on node kind with a type switch over Input.Node and return
// Continue for the kinds they do not care about; embedding NopHandler gives
// both callbacks a Continue default.
type Handler interface {
	OnEnter(*Input) Output
	OnLeave(*Input) Output
}

// NopHandler is an embeddable no-op implementation of Handler.
type NopHandler struct{}

func (NopHandler) OnEnter(*Input) Output { return Continue() }
func (NopHandler) OnLeave(*Input) Output { return Continue() }

// Pass traverses a tree with a chain of handlers.
type Pass struct {
	messages *diagnostics.Context
	handlers []Handler
	parents  []ast.Node
}

// New builds a pass over the given handler chain.
func New(messages *diagnostics.Context, handlers ...Handler) *Pass {
	return &Pass{messages: messages, handlers: handlers}
}

type signal int

const (
	signalContinue signal = iota
	signalHalt
)

// Run traverses the tree rooted at root. It reports false when a handler
// halted the pass or an internal error was detected.
func (p *Pass) Run(root ast.Node) bool {
	p.parents = p.parents[:0]
	return p.visit(root, nil) == signalContinue
}

// visit handles one node. The replace callback stores a replacement into the
// node's slot in its parent and is nil at the root.
func (p *Pass) visit(node ast.Node, replace func(ast.Node) bool) signal {
	if node == nil {
		return signalContinue
	}

	input := &Input{Node: node, Parents: p.parents, Messages: p.messages}

	skipChildren := false
	for _, handler := range p.handlers {
		switch output := handler.OnEnter(input); output.Kind {
		case OutputContinue:
		case OutputReplace:
			if !p.replaceNode(node, output.Replacement, replace) {
				return signalHalt
			}
			return signalContinue
		case OutputSkipChildren:
			skipChildren = true
		case OutputHalt:
			return signalHalt
		}
	}

	if !skipChildren {
		p.parents = append(p.parents, node)
		halted := false
		known := ast.EachChild(node, func(child ast.Node, set func(ast.Node) bool) {
			if halted {
				return
			}
			if p.visit(child, set) == signalHalt {
				halted = true
			}
		})
		p.parents = p.parents[:len(p.parents)-1]
		if !known {
			p.messages.Internal(node.Range(), "unknown node kind %q in pass traversal", node.Kind())
			return signalHalt
		}
		if halted {
			return signalHalt
		}
	}

	for _, handler := range p.handlers {
		switch output := handler.OnLeave(input); output.Kind {
		case OutputContinue:
		case OutputReplace:
			if !p.replaceNode(node, output.Replacement, replace) {
				return signalHalt
			}
			return signalContinue
		case OutputSkipChildren:
			// Children are already visited by now; nothing to skip.
		case OutputHalt:
			return signalHalt
		}
	}

	return signalContinue
}

func (p *Pass) replaceNode(node, replacement ast.Node, replace func(ast.Node) bool) bool {
	if replace == nil {
		p.messages.Internal(node.Range(), "cannot replace the root node of a pass")
		return false
	}
	if !replace(replacement) {
		p.messages.Internal(node.Range(), "replacement node kind %q does not fit its parent slot", replacement.Kind())
		return false
	}
	return true
}
