package handlers

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/pass"
)

// ControlFlowHandler resolves the termination flags of every statement
// post-order, flags unreachable statements, and checks that every function
// with a body, void ones included, always returns. A statement "terminates the block" when control
// cannot fall past it inside the block, and "terminates the function" when
// it guarantees leaving the function.
type ControlFlowHandler struct {
	pass.NopHandler
}

func NewControlFlowHandler() *ControlFlowHandler {
	return &ControlFlowHandler{}
}

func (h *ControlFlowHandler) OnLeave(in *pass.Input) pass.Output {
	switch node := in.Node.(type) {
	case *ast.StatementBasic:
		switch node.BasicKind {
		case ast.StatementContinue, ast.StatementBreak:
			node.Terminates.Resolve(true, false)
		case ast.StatementReturnVoid:
			node.Terminates.Resolve(true, true)
		default:
			in.Messages.Internal(node.Range(), "unexpected statement basic kind %d", node.BasicKind)
			return pass.Halt()
		}

	case *ast.StatementValue:
		switch node.ValueKind {
		case ast.StatementExecute:
			node.Terminates.Resolve(false, false)
		case ast.StatementReturn:
			node.Terminates.Resolve(true, true)
		default:
			in.Messages.Internal(node.Range(), "unexpected statement value kind %d", node.ValueKind)
			return pass.Halt()
		}

	case *ast.StatementDeclaration:
		node.Terminates.Resolve(false, false)

	case *ast.StatementBlock:
		h.resolveBlock(in, node)

	case *ast.StatementIf:
		h.resolveIf(node)

	case *ast.StatementWhile:
		h.resolveWhile(node)

	case *ast.DeclarationFunction:
		// External declarations have no body to check. Void functions are
		// not exempt: every body must end in a return on all paths.
		if node.Body == nil {
			return pass.Continue()
		}
		if node.Body.Terminates.Resolved && !node.Body.Terminates.Function {
			in.Messages.Error(node.Range(), diagnostics.ErrC0002,
				"function %q does not always return", node.Name)
		}
	}

	return pass.Continue()
}

// resolveBlock folds the statements in order. Once one terminates, every
// statement after it is unreachable.
func (h *ControlFlowHandler) resolveBlock(in *pass.Input, block *ast.StatementBlock) {
	block.Terminates.Resolve(false, false)

	for _, statement := range block.Statements {
		if statement == nil {
			continue
		}
		if block.Terminates.Block || block.Terminates.Function {
			in.Messages.Error(statement.Range(), diagnostics.ErrC0001, "unreachable statement")
			break
		}

		termination := statement.Termination()
		if !termination.Resolved {
			continue
		}
		if termination.Block {
			block.Terminates.Block = true
		}
		if termination.Function {
			block.Terminates.Function = true
		}
	}
}

// resolveIf: without an else branch the statement never guarantees
// termination; with one, it terminates iff both branches do.
func (h *ControlFlowHandler) resolveIf(statement *ast.StatementIf) {
	if statement.Else == nil || statement.Then == nil {
		statement.Terminates.Resolve(false, false)
		return
	}

	thenTermination := statement.Then.Termination()
	elseTermination := statement.Else.Termination()
	statement.Terminates.Resolve(
		thenTermination.Block && elseTermination.Block,
		thenTermination.Function && elseTermination.Function,
	)
}

// resolveWhile: a `while true` whose body never leaves the loop can only
// exit the function, so it counts as terminating both. Any other loop
// terminates the enclosing block never, and the function only if its body
// does.
func (h *ControlFlowHandler) resolveWhile(statement *ast.StatementWhile) {
	if statement.Body == nil {
		statement.Terminates.Resolve(false, false)
		return
	}

	bodyTermination := statement.Body.Termination()
	if literal, ok := statement.Condition.(*ast.ValueLiteralBool); ok && literal.Value && !bodyTermination.Block {
		statement.Terminates.Resolve(true, true)
		return
	}

	statement.Terminates.Resolve(false, bodyTermination.Function)
}
