// Package handlers contains the semantic analyzers that run over a parsed
// tree: well-formedness validation, symbol resolution, type resolution,
// type validation and control-flow analysis. Each is a pass.Handler;
// the pipeline applies them in that order.
package handlers

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/pass"
)

// WellFormednessHandler checks the structural invariants the parser cannot
// conveniently express: required children present, names non-empty, no
// function-typed variables or parameters, no parameter initializers, and
// member access targeting a symbol. Every violation is a diagnostic, never
// an abort, so one malformed node does not hide the next.
type WellFormednessHandler struct {
	pass.NopHandler
}

func NewWellFormednessHandler() *WellFormednessHandler {
	return &WellFormednessHandler{}
}

func (h *WellFormednessHandler) OnEnter(in *pass.Input) pass.Output {
	switch node := in.Node.(type) {
	case *ast.TypeUnary:
		if node.Operand == nil {
			h.missingChild(in, "operand type")
		}

	case *ast.TypeFunction:
		if node.ReturnType == nil {
			h.missingChild(in, "return type")
		} else if _, ok := node.ReturnType.(*ast.TypeFunction); ok {
			in.Messages.Error(node.ReturnType.Range(), diagnostics.ErrV0003,
				"function return types cannot themselves be functions")
		}
		for _, arg := range node.ArgTypes {
			if _, ok := arg.(*ast.TypeFunction); ok {
				in.Messages.Error(arg.Range(), diagnostics.ErrV0003,
					"function argument types cannot themselves be functions")
			}
		}

	case *ast.TypeSymbol:
		if node.Name == "" {
			h.emptyName(in)
		}

	case *ast.ValueSymbol:
		if node.Name == "" {
			h.emptyName(in)
		}

	case *ast.ValueUnary:
		if node.Operand == nil {
			h.missingChild(in, "operand")
		}

	case *ast.ValueBinary:
		if node.LHS == nil {
			h.missingChild(in, "lhs")
		}
		if node.RHS == nil {
			h.missingChild(in, "rhs")
		} else if node.Operator == ast.BinaryMemberAccess {
			if _, ok := node.RHS.(*ast.ValueSymbol); !ok {
				in.Messages.Error(node.RHS.Range(), diagnostics.ErrV0005,
					"the right-hand side of a member access must be a symbol")
			}
		}

	case *ast.ValueCall:
		if node.Callee == nil {
			h.missingChild(in, "callee")
		}
		for i, arg := range node.Args {
			if arg == nil {
				in.Messages.Error(node.Range(), diagnostics.ErrV0001,
					"call argument %d is missing", i)
			}
		}

	case *ast.ValueCast:
		if node.Value == nil {
			h.missingChild(in, "value")
		}
		if node.Type == nil {
			h.missingChild(in, "type")
		}

	case *ast.ValueLiteralNumber:
		if node.Type == nil {
			h.missingChild(in, "type")
		}

	case *ast.StatementValue:
		if node.Value == nil {
			h.missingChild(in, "value")
		}

	case *ast.StatementIf:
		if node.Condition == nil {
			h.missingChild(in, "condition")
		}
		if node.Then == nil {
			h.missingChild(in, "then clause")
		}

	case *ast.StatementWhile:
		if node.Condition == nil {
			h.missingChild(in, "condition")
		}
		if node.Body == nil {
			h.missingChild(in, "body")
		}

	case *ast.StatementDeclaration:
		if node.Declaration == nil {
			h.missingChild(in, "declaration")
		}

	case *ast.DeclarationVariable:
		if node.Name == "" {
			h.emptyName(in)
		}
		if _, ok := node.Type.(*ast.TypeFunction); ok {
			in.Messages.Error(node.Type.Range(), diagnostics.ErrV0003,
				"variables cannot have function types")
		}
		if node.IsParameter && node.InitialValue != nil {
			in.Messages.Error(node.InitialValue.Range(), diagnostics.ErrV0004,
				"function parameters cannot have initializers")
		}

	case *ast.DeclarationFunction:
		if node.Name == "" {
			h.emptyName(in)
		}
		if _, ok := node.ReturnType.(*ast.TypeFunction); ok {
			in.Messages.Error(node.ReturnType.Range(), diagnostics.ErrV0003,
				"function return types cannot themselves be functions")
		}
		for _, arg := range node.Args {
			if arg == nil {
				h.missingChild(in, "parameter")
			}
		}

	case *ast.DeclarationTypeAlias:
		if node.Name == "" {
			h.emptyName(in)
		}
		if node.Type == nil {
			h.missingChild(in, "aliased type")
		}

	case *ast.DeclarationStructuredType:
		if node.Name == "" {
			h.emptyName(in)
		}
		for _, inherited := range node.Inherits {
			if inherited == nil {
				h.missingChild(in, "inherited type")
			}
		}

	case *ast.DeclarationNamespace:
		if node.Name == "" {
			h.emptyName(in)
		}
	}

	return pass.Continue()
}

func (h *WellFormednessHandler) missingChild(in *pass.Input, label string) {
	in.Messages.Error(in.Node.Range(), diagnostics.ErrV0001,
		"%s node is missing its %s", in.Node.Kind(), label)
}

func (h *WellFormednessHandler) emptyName(in *pass.Input) {
	in.Messages.Error(in.Node.Range(), diagnostics.ErrV0002,
		"%s node has an empty name", in.Node.Kind())
}
