package handlers

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/pass"
)

// TypeResolutionHandler assigns a resolved type to every value node. It runs
// post-order so operand types are available when a parent is resolved; a
// type that cannot be determined stays nil and is reported by type
// validation. Resolved types are clones made by cloneType; anonymous
// structured types are the one exception and are shared with declarations.
//
// A type is only ever set once; progress counts first-time resolutions so
// ResolveTypes can iterate the handler to a fixpoint. Diagnostics are held
// back until reportErrors is set, so intermediate iterations stay silent.
type TypeResolutionHandler struct {
	pass.NopHandler
	reportErrors bool
	progress     int
}

func NewTypeResolutionHandler() *TypeResolutionHandler {
	return &TypeResolutionHandler{reportErrors: true}
}

// ResolveTypes runs type resolution to a fixpoint. A single post-order pass
// cannot type a chain of inferred variables whose initializers reference
// forward declarations in an unordered scope (`const a = b; const b = 1;`),
// so the handler is re-run while it still resolves something new; a final
// reporting pass then diagnoses whatever stayed unresolvable. Cycles make no
// progress and fall through to the reporting pass.
func ResolveTypes(messages *diagnostics.Context, root ast.Node) {
	for {
		handler := &TypeResolutionHandler{}
		if !pass.New(messages, handler).Run(root) {
			return
		}
		if handler.progress == 0 {
			break
		}
	}
	pass.New(messages, NewTypeResolutionHandler()).Run(root)
}

// setType records a first-time resolution. Already-resolved values keep
// their type, which makes repeated iterations stable.
func (h *TypeResolutionHandler) setType(value ast.Value, t ast.Type) {
	if t == nil || value.ResolvedType() != nil {
		return
	}
	value.SetResolvedType(t)
	h.progress++
}

func (h *TypeResolutionHandler) OnLeave(in *pass.Input) pass.Output {
	switch node := in.Node.(type) {
	case *ast.ValueLiteralBool:
		h.setType(node, boolType())

	case *ast.ValueLiteralNumber:
		if node.Type != nil {
			clone := *node.Type
			h.setType(node, &clone)
		}

	case *ast.ValueSymbol:
		if isMemberAccessField(in, node) {
			// Resolved together with its member access below.
			return pass.Continue()
		}
		if node.ResolvedDecl != nil {
			h.setType(node, declaredTypeOf(node.ResolvedDecl))
		}

	case *ast.ValueUnary:
		h.resolveUnary(node)

	case *ast.ValueBinary:
		h.resolveBinary(in, node)

	case *ast.ValueCall:
		if node.Callee == nil {
			return pass.Continue()
		}
		if fn, ok := aliasTarget(node.Callee.ResolvedType()).(*ast.TypeFunction); ok {
			h.setType(node, cloneType(fn.ReturnType))
		}

	case *ast.ValueCast:
		h.setType(node, cloneType(node.Type))
	}

	return pass.Continue()
}

func (h *TypeResolutionHandler) resolveUnary(node *ast.ValueUnary) {
	if node.Operand == nil {
		return
	}
	operandType := node.Operand.ResolvedType()

	switch node.Operator {
	case ast.UnaryDeref:
		if pointee := pointeeOf(operandType); pointee != nil {
			h.setType(node, cloneType(pointee))
		}
	case ast.UnaryGetAddr:
		if operandType != nil {
			h.setType(node, &ast.TypeUnary{
				UnaryKind: ast.TypePointer,
				Operand:   cloneType(operandType),
			})
		}
	case ast.UnaryNeg, ast.UnaryPos, ast.UnaryBitNot:
		h.setType(node, cloneType(operandType))
	case ast.UnaryBoolNot:
		h.setType(node, boolType())
	}
}

func (h *TypeResolutionHandler) resolveBinary(in *pass.Input, node *ast.ValueBinary) {
	switch {
	case node.Operator == ast.BinaryMemberAccess:
		h.resolveMemberAccess(in, node)

	case node.Operator.IsComparison(),
		node.Operator == ast.BinaryBoolAnd,
		node.Operator == ast.BinaryBoolOr:
		h.setType(node, boolType())

	default:
		// Arithmetic, bitwise, and assignment forms take the lhs type,
		// falling back to the rhs when the lhs is unknown.
		if node.LHS != nil && node.LHS.ResolvedType() != nil {
			h.setType(node, cloneType(node.LHS.ResolvedType()))
		} else if node.RHS != nil {
			h.setType(node, cloneType(node.RHS.ResolvedType()))
		}
	}
}

// resolveMemberAccess finds the named member in the lhs type and binds both
// the field symbol and the access itself to the member's type.
func (h *TypeResolutionHandler) resolveMemberAccess(in *pass.Input, node *ast.ValueBinary) {
	if node.LHS == nil {
		return
	}
	field, ok := node.RHS.(*ast.ValueSymbol)
	if !ok {
		// Well-formedness validation has flagged the shape already.
		return
	}

	lhsType := node.LHS.ResolvedType()
	if lhsType == nil {
		return
	}

	members := memberDeclarations(lhsType)
	if members == nil {
		if h.reportErrors {
			in.Messages.Error(node.Range(), diagnostics.ErrT0009,
				"type %s has no members", typeName(lhsType))
		}
		return
	}

	for _, member := range members {
		if member != nil && member.DeclaredName() == field.Name {
			field.ResolvedDecl = member
			memberType := declaredTypeOf(member)
			h.setType(field, memberType)
			h.setType(node, cloneType(memberType))
			return
		}
	}

	if h.reportErrors {
		in.Messages.Error(field.Range(), diagnostics.ErrT0009,
			"type %s has no member %q", typeName(lhsType), field.Name)
	}
}
