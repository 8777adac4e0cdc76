package handlers

import (
	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/pass"
)

// TypeValidationHandler enforces the typing rules over a tree whose values
// carry resolved types. Errors attach to the offending sub-expression and
// analysis continues, so one bad operand surfaces every rule it breaks on
// the way up. Cast and pointer-comparison rules reject unclear cases rather
// than accept them.
type TypeValidationHandler struct {
	pass.NopHandler
}

func NewTypeValidationHandler() *TypeValidationHandler {
	return &TypeValidationHandler{}
}

func (h *TypeValidationHandler) OnLeave(in *pass.Input) pass.Output {
	switch node := in.Node.(type) {
	case *ast.ValueSymbol:
		if isMemberAccessField(in, node) {
			return pass.Continue()
		}
		if node.ResolvedDecl != nil && node.ResolvedType() == nil {
			in.Messages.Error(node.Range(), diagnostics.ErrT0010,
				"cannot determine the type of %q", node.Name)
		}

	case *ast.ValueUnary:
		h.validateUnary(in, node)

	case *ast.ValueBinary:
		h.validateBinary(in, node)

	case *ast.ValueCall:
		h.validateCall(in, node)

	case *ast.ValueCast:
		h.validateCast(in, node)

	case *ast.StatementIf:
		h.requireBoolCondition(in, node.Condition, "if")

	case *ast.StatementWhile:
		keyword := "while"
		if node.IsDoWhile {
			keyword = "do/while"
		}
		h.requireBoolCondition(in, node.Condition, keyword)

	case *ast.StatementValue:
		if node.ValueKind == ast.StatementReturn {
			h.validateReturn(in, node)
		}

	case *ast.StatementBasic:
		if node.BasicKind == ast.StatementReturnVoid {
			h.validateReturnVoid(in, node)
		}
	}

	return pass.Continue()
}

func (h *TypeValidationHandler) validateUnary(in *pass.Input, node *ast.ValueUnary) {
	if node.Operand == nil {
		return
	}
	operandType := node.Operand.ResolvedType()

	switch node.Operator {
	case ast.UnaryNeg, ast.UnaryPos, ast.UnaryBitNot:
		if operandType == nil {
			in.Messages.Error(node.Range(), diagnostics.ErrT0001, "operand type is unknown")
		} else if !isInteger(operandType) {
			in.Messages.Error(node.Operand.Range(), diagnostics.ErrT0001,
				"operator %s requires an integer operand, but got %s", node.Operator, typeName(operandType))
		}
	case ast.UnaryBoolNot:
		if operandType != nil && !isBool(operandType) {
			in.Messages.Error(node.Operand.Range(), diagnostics.ErrT0001,
				"operator ! requires a bool operand, but got %s", typeName(operandType))
		}
	case ast.UnaryDeref:
		if operandType != nil && !isPointer(operandType) {
			in.Messages.Error(node.Operand.Range(), diagnostics.ErrT0001,
				"cannot dereference non-pointer type %s", typeName(operandType))
		}
	case ast.UnaryGetAddr:
		// Any addressable operand is fine.
	}
}

func (h *TypeValidationHandler) validateBinary(in *pass.Input, node *ast.ValueBinary) {
	if node.LHS == nil || node.RHS == nil {
		return
	}
	if node.Operator == ast.BinaryMemberAccess {
		// Member existence is checked during type resolution.
		return
	}

	lhsType := node.LHS.ResolvedType()
	rhsType := node.RHS.ResolvedType()

	if node.Operator.IsAssignment() {
		h.validateAssignment(in, node, lhsType, rhsType)
		return
	}

	if lhsType == nil || rhsType == nil {
		in.Messages.Error(node.Range(), diagnostics.ErrT0001, "operand type is unknown")
		return
	}

	switch node.Operator {
	case ast.BinaryBoolAnd, ast.BinaryBoolOr:
		if !isBool(lhsType) {
			in.Messages.Error(node.LHS.Range(), diagnostics.ErrT0001,
				"operator %s requires bool operands, but got %s", node.Operator, typeName(lhsType))
		}
		if !isBool(rhsType) {
			in.Messages.Error(node.RHS.Range(), diagnostics.ErrT0001,
				"operator %s requires bool operands, but got %s", node.Operator, typeName(rhsType))
		}

	case ast.BinaryEq, ast.BinaryNe:
		if !typesEqual(lhsType, rhsType) {
			in.Messages.Error(node.Range(), diagnostics.ErrT0001,
				"cannot compare %s with %s", typeName(lhsType), typeName(rhsType))
		}

	case ast.BinaryLt, ast.BinaryLe, ast.BinaryGt, ast.BinaryGe:
		if !typesEqual(lhsType, rhsType) {
			in.Messages.Error(node.Range(), diagnostics.ErrT0001,
				"cannot compare %s with %s", typeName(lhsType), typeName(rhsType))
		} else if isPointer(lhsType) {
			// Only == and != are defined on pointers.
			in.Messages.Error(node.Range(), diagnostics.ErrT0001,
				"ordered comparison is not defined on pointer type %s", typeName(lhsType))
		}

	default:
		// Arithmetic and bitwise operators.
		if !isInteger(lhsType) {
			in.Messages.Error(node.LHS.Range(), diagnostics.ErrT0001,
				"operator %s requires integer operands, but got %s", node.Operator, typeName(lhsType))
		}
		if !isInteger(rhsType) {
			in.Messages.Error(node.RHS.Range(), diagnostics.ErrT0001,
				"operator %s requires integer operands, but got %s", node.Operator, typeName(rhsType))
		}
	}
}

func (h *TypeValidationHandler) validateAssignment(in *pass.Input, node *ast.ValueBinary, lhsType, rhsType ast.Type) {
	if !isAssignmentTarget(node.LHS) {
		in.Messages.Error(node.LHS.Range(), diagnostics.ErrT0008,
			"the left-hand side of %s must be a symbol, a dereference, or a member access", node.Operator)
		return
	}

	if lhsType == nil || rhsType == nil {
		in.Messages.Error(node.Range(), diagnostics.ErrT0001, "operand type is unknown")
		return
	}

	if node.Operator == ast.BinaryAssign {
		if !typesEqual(lhsType, rhsType) {
			in.Messages.Error(node.Range(), diagnostics.ErrT0001,
				"cannot assign %s to %s", typeName(rhsType), typeName(lhsType))
		}
		return
	}

	// Compound assignments reuse the arithmetic and bitwise rules.
	if !isInteger(lhsType) {
		in.Messages.Error(node.LHS.Range(), diagnostics.ErrT0001,
			"operator %s requires integer operands, but got %s", node.Operator, typeName(lhsType))
	}
	if !isInteger(rhsType) {
		in.Messages.Error(node.RHS.Range(), diagnostics.ErrT0001,
			"operator %s requires integer operands, but got %s", node.Operator, typeName(rhsType))
	}
}

func isAssignmentTarget(value ast.Value) bool {
	switch typed := value.(type) {
	case *ast.ValueSymbol:
		return true
	case *ast.ValueUnary:
		return typed.Operator == ast.UnaryDeref
	case *ast.ValueBinary:
		return typed.Operator == ast.BinaryMemberAccess
	default:
		return false
	}
}

func (h *TypeValidationHandler) validateCall(in *pass.Input, node *ast.ValueCall) {
	if node.Callee == nil {
		return
	}
	calleeType := node.Callee.ResolvedType()
	if calleeType == nil {
		return
	}

	fn, ok := aliasTarget(calleeType).(*ast.TypeFunction)
	if !ok {
		in.Messages.Error(node.Callee.Range(), diagnostics.ErrT0004,
			"cannot call non-function type %s", typeName(calleeType))
		return
	}

	if len(node.Args) != len(fn.ArgTypes) {
		in.Messages.Error(node.Range(), diagnostics.ErrT0005,
			"call expects %d arguments, but got %d", len(fn.ArgTypes), len(node.Args))
		return
	}

	for i, arg := range node.Args {
		if arg == nil || fn.ArgTypes[i] == nil {
			continue
		}
		argType := arg.ResolvedType()
		if argType == nil {
			continue
		}
		if !typesEqual(argType, fn.ArgTypes[i]) {
			in.Messages.Error(arg.Range(), diagnostics.ErrT0006,
				"argument %d has type %s, but the function expects %s", i, typeName(argType), typeName(fn.ArgTypes[i]))
		}
	}
}

// validateCast accepts numeric-to-numeric casts, pointer-to-pointer casts
// that do not weaken const discipline, and casts to an identical type;
// everything else is rejected.
func (h *TypeValidationHandler) validateCast(in *pass.Input, node *ast.ValueCast) {
	if node.Value == nil || node.Type == nil {
		return
	}
	sourceType := node.Value.ResolvedType()
	if sourceType == nil {
		return
	}

	if isNumeric(sourceType) && isNumeric(node.Type) {
		return
	}

	sourcePointee := pointeeOf(sourceType)
	targetPointee := pointeeOf(node.Type)
	if sourcePointee != nil && targetPointee != nil {
		if sourcePointee.Const() && !targetPointee.Const() {
			in.Messages.Error(node.Range(), diagnostics.ErrT0007,
				"cast from %s to %s discards const", typeName(sourceType), typeName(node.Type))
		}
		return
	}

	if typesEqual(sourceType, node.Type) {
		return
	}

	in.Messages.Error(node.Range(), diagnostics.ErrT0007,
		"cannot cast %s to %s", typeName(sourceType), typeName(node.Type))
}

func (h *TypeValidationHandler) requireBoolCondition(in *pass.Input, condition ast.Value, keyword string) {
	if condition == nil {
		return
	}
	conditionType := condition.ResolvedType()
	if conditionType == nil {
		return
	}
	if !isBool(conditionType) {
		in.Messages.Error(condition.Range(), diagnostics.ErrT0002,
			"%s condition must be bool, but got %s", keyword, typeName(conditionType))
	}
}

func (h *TypeValidationHandler) validateReturn(in *pass.Input, node *ast.StatementValue) {
	fn := in.EnclosingFunction()
	if fn == nil || node.Value == nil {
		return
	}

	if fn.ReturnType == nil || isVoid(fn.ReturnType) {
		in.Messages.Error(node.Range(), diagnostics.ErrT0003,
			"function %q returns void, but a value is returned", fn.Name)
		return
	}

	valueType := node.Value.ResolvedType()
	if valueType == nil {
		return
	}
	if !typesEqual(valueType, fn.ReturnType) {
		in.Messages.Error(node.Value.Range(), diagnostics.ErrT0003,
			"return value has type %s, but function %q returns %s", typeName(valueType), fn.Name, typeName(fn.ReturnType))
	}
}

func (h *TypeValidationHandler) validateReturnVoid(in *pass.Input, node *ast.StatementBasic) {
	fn := in.EnclosingFunction()
	if fn == nil {
		return
	}
	if fn.ReturnType != nil && !isVoid(fn.ReturnType) {
		in.Messages.Error(node.Range(), diagnostics.ErrT0003,
			"function %q must return a value of type %s", fn.Name, typeName(fn.ReturnType))
	}
}
