package handlers

import (
	"strings"

	"github.com/forge-lang/forge/internal/ast"
)

// Helpers shared by type resolution and type validation.

func boolType() ast.Type {
	return &ast.TypeBasic{BasicKind: ast.TypeBasicBool}
}

func voidType() ast.Type {
	return &ast.TypeBasic{BasicKind: ast.TypeBasicVoid}
}

// cloneType deep-copies a type for use as a resolved-type annotation.
// Unlike ast.Clone it preserves TypeSymbol bindings, so later passes can
// still follow aliases and look up structured-type members, and it shares
// anonymous structured types instead of copying them because they compare
// by identity.
func cloneType(t ast.Type) ast.Type {
	switch typed := t.(type) {
	case nil:
		return nil
	case *ast.TypeSymbol:
		clone := *typed
		return &clone
	case *ast.TypeStructured:
		return typed
	case *ast.TypeUnary:
		return &ast.TypeUnary{
			SourceRange: typed.SourceRange,
			UnaryKind:   typed.UnaryKind,
			Operand:     cloneType(typed.Operand),
			IsConst:     typed.IsConst,
		}
	case *ast.TypeFunction:
		clone := &ast.TypeFunction{
			SourceRange: typed.SourceRange,
			ReturnType:  cloneType(typed.ReturnType),
			IsConst:     typed.IsConst,
		}
		for _, arg := range typed.ArgTypes {
			clone.ArgTypes = append(clone.ArgTypes, cloneType(arg))
		}
		return clone
	default:
		return ast.CloneType(t)
	}
}

// aliasTarget follows type-alias symbols to the type they name. Unresolved
// symbols and non-alias declarations are returned as-is.
func aliasTarget(t ast.Type) ast.Type {
	for {
		symbol, ok := t.(*ast.TypeSymbol)
		if !ok {
			return t
		}
		alias, ok := symbol.ResolvedDecl.(*ast.DeclarationTypeAlias)
		if !ok || alias.Type == nil {
			return t
		}
		t = alias.Type
	}
}

func isInteger(t ast.Type) bool {
	switch typed := aliasTarget(t).(type) {
	case *ast.TypeWithBitWidth:
		return typed.WidthKind == ast.TypeSignedInt || typed.WidthKind == ast.TypeUnsignedInt
	case *ast.TypeBasic:
		return typed.BasicKind == ast.TypeBasicIsize || typed.BasicKind == ast.TypeBasicUsize
	default:
		return false
	}
}

func isFloat(t ast.Type) bool {
	typed, ok := aliasTarget(t).(*ast.TypeWithBitWidth)
	return ok && typed.WidthKind == ast.TypeFloat
}

func isNumeric(t ast.Type) bool {
	return isInteger(t) || isFloat(t)
}

func isBool(t ast.Type) bool {
	typed, ok := aliasTarget(t).(*ast.TypeBasic)
	return ok && typed.BasicKind == ast.TypeBasicBool
}

func isVoid(t ast.Type) bool {
	if t == nil {
		return true
	}
	typed, ok := aliasTarget(t).(*ast.TypeBasic)
	return ok && typed.BasicKind == ast.TypeBasicVoid
}

// pointeeOf returns the pointed-to type when t is a pointer, else nil.
func pointeeOf(t ast.Type) ast.Type {
	typed, ok := aliasTarget(t).(*ast.TypeUnary)
	if !ok || typed.UnaryKind != ast.TypePointer {
		return nil
	}
	return typed.Operand
}

func isPointer(t ast.Type) bool {
	return pointeeOf(t) != nil
}

// typesEqual compares two types structurally, following aliases and
// ignoring constness: a const i32 value is still an i32.
func typesEqual(a, b ast.Type) bool {
	a = aliasTarget(a)
	b = aliasTarget(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch left := a.(type) {
	case *ast.TypeBasic:
		right, ok := b.(*ast.TypeBasic)
		return ok && left.BasicKind == right.BasicKind

	case *ast.TypeWithBitWidth:
		right, ok := b.(*ast.TypeWithBitWidth)
		return ok && left.WidthKind == right.WidthKind && left.BitWidth == right.BitWidth

	case *ast.TypeSymbol:
		right, ok := b.(*ast.TypeSymbol)
		if !ok {
			return false
		}
		if left.ResolvedDecl != nil && right.ResolvedDecl != nil {
			return left.ResolvedDecl == right.ResolvedDecl
		}
		return left.Name == right.Name

	case *ast.TypeUnary:
		right, ok := b.(*ast.TypeUnary)
		return ok && left.UnaryKind == right.UnaryKind && typesEqual(left.Operand, right.Operand)

	case *ast.TypeFunction:
		right, ok := b.(*ast.TypeFunction)
		if !ok || len(left.ArgTypes) != len(right.ArgTypes) || !typesEqual(left.ReturnType, right.ReturnType) {
			return false
		}
		for i := range left.ArgTypes {
			if !typesEqual(left.ArgTypes[i], right.ArgTypes[i]) {
				return false
			}
		}
		return true

	case *ast.TypeStructured:
		// Structural types compare by identity; two distinct anonymous
		// bodies are distinct types.
		return a == b

	default:
		return false
	}
}

// functionTypeOf synthesizes the TypeFunction a function declaration has in
// value position. A missing return type reads as void.
func functionTypeOf(decl *ast.DeclarationFunction) *ast.TypeFunction {
	fn := &ast.TypeFunction{ReturnType: cloneType(decl.ReturnType)}
	if fn.ReturnType == nil {
		fn.ReturnType = voidType()
	}
	for _, arg := range decl.Args {
		if arg == nil {
			fn.ArgTypes = append(fn.ArgTypes, nil)
			continue
		}
		fn.ArgTypes = append(fn.ArgTypes, cloneType(arg.Type))
	}
	return fn
}

// memberDeclarations returns the member declarations behind a type usable on
// the lhs of a member access: a structured-type declaration or an anonymous
// structured type, in both cases including inherited members.
func memberDeclarations(t ast.Type) []ast.Declaration {
	switch typed := aliasTarget(t).(type) {
	case *ast.TypeStructured:
		return typed.Members
	case *ast.TypeSymbol:
		decl, ok := typed.ResolvedDecl.(*ast.DeclarationStructuredType)
		if !ok {
			return nil
		}
		return structuredMembers(decl, nil)
	default:
		return nil
	}
}

func structuredMembers(decl *ast.DeclarationStructuredType, seen map[*ast.DeclarationStructuredType]bool) []ast.Declaration {
	if seen == nil {
		seen = make(map[*ast.DeclarationStructuredType]bool)
	}
	if seen[decl] {
		return nil
	}
	seen[decl] = true

	members := append([]ast.Declaration(nil), decl.Members...)
	for _, inherited := range decl.Inherits {
		if inherited == nil {
			continue
		}
		base, ok := inherited.ResolvedDecl.(*ast.DeclarationStructuredType)
		if !ok {
			continue
		}
		members = append(members, structuredMembers(base, seen)...)
	}
	return members
}

// declaredTypeOf returns the type a declaration gives to symbols that
// reference it, or nil when it cannot be determined.
func declaredTypeOf(decl ast.Declaration) ast.Type {
	switch typed := decl.(type) {
	case *ast.DeclarationVariable:
		if typed.Type != nil {
			return cloneType(typed.Type)
		}
		if typed.InitialValue != nil {
			// Nil until a resolution iteration has typed the initializer;
			// ResolveTypes iterates until chains like this stop moving.
			return cloneType(typed.InitialValue.ResolvedType())
		}
		return nil
	case *ast.DeclarationFunction:
		return functionTypeOf(typed)
	default:
		return nil
	}
}

// typeName renders a type for diagnostics.
func typeName(t ast.Type) string {
	if t == nil {
		return "<unknown>"
	}

	var sb strings.Builder
	if t.Const() {
		sb.WriteString("const ")
	}

	switch typed := t.(type) {
	case *ast.TypeBasic:
		sb.WriteString(typed.BasicKind.String())
	case *ast.TypeWithBitWidth:
		sb.WriteString(typed.Name())
	case *ast.TypeSymbol:
		sb.WriteString(typed.Name)
	case *ast.TypeUnary:
		sb.WriteString("*")
		sb.WriteString(typeName(typed.Operand))
	case *ast.TypeFunction:
		sb.WriteString("(")
		for i, arg := range typed.ArgTypes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeName(arg))
		}
		sb.WriteString(") -> ")
		sb.WriteString(typeName(typed.ReturnType))
	case *ast.TypeStructured:
		sb.WriteString("{ ... }")
	default:
		sb.WriteString(string(typed.Kind()))
	}

	return sb.String()
}
