package ast

// ChildFunc receives one direct child of a node together with a setter that
// replaces the child in its parent slot. The setter returns false when the
// replacement node has the wrong category for the slot.
type ChildFunc func(child Node, replace func(Node) bool)

// EachChild calls fn for every non-nil direct child of n, left to right in
// source order. It returns false when n's kind is unknown, which callers
// treat as an internal error: the dispatch below must stay total over
// NodeKind.
func EachChild(n Node, fn ChildFunc) bool {
	switch node := n.(type) {
	case *TypeBasic, *TypeWithBitWidth, *TypeSymbol, *ValueLiteralBool, *ValueSymbol, *StatementBasic:
		// Leaves.

	case *TypeUnary:
		visitType(node.Operand, fn, func(t Type) { node.Operand = t })

	case *TypeFunction:
		visitType(node.ReturnType, fn, func(t Type) { node.ReturnType = t })
		for i := range node.ArgTypes {
			i := i
			visitType(node.ArgTypes[i], fn, func(t Type) { node.ArgTypes[i] = t })
		}

	case *TypeStructured:
		for i := range node.Members {
			i := i
			visitDeclaration(node.Members[i], fn, func(d Declaration) { node.Members[i] = d })
		}

	case *ValueLiteralNumber:
		if node.Type != nil {
			fn(node.Type, func(nn Node) bool {
				t, ok := nn.(*TypeWithBitWidth)
				if ok {
					node.Type = t
				}
				return ok
			})
		}

	case *ValueUnary:
		visitValue(node.Operand, fn, func(v Value) { node.Operand = v })

	case *ValueBinary:
		visitValue(node.LHS, fn, func(v Value) { node.LHS = v })
		visitValue(node.RHS, fn, func(v Value) { node.RHS = v })

	case *ValueCall:
		visitValue(node.Callee, fn, func(v Value) { node.Callee = v })
		for i := range node.Args {
			i := i
			visitValue(node.Args[i], fn, func(v Value) { node.Args[i] = v })
		}

	case *ValueCast:
		visitValue(node.Value, fn, func(v Value) { node.Value = v })
		visitType(node.Type, fn, func(t Type) { node.Type = t })

	case *StatementValue:
		visitValue(node.Value, fn, func(v Value) { node.Value = v })

	case *StatementIf:
		visitValue(node.Condition, fn, func(v Value) { node.Condition = v })
		visitBlock(node.Then, fn, func(b *StatementBlock) { node.Then = b })
		visitStatement(node.Else, fn, func(s Statement) { node.Else = s })

	case *StatementWhile:
		visitValue(node.Condition, fn, func(v Value) { node.Condition = v })
		visitBlock(node.Body, fn, func(b *StatementBlock) { node.Body = b })

	case *StatementBlock:
		for i := range node.Statements {
			i := i
			visitStatement(node.Statements[i], fn, func(s Statement) { node.Statements[i] = s })
		}

	case *StatementDeclaration:
		visitDeclaration(node.Declaration, fn, func(d Declaration) { node.Declaration = d })

	case *DeclarationVariable:
		visitType(node.Type, fn, func(t Type) { node.Type = t })
		visitValue(node.InitialValue, fn, func(v Value) { node.InitialValue = v })

	case *DeclarationFunction:
		for i := range node.Args {
			i := i
			fn(node.Args[i], func(nn Node) bool {
				arg, ok := nn.(*DeclarationVariable)
				if ok {
					node.Args[i] = arg
				}
				return ok
			})
		}
		visitType(node.ReturnType, fn, func(t Type) { node.ReturnType = t })
		visitBlock(node.Body, fn, func(b *StatementBlock) { node.Body = b })

	case *DeclarationTypeAlias:
		visitType(node.Type, fn, func(t Type) { node.Type = t })

	case *DeclarationStructuredType:
		for i := range node.Inherits {
			i := i
			fn(node.Inherits[i], func(nn Node) bool {
				sym, ok := nn.(*TypeSymbol)
				if ok {
					node.Inherits[i] = sym
				}
				return ok
			})
		}
		for i := range node.Members {
			i := i
			visitDeclaration(node.Members[i], fn, func(d Declaration) { node.Members[i] = d })
		}

	case *DeclarationNamespace:
		for i := range node.Members {
			i := i
			visitDeclaration(node.Members[i], fn, func(d Declaration) { node.Members[i] = d })
		}

	case *TranslationUnit:
		for i := range node.Declarations {
			i := i
			visitDeclaration(node.Declarations[i], fn, func(d Declaration) { node.Declarations[i] = d })
		}

	default:
		return false
	}

	return true
}

func visitType(child Type, fn ChildFunc, set func(Type)) {
	if child == nil {
		return
	}
	fn(child, func(nn Node) bool {
		t, ok := nn.(Type)
		if ok {
			set(t)
		}
		return ok
	})
}

func visitValue(child Value, fn ChildFunc, set func(Value)) {
	if child == nil {
		return
	}
	fn(child, func(nn Node) bool {
		v, ok := nn.(Value)
		if ok {
			set(v)
		}
		return ok
	})
}

func visitStatement(child Statement, fn ChildFunc, set func(Statement)) {
	if child == nil {
		return
	}
	fn(child, func(nn Node) bool {
		s, ok := nn.(Statement)
		if ok {
			set(s)
		}
		return ok
	})
}

func visitBlock(child *StatementBlock, fn ChildFunc, set func(*StatementBlock)) {
	if child == nil {
		return
	}
	fn(child, func(nn Node) bool {
		b, ok := nn.(*StatementBlock)
		if ok {
			set(b)
		}
		return ok
	})
}

func visitDeclaration(child Declaration, fn ChildFunc, set func(Declaration)) {
	if child == nil {
		return
	}
	fn(child, func(nn Node) bool {
		d, ok := nn.(Declaration)
		if ok {
			set(d)
		}
		return ok
	})
}

// Children collects the non-nil direct children of n.
func Children(n Node) []Node {
	var out []Node
	EachChild(n, func(child Node, _ func(Node) bool) {
		out = append(out, child)
	})
	return out
}
