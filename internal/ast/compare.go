package ast

// Compare reports structural equality of two trees: same kinds, same scalar
// fields, and recursively equal child slots, with nil equal to nil. Source
// ranges and semantic annotations are not compared, so a parsed tree equals
// its analyzed self and a hand-built fixture with no positions.
func Compare(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch left := a.(type) {
	case *TypeBasic:
		right := b.(*TypeBasic)
		return left.BasicKind == right.BasicKind && left.IsConst == right.IsConst

	case *TypeWithBitWidth:
		right := b.(*TypeWithBitWidth)
		return left.WidthKind == right.WidthKind &&
			left.BitWidth == right.BitWidth &&
			left.IsConst == right.IsConst

	case *TypeSymbol:
		right := b.(*TypeSymbol)
		return left.Name == right.Name && left.IsConst == right.IsConst

	case *TypeUnary:
		right := b.(*TypeUnary)
		return left.UnaryKind == right.UnaryKind &&
			left.IsConst == right.IsConst &&
			Compare(left.Operand, right.Operand)

	case *TypeFunction:
		right := b.(*TypeFunction)
		if left.IsConst != right.IsConst || !Compare(left.ReturnType, right.ReturnType) {
			return false
		}
		return compareTypes(left.ArgTypes, right.ArgTypes)

	case *TypeStructured:
		right := b.(*TypeStructured)
		return left.IsConst == right.IsConst && compareDeclarations(left.Members, right.Members)

	case *ValueLiteralBool:
		right := b.(*ValueLiteralBool)
		return left.Value == right.Value

	case *ValueLiteralNumber:
		right := b.(*ValueLiteralNumber)
		return left.Value == right.Value && Compare(left.Type, right.Type)

	case *ValueSymbol:
		right := b.(*ValueSymbol)
		return left.Name == right.Name

	case *ValueUnary:
		right := b.(*ValueUnary)
		return left.Operator == right.Operator && Compare(left.Operand, right.Operand)

	case *ValueBinary:
		right := b.(*ValueBinary)
		return left.Operator == right.Operator &&
			Compare(left.LHS, right.LHS) &&
			Compare(left.RHS, right.RHS)

	case *ValueCall:
		right := b.(*ValueCall)
		if !Compare(left.Callee, right.Callee) || len(left.Args) != len(right.Args) {
			return false
		}
		for i := range left.Args {
			if !Compare(left.Args[i], right.Args[i]) {
				return false
			}
		}
		return true

	case *ValueCast:
		right := b.(*ValueCast)
		return Compare(left.Value, right.Value) && Compare(left.Type, right.Type)

	case *StatementBasic:
		right := b.(*StatementBasic)
		return left.BasicKind == right.BasicKind

	case *StatementValue:
		right := b.(*StatementValue)
		return left.ValueKind == right.ValueKind && Compare(left.Value, right.Value)

	case *StatementIf:
		right := b.(*StatementIf)
		return Compare(left.Condition, right.Condition) &&
			compareBlocks(left.Then, right.Then) &&
			compareOptional(left.Else, right.Else)

	case *StatementWhile:
		right := b.(*StatementWhile)
		return left.IsDoWhile == right.IsDoWhile &&
			Compare(left.Condition, right.Condition) &&
			compareBlocks(left.Body, right.Body)

	case *StatementBlock:
		right := b.(*StatementBlock)
		if len(left.Statements) != len(right.Statements) {
			return false
		}
		for i := range left.Statements {
			if !Compare(left.Statements[i], right.Statements[i]) {
				return false
			}
		}
		return true

	case *StatementDeclaration:
		right := b.(*StatementDeclaration)
		return Compare(left.Declaration, right.Declaration)

	case *DeclarationVariable:
		right := b.(*DeclarationVariable)
		return left.Name == right.Name &&
			left.IsConst == right.IsConst &&
			compareOptional(left.Type, right.Type) &&
			compareOptional(left.InitialValue, right.InitialValue)

	case *DeclarationFunction:
		right := b.(*DeclarationFunction)
		if left.Name != right.Name ||
			!compareOptional(left.ReturnType, right.ReturnType) ||
			!compareBlocks(left.Body, right.Body) ||
			len(left.Args) != len(right.Args) {
			return false
		}
		for i := range left.Args {
			if !Compare(left.Args[i], right.Args[i]) {
				return false
			}
		}
		return true

	case *DeclarationTypeAlias:
		right := b.(*DeclarationTypeAlias)
		return left.Name == right.Name &&
			left.IsExplicit == right.IsExplicit &&
			Compare(left.Type, right.Type)

	case *DeclarationStructuredType:
		right := b.(*DeclarationStructuredType)
		if left.Name != right.Name ||
			left.StructuredKind != right.StructuredKind ||
			len(left.Inherits) != len(right.Inherits) {
			return false
		}
		for i := range left.Inherits {
			if !Compare(left.Inherits[i], right.Inherits[i]) {
				return false
			}
		}
		return compareDeclarations(left.Members, right.Members)

	case *DeclarationNamespace:
		right := b.(*DeclarationNamespace)
		return left.Name == right.Name && compareDeclarations(left.Members, right.Members)

	case *TranslationUnit:
		right := b.(*TranslationUnit)
		return compareDeclarations(left.Declarations, right.Declarations)

	default:
		return false
	}
}

func compareOptional(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Compare(a, b)
}

func compareBlocks(a, b *StatementBlock) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Compare(a, b)
}

func compareTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Compare(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compareDeclarations(a, b []Declaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Compare(a[i], b[i]) {
			return false
		}
	}
	return true
}
