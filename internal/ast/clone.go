package ast

// Clone deep-copies a tree. The copy shares no nodes with the original and
// its annotation slots (resolved types, resolved declarations, termination
// flags) are empty, so a clone is ready for a fresh semantic run. An unknown
// kind yields nil; the dispatch must stay total over NodeKind.
func Clone(n Node) Node {
	switch node := n.(type) {
	case nil:
		return nil

	case *TypeBasic:
		clone := *node
		return &clone

	case *TypeWithBitWidth:
		clone := *node
		return &clone

	case *TypeSymbol:
		return &TypeSymbol{SourceRange: node.SourceRange, Name: node.Name, IsConst: node.IsConst}

	case *TypeUnary:
		return &TypeUnary{
			SourceRange: node.SourceRange,
			UnaryKind:   node.UnaryKind,
			Operand:     CloneType(node.Operand),
			IsConst:     node.IsConst,
		}

	case *TypeFunction:
		clone := &TypeFunction{
			SourceRange: node.SourceRange,
			ReturnType:  CloneType(node.ReturnType),
			IsConst:     node.IsConst,
		}
		for _, arg := range node.ArgTypes {
			clone.ArgTypes = append(clone.ArgTypes, CloneType(arg))
		}
		return clone

	case *TypeStructured:
		clone := &TypeStructured{SourceRange: node.SourceRange, IsConst: node.IsConst}
		for _, member := range node.Members {
			clone.Members = append(clone.Members, CloneDeclaration(member))
		}
		return clone

	case *ValueLiteralBool:
		return &ValueLiteralBool{SourceRange: node.SourceRange, Value: node.Value}

	case *ValueLiteralNumber:
		clone := &ValueLiteralNumber{SourceRange: node.SourceRange, Value: node.Value}
		if node.Type != nil {
			typeClone := *node.Type
			clone.Type = &typeClone
		}
		return clone

	case *ValueSymbol:
		return &ValueSymbol{SourceRange: node.SourceRange, Name: node.Name}

	case *ValueUnary:
		return &ValueUnary{
			SourceRange: node.SourceRange,
			Operator:    node.Operator,
			Operand:     CloneValue(node.Operand),
		}

	case *ValueBinary:
		return &ValueBinary{
			SourceRange: node.SourceRange,
			Operator:    node.Operator,
			LHS:         CloneValue(node.LHS),
			RHS:         CloneValue(node.RHS),
		}

	case *ValueCall:
		clone := &ValueCall{SourceRange: node.SourceRange, Callee: CloneValue(node.Callee)}
		for _, arg := range node.Args {
			clone.Args = append(clone.Args, CloneValue(arg))
		}
		return clone

	case *ValueCast:
		return &ValueCast{
			SourceRange: node.SourceRange,
			Value:       CloneValue(node.Value),
			Type:        CloneType(node.Type),
		}

	case *StatementBasic:
		return &StatementBasic{SourceRange: node.SourceRange, BasicKind: node.BasicKind}

	case *StatementValue:
		return &StatementValue{
			SourceRange: node.SourceRange,
			ValueKind:   node.ValueKind,
			Value:       CloneValue(node.Value),
		}

	case *StatementIf:
		return &StatementIf{
			SourceRange: node.SourceRange,
			Condition:   CloneValue(node.Condition),
			Then:        CloneBlock(node.Then),
			Else:        CloneStatement(node.Else),
		}

	case *StatementWhile:
		return &StatementWhile{
			SourceRange: node.SourceRange,
			Condition:   CloneValue(node.Condition),
			Body:        CloneBlock(node.Body),
			IsDoWhile:   node.IsDoWhile,
		}

	case *StatementBlock:
		clone := &StatementBlock{SourceRange: node.SourceRange}
		for _, statement := range node.Statements {
			clone.Statements = append(clone.Statements, CloneStatement(statement))
		}
		return clone

	case *StatementDeclaration:
		return &StatementDeclaration{
			SourceRange: node.SourceRange,
			Declaration: CloneDeclaration(node.Declaration),
		}

	case *DeclarationVariable:
		return &DeclarationVariable{
			SourceRange:  node.SourceRange,
			Name:         node.Name,
			Type:         CloneType(node.Type),
			InitialValue: CloneValue(node.InitialValue),
			IsConst:      node.IsConst,
			IsParameter:  node.IsParameter,
		}

	case *DeclarationFunction:
		clone := &DeclarationFunction{
			SourceRange: node.SourceRange,
			Name:        node.Name,
			ReturnType:  CloneType(node.ReturnType),
			Body:        CloneBlock(node.Body),
		}
		for _, arg := range node.Args {
			clone.Args = append(clone.Args, Clone(arg).(*DeclarationVariable))
		}
		return clone

	case *DeclarationTypeAlias:
		return &DeclarationTypeAlias{
			SourceRange: node.SourceRange,
			Name:        node.Name,
			Type:        CloneType(node.Type),
			IsExplicit:  node.IsExplicit,
		}

	case *DeclarationStructuredType:
		clone := &DeclarationStructuredType{
			SourceRange:    node.SourceRange,
			Name:           node.Name,
			StructuredKind: node.StructuredKind,
		}
		for _, inherit := range node.Inherits {
			clone.Inherits = append(clone.Inherits, Clone(inherit).(*TypeSymbol))
		}
		for _, member := range node.Members {
			clone.Members = append(clone.Members, CloneDeclaration(member))
		}
		return clone

	case *DeclarationNamespace:
		clone := &DeclarationNamespace{SourceRange: node.SourceRange, Name: node.Name}
		for _, member := range node.Members {
			clone.Members = append(clone.Members, CloneDeclaration(member))
		}
		return clone

	case *TranslationUnit:
		clone := &TranslationUnit{SourceRange: node.SourceRange}
		for _, declaration := range node.Declarations {
			clone.Declarations = append(clone.Declarations, CloneDeclaration(declaration))
		}
		return clone

	default:
		return nil
	}
}

// CloneType clones a node in type position; nil stays nil.
func CloneType(t Type) Type {
	if t == nil {
		return nil
	}
	return Clone(t).(Type)
}

// CloneValue clones a node in value position; nil stays nil.
func CloneValue(v Value) Value {
	if v == nil {
		return nil
	}
	return Clone(v).(Value)
}

// CloneStatement clones a node in statement position; nil stays nil.
func CloneStatement(s Statement) Statement {
	if s == nil {
		return nil
	}
	return Clone(s).(Statement)
}

// CloneBlock clones a block; nil stays nil.
func CloneBlock(b *StatementBlock) *StatementBlock {
	if b == nil {
		return nil
	}
	return Clone(b).(*StatementBlock)
}

// CloneDeclaration clones a declaration; nil stays nil.
func CloneDeclaration(d Declaration) Declaration {
	if d == nil {
		return nil
	}
	return Clone(d).(Declaration)
}
