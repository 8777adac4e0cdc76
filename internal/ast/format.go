package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a tree in the debug format parser tests are written
// against: a `[kind]` header followed by `label = ...` lines indented two
// spaces per level. Vector fields list items as `[i] = ...`, absent children
// print as `null`, strings are quoted. The output carries no trailing
// newline and is stable across runs.
func Format(n Node) string {
	var f formatter
	f.node(n, 0)
	return f.sb.String()
}

type formatter struct {
	sb strings.Builder
}

func (f *formatter) line(level int, format string, args ...any) {
	f.sb.WriteString("\n")
	f.sb.WriteString(strings.Repeat("  ", level))
	fmt.Fprintf(&f.sb, format, args...)
}

func (f *formatter) field(level int, name string) {
	f.line(level+1, "%s = ", name)
}

func (f *formatter) scalar(level int, name string, value any) {
	f.field(level, name)
	switch v := value.(type) {
	case string:
		f.sb.WriteString(strconv.Quote(v))
	case bool:
		f.sb.WriteString(strconv.FormatBool(v))
	case int:
		f.sb.WriteString(strconv.Itoa(v))
	default:
		fmt.Fprintf(&f.sb, "%v", v)
	}
}

func (f *formatter) child(level int, name string, child Node) {
	f.field(level, name)
	if child == nil {
		f.sb.WriteString("null")
		return
	}
	f.node(child, level+1)
}

func (f *formatter) list(level int, name string, children []Node) {
	f.field(level, name)
	if len(children) == 0 {
		f.sb.WriteString("[]")
		return
	}
	for i, child := range children {
		f.line(level+2, "[%d] = ", i)
		if child == nil {
			f.sb.WriteString("null")
			continue
		}
		f.node(child, level+2)
	}
}

func (f *formatter) node(n Node, level int) {
	if n == nil {
		f.sb.WriteString("null")
		return
	}

	fmt.Fprintf(&f.sb, "[%s]", n.Kind())

	switch node := n.(type) {
	case *TypeBasic:
		f.scalar(level, "type_basic_kind", node.BasicKind)
		f.scalar(level, "is_const", node.IsConst)

	case *TypeWithBitWidth:
		f.scalar(level, "type_with_bit_width_kind", node.WidthKind)
		f.scalar(level, "bit_width", node.BitWidth)
		f.scalar(level, "is_const", node.IsConst)

	case *TypeSymbol:
		f.scalar(level, "name", node.Name)
		f.scalar(level, "is_const", node.IsConst)

	case *TypeUnary:
		f.scalar(level, "type_unary_kind", node.UnaryKind)
		f.child(level, "operand_type", nodeOrNil(node.Operand))
		f.scalar(level, "is_const", node.IsConst)

	case *TypeFunction:
		f.child(level, "return_type", nodeOrNil(node.ReturnType))
		f.list(level, "arg_types", typeNodes(node.ArgTypes))
		f.scalar(level, "is_const", node.IsConst)

	case *TypeStructured:
		f.list(level, "members", declarationNodes(node.Members))
		f.scalar(level, "is_const", node.IsConst)

	case *ValueLiteralBool:
		f.field(level, "value")
		f.sb.WriteString(strconv.FormatBool(node.Value))

	case *ValueLiteralNumber:
		f.child(level, "type", nodeOrNil(node.Type))
		f.field(level, "value")
		f.sb.WriteString(node.Value.String())

	case *ValueSymbol:
		f.scalar(level, "name", node.Name)

	case *ValueUnary:
		f.field(level, "operator")
		f.sb.WriteString(node.Operator.String())
		f.child(level, "operand", nodeOrNil(node.Operand))

	case *ValueBinary:
		f.field(level, "operator")
		f.sb.WriteString(node.Operator.String())
		f.child(level, "lhs", nodeOrNil(node.LHS))
		f.child(level, "rhs", nodeOrNil(node.RHS))

	case *ValueCall:
		f.child(level, "callee", nodeOrNil(node.Callee))
		f.list(level, "args", valueNodes(node.Args))

	case *ValueCast:
		f.child(level, "value", nodeOrNil(node.Value))
		f.child(level, "type", nodeOrNil(node.Type))

	case *StatementBasic:
		f.field(level, "statement_basic_kind")
		f.sb.WriteString(node.BasicKind.String())

	case *StatementValue:
		f.field(level, "statement_value_kind")
		f.sb.WriteString(node.ValueKind.String())
		f.child(level, "value", nodeOrNil(node.Value))

	case *StatementIf:
		f.child(level, "condition", nodeOrNil(node.Condition))
		f.child(level, "then", blockOrNil(node.Then))
		f.child(level, "else", nodeOrNil(node.Else))

	case *StatementWhile:
		f.child(level, "condition", nodeOrNil(node.Condition))
		f.child(level, "body", blockOrNil(node.Body))
		f.scalar(level, "is_do_while", node.IsDoWhile)

	case *StatementBlock:
		f.list(level, "statements", statementNodes(node.Statements))

	case *StatementDeclaration:
		f.child(level, "declaration", nodeOrNil(node.Declaration))

	case *DeclarationVariable:
		f.scalar(level, "name", node.Name)
		f.child(level, "type", nodeOrNil(node.Type))
		f.child(level, "initial_value", nodeOrNil(node.InitialValue))
		f.scalar(level, "is_const", node.IsConst)

	case *DeclarationFunction:
		f.scalar(level, "name", node.Name)
		args := make([]Node, len(node.Args))
		for i, arg := range node.Args {
			args[i] = arg
		}
		f.list(level, "args", args)
		f.child(level, "return_type", nodeOrNil(node.ReturnType))
		f.child(level, "body", blockOrNil(node.Body))

	case *DeclarationTypeAlias:
		f.scalar(level, "name", node.Name)
		f.child(level, "type", nodeOrNil(node.Type))
		f.scalar(level, "is_explicit", node.IsExplicit)

	case *DeclarationStructuredType:
		f.scalar(level, "name", node.Name)
		f.field(level, "structured_type_kind")
		f.sb.WriteString(node.StructuredKind.String())
		f.list(level, "members", declarationNodes(node.Members))
		inherits := make([]Node, len(node.Inherits))
		for i, inherit := range node.Inherits {
			inherits[i] = inherit
		}
		f.list(level, "inherits", inherits)

	case *DeclarationNamespace:
		f.scalar(level, "name", node.Name)
		f.list(level, "members", declarationNodes(node.Members))

	case *TranslationUnit:
		f.list(level, "declarations", declarationNodes(node.Declarations))

	default:
		f.field(level, "unknown_kind")
		f.sb.WriteString(string(n.Kind()))
	}
}

func nodeOrNil(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nil
	case *TypeWithBitWidth:
		if v == nil {
			return nil
		}
	}
	return n
}

func blockOrNil(b *StatementBlock) Node {
	if b == nil {
		return nil
	}
	return b
}

func typeNodes(types []Type) []Node {
	out := make([]Node, len(types))
	for i, t := range types {
		out[i] = t
	}
	return out
}

func valueNodes(values []Value) []Node {
	out := make([]Node, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func statementNodes(statements []Statement) []Node {
	out := make([]Node, len(statements))
	for i, s := range statements {
		out[i] = s
	}
	return out
}

func declarationNodes(declarations []Declaration) []Node {
	out := make([]Node, len(declarations))
	for i, d := range declarations {
		out[i] = d
	}
	return out
}
