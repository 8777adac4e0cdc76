package ast

import (
	"github.com/forge-lang/forge/internal/source"
)

// NodeKind names a node variant. The set of kinds is closed: every dispatch
// over kinds (visiting, cloning, comparison, formatting, passes) must have an
// arm for each one, and an unknown kind is an internal error.
type NodeKind string

const (
	KindTypeBasic        NodeKind = "type_basic"
	KindTypeWithBitWidth NodeKind = "type_with_bit_width"
	KindTypeSymbol       NodeKind = "type_symbol"
	KindTypeUnary        NodeKind = "type_unary"
	KindTypeFunction     NodeKind = "type_function"
	KindTypeStructured   NodeKind = "type_structured"

	KindValueLiteralBool   NodeKind = "value_literal_bool"
	KindValueLiteralNumber NodeKind = "value_literal_number"
	KindValueSymbol        NodeKind = "value_symbol"
	KindValueUnary         NodeKind = "value_unary"
	KindValueBinary        NodeKind = "value_binary"
	KindValueCall          NodeKind = "value_call"
	KindValueCast          NodeKind = "value_cast"

	KindStatementBasic       NodeKind = "statement_basic"
	KindStatementValue       NodeKind = "statement_value"
	KindStatementIf          NodeKind = "statement_if"
	KindStatementWhile       NodeKind = "statement_while"
	KindStatementBlock       NodeKind = "statement_block"
	KindStatementDeclaration NodeKind = "statement_declaration"

	KindDeclarationVariable       NodeKind = "declaration_variable"
	KindDeclarationFunction       NodeKind = "declaration_function"
	KindDeclarationTypeAlias      NodeKind = "declaration_type_alias"
	KindDeclarationStructuredType NodeKind = "declaration_structured_type"
	KindDeclarationNamespace      NodeKind = "declaration_namespace"

	KindTranslationUnit NodeKind = "translation_unit"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() NodeKind
	Range() source.Range
}

// Type is a node in type position. IsConst is a property of the position,
// not of the referent: `const *T` is a const pointer to possibly non-const T.
type Type interface {
	Node
	typeNode()
	Const() bool
}

// Value is an expression node. ResolvedType is nil until type resolution.
type Value interface {
	Node
	valueNode()
	ResolvedType() Type
	SetResolvedType(Type)
}

// Statement is a statement node. Termination flags are populated by
// control-flow analysis.
type Statement interface {
	Node
	statementNode()
	Termination() *Termination
}

// Declaration introduces a name into its enclosing scope.
type Declaration interface {
	Node
	declarationNode()
	DeclaredName() string
}

// Termination records whether executing a statement necessarily transfers
// control out of the enclosing block and/or function. Resolved is false until
// control-flow analysis has run.
type Termination struct {
	Resolved bool
	Block    bool
	Function bool
}

// Resolve sets both flags at once.
func (t *Termination) Resolve(block, function bool) {
	t.Resolved = true
	t.Block = block
	t.Function = function
}

// valueAnnotations carries the slots semantic passes fill in on values.
type valueAnnotations struct {
	resolvedType Type
}

func (a *valueAnnotations) ResolvedType() Type { return a.resolvedType }
func (a *valueAnnotations) SetResolvedType(t Type) { a.resolvedType = t }
