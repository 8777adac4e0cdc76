package ast

import (
	"github.com/forge-lang/forge/internal/source"
)

// DeclarationVariable is `(let | const) name (: type)? (= value)? ;`, or a
// function parameter when IsParameter is set (no keyword, no initializer).
type DeclarationVariable struct {
	SourceRange  source.Range
	Name         string
	Type         Type
	InitialValue Value
	IsConst      bool
	IsParameter  bool
}

func (d *DeclarationVariable) Kind() NodeKind { return KindDeclarationVariable }
func (d *DeclarationVariable) Range() source.Range { return d.SourceRange }
func (d *DeclarationVariable) declarationNode() {}
func (d *DeclarationVariable) DeclaredName() string { return d.Name }

// DeclarationFunction is `func name(params) (-> type)? (body | ;)`. A nil
// body declares an external function.
type DeclarationFunction struct {
	SourceRange source.Range
	Name        string
	Args        []*DeclarationVariable
	ReturnType  Type
	Body        *StatementBlock
}

func (d *DeclarationFunction) Kind() NodeKind { return KindDeclarationFunction }
func (d *DeclarationFunction) Range() source.Range { return d.SourceRange }
func (d *DeclarationFunction) declarationNode() {}
func (d *DeclarationFunction) DeclaredName() string { return d.Name }

// DeclarationTypeAlias is `explicit? type name = type ;`.
type DeclarationTypeAlias struct {
	SourceRange source.Range
	Name        string
	Type        Type
	IsExplicit  bool
}

func (d *DeclarationTypeAlias) Kind() NodeKind { return KindDeclarationTypeAlias }
func (d *DeclarationTypeAlias) Range() source.Range { return d.SourceRange }
func (d *DeclarationTypeAlias) declarationNode() {}
func (d *DeclarationTypeAlias) DeclaredName() string { return d.Name }

// StructuredTypeKind distinguishes structs from interfaces.
type StructuredTypeKind int

const (
	StructuredStruct StructuredTypeKind = iota
	StructuredInterface
)

func (k StructuredTypeKind) String() string {
	switch k {
	case StructuredStruct:
		return "struct"
	case StructuredInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// DeclarationStructuredType is `(struct | interface) name (inherits T, ...)?
// { member* }`. Its body is an unordered scope.
type DeclarationStructuredType struct {
	SourceRange    source.Range
	Name           string
	StructuredKind StructuredTypeKind
	Members        []Declaration
	Inherits       []*TypeSymbol
}

func (d *DeclarationStructuredType) Kind() NodeKind { return KindDeclarationStructuredType }
func (d *DeclarationStructuredType) Range() source.Range { return d.SourceRange }
func (d *DeclarationStructuredType) declarationNode() {}
func (d *DeclarationStructuredType) DeclaredName() string { return d.Name }

// DeclarationNamespace is `namespace name { declaration* }`. Its body is an
// unordered scope.
type DeclarationNamespace struct {
	SourceRange source.Range
	Name        string
	Members     []Declaration
}

func (d *DeclarationNamespace) Kind() NodeKind { return KindDeclarationNamespace }
func (d *DeclarationNamespace) Range() source.Range { return d.SourceRange }
func (d *DeclarationNamespace) declarationNode() {}
func (d *DeclarationNamespace) DeclaredName() string { return d.Name }

// TranslationUnit is the root of a parsed file: an unordered scope of
// declarations allowing forward references.
type TranslationUnit struct {
	SourceRange  source.Range
	Declarations []Declaration
}

func (d *TranslationUnit) Kind() NodeKind { return KindTranslationUnit }
func (d *TranslationUnit) Range() source.Range { return d.SourceRange }
