package ast

import (
	"github.com/forge-lang/forge/internal/source"
)

// TypeBasicKind enumerates the keyword types that carry no parameters.
type TypeBasicKind int

const (
	TypeBasicBool TypeBasicKind = iota
	TypeBasicVoid
	TypeBasicIsize
	TypeBasicUsize
)

func (k TypeBasicKind) String() string {
	switch k {
	case TypeBasicBool:
		return "bool"
	case TypeBasicVoid:
		return "void"
	case TypeBasicIsize:
		return "isize"
	case TypeBasicUsize:
		return "usize"
	default:
		return "unknown"
	}
}

// TypeBasic is bool, void, isize or usize.
type TypeBasic struct {
	SourceRange source.Range
	BasicKind   TypeBasicKind
	IsConst     bool
}

func (t *TypeBasic) Kind() NodeKind { return KindTypeBasic }
func (t *TypeBasic) Range() source.Range { return t.SourceRange }
func (t *TypeBasic) typeNode() {}
func (t *TypeBasic) Const() bool { return t.IsConst }

// TypeWithBitWidthKind distinguishes the numeric type families.
type TypeWithBitWidthKind int

const (
	TypeSignedInt TypeWithBitWidthKind = iota
	TypeUnsignedInt
	TypeFloat
)

func (k TypeWithBitWidthKind) String() string {
	switch k {
	case TypeSignedInt:
		return "signed_int"
	case TypeUnsignedInt:
		return "unsigned_int"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// TypeWithBitWidth is a numeric type: i8..i64, u8..u64, f32, f64.
type TypeWithBitWidth struct {
	SourceRange source.Range
	WidthKind   TypeWithBitWidthKind
	BitWidth    int
	IsConst     bool
}

func (t *TypeWithBitWidth) Kind() NodeKind { return KindTypeWithBitWidth }
func (t *TypeWithBitWidth) Range() source.Range { return t.SourceRange }
func (t *TypeWithBitWidth) typeNode() {}
func (t *TypeWithBitWidth) Const() bool { return t.IsConst }

// Name returns the keyword spelling, e.g. "i32".
func (t *TypeWithBitWidth) Name() string {
	switch t.WidthKind {
	case TypeSignedInt:
		switch t.BitWidth {
		case 8:
			return "i8"
		case 16:
			return "i16"
		case 32:
			return "i32"
		case 64:
			return "i64"
		}
	case TypeUnsignedInt:
		switch t.BitWidth {
		case 8:
			return "u8"
		case 16:
			return "u16"
		case 32:
			return "u32"
		case 64:
			return "u64"
		}
	case TypeFloat:
		switch t.BitWidth {
		case 32:
			return "f32"
		case 64:
			return "f64"
		}
	}
	return "unknown"
}

// TypeSymbol is a reference to a named type. ResolvedDecl is nil until
// symbol resolution binds it.
type TypeSymbol struct {
	SourceRange  source.Range
	Name         string
	IsConst      bool
	ResolvedDecl Declaration
}

func (t *TypeSymbol) Kind() NodeKind { return KindTypeSymbol }
func (t *TypeSymbol) Range() source.Range { return t.SourceRange }
func (t *TypeSymbol) typeNode() {}
func (t *TypeSymbol) Const() bool { return t.IsConst }

// TypeUnaryKind enumerates the unary type constructors.
type TypeUnaryKind int

const (
	TypePointer TypeUnaryKind = iota
)

func (k TypeUnaryKind) String() string {
	switch k {
	case TypePointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// TypeUnary wraps an operand type, currently only as a pointer. `**T`
// desugars to two nested pointers.
type TypeUnary struct {
	SourceRange source.Range
	UnaryKind   TypeUnaryKind
	Operand     Type
	IsConst     bool
}

func (t *TypeUnary) Kind() NodeKind { return KindTypeUnary }
func (t *TypeUnary) Range() source.Range { return t.SourceRange }
func (t *TypeUnary) typeNode() {}
func (t *TypeUnary) Const() bool { return t.IsConst }

// TypeFunction is the type of a function value: a return type plus argument
// types. It appears in annotations, not in source syntax.
type TypeFunction struct {
	SourceRange source.Range
	ReturnType  Type
	ArgTypes    []Type
	IsConst     bool
}

func (t *TypeFunction) Kind() NodeKind { return KindTypeFunction }
func (t *TypeFunction) Range() source.Range { return t.SourceRange }
func (t *TypeFunction) typeNode() {}
func (t *TypeFunction) Const() bool { return t.IsConst }

// TypeStructured is an anonymous structured type: a list of member
// declarations.
type TypeStructured struct {
	SourceRange source.Range
	Members     []Declaration
	IsConst     bool
}

func (t *TypeStructured) Kind() NodeKind { return KindTypeStructured }
func (t *TypeStructured) Range() source.Range { return t.SourceRange }
func (t *TypeStructured) typeNode() {}
func (t *TypeStructured) Const() bool { return t.IsConst }
