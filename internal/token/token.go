package token

import (
	"fmt"

	"github.com/forge-lang/forge/internal/source"
)

// Kind classifies a token. Kinds are process-wide constants created during
// initialization and compared by pointer identity, so two kinds are the same
// iff they are the same object.
type Kind struct {
	label string
}

// NewKind creates a kind with a human-readable label. The label is what
// diagnostics print in "expected ..." messages.
func NewKind(label string) *Kind {
	return &Kind{label: label}
}

func (k *Kind) Label() string {
	return k.label
}

func (k *Kind) String() string {
	return k.label
}

// Token is one classified slice of source text.
type Token struct {
	Kind        *Kind
	SourceRange source.Range
	Value       string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind.Label(), t.Value, t.SourceRange)
}

// Keyword kinds.
var (
	KwBool      = NewKind("bool")
	KwI8        = NewKind("i8")
	KwI16       = NewKind("i16")
	KwI32       = NewKind("i32")
	KwI64       = NewKind("i64")
	KwU8        = NewKind("u8")
	KwU16       = NewKind("u16")
	KwU32       = NewKind("u32")
	KwU64       = NewKind("u64")
	KwF32       = NewKind("f32")
	KwF64       = NewKind("f64")
	KwIsize     = NewKind("isize")
	KwUsize     = NewKind("usize")
	KwVoid      = NewKind("void")
	KwTrue      = NewKind("true")
	KwFalse     = NewKind("false")
	KwConst     = NewKind("const")
	KwLet       = NewKind("let")
	KwFunc      = NewKind("func")
	KwType      = NewKind("type")
	KwExplicit  = NewKind("explicit")
	KwStruct    = NewKind("struct")
	KwInterface = NewKind("interface")
	KwInherits  = NewKind("inherits")
	KwNamespace = NewKind("namespace")
	KwIf        = NewKind("if")
	KwElse      = NewKind("else")
	KwWhile     = NewKind("while")
	KwDo        = NewKind("do")
	KwContinue  = NewKind("continue")
	KwBreak     = NewKind("break")
	KwReturn    = NewKind("return")
	KwAs        = NewKind("as")
)

// Punctuation kinds.
var (
	LParen    = NewKind("(")
	RParen    = NewKind(")")
	LBrace    = NewKind("{")
	RBrace    = NewKind("}")
	Comma     = NewKind(",")
	Semicolon = NewKind(";")
	Colon     = NewKind(":")
	Dot       = NewKind(".")
	RArrow    = NewKind("->")
)

// Operator kinds.
var (
	Assign = NewKind("=")

	Add = NewKind("+")
	Sub = NewKind("-")
	Mul = NewKind("*")
	Div = NewKind("/")
	Mod = NewKind("%")
	Exp = NewKind("**")

	BitAnd = NewKind("&")
	BitOr  = NewKind("|")
	BitXor = NewKind("^")
	BitNot = NewKind("~")
	BitShl = NewKind("<<")
	BitShr = NewKind(">>")

	BoolAnd = NewKind("&&")
	BoolOr  = NewKind("||")
	BoolNot = NewKind("!")

	Eq = NewKind("==")
	Ne = NewKind("!=")
	Lt = NewKind("<")
	Le = NewKind("<=")
	Gt = NewKind(">")
	Ge = NewKind(">=")

	AddAssign    = NewKind("+=")
	SubAssign    = NewKind("-=")
	MulAssign    = NewKind("*=")
	DivAssign    = NewKind("/=")
	ModAssign    = NewKind("%=")
	ExpAssign    = NewKind("**=")
	BitAndAssign = NewKind("&=")
	BitOrAssign  = NewKind("|=")
	BitXorAssign = NewKind("^=")
	BitShlAssign = NewKind("<<=")
	BitShrAssign = NewKind(">>=")
)

// Value-carrying kinds.
var (
	Symbol        = NewKind("symbol")
	LiteralNumber = NewKind("literal number")
)

// Keywords maps identifier spellings that are reserved words to their kinds.
var Keywords = map[string]*Kind{
	"bool":      KwBool,
	"i8":        KwI8,
	"i16":       KwI16,
	"i32":       KwI32,
	"i64":       KwI64,
	"u8":        KwU8,
	"u16":       KwU16,
	"u32":       KwU32,
	"u64":       KwU64,
	"f32":       KwF32,
	"f64":       KwF64,
	"isize":     KwIsize,
	"usize":     KwUsize,
	"void":      KwVoid,
	"true":      KwTrue,
	"false":     KwFalse,
	"const":     KwConst,
	"let":       KwLet,
	"func":      KwFunc,
	"type":      KwType,
	"explicit":  KwExplicit,
	"struct":    KwStruct,
	"interface": KwInterface,
	"inherits":  KwInherits,
	"namespace": KwNamespace,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"do":        KwDo,
	"continue":  KwContinue,
	"break":     KwBreak,
	"return":    KwReturn,
	"as":        KwAs,
}

// LookupIdent returns the keyword kind for an identifier run, or Symbol when
// it is not reserved.
func LookupIdent(ident string) *Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return Symbol
}
