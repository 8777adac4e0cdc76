package ast

import (
	"github.com/forge-lang/forge/internal/source"
)

// StatementBasicKind enumerates the statements that are a bare keyword.
type StatementBasicKind int

const (
	StatementContinue StatementBasicKind = iota
	StatementBreak
	StatementReturnVoid
)

func (k StatementBasicKind) String() string {
	switch k {
	case StatementContinue:
		return "continue"
	case StatementBreak:
		return "break"
	case StatementReturnVoid:
		return "return_void"
	default:
		return "unknown"
	}
}

// StatementBasic is `continue;`, `break;` or `return;`.
type StatementBasic struct {
	SourceRange source.Range
	BasicKind   StatementBasicKind
	Terminates  Termination
}

func (s *StatementBasic) Kind() NodeKind { return KindStatementBasic }
func (s *StatementBasic) Range() source.Range { return s.SourceRange }
func (s *StatementBasic) statementNode() {}
func (s *StatementBasic) Termination() *Termination { return &s.Terminates }

// StatementValueKind distinguishes `x;` from `return x;`.
type StatementValueKind int

const (
	StatementExecute StatementValueKind = iota
	StatementReturn
)

func (k StatementValueKind) String() string {
	switch k {
	case StatementExecute:
		return "execute"
	case StatementReturn:
		return "return"
	default:
		return "unknown"
	}
}

// StatementValue evaluates a value, optionally returning it.
type StatementValue struct {
	SourceRange source.Range
	ValueKind   StatementValueKind
	Value       Value
	Terminates  Termination
}

func (s *StatementValue) Kind() NodeKind { return KindStatementValue }
func (s *StatementValue) Range() source.Range { return s.SourceRange }
func (s *StatementValue) statementNode() {}
func (s *StatementValue) Termination() *Termination { return &s.Terminates }

// StatementIf is `if cond block (else (if | block))?`. Else is nil, a
// *StatementIf (an `else if` chain) or a *StatementBlock.
type StatementIf struct {
	SourceRange source.Range
	Condition   Value
	Then        *StatementBlock
	Else        Statement
	Terminates  Termination
}

func (s *StatementIf) Kind() NodeKind { return KindStatementIf }
func (s *StatementIf) Range() source.Range { return s.SourceRange }
func (s *StatementIf) statementNode() {}
func (s *StatementIf) Termination() *Termination { return &s.Terminates }

// StatementWhile is `while cond block` or `do block while cond;`.
type StatementWhile struct {
	SourceRange source.Range
	Condition   Value
	Body        *StatementBlock
	IsDoWhile   bool
	Terminates  Termination
}

func (s *StatementWhile) Kind() NodeKind { return KindStatementWhile }
func (s *StatementWhile) Range() source.Range { return s.SourceRange }
func (s *StatementWhile) statementNode() {}
func (s *StatementWhile) Termination() *Termination { return &s.Terminates }

// StatementBlock is `{ statement* }`. Blocks introduce an ordered scope.
type StatementBlock struct {
	SourceRange source.Range
	Statements  []Statement
	Terminates  Termination
}

func (s *StatementBlock) Kind() NodeKind { return KindStatementBlock }
func (s *StatementBlock) Range() source.Range { return s.SourceRange }
func (s *StatementBlock) statementNode() {}
func (s *StatementBlock) Termination() *Termination { return &s.Terminates }

// StatementDeclaration wraps a declaration appearing in statement position.
type StatementDeclaration struct {
	SourceRange source.Range
	Declaration Declaration
	Terminates  Termination
}

func (s *StatementDeclaration) Kind() NodeKind { return KindStatementDeclaration }
func (s *StatementDeclaration) Range() source.Range { return s.SourceRange }
func (s *StatementDeclaration) statementNode() {}
func (s *StatementDeclaration) Termination() *Termination { return &s.Terminates }
