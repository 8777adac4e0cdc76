package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/handlers"
	"github.com/forge-lang/forge/internal/lexer"
	"github.com/forge-lang/forge/internal/parser"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/pass"
	"github.com/forge-lang/forge/internal/source"
)

// analyze parses input and runs the semantic passes in pipeline order.
func analyze(t *testing.T, input string) (*ast.TranslationUnit, *diagnostics.Context) {
	t.Helper()

	messages := diagnostics.NewContext()
	tokens := lexer.Lex(messages, source.New("--", input))
	unit := parser.ParseTranslationUnit(parsing.NewContext(messages, tokens))
	require.NotNil(t, unit)

	pass.New(messages, handlers.NewWellFormednessHandler()).Run(unit)
	pass.New(messages, handlers.NewSymbolResolutionHandler()).Run(unit)
	handlers.ResolveTypes(messages, unit)
	pass.New(messages, handlers.NewTypeValidationHandler()).Run(unit)
	pass.New(messages, handlers.NewControlFlowHandler()).Run(unit)

	return unit, messages
}

func codesOf(messages *diagnostics.Context) []diagnostics.Code {
	var codes []diagnostics.Code
	for _, msg := range messages.Messages() {
		codes = append(codes, msg.Code)
	}
	return codes
}

func TestCleanProgram(t *testing.T) {
	_, messages := analyze(t, `
		func add(x: i32, y: i32) -> i32 {
			return x + y;
		}

		func main() -> i32 {
			let a: i32 = 1;
			let b: i32 = 2;
			return add(a, b);
		}
	`)
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

// --- well-formedness ---

func TestWellFormednessFunctionTypedVariable(t *testing.T) {
	_, messages := analyze(t, "let f: (i32) -> void;")
	assert.Contains(t, codesOf(messages), diagnostics.ErrV0003)
}

func TestWellFormednessParameterInitializer(t *testing.T) {
	_, messages := analyze(t, "func f(x: i32 = 5) {}")
	assert.Contains(t, codesOf(messages), diagnostics.ErrV0004)
}

func TestWellFormednessMemberAccessShape(t *testing.T) {
	// The parser cannot produce this shape, so feed the handler directly.
	messages := diagnostics.NewContext()
	tree := &ast.ValueBinary{
		Operator: ast.BinaryMemberAccess,
		LHS:      &ast.ValueSymbol{Name: "x"},
		RHS:      &ast.ValueLiteralBool{Value: true},
	}
	pass.New(messages, handlers.NewWellFormednessHandler()).Run(tree)
	assert.Contains(t, codesOf(messages), diagnostics.ErrV0005)
}

func TestWellFormednessContinuesAfterViolation(t *testing.T) {
	_, messages := analyze(t, "let f: (i32) -> void; let g: (i32) -> void;")
	count := 0
	for _, code := range codesOf(messages) {
		if code == diagnostics.ErrV0003 {
			count++
		}
	}
	assert.Equal(t, 2, count, "both violations must be reported")
}

// --- symbol resolution ---

func TestSymbolResolutionBindsReferences(t *testing.T) {
	unit, messages := analyze(t, `
		let x: i32 = 1;
		func f() -> i32 { return x; }
	`)
	require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	fn := unit.Declarations[1].(*ast.DeclarationFunction)
	returnStatement := fn.Body.Statements[0].(*ast.StatementValue)
	symbol := returnStatement.Value.(*ast.ValueSymbol)
	assert.Same(t, unit.Declarations[0], symbol.ResolvedDecl)
}

func TestSymbolResolutionUndeclared(t *testing.T) {
	_, messages := analyze(t, "const x: *const i32 = &y;")
	require.Equal(t, 1, messages.Len())
	msg := messages.Messages()[0]
	assert.Equal(t, diagnostics.ErrS0001, msg.Code)
	assert.Contains(t, msg.Text, `undeclared symbol "y"`)
}

func TestSymbolResolutionForwardReferenceInTranslationUnit(t *testing.T) {
	_, messages := analyze(t, `
		func f() -> i32 { return g(); }
		func g() -> i32 { return 1; }
	`)
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

func TestSymbolResolutionOrderedBlockScope(t *testing.T) {
	_, messages := analyze(t, `
		func f() {
			x;
			let x: i32 = 1;
		}
	`)
	codes := codesOf(messages)
	assert.Contains(t, codes, diagnostics.ErrS0001, "use before declaration in a block must fail")
}

func TestSymbolResolutionDuplicate(t *testing.T) {
	_, messages := analyze(t, "let x: i32 = 1; let x: i32 = 2;")
	assert.Contains(t, codesOf(messages), diagnostics.ErrS0002)
}

func TestSymbolResolutionShadowingInBlock(t *testing.T) {
	_, messages := analyze(t, `
		let x: i32 = 1;
		func f() {
			let x: bool = true;
			if x { return; }
			return;
		}
	`)
	assert.Equal(t, 0, messages.Len(), "shadowing in a function body is allowed: %v", messages.Messages())
}

func TestSymbolResolutionParameters(t *testing.T) {
	_, messages := analyze(t, "func f(x: i32) -> i32 { return x; }")
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

// --- control flow ---

func TestControlFlowIfElseTerminatesBlock(t *testing.T) {
	unit, messages := analyze(t, `
		func f() {
			while true {
				if true { continue; } else if false { break; }
			}
			return;
		}
	`)
	require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	fn := unit.Declarations[0].(*ast.DeclarationFunction)
	loop := fn.Body.Statements[0].(*ast.StatementWhile)
	ifStatement := loop.Body.Statements[0].(*ast.StatementIf)

	require.True(t, ifStatement.Terminates.Resolved)
	assert.True(t, ifStatement.Terminates.Block, "continue/break in both branches terminate the block")
	assert.False(t, ifStatement.Terminates.Function)
}

func TestControlFlowFunctionDoesNotAlwaysReturn(t *testing.T) {
	_, messages := analyze(t, `
		func g() -> i32 { if true { return 1; } }
	`)
	codes := codesOf(messages)
	assert.Contains(t, codes, diagnostics.ErrC0002)
}

func TestControlFlowIfWithElseReturns(t *testing.T) {
	_, messages := analyze(t, `
		func g() -> i32 {
			if true { return 1; } else { return 2; }
		}
	`)
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

func TestControlFlowUnreachableStatement(t *testing.T) {
	_, messages := analyze(t, `
		func f() -> i32 {
			return 1;
			let x: i32 = 2;
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrC0001)
}

func TestControlFlowWhileTrueCountsAsReturning(t *testing.T) {
	_, messages := analyze(t, `
		func spin() -> i32 {
			while true { 1; }
		}
	`)
	assert.Equal(t, 0, messages.Len(), "an infinite loop never falls off the end: %v", messages.Messages())
}

func TestControlFlowWhileTrueWithBreakDoesNotTerminate(t *testing.T) {
	_, messages := analyze(t, `
		func f() -> i32 {
			while true { break; }
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrC0002)
}

func TestControlFlowExternalFunctionIsExempt(t *testing.T) {
	_, messages := analyze(t, "func f() -> i32;")
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

// Void functions are not exempt: a body that can fall off the end is an
// error regardless of the return type.
func TestControlFlowVoidFunctionMustReturn(t *testing.T) {
	_, messages := analyze(t, `
		func g() -> void { return; }
		func f() -> void { g(); }
	`)
	codes := codesOf(messages)
	assert.Contains(t, codes, diagnostics.ErrC0002)

	count := 0
	for _, code := range codes {
		if code == diagnostics.ErrC0002 {
			count++
		}
	}
	assert.Equal(t, 1, count, "only f falls off the end")
}

// --- type resolution and validation ---

func TestTypeResolutionLiteralDefaults(t *testing.T) {
	unit, messages := analyze(t, "let x = 5;")
	require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	variable := unit.Declarations[0].(*ast.DeclarationVariable)
	literal := variable.InitialValue.(*ast.ValueLiteralNumber)
	resolved, ok := literal.ResolvedType().(*ast.TypeWithBitWidth)
	require.True(t, ok)
	assert.Equal(t, ast.TypeSignedInt, resolved.WidthKind)
	assert.Equal(t, 32, resolved.BitWidth)
}

func TestTypeValidationUnknownParameterType(t *testing.T) {
	_, messages := analyze(t, "func f(x: i32, y) { return x + y; }")
	codes := codesOf(messages)
	assert.Contains(t, codes, diagnostics.ErrT0010, "y has no determinable type")
	assert.Contains(t, codes, diagnostics.ErrT0001, "+ has an unknown operand type")
}

func TestTypeValidationConditionMustBeBool(t *testing.T) {
	_, messages := analyze(t, "func f() { if 1 { return; } }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0002)
}

func TestTypeValidationWhileConditionMustBeBool(t *testing.T) {
	_, messages := analyze(t, "func f() { while 1 { return; } }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0002)
}

func TestTypeValidationReturnMismatch(t *testing.T) {
	_, messages := analyze(t, "func f() -> i32 { return true; }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0003)
}

func TestTypeValidationReturnValueFromVoid(t *testing.T) {
	_, messages := analyze(t, "func f() { return 1; }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0003)
}

func TestTypeValidationCallArity(t *testing.T) {
	_, messages := analyze(t, `
		func f(x: i32) -> i32 { return x; }
		func main() { f(1, 2); }
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0005)
}

func TestTypeValidationCallArgumentType(t *testing.T) {
	_, messages := analyze(t, `
		func f(x: i32) -> i32 { return x; }
		func main() { f(true); }
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0006)
}

func TestTypeValidationCallNonFunction(t *testing.T) {
	_, messages := analyze(t, `
		func main() {
			let x: i32 = 1;
			x(1);
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0004)
}

func TestTypeValidationBoolOperandsForArithmetic(t *testing.T) {
	_, messages := analyze(t, "func f() -> i32 { return true + false; }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0001)
}

func TestTypeValidationNumericCast(t *testing.T) {
	_, messages := analyze(t, `
		func f() -> i64 {
			let x: i32 = 1;
			return x as i64;
		}
	`)
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

func TestTypeValidationCastDiscardsConst(t *testing.T) {
	_, messages := analyze(t, `
		func f(p: *const i32) -> *i32 {
			return p as *i32;
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0007)
}

func TestTypeValidationBadCast(t *testing.T) {
	_, messages := analyze(t, `
		func f(p: *i32) -> i32 {
			return p as i32;
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0007)
}

func TestTypeValidationAssignmentTarget(t *testing.T) {
	_, messages := analyze(t, "func f() { 1 = 2; }")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0008)
}

func TestTypeResolutionMemberAccess(t *testing.T) {
	unit, messages := analyze(t, `
		struct Point { x: i32; y: i32; }
		func f(p: Point) -> i32 {
			return p.x;
		}
	`)
	require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	fn := unit.Declarations[1].(*ast.DeclarationFunction)
	returnStatement := fn.Body.Statements[0].(*ast.StatementValue)
	access := returnStatement.Value.(*ast.ValueBinary)
	resolved, ok := access.ResolvedType().(*ast.TypeWithBitWidth)
	require.True(t, ok, "member access must resolve to the field type")
	assert.Equal(t, 32, resolved.BitWidth)

	field := access.RHS.(*ast.ValueSymbol)
	assert.NotNil(t, field.ResolvedDecl)
}

func TestTypeResolutionUnknownMember(t *testing.T) {
	_, messages := analyze(t, `
		struct Point { x: i32; }
		func f(p: Point) -> i32 {
			return p.z;
		}
	`)
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0009)
}

func TestTypeResolutionInheritedMember(t *testing.T) {
	_, messages := analyze(t, `
		struct Base { x: i32; }
		struct Derived inherits Base { y: i32; }
		func f(d: Derived) -> i32 {
			return d.x;
		}
	`)
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
}

// A chain of inferred variables referencing forward declarations resolves
// regardless of source order: resolution iterates until nothing new types.
func TestTypeResolutionInferredForwardChain(t *testing.T) {
	unit, messages := analyze(t, "const a = b; const b = c; const c = 1;")
	assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	first := unit.Declarations[0].(*ast.DeclarationVariable)
	resolved, ok := first.InitialValue.ResolvedType().(*ast.TypeWithBitWidth)
	require.True(t, ok, "a's initializer must inherit c's literal type")
	assert.Equal(t, ast.TypeSignedInt, resolved.WidthKind)
	assert.Equal(t, 32, resolved.BitWidth)
}

func TestTypeResolutionInferenceCycle(t *testing.T) {
	_, messages := analyze(t, "const a = b; const b = a;")
	assert.Contains(t, codesOf(messages), diagnostics.ErrT0010,
		"a cyclic inference chain stays untyped and is diagnosed, not looped on")
}

func TestTypeResolutionThroughAlias(t *testing.T) {
	_, messages := analyze(t, `
		type Int = i32;
		func f(x: Int) -> i32 {
			return x + 1;
		}
	`)
	assert.Equal(t, 0, messages.Len(), "aliases resolve to their underlying type: %v", messages.Messages())
}

func TestBackendContractAnnotations(t *testing.T) {
	unit, messages := analyze(t, `
		func add(x: i32, y: i32) -> i32 {
			return x + y;
		}
	`)
	require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

	// Every value has a resolved type, every symbol a resolved declaration,
	// and every statement resolved termination flags.
	var unresolved int
	ast.Walk(unit, walkFunc(func(node ast.Node) {
		switch typed := node.(type) {
		case ast.Value:
			if typed.ResolvedType() == nil {
				unresolved++
			}
			if symbol, ok := typed.(*ast.ValueSymbol); ok && symbol.ResolvedDecl == nil {
				unresolved++
			}
		case ast.Statement:
			if !typed.Termination().Resolved {
				unresolved++
			}
		}
	}))
	assert.Equal(t, 0, unresolved)
}

type walkFunc func(ast.Node)

func (f walkFunc) OnEnter(n ast.Node) { f(n) }
func (walkFunc) OnLeave(ast.Node) {}
