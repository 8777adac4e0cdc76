package parser_test

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/lexer"
	"github.com/forge-lang/forge/internal/parser"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
)

func newParsingContext(t *testing.T, input string) *parsing.Context {
	t.Helper()
	messages := diagnostics.NewContext()
	tokens := lexer.Lex(messages, source.New("--", input))
	return parsing.NewContext(messages, tokens)
}

// assertFormat fails with a readable diff when the parsed tree's debug
// format differs from the expected rendering.
func assertFormat(t *testing.T, expected string, node ast.Node) {
	t.Helper()
	require.NotNil(t, node, "parse returned nil")
	actual := ast.Format(node)
	if actual == expected {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	t.Errorf("debug format mismatch:\n%s", diff)
}

func TestParseTypes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"basic_bool", "bool",
			"[type_basic]\n" +
				"  type_basic_kind = bool\n" +
				"  is_const = false",
		},
		{
			"basic_void", "void",
			"[type_basic]\n" +
				"  type_basic_kind = void\n" +
				"  is_const = false",
		},
		{
			"basic_isize", "isize",
			"[type_basic]\n" +
				"  type_basic_kind = isize\n" +
				"  is_const = false",
		},
		{
			"basic_usize", "usize",
			"[type_basic]\n" +
				"  type_basic_kind = usize\n" +
				"  is_const = false",
		},
		{
			"symbol", "String",
			"[type_symbol]\n" +
				"  name = \"String\"\n" +
				"  is_const = false",
		},
		{
			"bit_width_i32", "i32",
			"[type_with_bit_width]\n" +
				"  type_with_bit_width_kind = signed_int\n" +
				"  bit_width = 32\n" +
				"  is_const = false",
		},
		{
			"bit_width_u16", "u16",
			"[type_with_bit_width]\n" +
				"  type_with_bit_width_kind = unsigned_int\n" +
				"  bit_width = 16\n" +
				"  is_const = false",
		},
		{
			"bit_width_f64", "f64",
			"[type_with_bit_width]\n" +
				"  type_with_bit_width_kind = float\n" +
				"  bit_width = 64\n" +
				"  is_const = false",
		},
		{
			"pointer", "*i32",
			"[type_unary]\n" +
				"  type_unary_kind = pointer\n" +
				"  operand_type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  is_const = false",
		},
		{
			"pointer_to_const", "*const i32",
			"[type_unary]\n" +
				"  type_unary_kind = pointer\n" +
				"  operand_type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = true\n" +
				"  is_const = false",
		},
		{
			"const_pointer", "const *i32",
			"[type_unary]\n" +
				"  type_unary_kind = pointer\n" +
				"  operand_type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  is_const = true",
		},
		{
			"double_pointer", "**i32",
			"[type_unary]\n" +
				"  type_unary_kind = pointer\n" +
				"  operand_type = [type_unary]\n" +
				"    type_unary_kind = pointer\n" +
				"    operand_type = [type_with_bit_width]\n" +
				"      type_with_bit_width_kind = signed_int\n" +
				"      bit_width = 32\n" +
				"      is_const = false\n" +
				"    is_const = false\n" +
				"  is_const = false",
		},
		{
			"function", "(i32, bool) -> void",
			"[type_function]\n" +
				"  return_type = [type_basic]\n" +
				"    type_basic_kind = void\n" +
				"    is_const = false\n" +
				"  arg_types = \n" +
				"    [0] = [type_with_bit_width]\n" +
				"      type_with_bit_width_kind = signed_int\n" +
				"      bit_width = 32\n" +
				"      is_const = false\n" +
				"    [1] = [type_basic]\n" +
				"      type_basic_kind = bool\n" +
				"      is_const = false\n" +
				"  is_const = false",
		},
		{
			"structured", "{ x: i32; }",
			"[type_structured]\n" +
				"  members = \n" +
				"    [0] = [declaration_variable]\n" +
				"      name = \"x\"\n" +
				"      type = [type_with_bit_width]\n" +
				"        type_with_bit_width_kind = signed_int\n" +
				"        bit_width = 32\n" +
				"        is_const = false\n" +
				"      initial_value = null\n" +
				"      is_const = false\n" +
				"  is_const = false",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			tree := parser.ParseType(ctx)
			require.Equal(t, 0, ctx.Messages.Len(), "unexpected diagnostics: %v", ctx.Messages.Messages())
			assertFormat(t, tc.expected, tree)
		})
	}
}

func TestParseValues(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"literal_true", "true",
			"[value_literal_bool]\n" +
				"  value = true",
		},
		{
			"literal_false", "false",
			"[value_literal_bool]\n" +
				"  value = false",
		},
		{
			"literal_zero", "0",
			"[value_literal_number]\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  value = 0",
		},
		{
			"literal_suffixed", "7u8",
			"[value_literal_number]\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = unsigned_int\n" +
				"    bit_width = 8\n" +
				"    is_const = false\n" +
				"  value = 7",
		},
		{
			"literal_hex", "0xff",
			"[value_literal_number]\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  value = 255",
		},
		{
			"literal_float", "1.5",
			"[value_literal_number]\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = float\n" +
				"    bit_width = 64\n" +
				"    is_const = false\n" +
				"  value = 1.5",
		},
		{
			"symbol", "x",
			"[value_symbol]\n" +
				"  name = \"x\"",
		},
		{
			"parenthesis", "(x.y)",
			"[value_binary]\n" +
				"  operator = .\n" +
				"  lhs = [value_symbol]\n" +
				"    name = \"x\"\n" +
				"  rhs = [value_symbol]\n" +
				"    name = \"y\"",
		},
		{
			"member_access", "x.y",
			"[value_binary]\n" +
				"  operator = .\n" +
				"  lhs = [value_symbol]\n" +
				"    name = \"x\"\n" +
				"  rhs = [value_symbol]\n" +
				"    name = \"y\"",
		},
		{
			"call_no_args", "f()",
			"[value_call]\n" +
				"  callee = [value_symbol]\n" +
				"    name = \"f\"\n" +
				"  args = []",
		},
		{
			"call_two_args", "f(x, y)",
			"[value_call]\n" +
				"  callee = [value_symbol]\n" +
				"    name = \"f\"\n" +
				"  args = \n" +
				"    [0] = [value_symbol]\n" +
				"      name = \"x\"\n" +
				"    [1] = [value_symbol]\n" +
				"      name = \"y\"",
		},
		{
			"unary_deref", "*x",
			"[value_unary]\n" +
				"  operator = *\n" +
				"  operand = [value_symbol]\n" +
				"    name = \"x\"",
		},
		{
			"unary_getaddr", "&x",
			"[value_unary]\n" +
				"  operator = &\n" +
				"  operand = [value_symbol]\n" +
				"    name = \"x\"",
		},
		{
			"unary_nested", "!!x",
			"[value_unary]\n" +
				"  operator = !\n" +
				"  operand = [value_unary]\n" +
				"    operator = !\n" +
				"    operand = [value_symbol]\n" +
				"      name = \"x\"",
		},
		{
			"cast", "x as i32",
			"[value_cast]\n" +
				"  value = [value_symbol]\n" +
				"    name = \"x\"\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false",
		},
		{
			"assign_compound", "x &= y",
			"[value_binary]\n" +
				"  operator = &=\n" +
				"  lhs = [value_symbol]\n" +
				"    name = \"x\"\n" +
				"  rhs = [value_symbol]\n" +
				"    name = \"y\"",
		},
		{
			"exponentiation_right_associative", "a ** b ** c",
			"[value_binary]\n" +
				"  operator = **\n" +
				"  lhs = [value_symbol]\n" +
				"    name = \"a\"\n" +
				"  rhs = [value_binary]\n" +
				"    operator = **\n" +
				"    lhs = [value_symbol]\n" +
				"      name = \"b\"\n" +
				"    rhs = [value_symbol]\n" +
				"      name = \"c\"",
		},
		{
			"additive_binds_tighter_than_shift", "a << b + c",
			"[value_binary]\n" +
				"  operator = <<\n" +
				"  lhs = [value_symbol]\n" +
				"    name = \"a\"\n" +
				"  rhs = [value_binary]\n" +
				"    operator = +\n" +
				"    lhs = [value_symbol]\n" +
				"      name = \"b\"\n" +
				"    rhs = [value_symbol]\n" +
				"      name = \"c\"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			tree := parser.ParseValue(ctx)
			require.Equal(t, 0, ctx.Messages.Len(), "unexpected diagnostics: %v", ctx.Messages.Messages())
			assertFormat(t, tc.expected, tree)
		})
	}
}

// The full precedence ladder, weakest to strongest, in one expression.
func TestParseValuePrecedenceLadder(t *testing.T) {
	ctx := newParsingContext(t, "a = b || c && d == e | f & g << h + i * j ** *k.l() as i32")
	tree := parser.ParseValue(ctx)
	require.Equal(t, 0, ctx.Messages.Len(), "unexpected diagnostics: %v", ctx.Messages.Messages())

	assertFormat(t,
		"[value_binary]\n"+
			"  operator = =\n"+
			"  lhs = [value_symbol]\n"+
			"    name = \"a\"\n"+
			"  rhs = [value_cast]\n"+
			"    value = [value_binary]\n"+
			"      operator = ||\n"+
			"      lhs = [value_symbol]\n"+
			"        name = \"b\"\n"+
			"      rhs = [value_binary]\n"+
			"        operator = &&\n"+
			"        lhs = [value_symbol]\n"+
			"          name = \"c\"\n"+
			"        rhs = [value_binary]\n"+
			"          operator = ==\n"+
			"          lhs = [value_symbol]\n"+
			"            name = \"d\"\n"+
			"          rhs = [value_binary]\n"+
			"            operator = |\n"+
			"            lhs = [value_symbol]\n"+
			"              name = \"e\"\n"+
			"            rhs = [value_binary]\n"+
			"              operator = &\n"+
			"              lhs = [value_symbol]\n"+
			"                name = \"f\"\n"+
			"              rhs = [value_binary]\n"+
			"                operator = <<\n"+
			"                lhs = [value_symbol]\n"+
			"                  name = \"g\"\n"+
			"                rhs = [value_binary]\n"+
			"                  operator = +\n"+
			"                  lhs = [value_symbol]\n"+
			"                    name = \"h\"\n"+
			"                  rhs = [value_binary]\n"+
			"                    operator = *\n"+
			"                    lhs = [value_symbol]\n"+
			"                      name = \"i\"\n"+
			"                    rhs = [value_binary]\n"+
			"                      operator = **\n"+
			"                      lhs = [value_symbol]\n"+
			"                        name = \"j\"\n"+
			"                      rhs = [value_unary]\n"+
			"                        operator = *\n"+
			"                        operand = [value_call]\n"+
			"                          callee = [value_binary]\n"+
			"                            operator = .\n"+
			"                            lhs = [value_symbol]\n"+
			"                              name = \"k\"\n"+
			"                            rhs = [value_symbol]\n"+
			"                              name = \"l\"\n"+
			"                          args = []\n"+
			"    type = [type_with_bit_width]\n"+
			"      type_with_bit_width_kind = signed_int\n"+
			"      bit_width = 32\n"+
			"      is_const = false",
		tree)
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"continue", "continue;",
			"[statement_basic]\n" +
				"  statement_basic_kind = continue",
		},
		{
			"break", "break;",
			"[statement_basic]\n" +
				"  statement_basic_kind = break",
		},
		{
			"return_void", "return;",
			"[statement_basic]\n" +
				"  statement_basic_kind = return_void",
		},
		{
			"return_value", "return x;",
			"[statement_value]\n" +
				"  statement_value_kind = return\n" +
				"  value = [value_symbol]\n" +
				"    name = \"x\"",
		},
		{
			"execute", "5;",
			"[statement_value]\n" +
				"  statement_value_kind = execute\n" +
				"  value = [value_literal_number]\n" +
				"    type = [type_with_bit_width]\n" +
				"      type_with_bit_width_kind = signed_int\n" +
				"      bit_width = 32\n" +
				"      is_const = false\n" +
				"    value = 5",
		},
		{
			"empty_block", "{}",
			"[statement_block]\n" +
				"  statements = []",
		},
		{
			"block_two_statements", "{ continue; break; }",
			"[statement_block]\n" +
				"  statements = \n" +
				"    [0] = [statement_basic]\n" +
				"      statement_basic_kind = continue\n" +
				"    [1] = [statement_basic]\n" +
				"      statement_basic_kind = break",
		},
		{
			"if", "if true { continue; }",
			"[statement_if]\n" +
				"  condition = [value_literal_bool]\n" +
				"    value = true\n" +
				"  then = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = continue\n" +
				"  else = null",
		},
		{
			"if_else", "if true { continue; } else { break; }",
			"[statement_if]\n" +
				"  condition = [value_literal_bool]\n" +
				"    value = true\n" +
				"  then = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = continue\n" +
				"  else = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = break",
		},
		{
			"if_else_if", "if true { continue; } else if false { break; }",
			"[statement_if]\n" +
				"  condition = [value_literal_bool]\n" +
				"    value = true\n" +
				"  then = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = continue\n" +
				"  else = [statement_if]\n" +
				"    condition = [value_literal_bool]\n" +
				"      value = false\n" +
				"    then = [statement_block]\n" +
				"      statements = \n" +
				"        [0] = [statement_basic]\n" +
				"          statement_basic_kind = break\n" +
				"    else = null",
		},
		{
			"while", "while true { continue; }",
			"[statement_while]\n" +
				"  condition = [value_literal_bool]\n" +
				"    value = true\n" +
				"  body = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = continue\n" +
				"  is_do_while = false",
		},
		{
			"do_while", "do { continue; } while true;",
			"[statement_while]\n" +
				"  condition = [value_literal_bool]\n" +
				"    value = true\n" +
				"  body = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_basic]\n" +
				"        statement_basic_kind = continue\n" +
				"  is_do_while = true",
		},
		{
			"declaration_statement", "let x;",
			"[statement_declaration]\n" +
				"  declaration = [declaration_variable]\n" +
				"    name = \"x\"\n" +
				"    type = null\n" +
				"    initial_value = null\n" +
				"    is_const = false",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			tree := parser.ParseStatement(ctx)
			require.Equal(t, 0, ctx.Messages.Len(), "unexpected diagnostics: %v", ctx.Messages.Messages())
			assertFormat(t, tc.expected, tree)
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"let_with_initializer", "let x = 5;",
			"[declaration_variable]\n" +
				"  name = \"x\"\n" +
				"  type = null\n" +
				"  initial_value = [value_literal_number]\n" +
				"    type = [type_with_bit_width]\n" +
				"      type_with_bit_width_kind = signed_int\n" +
				"      bit_width = 32\n" +
				"      is_const = false\n" +
				"    value = 5\n" +
				"  is_const = false",
		},
		{
			"const_with_type", "const x: bool = true;",
			"[declaration_variable]\n" +
				"  name = \"x\"\n" +
				"  type = [type_basic]\n" +
				"    type_basic_kind = bool\n" +
				"    is_const = false\n" +
				"  initial_value = [value_literal_bool]\n" +
				"    value = true\n" +
				"  is_const = true",
		},
		{
			"function_empty", "func f() {}",
			"[declaration_function]\n" +
				"  name = \"f\"\n" +
				"  args = []\n" +
				"  return_type = null\n" +
				"  body = [statement_block]\n" +
				"    statements = []",
		},
		{
			"function_with_args", "func f(x: i32, y) {}",
			"[declaration_function]\n" +
				"  name = \"f\"\n" +
				"  args = \n" +
				"    [0] = [declaration_variable]\n" +
				"      name = \"x\"\n" +
				"      type = [type_with_bit_width]\n" +
				"        type_with_bit_width_kind = signed_int\n" +
				"        bit_width = 32\n" +
				"        is_const = false\n" +
				"      initial_value = null\n" +
				"      is_const = false\n" +
				"    [1] = [declaration_variable]\n" +
				"      name = \"y\"\n" +
				"      type = null\n" +
				"      initial_value = null\n" +
				"      is_const = false\n" +
				"  return_type = null\n" +
				"  body = [statement_block]\n" +
				"    statements = []",
		},
		{
			"function_with_return_type", "func f() -> i32 { return 1; }",
			"[declaration_function]\n" +
				"  name = \"f\"\n" +
				"  args = []\n" +
				"  return_type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  body = [statement_block]\n" +
				"    statements = \n" +
				"      [0] = [statement_value]\n" +
				"        statement_value_kind = return\n" +
				"        value = [value_literal_number]\n" +
				"          type = [type_with_bit_width]\n" +
				"            type_with_bit_width_kind = signed_int\n" +
				"            bit_width = 32\n" +
				"            is_const = false\n" +
				"          value = 1",
		},
		{
			"function_external", "func f() -> i32;",
			"[declaration_function]\n" +
				"  name = \"f\"\n" +
				"  args = []\n" +
				"  return_type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  body = null",
		},
		{
			"type_alias", "type T = i32;",
			"[declaration_type_alias]\n" +
				"  name = \"T\"\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  is_explicit = false",
		},
		{
			"type_alias_explicit", "explicit type T = i32;",
			"[declaration_type_alias]\n" +
				"  name = \"T\"\n" +
				"  type = [type_with_bit_width]\n" +
				"    type_with_bit_width_kind = signed_int\n" +
				"    bit_width = 32\n" +
				"    is_const = false\n" +
				"  is_explicit = true",
		},
		{
			"struct_empty", "struct T {}",
			"[declaration_structured_type]\n" +
				"  name = \"T\"\n" +
				"  structured_type_kind = struct\n" +
				"  members = []\n" +
				"  inherits = []",
		},
		{
			"struct_with_members", "struct T { x: i32; func f() {} }",
			"[declaration_structured_type]\n" +
				"  name = \"T\"\n" +
				"  structured_type_kind = struct\n" +
				"  members = \n" +
				"    [0] = [declaration_variable]\n" +
				"      name = \"x\"\n" +
				"      type = [type_with_bit_width]\n" +
				"        type_with_bit_width_kind = signed_int\n" +
				"        bit_width = 32\n" +
				"        is_const = false\n" +
				"      initial_value = null\n" +
				"      is_const = false\n" +
				"    [1] = [declaration_function]\n" +
				"      name = \"f\"\n" +
				"      args = []\n" +
				"      return_type = null\n" +
				"      body = [statement_block]\n" +
				"        statements = []\n" +
				"  inherits = []",
		},
		{
			"struct_inherits", "struct T inherits U, V {}",
			"[declaration_structured_type]\n" +
				"  name = \"T\"\n" +
				"  structured_type_kind = struct\n" +
				"  members = []\n" +
				"  inherits = \n" +
				"    [0] = [type_symbol]\n" +
				"      name = \"U\"\n" +
				"      is_const = false\n" +
				"    [1] = [type_symbol]\n" +
				"      name = \"V\"\n" +
				"      is_const = false",
		},
		{
			"interface", "interface I {}",
			"[declaration_structured_type]\n" +
				"  name = \"I\"\n" +
				"  structured_type_kind = interface\n" +
				"  members = []\n" +
				"  inherits = []",
		},
		{
			"namespace", "namespace n { let x; }",
			"[declaration_namespace]\n" +
				"  name = \"n\"\n" +
				"  members = \n" +
				"    [0] = [declaration_variable]\n" +
				"      name = \"x\"\n" +
				"      type = null\n" +
				"      initial_value = null\n" +
				"      is_const = false",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			tree := parser.ParseDeclaration(ctx)
			require.Equal(t, 0, ctx.Messages.Len(), "unexpected diagnostics: %v", ctx.Messages.Messages())
			assertFormat(t, tc.expected, tree)
		})
	}
}

func TestParseTranslationUnit(t *testing.T) {
	ctx := newParsingContext(t, "let x; let y;")
	unit := parser.ParseTranslationUnit(ctx)
	require.Equal(t, 0, ctx.Messages.Len())
	require.Len(t, unit.Declarations, 2)
	assert.Equal(t, "x", unit.Declarations[0].DeclaredName())
	assert.Equal(t, "y", unit.Declarations[1].DeclaredName())
}

func TestParseTranslationUnitEmpty(t *testing.T) {
	ctx := newParsingContext(t, "")
	unit := parser.ParseTranslationUnit(ctx)
	require.NotNil(t, unit)
	assertFormat(t,
		"[translation_unit]\n"+
			"  declarations = []",
		unit)
}

func TestParseTranslationUnitExpectedDeclaration(t *testing.T) {
	ctx := newParsingContext(t, "let x; 42")
	unit := parser.ParseTranslationUnit(ctx)
	require.NotNil(t, unit)
	assert.Len(t, unit.Declarations, 1)

	found := false
	for _, msg := range ctx.Messages.Messages() {
		if msg.Code == diagnostics.ErrP0002 {
			found = true
			assert.Contains(t, msg.Text, "expected declaration")
		}
	}
	assert.True(t, found)
}

func TestParseSyntaxErrors(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		parse         func(*parsing.Context) ast.Node
		expectedError string
	}{
		{
			"missing_semicolon", "let x = 5",
			func(ctx *parsing.Context) ast.Node { return nodeOrNil(parser.ParseDeclaration(ctx)) },
			`';'`,
		},
		{
			"missing_close_paren", "f(x;",
			func(ctx *parsing.Context) ast.Node { return nodeOrNil(parser.ParseValue(ctx)) },
			`')'`,
		},
		{
			"missing_while_condition", "while { continue; }",
			func(ctx *parsing.Context) ast.Node { return nodeOrNil(parser.ParseStatement(ctx)) },
			"condition",
		},
		{
			"missing_do_while_semicolon", "do { continue; } while true",
			func(ctx *parsing.Context) ast.Node { return nodeOrNil(parser.ParseStatement(ctx)) },
			`';'`,
		},
		{
			"missing_alias_type", "type T = ;",
			func(ctx *parsing.Context) ast.Node { return nodeOrNil(parser.ParseDeclaration(ctx)) },
			"type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			tc.parse(ctx)
			require.NotEqual(t, 0, ctx.Messages.Len(), "expected a diagnostic")

			var texts []string
			for _, msg := range ctx.Messages.Messages() {
				texts = append(texts, msg.Text)
			}
			assert.Contains(t, strings.Join(texts, "\n"), tc.expectedError)
		})
	}
}

func nodeOrNil[T ast.Node](node T) ast.Node {
	var zero T
	if any(node) == any(zero) {
		return nil
	}
	return node
}
