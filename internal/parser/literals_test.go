package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parser"
)

func parseNumber(t *testing.T, input string) (*ast.ValueLiteralNumber, *diagnostics.Context) {
	t.Helper()
	ctx := newParsingContext(t, input)
	value := parser.ParseValue(ctx)
	if value == nil {
		return nil, ctx.Messages
	}
	literal, ok := value.(*ast.ValueLiteralNumber)
	require.True(t, ok, "expected a literal number, got %s", value.Kind())
	return literal, ctx.Messages
}

func TestLiteralNumberDefaults(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		kind      ast.TypeWithBitWidthKind
		bitWidth  int
		signed    int64
		unsigned  uint64
		float     float64
	}{
		{"plain_integer_defaults_to_i32", "5", ast.TypeSignedInt, 32, 5, 0, 0},
		{"decimal_point_defaults_to_f64", "2.5", ast.TypeFloat, 64, 0, 0, 2.5},
		{"suffix_i8", "100i8", ast.TypeSignedInt, 8, 100, 0, 0},
		{"suffix_i64", "9000000000i64", ast.TypeSignedInt, 64, 9000000000, 0, 0},
		{"suffix_u16", "65535u16", ast.TypeUnsignedInt, 16, 0, 65535, 0},
		{"suffix_u64", "18446744073709551615u64", ast.TypeUnsignedInt, 64, 0, 18446744073709551615, 0},
		{"suffix_f32", "1.5f32", ast.TypeFloat, 32, 0, 0, 1.5},
		{"suffix_f64", "1.5f64", ast.TypeFloat, 64, 0, 0, 1.5},
		{"hex", "0x10", ast.TypeSignedInt, 32, 16, 0, 0},
		{"binary", "0b101", ast.TypeSignedInt, 32, 5, 0, 0},
		{"octal", "0o17", ast.TypeSignedInt, 32, 15, 0, 0},
		{"hex_with_suffix", "0x10u8", ast.TypeUnsignedInt, 8, 0, 16, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			literal, messages := parseNumber(t, tc.input)
			require.NotNil(t, literal)
			require.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())

			require.NotNil(t, literal.Type)
			assert.Equal(t, tc.kind, literal.Type.WidthKind)
			assert.Equal(t, tc.bitWidth, literal.Type.BitWidth)

			assert.Equal(t, tc.kind, literal.Value.WidthKind)
			switch tc.kind {
			case ast.TypeSignedInt:
				assert.Equal(t, tc.signed, literal.Value.Signed)
			case ast.TypeUnsignedInt:
				assert.Equal(t, tc.unsigned, literal.Value.Unsigned)
			case ast.TypeFloat:
				assert.Equal(t, tc.float, literal.Value.Float)
			}
		})
	}
}

// The stored value is the mathematical value reduced to the declared width:
// modulo 2^w for unsigned, two's-complement for signed. A warning is emitted
// iff the reduction changed the value.
func TestLiteralNumberTruncation(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		signed    int64
		unsigned  uint64
		isSigned  bool
		truncated bool
	}{
		{"fits_no_warning", "127i8", 127, 0, true, false},
		{"signed_wraps", "128i8", -128, 0, true, true},
		{"signed_wraps_large", "300i8", 44, 0, true, true},
		{"unsigned_wraps", "256u8", 0, 0, false, true},
		{"unsigned_wraps_to_one", "257u8", 0, 1, false, true},
		{"u16_fits", "65535u16", 0, 65535, false, false},
		{"u16_wraps", "65536u16", 0, 0, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			literal, messages := parseNumber(t, tc.input)
			require.NotNil(t, literal)

			if tc.isSigned {
				assert.Equal(t, tc.signed, literal.Value.Signed)
			} else {
				assert.Equal(t, tc.unsigned, literal.Value.Unsigned)
			}

			if tc.truncated {
				require.Equal(t, 1, messages.Len(), "expected a truncation warning")
				msg := messages.Messages()[0]
				assert.Equal(t, diagnostics.SeverityWarning, msg.Severity)
				assert.Equal(t, diagnostics.WarnP0004, msg.Code)
			} else {
				assert.Equal(t, 0, messages.Len(), "diagnostics: %v", messages.Messages())
			}
		})
	}
}

func TestLiteralNumberInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"bad_hex_digits", "0xzz"},
		{"multiple_dots", "1.2.3"},
		{"bare_base_prefix", "0x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newParsingContext(t, tc.input)
			parser.ParseValue(ctx)
			require.NotEqual(t, 0, ctx.Messages.Len())
			assert.Equal(t, diagnostics.SeverityError, ctx.Messages.MaxSeverity())
		})
	}
}
