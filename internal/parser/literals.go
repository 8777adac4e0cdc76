package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/parsing"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// The lexer emits a numeric literal as one undifferentiated lexeme. This
// file takes it apart in a single pass: optional leading sign, width suffix,
// base prefix, digits. Values that do not fit the declared width are reduced
// (two's-complement for signed, modulo 2^w for unsigned) with a warning;
// values that cannot be parsed at all are errors.

type literalSuffix struct {
	text     string
	kind     ast.TypeWithBitWidthKind
	bitWidth int
}

var literalSuffixes = []literalSuffix{
	{"i8", ast.TypeSignedInt, 8},
	{"i16", ast.TypeSignedInt, 16},
	{"i32", ast.TypeSignedInt, 32},
	{"i64", ast.TypeSignedInt, 64},
	{"u8", ast.TypeUnsignedInt, 8},
	{"u16", ast.TypeUnsignedInt, 16},
	{"u32", ast.TypeUnsignedInt, 32},
	{"u64", ast.TypeUnsignedInt, 64},
	{"f32", ast.TypeFloat, 32},
	{"f64", ast.TypeFloat, 64},
}

func parseValueLiteralNumber(ctx *parsing.Context) ast.Value {
	tok, ok := parsing.TokenByKind(ctx, token.LiteralNumber)
	if !ok {
		return nil
	}
	return literalNumberFromLexeme(ctx.Messages, tok.Value, tok.SourceRange)
}

// literalNumberFromLexeme converts one numeric lexeme into a
// ValueLiteralNumber, or nil after an error diagnostic.
func literalNumberFromLexeme(messages *diagnostics.Context, lexeme string, rng source.Range) ast.Value {
	text := lexeme

	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	kind := ast.TypeSignedInt
	bitWidth := 32
	hasSuffix := false
	for _, suffix := range literalSuffixes {
		if strings.HasSuffix(text, suffix.text) {
			text = text[:len(text)-len(suffix.text)]
			kind = suffix.kind
			bitWidth = suffix.bitWidth
			hasSuffix = true
			break
		}
	}
	if !hasSuffix && strings.Contains(text, ".") {
		kind = ast.TypeFloat
		bitWidth = 64
	}

	base := 10
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		text = text[2:]
		base = 16
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		text = text[2:]
		base = 2
	case strings.HasPrefix(text, "0o"), strings.HasPrefix(text, "0O"):
		text = text[2:]
		base = 8
	}

	literalType := &ast.TypeWithBitWidth{WidthKind: kind, BitWidth: bitWidth}

	if kind == ast.TypeFloat {
		if base != 10 {
			messages.Error(rng, diagnostics.ErrP0003, "invalid number literal %q: float literals must be base 10", lexeme)
			return nil
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			messages.Error(rng, diagnostics.ErrP0003, "invalid number literal %q", lexeme)
			return nil
		}
		if negative {
			parsed = -parsed
		}
		if bitWidth == 32 {
			parsed = float64(float32(parsed))
		}
		return &ast.ValueLiteralNumber{
			SourceRange: rng,
			Type:        literalType,
			Value:       ast.Number{WidthKind: kind, BitWidth: bitWidth, Float: parsed},
		}
	}

	digits, ok := new(big.Int).SetString(text, base)
	if !ok {
		messages.Error(rng, diagnostics.ErrP0003, "invalid number literal %q", lexeme)
		return nil
	}
	if negative {
		if kind == ast.TypeUnsignedInt {
			messages.Error(rng, diagnostics.ErrP0003, "invalid number literal %q: unsigned literals cannot be negative", lexeme)
			return nil
		}
		digits.Neg(digits)
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(bitWidth))
	reduced := new(big.Int).Mod(digits, modulus) // in [0, 2^w)

	number := ast.Number{WidthKind: kind, BitWidth: bitWidth}
	var truncated bool
	if kind == ast.TypeUnsignedInt {
		number.Unsigned = reduced.Uint64()
		truncated = reduced.Cmp(digits) != 0
	} else {
		// Two's-complement: fold the upper half of [0, 2^w) negative.
		signBound := new(big.Int).Rsh(modulus, 1)
		if reduced.Cmp(signBound) >= 0 {
			reduced.Sub(reduced, modulus)
		}
		number.Signed = reduced.Int64()
		truncated = reduced.Cmp(digits) != 0
	}

	if truncated {
		messages.Warning(rng, diagnostics.WarnP0004,
			"number literal %q does not fit in %s, truncated to %s", lexeme, literalType.Name(), number)
	}

	return &ast.ValueLiteralNumber{SourceRange: rng, Type: literalType, Value: number}
}
