package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// Lexer scans a source as a stream of Unicode grapheme clusters, so a
// combining-mark sequence or an emoji counts as one character for column
// tracking and error reporting.
//
// The lexer never fails: unrecognized input becomes an error message plus a
// skipped cluster.
type Lexer struct {
	messages *diagnostics.Context
	src      *source.Source

	cluster string // current grapheme cluster, "" at end of input
	rest    string
	state   int

	offset int // byte offset of the current cluster
	line   int // 1-based line of the current cluster
	column int // 1-based column of the current cluster, in clusters

	tokenStart source.Location
}

// New builds a lexer over src which reports problems into messages.
func New(messages *diagnostics.Context, src *source.Source) *Lexer {
	l := &Lexer{
		messages: messages,
		src:      src,
		rest:     src.Text(),
		state:    -1,
		line:     1,
		column:   1,
	}
	l.cluster, l.rest, _, l.state = uniseg.FirstGraphemeClusterInString(l.rest, l.state)
	return l
}

// Lex scans the whole source into a token vector.
func Lex(messages *diagnostics.Context, src *source.Source) []token.Token {
	l := New(messages, src)
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) location() source.Location {
	return source.Location{Source: l.src, Line: l.line, Column: l.column, Offset: l.offset}
}

// advance consumes the current cluster.
func (l *Lexer) advance() {
	if l.cluster == "" {
		return
	}
	newline := l.cluster == "\n" || l.cluster == "\r\n" || l.cluster == "\r"
	l.offset += len(l.cluster)
	if newline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.cluster, l.rest, _, l.state = uniseg.FirstGraphemeClusterInString(l.rest, l.state)
}

func (l *Lexer) begin() {
	l.tokenStart = l.location()
}

// currentRange is the span from the start of the token being scanned up to
// (but not including) the current cluster.
func (l *Lexer) currentRange() source.Range {
	return source.NewRange(l.tokenStart, l.location())
}

// currentValue is the text consumed since begin.
func (l *Lexer) currentValue() string {
	return l.src.Slice(l.tokenStart.Offset, l.offset)
}

func (l *Lexer) emit(kind *token.Kind) token.Token {
	return token.Token{Kind: kind, SourceRange: l.currentRange(), Value: l.currentValue()}
}

func isWhitespace(cluster string) bool {
	switch cluster {
	case " ", "\t", "\n", "\r", "\r\n":
		return true
	}
	return false
}

func isDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

func isSymbolStart(cluster string) bool {
	if cluster == "_" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsLetter(r)
}

func isSymbolContinue(cluster string) bool {
	return isSymbolStart(cluster) || isDigit(cluster)
}

// isNumberContinue accepts everything that can appear inside a numeric
// lexeme: digits of any base, the fractional dot, and width suffix letters.
// Splitting the lexeme into base prefix, digits, and suffix is deferred to
// parsing.
func isNumberContinue(cluster string) bool {
	return isDigit(cluster) || cluster == "." || isSymbolStart(cluster)
}

// Next scans one token. It returns false when the input is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	for {
		if l.cluster == "" {
			return token.Token{}, false
		}
		if isWhitespace(l.cluster) {
			l.advance()
			continue
		}

		l.begin()

		if isDigit(l.cluster) {
			return l.scanNumber(), true
		}
		if isSymbolStart(l.cluster) {
			return l.scanSymbol(), true
		}
		if tok, ok := l.scanOperator(); ok {
			return tok, true
		}

		// Unrecognized cluster: report it, skip it, and keep going.
		l.advance()
		l.messages.Error(l.currentRange(), diagnostics.ErrL0001, "unexpected character %q", l.currentValue())
	}
}

func (l *Lexer) scanNumber() token.Token {
	for isNumberContinue(l.cluster) {
		l.advance()
	}
	return l.emit(token.LiteralNumber)
}

func (l *Lexer) scanSymbol() token.Token {
	for l.cluster != "" && isSymbolContinue(l.cluster) {
		l.advance()
	}
	return l.emit(token.LookupIdent(l.currentValue()))
}

// scanOperator consumes one operator or punctuation token with maximal munch.
func (l *Lexer) scanOperator() (token.Token, bool) {
	var kind *token.Kind

	switch l.cluster {
	case "(":
		l.advance()
		kind = token.LParen
	case ")":
		l.advance()
		kind = token.RParen
	case "{":
		l.advance()
		kind = token.LBrace
	case "}":
		l.advance()
		kind = token.RBrace
	case ",":
		l.advance()
		kind = token.Comma
	case ";":
		l.advance()
		kind = token.Semicolon
	case ":":
		l.advance()
		kind = token.Colon
	case ".":
		l.advance()
		kind = token.Dot
	case "=":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.Eq
		} else {
			kind = token.Assign
		}
	case "+":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.AddAssign
		} else {
			kind = token.Add
		}
	case "-":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.SubAssign
		case ">":
			l.advance()
			kind = token.RArrow
		default:
			kind = token.Sub
		}
	case "*":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.MulAssign
		case "*":
			l.advance()
			if l.cluster == "=" {
				l.advance()
				kind = token.ExpAssign
			} else {
				kind = token.Exp
			}
		default:
			kind = token.Mul
		}
	case "/":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.DivAssign
		} else {
			kind = token.Div
		}
	case "%":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.ModAssign
		} else {
			kind = token.Mod
		}
	case "&":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.BitAndAssign
		case "&":
			l.advance()
			kind = token.BoolAnd
		default:
			kind = token.BitAnd
		}
	case "|":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.BitOrAssign
		case "|":
			l.advance()
			kind = token.BoolOr
		default:
			kind = token.BitOr
		}
	case "^":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.BitXorAssign
		} else {
			kind = token.BitXor
		}
	case "~":
		l.advance()
		kind = token.BitNot
	case "!":
		l.advance()
		if l.cluster == "=" {
			l.advance()
			kind = token.Ne
		} else {
			kind = token.BoolNot
		}
	case "<":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.Le
		case "<":
			l.advance()
			if l.cluster == "=" {
				l.advance()
				kind = token.BitShlAssign
			} else {
				kind = token.BitShl
			}
		default:
			kind = token.Lt
		}
	case ">":
		l.advance()
		switch l.cluster {
		case "=":
			l.advance()
			kind = token.Ge
		case ">":
			l.advance()
			if l.cluster == "=" {
				l.advance()
				kind = token.BitShrAssign
			} else {
				kind = token.BitShr
			}
		default:
			kind = token.Gt
		}
	default:
		return token.Token{}, false
	}

	return l.emit(kind), true
}
