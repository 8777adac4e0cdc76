package parsing

import (
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/source"
	"github.com/forge-lang/forge/internal/token"
)

// Context is a cursor into a token vector, shared by every combinator. It
// owns nothing: the token vector and the diagnostic sink belong to the
// caller. A stack of saved cursors supports backtracking at alternation
// boundaries.
type Context struct {
	Messages *diagnostics.Context

	tokens []token.Token
	cursor int
	saved  []int
}

// NewContext builds a parsing context over tokens.
func NewContext(messages *diagnostics.Context, tokens []token.Token) *Context {
	return &Context{Messages: messages, tokens: tokens}
}

// MoreTokens reports whether any tokens remain.
func (c *Context) MoreTokens() bool {
	return c.cursor < len(c.tokens)
}

// Peek returns the next token without consuming it. Calling Peek with no
// tokens left is a caller bug.
func (c *Context) Peek() token.Token {
	return c.tokens[c.cursor]
}

// Next consumes and returns the next token.
func (c *Context) Next() token.Token {
	tok := c.tokens[c.cursor]
	c.cursor++
	return tok
}

// Cursor returns the current position, used to detect whether a rule
// committed past its first token before failing.
func (c *Context) Cursor() int {
	return c.cursor
}

// Save pushes the current cursor so a failed alternative can backtrack.
func (c *Context) Save() {
	c.saved = append(c.saved, c.cursor)
}

// Restore pops the saved cursor and rewinds to it.
func (c *Context) Restore() {
	c.cursor = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// Discard pops the saved cursor without rewinding.
func (c *Context) Discard() {
	c.saved = c.saved[:len(c.saved)-1]
}

// CurrentRange is the range diagnostics should point at: the next token's
// range, or the end of the last token when the stream is exhausted.
func (c *Context) CurrentRange() source.Range {
	if c.MoreTokens() {
		return c.Peek().SourceRange
	}
	if len(c.tokens) > 0 {
		last := c.tokens[len(c.tokens)-1].SourceRange
		return source.NewRange(last.End, last.End)
	}
	return source.Range{}
}
