package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-lang/forge/internal/source"
)

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeveritySuggestion < SeverityNote)
	assert.True(t, SeverityNote < SeverityWarning)
	assert.True(t, SeverityWarning < SeverityError)
	assert.True(t, SeverityError < SeverityInternal)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "suggestion", SeveritySuggestion.String())
	assert.Equal(t, "note", SeverityNote.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "internal", SeverityInternal.String())
}

func TestContextCollects(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, 0, ctx.Len())

	ctx.Warning(source.Range{}, WarnP0004, "literal %q truncated", "300i8")
	ctx.Error(source.Range{}, ErrS0001, "undeclared symbol %q", "x")

	require.Equal(t, 2, ctx.Len())
	messages := ctx.Messages()
	assert.Equal(t, SeverityWarning, messages[0].Severity)
	assert.Contains(t, messages[0].Text, `"300i8"`)
	assert.Equal(t, ErrS0001, messages[1].Code)
}

func TestMaxSeverity(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, SeveritySuggestion, ctx.MaxSeverity())
	assert.False(t, ctx.HasErrors())

	ctx.Note(source.Range{}, "", "just a note")
	assert.Equal(t, SeverityNote, ctx.MaxSeverity())

	ctx.Warning(source.Range{}, "", "a warning")
	assert.Equal(t, SeverityWarning, ctx.MaxSeverity())
	assert.False(t, ctx.HasErrors(), "warnings do not fail the build")

	ctx.Error(source.Range{}, "", "an error")
	assert.Equal(t, SeverityError, ctx.MaxSeverity())
	assert.True(t, ctx.HasErrors())

	ctx.Internal(source.Range{}, "invariant broken")
	assert.Equal(t, SeverityInternal, ctx.MaxSeverity())
	assert.True(t, ctx.HasErrors())
}

func TestCountBySeverity(t *testing.T) {
	ctx := NewContext()
	ctx.Warning(source.Range{}, "", "one")
	ctx.Warning(source.Range{}, "", "two")
	ctx.Error(source.Range{}, "", "three")

	assert.Equal(t, 2, ctx.CountBySeverity(SeverityWarning))
	assert.Equal(t, 1, ctx.CountBySeverity(SeverityError))
	assert.Equal(t, 0, ctx.CountBySeverity(SeverityNote))
}
