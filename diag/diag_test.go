/*
File    : enact/diag/diag_test.go
*/
package diag

import (
	"strings"
	"testing"

	"github.com/enact-lang/enact/lexer"
	"github.com/stretchr/testify/assert"
)

func TestContextSourceLine(t *testing.T) {
	ctx := NewContext("imm x = 1\nmut y = 2\n")
	assert.Equal(t, "imm x = 1", ctx.SourceLine(1))
	assert.Equal(t, "mut y = 2", ctx.SourceLine(2))
	assert.Equal(t, "", ctx.SourceLine(5))
}

func TestContextReportAndHadError(t *testing.T) {
	ctx := NewContext("mut x = ")
	assert.False(t, ctx.HadError())

	tok := lexer.NewToken(lexer.EOF, "EOF", 1, 9)
	ctx.Report(SyntaxError, tok, "expected expression")

	assert.True(t, ctx.HadError())
	assert.Len(t, ctx.Diagnostics, 1)
}

func TestFormatCaretUnderline(t *testing.T) {
	ctx := NewContext("imm x = y + ;")
	tok := lexer.NewToken(lexer.SEMICOLON, ";", 1, 13)
	ctx.Report(SyntaxError, tok, "expected expression")

	out := ctx.Format(ctx.Diagnostics[0])
	assert.Contains(t, out, "[line 1] SyntaxError at ';':")
	assert.Contains(t, out, "imm x = y + ;")
	// Four spaces of indent, then 12 more to reach column 13.
	assert.Contains(t, out, "\n"+strings.Repeat(" ", 4+12)+"^\n")
	assert.Contains(t, out, "expected expression")
}

func TestFormatAtEnd(t *testing.T) {
	ctx := NewContext("imm x =")
	tok := lexer.NewToken(lexer.EOF, "EOF", 1, 8)
	ctx.Report(SyntaxError, tok, "expected expression")

	out := ctx.Format(ctx.Diagnostics[0])
	assert.Contains(t, out, "at end: expected expression")
}
