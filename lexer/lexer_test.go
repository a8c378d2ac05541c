/*
File    : enact/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testConsumeTokens describes one lexing scenario: a source snippet and
// the sequence of token (type, lexeme) pairs it should produce.
type testConsumeTokens struct {
	Input          string
	ExpectedTokens []Token
}

func tok(tokType TokenType, lexeme string) Token {
	return Token{Type: tokType, Lexeme: lexeme}
}

func runConsumeTokens(t *testing.T, tests []testConsumeTokens) {
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %s", test.Input)
		for i, expected := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, expected.Type, gotTokens[i].Type, "token %d of %q", i, test.Input)
			assert.Equal(t, expected.Lexeme, gotTokens[i].Lexeme, "token %d of %q", i, test.Input)
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				tok(INTEGER, "123"),
				tok(PLUS, "+"),
				tok(INTEGER, "2"),
				tok(INTEGER, "31"),
				tok(MINUS, "-"),
				tok(INTEGER, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				tok(LEFT_BRACE, "{"),
				tok(RIGHT_BRACE, "}"),
				tok(PLUS, "+"),
				tok(LEFT_SQUARE, "["),
				tok(RIGHT_SQUARE, "]"),
				tok(IDENTIFIER, "abc"),
				tok(MINUS, "-"),
				tok(IDENTIFIER, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				tok(LESS_EQUAL, "<="),
				tok(PLUS, "+"),
				tok(INTEGER, "2"),
				tok(LEFT_BRACE, "{"),
				tok(INTEGER, "31"),
				tok(RIGHT_BRACE, "}"),
				tok(MINUS, "-"),
				tok(INTEGER, "12"),
				tok(IDENTIFIER, "__a19bcd_aa90"),
			},
		},
		{
			Input: ` << >> ~ | & ^ => `,
			ExpectedTokens: []Token{
				tok(LESS_LESS, "<<"),
				tok(GREATER_GREATER, ">>"),
				tok(TILDE, "~"),
				tok(PIPE, "|"),
				tok(AMPERSAND, "&"),
				tok(CARAT, "^"),
				tok(EQUAL_GREATER, "=>"),
			},
		},
		{
			Input: ` .. ... . `,
			ExpectedTokens: []Token{
				tok(DOT_DOT, ".."),
				tok(DOT_DOT_DOT, "..."),
				tok(DOT, "."),
			},
		},
	})
}

func TestLexer_StringsAndIdentifiers(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				tok(STRING, "This is a long string  "),
				tok(IDENTIFIER, "nowAnIdentifier_234"),
				tok(STRING, "12"),
			},
		},
		{
			Input: `func struct if else trait abc123 "hello!" __KEY__`,
			ExpectedTokens: []Token{
				tok(FUNC, "func"),
				tok(STRUCT, "struct"),
				tok(IF, "if"),
				tok(ELSE, "else"),
				tok(TRAIT, "trait"),
				tok(IDENTIFIER, "abc123"),
				tok(STRING, "hello!"),
				tok(IDENTIFIER, "__KEY__"),
			},
		},
		{
			Input: `"hello\nworld"`,
			ExpectedTokens: []Token{
				tok(STRING, "hello\nworld"),
			},
		},
		{
			Input: `"tab\there"`,
			ExpectedTokens: []Token{
				tok(STRING, "tab\there"),
			},
		},
		{
			Input: `"escaped\\backslash"`,
			ExpectedTokens: []Token{
				tok(STRING, "escaped\\backslash"),
			},
		},
		{
			Input: `"escaped\"quote"`,
			ExpectedTokens: []Token{
				tok(STRING, "escaped\"quote"),
			},
		},
	})
}

func TestLexer_Interpolation(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: `"sum is \(a + b)!"`,
			ExpectedTokens: []Token{
				tok(INTERPOLATION, "sum is "),
				tok(IDENTIFIER, "a"),
				tok(PLUS, "+"),
				tok(IDENTIFIER, "b"),
				tok(STRING, "!"),
			},
		},
		{
			Input: `"\(x) and \(y)"`,
			ExpectedTokens: []Token{
				tok(INTERPOLATION, ""),
				tok(IDENTIFIER, "x"),
				tok(INTERPOLATION, " and "),
				tok(IDENTIFIER, "y"),
				tok(STRING, ""),
			},
		},
	})
}

func TestLexer_Numbers(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: `1 1.23 true "hello"`,
			ExpectedTokens: []Token{
				tok(INTEGER, "1"),
				tok(FLOAT, "1.23"),
				tok(TRUE, "true"),
				tok(STRING, "hello"),
			},
		},
		{
			Input: `0x16 1e9 1.4e9 12E-2`,
			ExpectedTokens: []Token{
				tok(INTEGER, "0x16"),
				tok(FLOAT, "1e9"),
				tok(FLOAT, "1.4e9"),
				tok(FLOAT, "12E-2"),
			},
		},
		{
			Input: `2..5`,
			ExpectedTokens: []Token{
				tok(INTEGER, "2"),
				tok(DOT_DOT, ".."),
				tok(INTEGER, "5"),
			},
		},
	})
}

func TestLexer_Keywords(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: `imm mut so rc gc enum impl trait for while if else true false when`,
			ExpectedTokens: []Token{
				tok(IMM, "imm"),
				tok(MUT, "mut"),
				tok(SO, "so"),
				tok(RC, "rc"),
				tok(GC, "gc"),
				tok(ENUM, "enum"),
				tok(IMPL, "impl"),
				tok(TRAIT, "trait"),
				tok(FOR, "for"),
				tok(WHILE, "while"),
				tok(IF, "if"),
				tok(ELSE, "else"),
				tok(TRUE, "true"),
				tok(FALSE, "false"),
				tok(WHEN, "when"),
			},
		},
	})
}

func TestLexer_Comments(t *testing.T) {
	runConsumeTokens(t, []testConsumeTokens{
		{
			Input: "1 // a comment\n+ 2",
			ExpectedTokens: []Token{
				tok(INTEGER, "1"),
				tok(PLUS, "+"),
				tok(INTEGER, "2"),
			},
		},
		{
			Input: "1 /* block\ncomment */ + 2",
			ExpectedTokens: []Token{
				tok(INTEGER, "1"),
				tok(PLUS, "+"),
				tok(INTEGER, "2"),
			},
		},
	})
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	got := lex.NextToken()
	assert.Equal(t, ERROR, got.Type)
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	lex := NewLexer("a\nb")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 1, second.Column)
}
