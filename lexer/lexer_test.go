/*
File    : go-fresh/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenShape is the (type, literal) projection compared by the
// MakeTokens tests; spans are covered separately.
type tokenShape struct {
	Type    TokenType
	Literal string
}

// shapesOf projects a token vector for comparison.
func shapesOf(tokens []Token) []tokenShape {
	shapes := make([]tokenShape, 0, len(tokens))
	for _, tok := range tokens {
		shapes = append(shapes, tokenShape{tok.Type, tok.Literal})
	}
	return shapes
}

// TestLexer_MakeTokens verifies the token streams of representative inputs
func TestLexer_MakeTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []tokenShape
	}{
		{
			input: `123 + 2 - 31`,
			expected: []tokenShape{
				{INT_LIT, "123"},
				{PLUS_OP, ""},
				{INT_LIT, "2"},
				{MINUS_OP, ""},
				{INT_LIT, "31"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `3.14 * (1 / 2) ^ 8`,
			expected: []tokenShape{
				{FLOAT_LIT, "3.14"},
				{MUL_OP, ""},
				{LEFT_PAREN, ""},
				{INT_LIT, "1"},
				{DIV_OP, ""},
				{INT_LIT, "2"},
				{RIGHT_PAREN, ""},
				{POW_OP, ""},
				{INT_LIT, "8"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `set answer = 42`,
			expected: []tokenShape{
				{KEYWORD_ID, "set"},
				{IDENTIFIER_ID, "answer"},
				{EQUALS_OP, ""},
				{INT_LIT, "42"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `a == b != c <= d >= e < f > g`,
			expected: []tokenShape{
				{IDENTIFIER_ID, "a"},
				{EQ_OP, ""},
				{IDENTIFIER_ID, "b"},
				{NE_OP, ""},
				{IDENTIFIER_ID, "c"},
				{LE_OP, ""},
				{IDENTIFIER_ID, "d"},
				{GE_OP, ""},
				{IDENTIFIER_ID, "e"},
				{LT_OP, ""},
				{IDENTIFIER_ID, "f"},
				{GT_OP, ""},
				{IDENTIFIER_ID, "g"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `func add(a, b) -> a + b`,
			expected: []tokenShape{
				{KEYWORD_ID, "func"},
				{IDENTIFIER_ID, "add"},
				{LEFT_PAREN, ""},
				{IDENTIFIER_ID, "a"},
				{COMMA_DELIM, ""},
				{IDENTIFIER_ID, "b"},
				{RIGHT_PAREN, ""},
				{ARROW_OP, ""},
				{IDENTIFIER_ID, "a"},
				{PLUS_OP, ""},
				{IDENTIFIER_ID, "b"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `[1, 2] ? 0`,
			expected: []tokenShape{
				{LEFT_BRACKET, ""},
				{INT_LIT, "1"},
				{COMMA_DELIM, ""},
				{INT_LIT, "2"},
				{RIGHT_BRACKET, ""},
				{QUESTION_OP, ""},
				{INT_LIT, "0"},
				{EOF_TYPE, ""},
			},
		},
		{
			// Both newline and semicolon separate statements
			input: "1\n2;3",
			expected: []tokenShape{
				{INT_LIT, "1"},
				{NEWLINE_TYPE, ""},
				{INT_LIT, "2"},
				{NEWLINE_TYPE, ""},
				{INT_LIT, "3"},
				{EOF_TYPE, ""},
			},
		},
		{
			// Line comments vanish entirely; '/' alone is division
			input: "1 // a comment\n2 / 3",
			expected: []tokenShape{
				{INT_LIT, "1"},
				{NEWLINE_TYPE, ""},
				{INT_LIT, "2"},
				{DIV_OP, ""},
				{INT_LIT, "3"},
				{EOF_TYPE, ""},
			},
		},
		{
			input: `__under_score9 while2 while`,
			expected: []tokenShape{
				{IDENTIFIER_ID, "__under_score9"},
				{IDENTIFIER_ID, "while2"},
				{KEYWORD_ID, "while"},
				{EOF_TYPE, ""},
			},
		},
	}

	for _, tt := range tests {
		tokens, err := NewLexer("<test>", tt.input).MakeTokens()
		require.Nil(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, shapesOf(tokens), "input %q", tt.input)
	}
}

// TestLexer_Strings verifies both quote styles and the escape sequences
func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`'world'`, "world"},
		{`"it's"`, "it's"},
		{`'say "hi"'`, `say "hi"`},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		{`'a\'b'`, "a'b"},
	}

	for _, tt := range tests {
		tokens, err := NewLexer("<test>", tt.input).MakeTokens()
		require.Nil(t, err, "input %q", tt.input)
		require.Len(t, tokens, 2, "input %q", tt.input)
		assert.Equal(t, STRING_LIT, tokens[0].Type)
		assert.Equal(t, tt.expected, tokens[0].Literal, "input %q", tt.input)
	}
}

// TestLexer_Errors verifies the three lexical error kinds
func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		input   string
		kind    string
		details string
	}{
		{`@`, errors.IllegalCharacterKind, "'@'"},
		{`1 ! 2`, errors.ExpectedCharKind, "'=' (after '!')"},
		{`"abc`, errors.InvalidSyntaxKind, "Unterminated string"},
		{`"a\qb"`, errors.InvalidSyntaxKind, "Invalid escape character type: 'q'"},
	}

	for _, tt := range tests {
		tokens, err := NewLexer("<test>", tt.input).MakeTokens()
		require.NotNil(t, err, "input %q", tt.input)
		assert.Nil(t, tokens)
		assert.Equal(t, tt.kind, err.Name, "input %q", tt.input)
		assert.Equal(t, tt.details, err.Details, "input %q", tt.input)
	}
}

// TestLexer_NumberEdges verifies dot handling in number literals
func TestLexer_NumberEdges(t *testing.T) {
	// One dot makes a FLOAT literal; no dot makes an INT
	tokens, err := NewLexer("<test>", "1.25").MakeTokens()
	require.Nil(t, err)
	assert.Equal(t, FLOAT_LIT, tokens[0].Type)
	assert.Equal(t, "1.25", tokens[0].Literal)

	tokens, err = NewLexer("<test>", "12").MakeTokens()
	require.Nil(t, err)
	assert.Equal(t, INT_LIT, tokens[0].Type)
}

// TestLexer_Positions verifies line and column tracking across newlines
func TestLexer_Positions(t *testing.T) {
	tokens, err := NewLexer("<test>", "1\nabc").MakeTokens()
	require.Nil(t, err)

	// tokens: INT NEWLINE IDENT EOF
	require.Len(t, tokens, 4)
	assert.Equal(t, 0, tokens[0].PosStart.Line)
	assert.Equal(t, 0, tokens[0].PosStart.Column)
	assert.Equal(t, 1, tokens[2].PosStart.Line)
	assert.Equal(t, 0, tokens[2].PosStart.Column)
	assert.Equal(t, "<test>", tokens[2].PosStart.Filename)
}

// TestToken_Matches verifies keyword discrimination through Matches
func TestToken_Matches(t *testing.T) {
	tokens, err := NewLexer("<test>", "set other").MakeTokens()
	require.Nil(t, err)

	assert.True(t, tokens[0].Matches(KEYWORD_ID, "set"))
	assert.False(t, tokens[0].Matches(KEYWORD_ID, "if"))
	assert.False(t, tokens[1].Matches(KEYWORD_ID, "other"))
}
