/*
File    : go-fresh/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/go-fresh/position"
)

// TokenType represents the type of a lexical token in the Fresh language.
// It is defined as a string to allow for easy comparison and debugging.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Fresh language.
// Keywords are not individual token types: every reserved word is lexed
// as a single KEYWORD_ID token whose Literal carries the word itself.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// NEWLINE_TYPE is emitted for both '\n' and ';' and separates statements
	NEWLINE_TYPE TokenType = "NEWLINE"

	// Literals
	INT_LIT    TokenType = "INT"    // Integer literal (e.g., 42)
	FLOAT_LIT  TokenType = "FLOAT"  // Floating-point literal (e.g., 3.14)
	STRING_LIT TokenType = "STRING" // String literal (e.g., "hello", 'hi')

	// Identifiers and keywords
	IDENTIFIER_ID TokenType = "IDENTIFIER" // User-defined name
	KEYWORD_ID    TokenType = "KEYWORD"    // Reserved word; Literal holds which one

	// Arithmetic Operators
	PLUS_OP  TokenType = "PLUS"  // Addition operator
	MINUS_OP TokenType = "MINUS" // Subtraction operator
	MUL_OP   TokenType = "MUL"   // Multiplication operator
	DIV_OP   TokenType = "DIV"   // Division operator
	POW_OP   TokenType = "POW"   // Exponentiation operator

	// Comparison Operators
	EQUALS_OP TokenType = "EQUALS"        // Assignment operator '='
	EQ_OP     TokenType = "DOUBLEEQUALS"  // Equality comparison '=='
	NE_OP     TokenType = "NOTEQUALS"     // Not equal comparison '!='
	LT_OP     TokenType = "LESS"          // Less than '<'
	LE_OP     TokenType = "LESSEQUALS"    // Less than or equal '<='
	GT_OP     TokenType = "GREATER"       // Greater than '>'
	GE_OP     TokenType = "GREATEREQUALS" // Greater than or equal '>='

	// Structural Tokens
	LEFT_PAREN    TokenType = "LPAREN"         // '(' - calls, grouping
	RIGHT_PAREN   TokenType = "RPAREN"         // ')'
	LEFT_BRACKET  TokenType = "LSQUAREBRACKET" // '[' - list literals
	RIGHT_BRACKET TokenType = "RSQUAREBRACKET" // ']'

	// Delimiters and special operators
	COMMA_DELIM TokenType = "COMMA"        // ',' - separates arguments and elements
	ARROW_OP    TokenType = "ARROW"        // '->' - inline function body
	QUESTION_OP TokenType = "QUESTIONMARK" // '?' - list indexing operator
)

// KEYWORDS_MAP is the set of reserved words of the Fresh language.
// During lexical analysis an identifier-shaped lexeme found in this map
// is emitted as KEYWORD_ID instead of IDENTIFIER_ID.
var KEYWORDS_MAP = map[string]bool{
	"set":      true, // Variable assignment
	"and":      true, // Logical AND
	"or":       true, // Logical OR
	"not":      true, // Logical NOT
	"if":       true, // Conditional if
	"then":     true, // Introduces if/for/while bodies
	"elif":     true, // Conditional else-if
	"else":     true, // Conditional else
	"for":      true, // For loop
	"to":       true, // For loop end bound
	"step":     true, // For loop step
	"while":    true, // While loop
	"func":     true, // Function definition
	"end":      true, // Terminates block forms
	"return":   true, // Return from function
	"continue": true, // Continue to next iteration
	"break":    true, // Break from loop
}

// Token represents a single lexical token in Fresh source code.
//
// Fields:
//   - Type: The category of the token
//   - Literal: The text payload (number text, string content, identifier
//     or keyword name); empty for purely structural tokens
//   - PosStart, PosEnd: The source span that produced the token
type Token struct {
	Type     TokenType          // The type/category of this token
	Literal  string             // The payload text, if any
	PosStart *position.Position // Start of the producing span (inclusive)
	PosEnd   *position.Position // End of the producing span (exclusive)
}

// NewToken creates a Token for a single-character lexeme at pos.
// The end position is derived by advancing a copy of pos once, so the
// caller can keep scanning without disturbing the recorded span.
func NewToken(tokenType TokenType, literal string, pos *position.Position) Token {
	start := pos.Copy()
	end := pos.Copy()
	end.Advance(0)
	return Token{
		Type:     tokenType,
		Literal:  literal,
		PosStart: start,
		PosEnd:   end,
	}
}

// NewTokenWithSpan creates a Token covering an explicit [start, end) span.
// Used for multi-character lexemes (numbers, identifiers, strings, two
// character operators).
func NewTokenWithSpan(tokenType TokenType, literal string, start, end *position.Position) Token {
	return Token{
		Type:     tokenType,
		Literal:  literal,
		PosStart: start.Copy(),
		PosEnd:   end.Copy(),
	}
}

// Matches reports whether the token has the given type and literal.
// This is how the parser distinguishes individual keywords, which all
// share the KEYWORD_ID token type.
func (tok *Token) Matches(tokenType TokenType, literal string) bool {
	return tok.Type == tokenType && tok.Literal == literal
}

// String renders the token as "TYPE:value", or just "TYPE" when the
// token carries no payload. Used by the --debug token dump.
func (tok Token) String() string {
	if tok.Literal != "" {
		return fmt.Sprintf("%s:%s", tok.Type, tok.Literal)
	}
	return string(tok.Type)
}
