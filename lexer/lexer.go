/*
File    : go-fresh/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis (tokenization) of Fresh source code.
// It scans through the source text character by character, identifying and
// creating tokens that represent the syntactic elements of the language.
//
// The lexer handles:
//   - Operators (arithmetic, comparison, arrow, indexing)
//   - Keywords (set, if, then, func, end, etc.)
//   - Literals (integers, floats, strings in either quote style)
//   - Identifiers (variable and function names)
//   - Structural symbols (parentheses, square brackets, commas)
//   - Line comments (// ...)
//   - Statement separators: both '\n' and ';' become NEWLINE tokens
//   - Whitespace (space and tab are skipped silently)
package lexer

import (
	"strings"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/position"
)

// Lexer holds the scanning state for one source text.
//
// Fields:
//   - Filename: Name of the source file, recorded into every position
//   - Text: The complete source code
//   - Pos: The live cursor; tokens store copies of it, never the cursor itself
//   - Current: The byte under the cursor, 0 past the end of input
type Lexer struct {
	Filename string             // Source file name (or "<shell>")
	Text     string             // Entire source code in plain text form
	Pos      *position.Position // Current position of the cursor
	Current  byte               // Current character being examined, 0 at EOF
}

// NewLexer creates and initializes a new Lexer for the given source code.
// The cursor starts one step before the first character so that the
// initial Advance lands on index 0.
func NewLexer(filename, text string) *Lexer {
	lex := &Lexer{
		Filename: filename,
		Text:     text,
		Pos:      position.New(-1, 0, -1, filename, text),
	}
	lex.Advance()
	return lex
}

// Advance moves the cursor to the next character in the source.
// The character being left is fed to Position.Advance so newlines bump
// the line counter and reset the column.
func (lex *Lexer) Advance() {
	lex.Pos.Advance(lex.Current)
	if lex.Pos.Index < len(lex.Text) {
		lex.Current = lex.Text[lex.Pos.Index]
	} else {
		lex.Current = 0
	}
}

// atEnd reports whether the cursor has run past the last character.
func (lex *Lexer) atEnd() bool {
	return lex.Pos.Index >= len(lex.Text)
}

// MakeTokens tokenizes the entire source text.
//
// On success it returns the token vector with a trailing EOF sentinel.
// On the first lexical fault it stops and returns exactly one error:
// an IllegalCharacterError for a byte outside the alphabet, an
// ExpectedCharError for '!' without '=', or an InvalidSyntaxError for a
// bad escape or an unterminated string.
func (lex *Lexer) MakeTokens() ([]Token, *errors.Error) {
	tokens := make([]Token, 0)

	for !lex.atEnd() {
		switch {
		case lex.Current == ' ' || lex.Current == '\t':
			lex.Advance()
		case lex.Current == '\n' || lex.Current == ';':
			tokens = append(tokens, NewToken(NEWLINE_TYPE, "", lex.Pos))
			lex.Advance()
		case isDigit(lex.Current):
			tokens = append(tokens, lex.makeNumber())
		case isLetter(lex.Current):
			tokens = append(tokens, lex.makeIdentifier())
		case lex.Current == '"' || lex.Current == '\'':
			token, err := lex.makeString(lex.Current)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		case lex.Current == '+':
			tokens = append(tokens, NewToken(PLUS_OP, "", lex.Pos))
			lex.Advance()
		case lex.Current == '-':
			tokens = append(tokens, lex.makeMinusOrArrow())
		case lex.Current == '*':
			tokens = append(tokens, NewToken(MUL_OP, "", lex.Pos))
			lex.Advance()
		case lex.Current == '/':
			if token, ok := lex.makeCommentOrDiv(); ok {
				tokens = append(tokens, token)
			}
		case lex.Current == '^':
			tokens = append(tokens, NewToken(POW_OP, "", lex.Pos))
			lex.Advance()
		case lex.Current == '(':
			tokens = append(tokens, NewToken(LEFT_PAREN, "", lex.Pos))
			lex.Advance()
		case lex.Current == ')':
			tokens = append(tokens, NewToken(RIGHT_PAREN, "", lex.Pos))
			lex.Advance()
		case lex.Current == '[':
			tokens = append(tokens, NewToken(LEFT_BRACKET, "", lex.Pos))
			lex.Advance()
		case lex.Current == ']':
			tokens = append(tokens, NewToken(RIGHT_BRACKET, "", lex.Pos))
			lex.Advance()
		case lex.Current == '?':
			tokens = append(tokens, NewToken(QUESTION_OP, "", lex.Pos))
			lex.Advance()
		case lex.Current == ',':
			tokens = append(tokens, NewToken(COMMA_DELIM, "", lex.Pos))
			lex.Advance()
		case lex.Current == '!':
			token, err := lex.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		case lex.Current == '=':
			tokens = append(tokens, lex.makeEqualsVariant(EQUALS_OP, EQ_OP))
		case lex.Current == '<':
			tokens = append(tokens, lex.makeEqualsVariant(LT_OP, LE_OP))
		case lex.Current == '>':
			tokens = append(tokens, lex.makeEqualsVariant(GT_OP, GE_OP))
		default:
			posStart := lex.Pos.Copy()
			char := lex.Current
			lex.Advance()
			return nil, errors.NewIllegalCharacterError(posStart, lex.Pos.Copy(), "'"+string(char)+"'")
		}
	}

	tokens = append(tokens, NewToken(EOF_TYPE, "", lex.Pos))
	return tokens, nil
}

// makeNumber scans an INT or FLOAT literal.
// At most one '.' is consumed; a second dot simply ends the token.
func (lex *Lexer) makeNumber() Token {
	var builder strings.Builder
	dotCount := 0
	posStart := lex.Pos.Copy()

	for !lex.atEnd() && (isDigit(lex.Current) || lex.Current == '.') {
		if lex.Current == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	if dotCount == 0 {
		return NewTokenWithSpan(INT_LIT, builder.String(), posStart, lex.Pos)
	}
	return NewTokenWithSpan(FLOAT_LIT, builder.String(), posStart, lex.Pos)
}

// makeIdentifier scans an identifier or keyword lexeme.
func (lex *Lexer) makeIdentifier() Token {
	posStart := lex.Pos.Copy()

	for !lex.atEnd() && isLetterOrDigit(lex.Current) {
		lex.Advance()
	}

	literal := lex.Text[posStart.Index:lex.Pos.Index]
	tokenType := IDENTIFIER_ID
	if KEYWORDS_MAP[literal] {
		tokenType = KEYWORD_ID
	}
	return NewTokenWithSpan(tokenType, literal, posStart, lex.Pos)
}

// makeNotEquals scans '!=', the only token '!' may begin.
func (lex *Lexer) makeNotEquals() (Token, *errors.Error) {
	posStart := lex.Pos.Copy()
	lex.Advance()

	if lex.Current == '=' {
		lex.Advance()
		return NewTokenWithSpan(NE_OP, "", posStart, lex.Pos), nil
	}

	lex.Advance()
	return Token{}, errors.NewExpectedCharError(posStart, lex.Pos.Copy(), "(after '!')", "=")
}

// makeEqualsVariant scans one of '=', '<', '>' and upgrades it to the
// two-character …EQUALS form when the next character is '='.
func (lex *Lexer) makeEqualsVariant(plain, withEquals TokenType) Token {
	tokenType := plain
	posStart := lex.Pos.Copy()
	lex.Advance()

	if lex.Current == '=' {
		lex.Advance()
		tokenType = withEquals
	}

	return NewTokenWithSpan(tokenType, "", posStart, lex.Pos)
}

// makeMinusOrArrow scans '-' or the '->' arrow.
func (lex *Lexer) makeMinusOrArrow() Token {
	tokenType := MINUS_OP
	posStart := lex.Pos.Copy()
	lex.Advance()

	if lex.Current == '>' {
		lex.Advance()
		tokenType = ARROW_OP
	}

	return NewTokenWithSpan(tokenType, "", posStart, lex.Pos)
}

// makeString scans a string literal delimited by quote (either '"' or
// '\''). The five escape sequences \n \t \\ \" \' are decoded; any
// other escape is an InvalidSyntaxError, as is hitting end of input
// before the closing quote.
func (lex *Lexer) makeString(quote byte) (Token, *errors.Error) {
	var builder strings.Builder
	posStart := lex.Pos.Copy()
	lex.Advance()

	for !lex.atEnd() && lex.Current != quote {
		if lex.Current == '\\' {
			lex.Advance()
			if lex.atEnd() {
				break
			}
			decoded, ok := escapeChar(lex.Current)
			if !ok {
				return Token{}, errors.NewInvalidSyntaxError(posStart, lex.Pos.Copy(),
					"Invalid escape character type: '"+string(lex.Current)+"'")
			}
			builder.WriteByte(decoded)
			lex.Advance()
			continue
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	if lex.atEnd() {
		return Token{}, errors.NewInvalidSyntaxError(posStart, lex.Pos.Copy(), "Unterminated string")
	}

	lex.Advance() // consume the closing quote
	return NewTokenWithSpan(STRING_LIT, builder.String(), posStart, lex.Pos), nil
}

// makeCommentOrDiv scans '/'. A second '/' starts a line comment that
// runs to the next newline or semicolon and produces no token at all;
// otherwise a DIV token is produced.
func (lex *Lexer) makeCommentOrDiv() (Token, bool) {
	posStart := lex.Pos.Copy()
	lex.Advance()

	if lex.Current == '/' {
		for !lex.atEnd() && lex.Current != '\n' && lex.Current != ';' {
			lex.Advance()
		}
		return Token{}, false
	}

	return NewTokenWithSpan(DIV_OP, "", posStart, lex.Pos), true
}
