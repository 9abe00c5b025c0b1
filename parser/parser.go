/*
File    : go-fresh/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Fresh
programming language.

The parser converts the lexer's token vector into an Abstract Syntax
Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers, assignment)
- Control flow (if/elif/else, for, while) in block and inline forms
- Functions (named, anonymous, arrow and block bodies) and calls
- List literals and the '?' indexing operator
- Operator precedence and associativity (right-associative '^')

The grammar is parsed by explicit precedence climbing: each precedence
level is its own method, from statements down to atoms. Statement
sequences are parsed speculatively: after at least one NEWLINE the
parser attempts another statement and, if the attempt fails, rewinds
the token cursor by the number of tokens the attempt consumed. The
ParseResult carrier keeps that count.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
)

// Parser represents the parser state: the token vector and a cursor
// into it. The cursor can move backwards (reverse) to undo speculative
// parses; tokens are never re-lexed.
type Parser struct {
	Tokens     []lexer.Token // The full token vector, ending in EOF
	TokenIndex int           // Index of the current token
	Current    lexer.Token   // The token under the cursor
}

// NewParser creates a parser over a token vector.
// The vector must end with an EOF token (the lexer guarantees this).
func NewParser(tokens []lexer.Token) *Parser {
	par := &Parser{
		Tokens:     tokens,
		TokenIndex: -1,
	}
	par.advance()
	return par
}

// advance moves the cursor one token forward.
func (par *Parser) advance() lexer.Token {
	par.TokenIndex++
	par.updateCurrent()
	return par.Current
}

// reverse moves the cursor back by amount tokens, undoing a failed
// speculative parse.
func (par *Parser) reverse(amount int) lexer.Token {
	par.TokenIndex -= amount
	par.updateCurrent()
	return par.Current
}

// updateCurrent refreshes Current after a cursor move. Out-of-range
// indices leave Current untouched; the EOF sentinel keeps a well-formed
// parse from ever running past the end.
func (par *Parser) updateCurrent() {
	if par.TokenIndex >= 0 && par.TokenIndex < len(par.Tokens) {
		par.Current = par.Tokens[par.TokenIndex]
	}
}

// Parse parses the whole token vector into a single root node
// (a ListNode holding the top-level statements). Anything left over
// before EOF is an InvalidSyntaxError.
func (par *Parser) Parse() *ParseResult {
	res := par.statements()
	if res.Err == nil && par.Current.Type != lexer.EOF_TYPE {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			errors.ExpectedExpression,
		))
	}
	return res
}

// statements parses a newline-separated statement sequence, used at
// the program top level and inside block bodies.
//
// The sequence grammar is greedy but tolerant: after at least one
// NEWLINE it speculatively tries another statement; when the attempt
// fails the cursor is rewound and the sequence ends, leaving the
// unconsumed tokens for the enclosing construct (e.g. the 'end' or
// 'else' keyword of a block).
func (par *Parser) statements() *ParseResult {
	res := NewParseResult()
	statements := make([]Node, 0)
	posStart := par.Current.PosStart.Copy()

	for par.Current.Type == lexer.NEWLINE_TYPE {
		res.RegisterAdvancement()
		par.advance()
	}

	statement := res.Register(par.statement())
	if res.Err != nil {
		return res
	}
	statements = append(statements, statement)

	moreStatements := true

	for {
		newlineCount := 0
		for par.Current.Type == lexer.NEWLINE_TYPE {
			res.RegisterAdvancement()
			par.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			moreStatements = false
		}

		if !moreStatements {
			break
		}

		statement := res.TryRegister(par.statement())
		if statement == nil {
			par.reverse(res.ToReverseCount)
			moreStatements = false
			continue
		}
		statements = append(statements, statement)
	}

	return res.Success(&ListNode{
		Elements: statements,
		StartPos: posStart,
		EndPos:   par.Current.PosEnd.Copy(),
	})
}

// statement parses one statement: a return (with optional value on the
// same line), continue, break, or an expression.
func (par *Parser) statement() *ParseResult {
	res := NewParseResult()
	posStart := par.Current.PosStart.Copy()

	if par.Current.Matches(lexer.KEYWORD_ID, "return") {
		res.RegisterAdvancement()
		par.advance()

		// The return value is optional; a failed attempt is rewound so
		// `return` on its own line returns null.
		expression := res.TryRegister(par.expression())
		if expression == nil {
			par.reverse(res.ToReverseCount)
		}
		return res.Success(&ReturnNode{
			ValueNode: expression,
			StartPos:  posStart,
			EndPos:    par.Current.PosEnd.Copy(),
		})
	}

	if par.Current.Matches(lexer.KEYWORD_ID, "continue") {
		res.RegisterAdvancement()
		par.advance()
		return res.Success(&ContinueNode{StartPos: posStart, EndPos: par.Current.PosEnd.Copy()})
	}

	if par.Current.Matches(lexer.KEYWORD_ID, "break") {
		res.RegisterAdvancement()
		par.advance()
		return res.Success(&BreakNode{StartPos: posStart, EndPos: par.Current.PosEnd.Copy()})
	}

	expression := res.Register(par.expression())
	if res.Err != nil {
		return res
	}
	return res.Success(expression)
}

// expression parses an assignment (`set NAME = expr`) or an and/or
// chain of comparisons.
func (par *Parser) expression() *ParseResult {
	res := NewParseResult()

	if par.Current.Matches(lexer.KEYWORD_ID, "set") {
		res.RegisterAdvancement()
		par.advance()

		if par.Current.Type != lexer.IDENTIFIER_ID {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected identifier",
			))
		}
		identifier := par.Current
		res.RegisterAdvancement()
		par.advance()

		if par.Current.Type != lexer.EQUALS_OP {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected '='",
			))
		}

		res.RegisterAdvancement()
		par.advance()
		expression := res.Register(par.expression())
		if res.Err != nil {
			return res
		}
		return res.Success(&VariableAssignNode{NameToken: identifier, ValueNode: expression})
	}

	node := res.Register(par.binaryOperation(par.comparisonExpression, []opSpec{
		{lexer.KEYWORD_ID, "and"},
		{lexer.KEYWORD_ID, "or"},
	}, nil))
	if res.Err != nil {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			errors.ExpectedStatement,
		))
	}

	return res.Success(node)
}

// opSpec identifies a binary operator for binaryOperation: a token
// type, plus a literal for keyword-shaped operators (and/or). An empty
// literal matches any token of the type.
type opSpec struct {
	Type    lexer.TokenType
	Literal string
}

// matches reports whether the token is this operator.
func (spec opSpec) matches(tok lexer.Token) bool {
	if spec.Literal == "" {
		return tok.Type == spec.Type
	}
	return tok.Matches(spec.Type, spec.Literal)
}

// binaryOperation parses a left-associative chain:
//
//	funcA { op funcB }
//
// funcB defaults to funcA when nil. The one right-associative operator
// of the language ('^') is produced by passing different funcA/funcB
// (see power), which makes the right operand re-admit the full factor
// grammar instead of looping here.
func (par *Parser) binaryOperation(funcA func() *ParseResult, operators []opSpec, funcB func() *ParseResult) *ParseResult {
	if funcB == nil {
		funcB = funcA
	}
	res := NewParseResult()
	left := res.Register(funcA())
	if res.Err != nil {
		return res
	}

	for matchesAny(operators, par.Current) {
		operator := par.Current
		res.RegisterAdvancement()
		par.advance()
		right := res.Register(funcB())
		if res.Err != nil {
			return res
		}
		left = &BinOpNode{Left: left, Operator: operator, Right: right}
	}

	return res.Success(left)
}

// matchesAny reports whether any operator spec matches the token.
func matchesAny(operators []opSpec, tok lexer.Token) bool {
	for _, spec := range operators {
		if spec.matches(tok) {
			return true
		}
	}
	return false
}

// parseNumberValue converts an INT or FLOAT token's text into the
// language's single numeric domain.
func parseNumberValue(tok lexer.Token) (float64, bool) {
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
