/*
File    : go-fresh/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
)

// ifExpression parses a complete if/elif/else chain into an IfNode.
//
// Each branch obeys the block/inline rule independently: `then`
// followed by a NEWLINE opens a block-form body (a statement sequence,
// value null) which is closed either by 'end' or by the next
// elif/else; `then` followed by anything else takes a single inline
// statement whose value becomes the branch value.
func (par *Parser) ifExpression() *ParseResult {
	res := NewParseResult()
	cases, elseCase := par.ifExpressionCases("if", res)
	if res.Err != nil {
		return res
	}
	return res.Success(&IfNode{Cases: cases, Else: elseCase})
}

// ifExpressionElif parses the elif continuation of a chain.
func (par *Parser) ifExpressionElif(res *ParseResult) ([]IfCase, *ElseCase) {
	return par.ifExpressionCases("elif", res)
}

// ifExpressionElse parses the optional trailing else branch.
// In block form the else body is a statement sequence that must be
// closed by 'end'.
func (par *Parser) ifExpressionElse(res *ParseResult) *ElseCase {
	if !par.Current.Matches(lexer.KEYWORD_ID, "else") {
		return nil
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.NEWLINE_TYPE {
		res.RegisterAdvancement()
		par.advance()

		statements := res.Register(par.statements())
		if res.Err != nil {
			return nil
		}

		if par.Current.Matches(lexer.KEYWORD_ID, "end") {
			res.RegisterAdvancement()
			par.advance()
		} else {
			res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected 'end'",
			))
			return nil
		}
		return &ElseCase{Body: statements, ReturnNull: true}
	}

	expression := res.Register(par.statement())
	if res.Err != nil {
		return nil
	}
	return &ElseCase{Body: expression, ReturnNull: false}
}

// ifExpressionElifOrElse parses whatever follows a branch: an elif
// chain, an else, or nothing.
func (par *Parser) ifExpressionElifOrElse(res *ParseResult) ([]IfCase, *ElseCase) {
	if par.Current.Matches(lexer.KEYWORD_ID, "elif") {
		return par.ifExpressionElif(res)
	}
	elseCase := par.ifExpressionElse(res)
	return nil, elseCase
}

// ifExpressionCases parses one `if`/`elif` branch plus everything that
// follows it. caseKeyword is "if" for the head of the chain and "elif"
// for continuations.
func (par *Parser) ifExpressionCases(caseKeyword string, res *ParseResult) ([]IfCase, *ElseCase) {
	cases := make([]IfCase, 0)

	if !par.Current.Matches(lexer.KEYWORD_ID, caseKeyword) {
		res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected '"+caseKeyword+"'",
		))
		return nil, nil
	}

	res.RegisterAdvancement()
	par.advance()

	condition := res.Register(par.expression())
	if res.Err != nil {
		return nil, nil
	}

	if !par.Current.Matches(lexer.KEYWORD_ID, "then") {
		res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'then'",
		))
		return nil, nil
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.NEWLINE_TYPE {
		// Block form: newline-delimited statements, value null
		res.RegisterAdvancement()
		par.advance()

		statements := res.Register(par.statements())
		if res.Err != nil {
			return nil, nil
		}
		cases = append(cases, IfCase{Condition: condition, Body: statements, ReturnNull: true})

		if par.Current.Matches(lexer.KEYWORD_ID, "end") {
			res.RegisterAdvancement()
			par.advance()
			return cases, nil
		}

		newCases, elseCase := par.ifExpressionElifOrElse(res)
		if res.Err != nil {
			return nil, nil
		}
		cases = append(cases, newCases...)
		return cases, elseCase
	}

	// Inline form: a single statement, whose value is the branch value
	expression := res.Register(par.statement())
	if res.Err != nil {
		return nil, nil
	}
	cases = append(cases, IfCase{Condition: condition, Body: expression, ReturnNull: false})

	newCases, elseCase := par.ifExpressionElifOrElse(res)
	if res.Err != nil {
		return nil, nil
	}
	cases = append(cases, newCases...)
	return cases, elseCase
}
