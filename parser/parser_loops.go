/*
File    : go-fresh/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
)

// forExpression parses a counted loop:
//
//	for IDENT = START to END [ step STEP ] then BODY
//
// The end bound is exclusive at evaluation time. A NEWLINE after
// 'then' opens the block form (statements closed by 'end', value
// null); otherwise a single inline statement is the body and the loop
// collects the per-iteration values into a list.
func (par *Parser) forExpression() *ParseResult {
	res := NewParseResult()

	if !par.Current.Matches(lexer.KEYWORD_ID, "for") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'for'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type != lexer.IDENTIFIER_ID {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected IDENTIFIER",
		))
	}

	variableName := par.Current
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

	initialValue := res.Register(par.expression())
	if res.Err != nil {
		return res
	}

	if !par.Current.Matches(lexer.KEYWORD_ID, "to") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'to'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	endValue := res.Register(par.expression())
	if res.Err != nil {
		return res
	}

	var stepValue Node
	if par.Current.Matches(lexer.KEYWORD_ID, "step") {
		res.RegisterAdvancement()
		par.advance()

		stepValue = res.Register(par.expression())
		if res.Err != nil {
			return res
		}
	}

	if !par.Current.Matches(lexer.KEYWORD_ID, "then") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'then'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.NEWLINE_TYPE {
		res.RegisterAdvancement()
		par.advance()

		body := res.Register(par.statements())
		if res.Err != nil {
			return res
		}

		if !par.Current.Matches(lexer.KEYWORD_ID, "end") {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected 'end'",
			))
		}

		res.RegisterAdvancement()
		par.advance()

		return res.Success(&ForNode{
			VarToken:   variableName,
			StartNode:  initialValue,
			EndNode:    endValue,
			StepNode:   stepValue,
			Body:       body,
			ReturnNull: true,
		})
	}

	body := res.Register(par.statement())
	if res.Err != nil {
		return res
	}

	return res.Success(&ForNode{
		VarToken:   variableName,
		StartNode:  initialValue,
		EndNode:    endValue,
		StepNode:   stepValue,
		Body:       body,
		ReturnNull: false,
	})
}

// whileExpression parses a condition-driven loop:
//
//	while COND then BODY
//
// with the same block/inline body rule as for-loops.
func (par *Parser) whileExpression() *ParseResult {
	res := NewParseResult()

	if !par.Current.Matches(lexer.KEYWORD_ID, "while") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'while'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	condition := res.Register(par.expression())
	if res.Err != nil {
		return res
	}

	if !par.Current.Matches(lexer.KEYWORD_ID, "then") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'then'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.NEWLINE_TYPE {
		res.RegisterAdvancement()
		par.advance()

		body := res.Register(par.statements())
		if res.Err != nil {
			return res
		}

		if !par.Current.Matches(lexer.KEYWORD_ID, "end") {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected 'end'",
			))
		}

		res.RegisterAdvancement()
		par.advance()

		return res.Success(&WhileNode{Condition: condition, Body: body, ReturnNull: true})
	}

	body := res.Register(par.statement())
	if res.Err != nil {
		return res
	}

	return res.Success(&WhileNode{Condition: condition, Body: body, ReturnNull: false})
}
