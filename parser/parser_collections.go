/*
File    : go-fresh/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
)

// listExpression parses a list literal:
//
//	'[' [ expression { ',' expression } ] ']'
func (par *Parser) listExpression() *ParseResult {
	res := NewParseResult()
	elementNodes := make([]Node, 0)
	posStart := par.Current.PosStart.Copy()

	if par.Current.Type != lexer.LEFT_BRACKET {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected '['",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.RIGHT_BRACKET {
		res.RegisterAdvancement()
		par.advance()
		return res.Success(&ListNode{
			Elements: elementNodes,
			StartPos: posStart,
			EndPos:   par.Current.PosEnd.Copy(),
		})
	}

	elementNodes = append(elementNodes, res.Register(par.expression()))
	if res.Err != nil {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			errors.ExpectedExpression,
		))
	}

	for par.Current.Type == lexer.COMMA_DELIM {
		res.RegisterAdvancement()
		par.advance()

		elementNodes = append(elementNodes, res.Register(par.expression()))
		if res.Err != nil {
			return res
		}
	}

	if par.Current.Type != lexer.RIGHT_BRACKET {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected ',' or ']'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	return res.Success(&ListNode{
		Elements: elementNodes,
		StartPos: posStart,
		EndPos:   par.Current.PosEnd.Copy(),
	})
}
