/*
File    : go-fresh/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
)

// functionDefinition parses a function definition:
//
//	func [IDENT] ( [IDENT { ',' IDENT }] ) '->' EXPR
//	func [IDENT] ( [IDENT { ',' IDENT }] ) NEWLINE statements 'end'
//
// The arrow form auto-returns its single body expression; the block
// form returns null unless the body executes an explicit return. An
// anonymous function simply omits the name; the parameter list must
// still be parenthesised.
func (par *Parser) functionDefinition() *ParseResult {
	res := NewParseResult()

	if !par.Current.Matches(lexer.KEYWORD_ID, "func") {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected 'func'",
		))
	}

	res.RegisterAdvancement()
	par.advance()

	var nameToken *lexer.Token
	if par.Current.Type == lexer.IDENTIFIER_ID {
		token := par.Current
		nameToken = &token
		res.RegisterAdvancement()
		par.advance()
		if par.Current.Type != lexer.LEFT_PAREN {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected '('",
			))
		}
	} else {
		if par.Current.Type != lexer.LEFT_PAREN {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected identifier or '('",
			))
		}
	}

	res.RegisterAdvancement()
	par.advance()
	argTokens := make([]lexer.Token, 0)

	if par.Current.Type == lexer.IDENTIFIER_ID {
		argTokens = append(argTokens, par.Current)
		res.RegisterAdvancement()
		par.advance()

		for par.Current.Type == lexer.COMMA_DELIM {
			res.RegisterAdvancement()
			par.advance()

			if par.Current.Type != lexer.IDENTIFIER_ID {
				return res.Failure(errors.NewInvalidSyntaxError(
					par.Current.PosStart, par.Current.PosEnd,
					"Expected identifier",
				))
			}

			argTokens = append(argTokens, par.Current)
			res.RegisterAdvancement()
			par.advance()
		}

		if par.Current.Type != lexer.RIGHT_PAREN {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected ',' or ')'",
			))
		}
	} else {
		if par.Current.Type != lexer.RIGHT_PAREN {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected identifier or ')'",
			))
		}
	}

	res.RegisterAdvancement()
	par.advance()

	if par.Current.Type == lexer.ARROW_OP {
		res.RegisterAdvancement()
		par.advance()

		body := res.Register(par.expression())
		if res.Err != nil {
			return res
		}

		return res.Success(&FuncDefNode{
			NameToken:  nameToken,
			ArgTokens:  argTokens,
			Body:       body,
			AutoReturn: true,
		})
	}

	if par.Current.Type != lexer.NEWLINE_TYPE {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			"Expected '->' or NEWLINE",
		))
	}

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

	return res.Success(&FuncDefNode{
		NameToken:  nameToken,
		ArgTokens:  argTokens,
		Body:       body,
		AutoReturn: false,
	})
}
