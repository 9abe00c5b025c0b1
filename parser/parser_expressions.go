/*
File    : go-fresh/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
)

// comparisonExpression parses `not` chains and relational operators:
//
//	comparison := 'not' comparison
//	            ; arith { ('=='|'!='|'<'|'<='|'>'|'>=') arith }
func (par *Parser) comparisonExpression() *ParseResult {
	res := NewParseResult()

	if par.Current.Matches(lexer.KEYWORD_ID, "not") {
		operator := par.Current
		res.RegisterAdvancement()
		par.advance()

		node := res.Register(par.comparisonExpression())
		if res.Err != nil {
			return res
		}
		return res.Success(&UnaryOpNode{Operator: operator, Operand: node})
	}

	node := res.Register(par.binaryOperation(par.arithmeticExpression, []opSpec{
		{Type: lexer.EQ_OP},
		{Type: lexer.LT_OP},
		{Type: lexer.LE_OP},
		{Type: lexer.GT_OP},
		{Type: lexer.GE_OP},
		{Type: lexer.NE_OP},
	}, nil))

	if res.Err != nil {
		return res.Failure(errors.NewInvalidSyntaxError(
			par.Current.PosStart, par.Current.PosEnd,
			errors.ExpectedExpression,
		))
	}

	return res.Success(node)
}

// arithmeticExpression parses additive chains: term { ('+'|'-') term }
func (par *Parser) arithmeticExpression() *ParseResult {
	return par.binaryOperation(par.term, []opSpec{
		{Type: lexer.PLUS_OP},
		{Type: lexer.MINUS_OP},
	}, nil)
}

// term parses multiplicative chains, which also host the '?' indexing
// operator: factor { ('*'|'/'|'?') factor }
func (par *Parser) term() *ParseResult {
	return par.binaryOperation(par.factor, []opSpec{
		{Type: lexer.MUL_OP},
		{Type: lexer.DIV_OP},
		{Type: lexer.QUESTION_OP},
	}, nil)
}

// factor parses unary signs: ('+'|'-') factor ; power
func (par *Parser) factor() *ParseResult {
	res := NewParseResult()
	token := par.Current

	if token.Type == lexer.PLUS_OP || token.Type == lexer.MINUS_OP {
		res.RegisterAdvancement()
		par.advance()
		factor := res.Register(par.factor())
		if res.Err != nil {
			return res
		}
		return res.Success(&UnaryOpNode{Operator: token, Operand: factor})
	}

	return par.power()
}

// power parses exponentiation: call { '^' factor }.
// The right operand is factor, not call, which makes '^' right
// associative and lets it bind unary signs: 2 ^ 3 ^ 2 == 2 ^ (3 ^ 2).
func (par *Parser) power() *ParseResult {
	return par.binaryOperation(par.call, []opSpec{
		{Type: lexer.POW_OP},
	}, par.factor)
}

// call parses an atom optionally followed by a parenthesised argument
// list: atom [ '(' [ expression { ',' expression } ] ')' ]
func (par *Parser) call() *ParseResult {
	res := NewParseResult()
	atom := res.Register(par.atom())
	if res.Err != nil {
		return res
	}

	if par.Current.Type == lexer.LEFT_PAREN {
		res.RegisterAdvancement()
		par.advance()

		arguments := make([]Node, 0)
		if par.Current.Type == lexer.RIGHT_PAREN {
			res.RegisterAdvancement()
			par.advance()
		} else {
			arguments = append(arguments, res.Register(par.expression()))
			if res.Err != nil {
				return res.Failure(errors.NewInvalidSyntaxError(
					par.Current.PosStart, par.Current.PosEnd,
					errors.ExpectedExpression,
				))
			}

			for par.Current.Type == lexer.COMMA_DELIM {
				res.RegisterAdvancement()
				par.advance()

				arguments = append(arguments, res.Register(par.expression()))
				if res.Err != nil {
					return res
				}
			}

			if par.Current.Type != lexer.RIGHT_PAREN {
				return res.Failure(errors.NewInvalidSyntaxError(
					par.Current.PosStart, par.Current.PosEnd,
					"Expected ',' or ')'",
				))
			}

			res.RegisterAdvancement()
			par.advance()
		}
		return res.Success(&CallNode{Callee: atom, Args: arguments})
	}
	return res.Success(atom)
}

// atom parses the leaves of the expression grammar: literals,
// identifiers, parenthesised expressions, and the keyword-introduced
// forms (if/for/while/func) plus list literals.
func (par *Parser) atom() *ParseResult {
	res := NewParseResult()
	token := par.Current

	switch {
	case token.Type == lexer.INT_LIT || token.Type == lexer.FLOAT_LIT:
		res.RegisterAdvancement()
		par.advance()
		value, ok := parseNumberValue(token)
		if !ok {
			return res.Failure(errors.NewInvalidSyntaxError(
				token.PosStart, token.PosEnd,
				"Invalid number literal",
			))
		}
		return res.Success(&NumberNode{Token: token, Value: objects.NewNumber(value)})

	case token.Type == lexer.STRING_LIT:
		res.RegisterAdvancement()
		par.advance()
		return res.Success(&StringNode{Token: token})

	case token.Type == lexer.IDENTIFIER_ID:
		res.RegisterAdvancement()
		par.advance()
		return res.Success(&VariableAccessNode{NameToken: token})

	case token.Type == lexer.LEFT_PAREN:
		res.RegisterAdvancement()
		par.advance()
		expression := res.Register(par.expression())
		if res.Err != nil {
			return res
		}
		if par.Current.Type != lexer.RIGHT_PAREN {
			return res.Failure(errors.NewInvalidSyntaxError(
				par.Current.PosStart, par.Current.PosEnd,
				"Expected ')'",
			))
		}
		res.RegisterAdvancement()
		par.advance()
		return res.Success(expression)

	case token.Matches(lexer.KEYWORD_ID, "if"):
		ifExpression := res.Register(par.ifExpression())
		if res.Err != nil {
			return res
		}
		return res.Success(ifExpression)

	case token.Matches(lexer.KEYWORD_ID, "for"):
		forExpression := res.Register(par.forExpression())
		if res.Err != nil {
			return res
		}
		return res.Success(forExpression)

	case token.Matches(lexer.KEYWORD_ID, "while"):
		whileExpression := res.Register(par.whileExpression())
		if res.Err != nil {
			return res
		}
		return res.Success(whileExpression)

	case token.Matches(lexer.KEYWORD_ID, "func"):
		functionDefinition := res.Register(par.functionDefinition())
		if res.Err != nil {
			return res
		}
		return res.Success(functionDefinition)

	case token.Type == lexer.LEFT_BRACKET:
		listExpression := res.Register(par.listExpression())
		if res.Err != nil {
			return res
		}
		return res.Success(listExpression)
	}

	return res.Failure(errors.NewInvalidSyntaxError(token.PosStart, token.PosEnd, errors.ExpectedExpression))
}
