/*
File    : go-fresh/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
)

// evalIf evaluates an if/elif/else chain.
//
// Conditions are tried in source order; the first truthy one selects
// its branch. An inline branch yields its body's value, a block branch
// yields null. With no match and no else, the whole expression is
// null.
func (e *Evaluator) evalIf(n *parser.IfNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	for _, branch := range n.Cases {
		conditionValue := res.Register(e.Eval(branch.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}

		if conditionValue.IsTrue() {
			expressionValue := res.Register(e.Eval(branch.Body, ctx))
			if res.ShouldReturn() {
				return res
			}
			if branch.ReturnNull {
				return res.Success(nullValue())
			}
			return res.Success(expressionValue)
		}
	}

	if n.Else != nil {
		elseValue := res.Register(e.Eval(n.Else.Body, ctx))
		if res.ShouldReturn() {
			return res
		}
		if n.Else.ReturnNull {
			return res.Success(nullValue())
		}
		return res.Success(elseValue)
	}

	return res.Success(nullValue())
}
