/*
File    : go-fresh/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
)

// nullValue returns the language's null sentinel, Number(0).
func nullValue() objects.FreshObject {
	return objects.Null()
}

// evalFor evaluates a counted loop.
//
// Start, end and step are evaluated once, up front. The end bound is
// exclusive: a non-negative step iterates while i < end, a negative
// one while i > end. Each iteration binds the loop variable in the
// current frame before running the body.
//
// A Continue signal skips the iteration's value; a Break ends the loop
// normally. Block form yields null, inline form yields the List of
// per-iteration body values.
func (e *Evaluator) evalFor(n *parser.ForNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()
	elements := make([]objects.FreshObject, 0)

	startValue := res.Register(e.Eval(n.StartNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	start, ok := startValue.(*objects.Number)
	if !ok {
		return res.Failure(e.illegalOperation(n, ctx))
	}

	endValue := res.Register(e.Eval(n.EndNode, ctx))
	if res.ShouldReturn() {
		return res
	}
	end, ok := endValue.(*objects.Number)
	if !ok {
		return res.Failure(e.illegalOperation(n, ctx))
	}

	step := objects.NewNumber(1)
	if n.StepNode != nil {
		stepValue := res.Register(e.Eval(n.StepNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		step, ok = stepValue.(*objects.Number)
		if !ok {
			return res.Failure(e.illegalOperation(n, ctx))
		}
	}

	i := start.Value

	condition := func() bool { return i < end.Value }
	if step.Value < 0 {
		condition = func() bool { return i > end.Value }
	}

	for condition() {
		ctx.Symbols.Bind(n.VarToken.Literal, objects.NewNumber(i))
		i += step.Value

		value := res.Register(e.Eval(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopContinue && !res.LoopBreak {
			return res
		}

		if res.LoopContinue {
			continue
		}
		if res.LoopBreak {
			break
		}

		elements = append(elements, value)
	}

	if n.ReturnNull {
		return res.Success(nullValue())
	}
	return res.Success(objects.NewList(elements))
}

// evalWhile evaluates a condition-driven loop.
//
// The condition is re-evaluated before every iteration. Continue and
// Break behave as in for-loops. Block form yields null; the inline
// form yields an empty List (body values are not collected).
func (e *Evaluator) evalWhile(n *parser.WhileNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()
	elements := make([]objects.FreshObject, 0)

	for {
		conditionValue := res.Register(e.Eval(n.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}

		if !conditionValue.IsTrue() {
			break
		}

		res.Register(e.Eval(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopContinue && !res.LoopBreak {
			return res
		}

		if res.LoopContinue {
			continue
		}
		if res.LoopBreak {
			break
		}
	}

	if n.ReturnNull {
		return res.Success(nullValue())
	}
	return res.Success(objects.NewList(elements))
}
