/*
File    : go-fresh/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/function"
	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
	"github.com/akashmaji946/go-fresh/std"
	"github.com/samber/lo"
)

// evalReturn evaluates a return statement into a pending-return
// signal. A bare `return` returns null.
func (e *Evaluator) evalReturn(n *parser.ReturnNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	var value objects.FreshObject
	if n.ValueNode != nil {
		value = res.Register(e.Eval(n.ValueNode, ctx))
		if res.ShouldReturn() {
			return res
		}
	} else {
		value = nullValue()
	}

	return res.SuccessReturn(value)
}

// evalFuncDef constructs a user function value capturing the current
// context as its defining context. A named definition is also bound in
// the current frame; either way the function value is the expression's
// result.
func (e *Evaluator) evalFuncDef(n *parser.FuncDefNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	name := ""
	if n.NameToken != nil {
		name = n.NameToken.Literal
	}

	fn := &function.Function{
		Name:       name,
		ArgNames:   lo.Map(n.ArgTokens, func(t lexer.Token, _ int) string { return t.Literal }),
		Body:       n.Body,
		AutoReturn: n.AutoReturn,
		DefCtx:     ctx,
		PosStart:   n.PosStart(),
		PosEnd:     n.PosEnd(),
	}

	if n.NameToken != nil {
		ctx.Symbols.Bind(name, fn)
	}

	return res.Success(fn)
}

// evalCall evaluates the callee and the arguments left to right, then
// dispatches to the user-function or builtin machinery. Calling any
// other value kind is an illegal operation.
func (e *Evaluator) evalCall(n *parser.CallNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	calleeValue := res.Register(e.Eval(n.Callee, ctx))
	if res.ShouldReturn() {
		return res
	}

	arguments := make([]objects.FreshObject, 0, len(n.Args))
	for _, argNode := range n.Args {
		argument := res.Register(e.Eval(argNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		arguments = append(arguments, argument)
	}

	switch callee := calleeValue.(type) {
	case *function.Function:
		return e.callFunction(n, callee, arguments, ctx)
	case *function.BuiltinFunction:
		return e.callBuiltin(n, callee, arguments, ctx)
	default:
		return res.Failure(e.illegalOperation(n, ctx))
	}
}

// checkArity verifies the exact argument count of a call, producing
// the language's "expected at most/at least" diagnostics.
func (e *Evaluator) checkArity(n *parser.CallNode, name string, argNames []string, args []objects.FreshObject, ctx *scope.Context) *errors.Error {
	if len(args) > len(argNames) {
		return errors.NewRTError(n.PosStart(), n.PosEnd(),
			fmt.Sprintf("%s expected at most %d arguments, got %d", name, len(argNames), len(args)), ctx)
	}
	if len(args) < len(argNames) {
		return errors.NewRTError(n.PosStart(), n.PosEnd(),
			fmt.Sprintf("%s expected at least %d arguments, got %d", name, len(argNames), len(args)), ctx)
	}
	return nil
}

// callFunction executes a user function.
//
// A fresh frame is created: its environment chains to the function's
// defining context's environment (lexical scoping), while the frame
// itself chains to the calling context so tracebacks follow the call
// stack. Parameters are bound positionally after an exact arity check.
//
// The body's Return signal is consumed here. If the body finished
// without one, the arrow form yields its body value and the block form
// yields null. Call depth is bounded; overflow reports "Max recursion
// depth exceeded" at the call site.
func (e *Evaluator) callFunction(n *parser.CallNode, fn *function.Function, args []objects.FreshObject, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.MaxDepth {
		return res.Failure(errors.NewRTError(
			n.PosStart(), n.PosEnd(),
			"Max recursion depth exceeded", ctx))
	}

	if err := e.checkArity(n, fn.DisplayName(), fn.ArgNames, args, ctx); err != nil {
		return res.Failure(err)
	}

	executeCtx := scope.NewContext(fn.DisplayName(), ctx, n.PosStart())
	executeCtx.Symbols = scope.NewScope(fn.DefCtx.Symbols)

	for i, argName := range fn.ArgNames {
		executeCtx.Symbols.Bind(argName, args[i])
	}

	value := res.Register(e.Eval(fn.Body, executeCtx))
	if res.ShouldReturn() && res.FuncReturnValue == nil {
		return res
	}

	var returnValue objects.FreshObject
	switch {
	case fn.AutoReturn && value != nil:
		returnValue = value
	case res.FuncReturnValue != nil:
		returnValue = res.FuncReturnValue
	default:
		returnValue = nullValue()
	}

	return res.Success(returnValue)
}

// callBuiltin dispatches a call to the std registry.
func (e *Evaluator) callBuiltin(n *parser.CallNode, fn *function.BuiltinFunction, args []objects.FreshObject, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	builtin, ok := std.LookUp(fn.Name)
	if !ok {
		return res.Failure(errors.NewRTError(
			n.PosStart(), n.PosEnd(),
			fmt.Sprintf("No builtin named %s is registered", fn.Name), ctx))
	}

	if err := e.checkArity(n, builtin.Name, builtin.ArgNames, args, ctx); err != nil {
		return res.Failure(err)
	}

	callSite := &std.CallSite{PosStart: n.PosStart(), PosEnd: n.PosEnd(), Ctx: ctx}
	value, err := builtin.Callback(e, e.Writer, callSite, args...)
	if err != nil {
		return res.Failure(err)
	}
	return res.Success(value)
}
