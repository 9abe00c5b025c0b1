/*
File    : go-fresh/run/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package run is the embedder entry point of the Fresh interpreter.
// It owns the process-wide global scope, which is initialized once
// with the language sentinels (null, true, false) and one binding per
// registered builtin. Repeated Run calls share and mutate that scope,
// which is what keeps REPL state alive between lines.
package run

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/eval"
	"github.com/akashmaji946/go-fresh/function"
	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
	"github.com/akashmaji946/go-fresh/std"
	"github.com/samber/lo"
)

// globalScope is the process-wide root environment.
var globalScope = scope.NewScope(nil)

// evaluator is the process-wide evaluator instance.
var evaluator = eval.NewEvaluator()

func init() {
	globalScope.Bind("null", objects.Null())
	globalScope.Bind("true", objects.True())
	globalScope.Bind("false", objects.False())

	for _, builtin := range std.Builtins {
		globalScope.Bind(builtin.Name, function.NewBuiltin(builtin.Name))
	}
}

// Interpreter exposes the shared evaluator so the embedder can
// configure its endpoints (writer, reader, seed, recursion bound).
func Interpreter() *eval.Evaluator {
	return evaluator
}

// GlobalScope exposes the root environment, mainly for tests.
func GlobalScope() *scope.Scope {
	return globalScope
}

// SetMaxDepth configures the user-function recursion bound.
func SetMaxDepth(depth int) {
	if depth > 0 {
		evaluator.MaxDepth = depth
	}
}

// Run executes one source text against the global scope.
//
// The pipeline is lex -> parse -> evaluate; the first failing stage
// short-circuits. With debug set, the token vector is dumped to the
// evaluator's writer after lexing. The returned value is the List of
// top-level statement values (nil when evaluation ended in an error or
// a stray loop signal).
func Run(filename, text string, debug bool) (objects.FreshObject, *errors.Error) {
	lex := lexer.NewLexer(filename, text)
	tokens, err := lex.MakeTokens()
	if err != nil {
		return nil, err
	}

	if debug {
		rendered := lo.Map(tokens, func(tok lexer.Token, _ int) string { return tok.String() })
		fmt.Fprintf(evaluator.Writer, "[%s]\n", strings.Join(rendered, ", "))
	}

	par := parser.NewParser(tokens)
	ast := par.Parse()
	if ast.Err != nil {
		return nil, ast.Err
	}

	ctx := scope.NewContext("<program>", nil, nil)
	ctx.Symbols = globalScope

	result := evaluator.Eval(ast.Node, ctx)
	return result.Value, result.Err
}
