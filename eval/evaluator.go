/*
File    : go-fresh/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator of the Fresh
// language. Eval dispatches over the AST node kinds and returns a
// RuntimeResult per step; control flow (return/break/continue) travels
// through those results as explicit signals, never as panics.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/function"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
)

// DefaultMaxDepth is the call-depth bound. Overflow is reported as a
// RuntimeError at the offending call site instead of relying on the
// host stack.
const DefaultMaxDepth = 1000

// Evaluator holds the state for evaluating Fresh AST nodes: the I/O
// endpoints used by builtins, the seedable random source, and the
// call-depth counter.
type Evaluator struct {
	Writer   io.Writer     // Output sink for log/str_input prompts (default: os.Stdout)
	Reader   *bufio.Reader // Input source for *_input builtins (default: os.Stdin)
	Rng      *rand.Rand    // Random source for random_int
	MaxDepth int           // Call-depth bound for user functions

	depth int // Current user-function call depth
}

// NewEvaluator creates an evaluator with default configuration:
// stdout/stdin endpoints, a time-seeded random source and the default
// recursion bound.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		Rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		MaxDepth: DefaultMaxDepth,
	}
}

// SetWriter redirects builtin output, e.g. to a buffer under test.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects builtin input, e.g. to a scripted string.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// SetSeed fixes the random source so a run becomes reproducible.
func (e *Evaluator) SetSeed(seed int64) {
	e.Rng = rand.New(rand.NewSource(seed))
}

// GetInputReader returns the buffered input reader.
// This implements the std.Runtime interface.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// Random returns the evaluator's random source.
// This implements the std.Runtime interface.
func (e *Evaluator) Random() *rand.Rand {
	return e.Rng
}

// Eval evaluates one AST node in the given call frame and returns its
// outcome. This is the single dispatch point of the interpreter.
func (e *Evaluator) Eval(node parser.Node, ctx *scope.Context) *RuntimeResult {
	switch n := node.(type) {
	case *parser.NumberNode:
		return NewRuntimeResult().Success(n.Value.Copy())
	case *parser.StringNode:
		return NewRuntimeResult().Success(objects.NewString(n.Token.Literal))
	case *parser.ListNode:
		return e.evalListNode(n, ctx)
	case *parser.VariableAccessNode:
		return e.evalVariableAccess(n, ctx)
	case *parser.VariableAssignNode:
		return e.evalVariableAssign(n, ctx)
	case *parser.BinOpNode:
		return e.evalBinOp(n, ctx)
	case *parser.UnaryOpNode:
		return e.evalUnaryOp(n, ctx)
	case *parser.IfNode:
		return e.evalIf(n, ctx)
	case *parser.ForNode:
		return e.evalFor(n, ctx)
	case *parser.WhileNode:
		return e.evalWhile(n, ctx)
	case *parser.FuncDefNode:
		return e.evalFuncDef(n, ctx)
	case *parser.CallNode:
		return e.evalCall(n, ctx)
	case *parser.ReturnNode:
		return e.evalReturn(n, ctx)
	case *parser.ContinueNode:
		return NewRuntimeResult().SuccessContinue()
	case *parser.BreakNode:
		return NewRuntimeResult().SuccessBreak()
	default:
		return NewRuntimeResult().Failure(errors.NewRTError(
			node.PosStart(), node.PosEnd(),
			"No evaluation rule for node", ctx))
	}
}

// copyValue returns a value suitable for rebinding to a new position:
// scalars and functions get fresh wrappers, lists stay aliases of the
// same element vector.
func copyValue(value objects.FreshObject) objects.FreshObject {
	switch v := value.(type) {
	case *objects.Number:
		return v.Copy()
	case *objects.String:
		return v.Copy()
	case *objects.List:
		return v.Copy()
	case *function.Function:
		return v.Copy()
	case *function.BuiltinFunction:
		return v.Copy()
	default:
		return value
	}
}
