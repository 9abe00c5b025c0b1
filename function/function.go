/*
File    : go-fresh/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the callable values of the Fresh language:
// user-defined functions (which capture their defining context for
// lexical scoping) and builtin functions (which are just names resolved
// against the std registry at call time). Both satisfy
// objects.FreshObject.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/position"
	"github.com/akashmaji946/go-fresh/scope"
)

// AnonymousName is what nameless functions display in tracebacks and
// arity errors.
const AnonymousName = "<anonymous>"

// Function represents a user-defined function value.
//
// Fields:
//   - Name: The declared name, or "" for anonymous functions
//   - ArgNames: Parameter names, bound positionally at call time
//   - Body: The body AST (an expression for the arrow form, a statement
//     sequence for the block form)
//   - AutoReturn: true for the arrow form, whose body value becomes the
//     call result without an explicit return
//   - DefCtx: The context that was active when the function was
//     constructed. Each call's scope chains to its scope, which is what
//     gives the language lexical (not dynamic) scoping. Held by reference: a
//     closure observes later changes to its defining scope.
//   - PosStart, PosEnd: Where the definition appeared, for diagnostics
type Function struct {
	Name       string
	ArgNames   []string
	Body       parser.Node
	AutoReturn bool
	DefCtx     *scope.Context
	PosStart   *position.Position
	PosEnd     *position.Position
}

// DisplayName returns the name shown in tracebacks and error messages.
func (f *Function) DisplayName() string {
	if f.Name == "" {
		return AnonymousName
	}
	return f.Name
}

// GetType returns the type identifier for user functions.
func (f *Function) GetType() objects.FreshType {
	return objects.FunctionType
}

// ToString returns "<function name>", the language's rendering of a
// function value.
func (f *Function) ToString() string {
	return fmt.Sprintf("<function %s>", f.DisplayName())
}

// ToObject returns a detailed representation including the parameters.
func (f *Function) ToObject() string {
	return fmt.Sprintf("<function[%s(%s)]>", f.DisplayName(), strings.Join(f.ArgNames, ", "))
}

// IsTrue always reports true: function values are truthy.
func (f *Function) IsTrue() bool {
	return true
}

// Copy returns a value sharing the body and defining context but with
// its own identity, so call sites can reposition it without disturbing
// the binding in the scope.
func (f *Function) Copy() *Function {
	cp := *f
	return &cp
}

// BuiltinFunction represents one of the interpreter-provided functions.
// Only the name is stored; the std registry supplies the parameter
// list and the behavior when the evaluator dispatches the call.
type BuiltinFunction struct {
	Name     string
	PosStart *position.Position
	PosEnd   *position.Position
}

// NewBuiltin creates the value bound into the global scope for a
// registered builtin.
func NewBuiltin(name string) *BuiltinFunction {
	return &BuiltinFunction{Name: name}
}

// GetType returns the type identifier for builtin functions.
func (b *BuiltinFunction) GetType() objects.FreshType {
	return objects.BuiltinType
}

// ToString returns "<builtinfunction name>".
func (b *BuiltinFunction) ToString() string {
	return fmt.Sprintf("<builtinfunction %s>", b.Name)
}

// ToObject returns the same rendering; builtins carry no more detail.
func (b *BuiltinFunction) ToObject() string {
	return b.ToString()
}

// IsTrue always reports true: function values are truthy.
func (b *BuiltinFunction) IsTrue() bool {
	return true
}

// Copy returns an independent value for call-site repositioning.
func (b *BuiltinFunction) Copy() *BuiltinFunction {
	cp := *b
	return &cp
}
