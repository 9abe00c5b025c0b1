/*
File    : go-fresh/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - builtins.go
// This file defines the registry of builtin functions available in the
// Fresh language. The builtins themselves live in the per-area files of
// this package (io.go, list.go, convert.go, types.go, random.go), each
// of which appends its functions to the global registry in an init()
// function. The run package binds one function.BuiltinFunction value per
// registry entry into the global scope, and the evaluator dispatches
// calls back here.
package std

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/position"
	"github.com/akashmaji946/go-fresh/scope"
)

// Runtime is the evaluator-side interface builtins call back into.
// It supplies line-oriented input and the run's random source (seeded
// by the embedder, so scripted runs are deterministic).
type Runtime interface {
	GetInputReader() *bufio.Reader
	Random() *rand.Rand
}

// CallSite carries the diagnostics context of one builtin invocation:
// the span of the call expression and the call frame, so a failing
// builtin can raise a RuntimeError with a proper traceback.
type CallSite struct {
	PosStart *position.Position
	PosEnd   *position.Position
	Ctx      *scope.Context
}

// Error creates a RuntimeError anchored at this call site.
func (call *CallSite) Error(format string, a ...interface{}) *errors.Error {
	return errors.NewRTError(call.PosStart, call.PosEnd, fmt.Sprintf(format, a...), call.Ctx)
}

// CallbackFunc is the function signature for builtin implementations.
// Arity is checked by the evaluator against the builtin's ArgNames
// before the callback runs, so args always has the declared length.
type CallbackFunc func(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error)

// Builtin represents a builtin function: its name, the parameter names
// used by arity diagnostics, and the implementation callback.
type Builtin struct {
	Name     string       // The name bound in the global scope (e.g. "log")
	ArgNames []string     // Declared parameter names
	Callback CallbackFunc // The function that implements the builtin
}

// Builtins is the global registry. Per-area files append to it during
// package initialization.
var Builtins = make([]*Builtin, 0)

// LookUp finds a registered builtin by name.
func LookUp(name string) (*Builtin, bool) {
	for _, builtin := range Builtins {
		if builtin.Name == name {
			return builtin, true
		}
	}
	return nil, false
}

// Names returns the registered builtin names, for REPL completion.
func Names() []string {
	names := make([]string, 0, len(Builtins))
	for _, builtin := range Builtins {
		names = append(names, builtin.Name)
	}
	return names
}
