/*
File    : go-fresh/eval/result.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
)

// RuntimeResult is the outcome carrier returned by every evaluation
// step. It holds exactly one of:
//   - a value (normal completion),
//   - an error (which unwinds all the way to the embedder),
//   - a control-flow signal: a pending function return value, or a
//     loop continue/break flag.
//
// Signals are not exceptions: every evaluation site Registers its
// sub-outcomes and checks ShouldReturn, so propagation is explicit and
// the consuming construct (function call for Return, loop for
// Break/Continue) can stop it.
type RuntimeResult struct {
	Value           objects.FreshObject // Result value of the evaluated node
	Err             *errors.Error       // Runtime error, if any
	FuncReturnValue objects.FreshObject // Pending value of a `return` statement
	LoopContinue    bool                // A `continue` is unwinding to its loop
	LoopBreak       bool                // A `break` is unwinding to its loop
}

// NewRuntimeResult creates an empty outcome.
func NewRuntimeResult() *RuntimeResult {
	return &RuntimeResult{}
}

// reset clears all fields; each terminal constructor starts from a
// clean slate so stale signals never leak across outcomes.
func (res *RuntimeResult) reset() {
	res.Value = nil
	res.Err = nil
	res.FuncReturnValue = nil
	res.LoopContinue = false
	res.LoopBreak = false
}

// Register absorbs a sub-outcome: its error and signals become this
// result's, and its value is returned for the caller to use. The
// caller must check ShouldReturn immediately after.
func (res *RuntimeResult) Register(sub *RuntimeResult) objects.FreshObject {
	res.Err = sub.Err
	res.FuncReturnValue = sub.FuncReturnValue
	res.LoopContinue = sub.LoopContinue
	res.LoopBreak = sub.LoopBreak
	return sub.Value
}

// ShouldReturn reports whether evaluation must stop unwinding here:
// an error or any control-flow signal is pending.
func (res *RuntimeResult) ShouldReturn() bool {
	return res.Err != nil || res.FuncReturnValue != nil || res.LoopContinue || res.LoopBreak
}

// Success finishes the step with a value.
func (res *RuntimeResult) Success(value objects.FreshObject) *RuntimeResult {
	res.reset()
	res.Value = value
	return res
}

// SuccessReturn finishes the step with a pending function return.
func (res *RuntimeResult) SuccessReturn(value objects.FreshObject) *RuntimeResult {
	res.reset()
	res.FuncReturnValue = value
	return res
}

// SuccessContinue finishes the step with a pending loop continue.
func (res *RuntimeResult) SuccessContinue() *RuntimeResult {
	res.reset()
	res.LoopContinue = true
	return res
}

// SuccessBreak finishes the step with a pending loop break.
func (res *RuntimeResult) SuccessBreak() *RuntimeResult {
	res.reset()
	res.LoopBreak = true
	return res
}

// Failure finishes the step with a runtime error.
func (res *RuntimeResult) Failure(err *errors.Error) *RuntimeResult {
	res.reset()
	res.Err = err
	return res
}
