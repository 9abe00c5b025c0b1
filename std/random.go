/*
File    : go-fresh/std/random.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - random.go
// Random number builtins, backed by the runtime's seedable source so
// runs with a fixed seed are reproducible.
package std

import (
	"io"
	"math"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
)

var randomBuiltins = []*Builtin{
	{Name: "random_int", ArgNames: []string{"min", "max"}, Callback: randomInt},
}

func init() {
	Builtins = append(Builtins, randomBuiltins...)
}

// randomInt returns a uniformly random integer in the inclusive range
// [min, max].
//
// Syntax: random_int(min, max)
func randomInt(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	minValue, ok := args[0].(*objects.Number)
	if !ok {
		return nil, call.Error("First argument must be a number")
	}
	maxValue, ok := args[1].(*objects.Number)
	if !ok {
		return nil, call.Error("Second argument must be a number")
	}

	lo := int64(math.Trunc(minValue.Value))
	hi := int64(math.Trunc(maxValue.Value))
	if hi < lo {
		return nil, call.Error("Invalid range for random_int")
	}

	return objects.NewNumber(float64(lo + rt.Random().Int63n(hi-lo+1))), nil
}
