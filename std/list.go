/*
File    : go-fresh/std/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - list.go
// In-place list mutation builtins. Unlike the '+'/'-'/'*' list
// operators (which clone), append, pop and extend mutate the shared
// element vector, so every alias of the list observes the change.
package std

import (
	"io"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
)

var listBuiltins = []*Builtin{
	{Name: "append", ArgNames: []string{"list", "value"}, Callback: appendValue},
	{Name: "pop", ArgNames: []string{"list", "index"}, Callback: popIndex},
	{Name: "extend", ArgNames: []string{"list1", "list2"}, Callback: extendList},
}

func init() {
	Builtins = append(Builtins, listBuiltins...)
}

// appendValue appends value to the list in place and returns the list.
//
// Syntax: append(list, value)
func appendValue(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	list, ok := args[0].(*objects.List)
	if !ok {
		return nil, call.Error("First argument must be a list")
	}
	list.Append(args[1])
	return list, nil
}

// popIndex removes the element at index in place and returns it.
// Negative indices count from the end of the list.
//
// Syntax: pop(list, index)
func popIndex(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	list, ok := args[0].(*objects.List)
	if !ok {
		return nil, call.Error("First argument must be a list")
	}
	index, ok := args[1].(*objects.Number)
	if !ok {
		return nil, call.Error("Second argument must be a number")
	}
	idx, ok := list.NormalizeIndex(index.Value)
	if !ok {
		return nil, call.Error("Index out of bounds")
	}
	return list.RemoveAt(idx), nil
}

// extendList appends every element of list2 to list1 in place and
// returns list1.
//
// Syntax: extend(list1, list2)
func extendList(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	list1, ok := args[0].(*objects.List)
	if !ok {
		return nil, call.Error("First argument must be a list")
	}
	list2, ok := args[1].(*objects.List)
	if !ok {
		return nil, call.Error("Second argument must be a list")
	}
	list1.Extend(list2)
	return list1, nil
}
