/*
File    : go-fresh/std/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - types.go
// Type predicate builtins and len. The predicates return the
// language's 0/1 encoding of booleans; is_function matches user and
// builtin functions alike.
package std

import (
	"io"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
)

var typeBuiltins = []*Builtin{
	{Name: "is_number", ArgNames: []string{"value"}, Callback: isNumber},
	{Name: "is_string", ArgNames: []string{"value"}, Callback: isString},
	{Name: "is_list", ArgNames: []string{"value"}, Callback: isList},
	{Name: "is_function", ArgNames: []string{"value"}, Callback: isFunction},
	{Name: "len", ArgNames: []string{"value"}, Callback: lengthOf},
}

func init() {
	Builtins = append(Builtins, typeBuiltins...)
}

// isNumber reports whether the argument is a Number.
func isNumber(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	return objects.BoolNumber(args[0].GetType() == objects.NumberType), nil
}

// isString reports whether the argument is a String.
func isString(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	return objects.BoolNumber(args[0].GetType() == objects.StringType), nil
}

// isList reports whether the argument is a List.
func isList(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	return objects.BoolNumber(args[0].GetType() == objects.ListType), nil
}

// isFunction reports whether the argument is callable, user-defined or
// builtin.
func isFunction(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	kind := args[0].GetType()
	return objects.BoolNumber(kind == objects.FunctionType || kind == objects.BuiltinType), nil
}

// lengthOf returns the length of a String or List.
//
// Syntax: len(value)
func lengthOf(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	switch value := args[0].(type) {
	case *objects.String:
		return objects.NewNumber(float64(len(value.Value))), nil
	case *objects.List:
		return objects.NewNumber(float64(value.Len())), nil
	default:
		return nil, call.Error("Argument must be type list or string")
	}
}
