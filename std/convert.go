/*
File    : go-fresh/std/convert.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - convert.go
// Conversions between the numeric and string domains, plus the
// is_digit predicate.
package std

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/spf13/cast"
)

var convertBuiltins = []*Builtin{
	{Name: "str", ArgNames: []string{"value"}, Callback: toStr},
	{Name: "int", ArgNames: []string{"value"}, Callback: toInt},
	{Name: "float", ArgNames: []string{"value"}, Callback: toFloat},
	{Name: "is_digit", ArgNames: []string{"value"}, Callback: isDigit},
}

func init() {
	Builtins = append(Builtins, convertBuiltins...)
}

// toStr converts a Number to its String rendering.
//
// Syntax: str(value)
func toStr(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	number, ok := args[0].(*objects.Number)
	if !ok {
		return nil, call.Error("Argument must be a number")
	}
	return objects.NewString(number.ToString()), nil
}

// toInt parses a String as an integer Number.
//
// Syntax: int(value)
func toInt(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	str, ok := args[0].(*objects.String)
	if !ok {
		return nil, call.Error("Argument must be a string")
	}
	number, err := strconv.ParseInt(strings.TrimSpace(str.Value), 10, 64)
	if err != nil {
		return nil, call.Error("Could not convert string to int")
	}
	return objects.NewNumber(float64(number)), nil
}

// toFloat parses a String as a Number.
//
// Syntax: float(value)
func toFloat(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	str, ok := args[0].(*objects.String)
	if !ok {
		return nil, call.Error("Argument must be a string")
	}
	number, err := cast.ToFloat64E(strings.TrimSpace(str.Value))
	if err != nil {
		return nil, call.Error("Could not convert string to float")
	}
	return objects.NewNumber(number), nil
}

// isDigit reports whether the String is nonempty and every character
// is a decimal digit.
//
// Syntax: is_digit(value)
func isDigit(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	str, ok := args[0].(*objects.String)
	if !ok {
		return nil, call.Error("Argument must be a string")
	}
	if len(str.Value) == 0 {
		return objects.False(), nil
	}
	for _, r := range str.Value {
		if !unicode.IsDigit(r) {
			return objects.False(), nil
		}
	}
	return objects.True(), nil
}
