/*
File    : go-fresh/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the core data types for the Fresh language.
// It provides implementations for the primitive kinds (numbers, strings)
// and the one composite kind (lists). All types implement the FreshObject
// interface, which allows for type checking, string representation, and
// object inspection. Function values also satisfy FreshObject but live in
// the function package, since they reference AST and scope types.
package objects

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FreshType represents the type of a Fresh object as a string constant.
type FreshType string

const (
	// NumberType represents numeric values (one shared domain for
	// integers and reals)
	NumberType FreshType = "number"
	// StringType represents string values
	StringType FreshType = "string"
	// ListType represents lists of Fresh objects
	ListType FreshType = "list"
	// FunctionType represents user-defined function values
	FunctionType FreshType = "function"
	// BuiltinType represents builtin function values
	BuiltinType FreshType = "builtin"
)

// FreshObject is the core interface that all Fresh values implement.
type FreshObject interface {
	// GetType returns the FreshType of the object, used for type checking
	GetType() FreshType
	// ToString returns the value the way the language prints it
	ToString() string
	// ToObject returns a detailed representation including type information,
	// useful for debugging and object inspection
	ToObject() string
	// IsTrue reports the truthiness of the value: numbers are truthy iff
	// nonzero, strings iff nonempty, lists and functions always
	IsTrue() bool
}

// Number represents a numeric value in Fresh.
// The language has a single numeric domain: the lexer distinguishes INT
// from FLOAT literals, but once constructed every number is a float64.
// The shared sentinels Null, True and False are Numbers as well - Fresh
// has no separate boolean or null kind.
type Number struct {
	Value float64 // The underlying numeric value
}

// NewNumber wraps a float64 in a Number value.
func NewNumber(value float64) *Number {
	return &Number{Value: value}
}

// GetType returns the type of the Number object
func (n *Number) GetType() FreshType {
	return NumberType
}

// ToString renders the number the way the language prints it.
// Integral values print without a decimal point ("7", not "7.0"), which
// keeps int(str(n)) == n for every integer n.
func (n *Number) ToString() string {
	if n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1e15 {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// ToObject returns a detailed representation including type info
func (n *Number) ToObject() string {
	return "<number(" + n.ToString() + ")>"
}

// IsTrue reports whether the number is nonzero.
func (n *Number) IsTrue() bool {
	return n.Value != 0
}

// Copy returns an independent Number with the same value.
func (n *Number) Copy() *Number {
	return &Number{Value: n.Value}
}

// The sentinels of the language. Null and False are the same Number(0)
// by design: Fresh conflates null and false.
func Null() *Number  { return &Number{Value: 0} }
func True() *Number  { return &Number{Value: 1} }
func False() *Number { return &Number{Value: 0} }

// BoolNumber converts a Go bool into the language's 0/1 encoding.
func BoolNumber(b bool) *Number {
	if b {
		return True()
	}
	return False()
}

// String represents a string value in Fresh.
type String struct {
	Value string // The underlying text
}

// NewString wraps text in a String value.
func NewString(value string) *String {
	return &String{Value: value}
}

// GetType returns the type of the String object
func (s *String) GetType() FreshType {
	return StringType
}

// ToString returns the raw text (no surrounding quotes)
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info
func (s *String) ToObject() string {
	return "<string(" + s.Value + ")>"
}

// IsTrue reports whether the string is nonempty.
func (s *String) IsTrue() bool {
	return len(s.Value) > 0
}

// Copy returns an independent String with the same text.
func (s *String) Copy() *String {
	return &String{Value: s.Value}
}

// List represents an ordered, mutable sequence of Fresh values.
//
// A List is a shared-reference wrapper around a mutable element vector:
// the wrapper holds a pointer to the slice, so every alias observes
// in-place mutations (append, pop, extend) regardless of slice
// reallocation. CloneElements takes a snapshot of the vector; the `set`
// statement uses it so that rebinding a list detaches the new name from
// later mutations of the old one.
type List struct {
	Elements *[]FreshObject // The element vector, shared between aliases
}

// NewList wraps an element vector in a List value.
func NewList(elements []FreshObject) *List {
	return &List{Elements: &elements}
}

// GetType returns the type of the List object
func (l *List) GetType() FreshType {
	return ListType
}

// Items returns the current element vector.
func (l *List) Items() []FreshObject {
	return *l.Elements
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(*l.Elements)
}

// Append adds a value in place, visible through every alias.
func (l *List) Append(value FreshObject) {
	*l.Elements = append(*l.Elements, value)
}

// Extend appends every element of other in place.
func (l *List) Extend(other *List) {
	*l.Elements = append(*l.Elements, other.Items()...)
}

// RemoveAt removes and returns the element at index (already
// normalized to 0..Len()-1).
func (l *List) RemoveAt(index int) FreshObject {
	elements := *l.Elements
	removed := elements[index]
	*l.Elements = append(elements[:index], elements[index+1:]...)
	return removed
}

// ToString renders the list as "[e1, e2, ...]" using each element's
// own rendering.
func (l *List) ToString() string {
	parts := lo.Map(l.Items(), func(e FreshObject, _ int) string {
		return e.ToString()
	})
	return "[" + strings.Join(parts, ", ") + "]"
}

// ToObject returns a detailed representation including type info
func (l *List) ToObject() string {
	return "<list" + l.ToString() + ">"
}

// IsTrue always reports true: lists, empty or not, are truthy.
func (l *List) IsTrue() bool {
	return true
}

// Copy returns a List sharing the same element vector (an alias).
func (l *List) Copy() *List {
	return &List{Elements: l.Elements}
}

// CloneElements returns a List with a shallow copy of the element
// vector. The elements themselves are shared; only the vector is new.
func (l *List) CloneElements() *List {
	elements := make([]FreshObject, l.Len())
	copy(elements, *l.Elements)
	return NewList(elements)
}

// NormalizeIndex converts a numeric index into a 0-based offset,
// accepting negative indices counted from the end. It reports false
// for non-integral or out-of-range indices.
func (l *List) NormalizeIndex(index float64) (int, bool) {
	if index != math.Trunc(index) {
		return 0, false
	}
	idx := int(index)
	if idx < 0 {
		idx += l.Len()
	}
	if idx < 0 || idx >= l.Len() {
		return 0, false
	}
	return idx, true
}
