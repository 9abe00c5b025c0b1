/*
File    : go-fresh/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/go-fresh/objects"
	"github.com/stretchr/testify/assert"
)

// TestScope_LookUpChain verifies lookup through the parent chain
func TestScope_LookUpChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", objects.NewNumber(1))

	frame := NewScope(global)

	value, ok := frame.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, float64(1), value.(*objects.Number).Value)

	_, ok = frame.LookUp("missing")
	assert.False(t, ok)
}

// TestScope_BindShadows verifies that writes stay in the current frame
func TestScope_BindShadows(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", objects.NewNumber(1))

	frame := NewScope(global)
	frame.Bind("x", objects.NewNumber(2))

	inner, _ := frame.LookUp("x")
	assert.Equal(t, float64(2), inner.(*objects.Number).Value)

	outer, _ := global.LookUp("x")
	assert.Equal(t, float64(1), outer.(*objects.Number).Value, "outer binding untouched")
}

// TestContext_Chain verifies the call-frame chain shape used by
// tracebacks
func TestContext_Chain(t *testing.T) {
	root := NewContext("<program>", nil, nil)
	root.Symbols = NewScope(nil)

	child := NewContext("fact", root, nil)
	child.Symbols = NewScope(root.Symbols)

	assert.Equal(t, "<program>", child.Parent.DisplayName)
	assert.Nil(t, root.Parent)
}
