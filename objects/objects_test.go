/*
File    : go-fresh/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNumber_Rendering verifies integral/real rendering and the
// int(str(n)) round-trip property it exists for
func TestNumber_Rendering(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{-3, "-3"},
		{3.5, "3.5"},
		{120, "120"},
		{1e6, "1000000"},
		{0.1, "0.1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewNumber(tt.value).ToString())
	}
}

// TestNumber_Sentinels verifies the null/false conflation
func TestNumber_Sentinels(t *testing.T) {
	assert.Equal(t, Null().Value, False().Value)
	assert.Equal(t, float64(1), True().Value)
	assert.False(t, Null().IsTrue())
	assert.True(t, True().IsTrue())
}

// TestTruthiness verifies the per-kind truthiness rules
func TestTruthiness(t *testing.T) {
	assert.False(t, NewNumber(0).IsTrue())
	assert.True(t, NewNumber(-1).IsTrue())
	assert.False(t, NewString("").IsTrue())
	assert.True(t, NewString("x").IsTrue())
	assert.True(t, NewList(nil).IsTrue(), "even an empty list is truthy")
}

// TestList_AliasAndClone verifies the shared-vector wrapper semantics
func TestList_AliasAndClone(t *testing.T) {
	list := NewList([]FreshObject{NewNumber(1), NewNumber(2)})

	alias := list.Copy()
	snapshot := list.CloneElements()

	list.Append(NewNumber(3))

	assert.Equal(t, 3, alias.Len(), "aliases share the element vector")
	assert.Equal(t, 2, snapshot.Len(), "clones are detached snapshots")

	removed := list.RemoveAt(0)
	assert.Equal(t, float64(1), removed.(*Number).Value)
	assert.Equal(t, 2, alias.Len())
}

// TestList_NormalizeIndex verifies bounds and negative indices
func TestList_NormalizeIndex(t *testing.T) {
	list := NewList([]FreshObject{NewNumber(1), NewNumber(2), NewNumber(3)})

	idx, ok := list.NormalizeIndex(0)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = list.NormalizeIndex(-1)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = list.NormalizeIndex(3)
	assert.False(t, ok)

	_, ok = list.NormalizeIndex(-4)
	assert.False(t, ok)

	_, ok = list.NormalizeIndex(1.5)
	assert.False(t, ok, "non-integral indices are rejected")
}

// TestList_Rendering verifies nested rendering
func TestList_Rendering(t *testing.T) {
	inner := NewList([]FreshObject{NewNumber(3)})
	list := NewList([]FreshObject{NewNumber(1), NewString("two"), inner})
	assert.Equal(t, "[1, two, [3]]", list.ToString())
	assert.Equal(t, "[]", NewList(nil).ToString())
}
