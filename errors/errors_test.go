/*
File    : go-fresh/errors/errors_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errors

import (
	"strings"
	"testing"

	"github.com/akashmaji946/go-fresh/position"
	"github.com/akashmaji946/go-fresh/scope"
	"github.com/stretchr/testify/assert"
)

// span builds a [start, end) pair inside text.
func span(text string, start, end int) (*position.Position, *position.Position) {
	startPos := position.New(0, 0, 0, "<test>", text)
	for i := 0; i < start; i++ {
		startPos.Advance(text[i])
	}
	endPos := startPos.Copy()
	for i := start; i < end; i++ {
		endPos.Advance(text[i])
	}
	return startPos, endPos
}

// TestError_AsString verifies the lex/parse rendering: header,
// location line (1-based), and caret excerpt
func TestError_AsString(t *testing.T) {
	text := "set x = @"
	start, end := span(text, 8, 9)

	err := NewIllegalCharacterError(start, end, "'@'")
	rendered := err.AsString()

	assert.True(t, strings.HasPrefix(rendered, "IllegalCharacterError: '@'"))
	assert.Contains(t, rendered, "File <test>, line 1:9")
	assert.Contains(t, rendered, "Error occurred here:")
	assert.Contains(t, rendered, "set x = @")
	assert.Contains(t, rendered, "        ^")
}

// TestError_ExpectedChar verifies the quoted-expectation detail shape
func TestError_ExpectedChar(t *testing.T) {
	text := "1 ! 2"
	start, end := span(text, 2, 3)

	err := NewExpectedCharError(start, end, "(after '!')", "=")
	assert.Equal(t, "'=' (after '!')", err.Details)
	assert.Equal(t, ExpectedCharKind, err.Name)
}

// TestError_Traceback verifies frame ordering and the runtime layout
func TestError_Traceback(t *testing.T) {
	text := "boom()"
	start, end := span(text, 0, 6)

	root := scope.NewContext("<program>", nil, nil)
	frame := scope.NewContext("boom", root, start.Copy())

	err := NewRTError(start, end, "Division by zero", frame)
	rendered := err.AsString()

	assert.True(t, strings.HasPrefix(rendered, "Traceback (most recent call last):"))
	assert.Contains(t, rendered, "RuntimeError: Division by zero")
	assert.Contains(t, rendered, "in boom")
	assert.Contains(t, rendered, "in <program>")
	assert.Less(t,
		strings.Index(rendered, "in <program>"),
		strings.Index(rendered, "in boom"))
}

// TestError_GoError verifies the Go error interface bridge
func TestError_GoError(t *testing.T) {
	text := "x"
	start, end := span(text, 0, 1)
	err := NewInvalidSyntaxError(start, end, "Expected ')'")
	assert.Equal(t, "InvalidSyntaxError: Expected ')'", err.Error())
	assert.False(t, err.IsRuntime())
}

// TestStringWithArrows verifies caret placement on a single line
func TestStringWithArrows(t *testing.T) {
	text := "1 + x"
	start, end := span(text, 4, 5)

	excerpt := StringWithArrows(text, start, end)
	lines := strings.Split(excerpt, "\n")
	assert.Equal(t, "1 + x", lines[0])
	assert.Equal(t, "    ^", lines[1])
}
