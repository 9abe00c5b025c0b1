/*
File    : go-fresh/std/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/position"
	"github.com/akashmaji946/go-fresh/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRuntime satisfies Runtime for direct callback tests.
type stubRuntime struct {
	reader *bufio.Reader
	rng    *rand.Rand
}

func (s *stubRuntime) GetInputReader() *bufio.Reader { return s.reader }
func (s *stubRuntime) Random() *rand.Rand            { return s.rng }

// newStub builds a runtime with scripted input and a fixed seed.
func newStub(input string) *stubRuntime {
	return &stubRuntime{
		reader: bufio.NewReader(strings.NewReader(input)),
		rng:    rand.New(rand.NewSource(7)),
	}
}

// newCallSite builds a dummy diagnostics site.
func newCallSite() *CallSite {
	pos := position.New(0, 0, 0, "<test>", "x")
	ctx := scope.NewContext("<program>", nil, nil)
	ctx.Symbols = scope.NewScope(nil)
	return &CallSite{PosStart: pos, PosEnd: pos.Copy().Advance(0), Ctx: ctx}
}

// invoke runs a registered builtin by name.
func invoke(t *testing.T, name string, rt Runtime, out *bytes.Buffer, args ...objects.FreshObject) (objects.FreshObject, error) {
	t.Helper()
	builtin, ok := LookUp(name)
	require.True(t, ok, "builtin %s not registered", name)
	require.Len(t, args, len(builtin.ArgNames), "builtin %s arity", name)
	value, err := builtin.Callback(rt, out, newCallSite(), args...)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// TestBuiltins_Registry verifies that every required builtin is registered
func TestBuiltins_Registry(t *testing.T) {
	required := []string{
		"log", "str_input", "num_input", "clear",
		"is_number", "is_string", "is_list", "is_function", "is_digit",
		"append", "pop", "len", "extend",
		"random_int", "str", "int", "float", "wait",
	}
	for _, name := range required {
		_, ok := LookUp(name)
		assert.True(t, ok, "missing builtin %s", name)
	}
	assert.Contains(t, Names(), "log")
}

// TestBuiltins_Log verifies log's output and null result
func TestBuiltins_Log(t *testing.T) {
	var out bytes.Buffer
	value, err := invoke(t, "log", newStub(""), &out, objects.NewNumber(7))
	require.NoError(t, err)
	assert.Equal(t, "7\n", out.String())
	assert.Equal(t, float64(0), value.(*objects.Number).Value)
}

// TestBuiltins_Inputs verifies str_input and num_input
func TestBuiltins_Inputs(t *testing.T) {
	var out bytes.Buffer

	value, err := invoke(t, "str_input", newStub("hello\n"), &out, objects.NewString("? "))
	require.NoError(t, err)
	assert.Equal(t, "hello", value.(*objects.String).Value)
	assert.Equal(t, "? ", out.String())

	value, err = invoke(t, "num_input", newStub("42\n"), &out, objects.NewString(""))
	require.NoError(t, err)
	assert.Equal(t, float64(42), value.(*objects.Number).Value)

	_, err = invoke(t, "num_input", newStub("nope\n"), &out, objects.NewString(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected number input")
}

// TestBuiltins_TypePredicates verifies the is_* family
func TestBuiltins_TypePredicates(t *testing.T) {
	var out bytes.Buffer
	rt := newStub("")

	tests := []struct {
		name     string
		arg      objects.FreshObject
		expected float64
	}{
		{"is_number", objects.NewNumber(1), 1},
		{"is_number", objects.NewString("1"), 0},
		{"is_string", objects.NewString("x"), 1},
		{"is_string", objects.NewNumber(1), 0},
		{"is_list", objects.NewList(nil), 1},
		{"is_list", objects.NewString("x"), 0},
	}

	for _, tt := range tests {
		value, err := invoke(t, tt.name, rt, &out, tt.arg)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, value.(*objects.Number).Value, "%s(%s)", tt.name, tt.arg.ToObject())
	}
}

// TestBuiltins_ListMutation verifies the in-place semantics of append,
// pop and extend
func TestBuiltins_ListMutation(t *testing.T) {
	var out bytes.Buffer
	rt := newStub("")

	list := objects.NewList([]objects.FreshObject{objects.NewNumber(1)})
	alias := list.Copy()

	returned, err := invoke(t, "append", rt, &out, list, objects.NewNumber(2))
	require.NoError(t, err)
	assert.Same(t, list, returned)
	assert.Equal(t, 2, alias.Len(), "append must be visible through aliases")

	popped, err := invoke(t, "pop", rt, &out, list, objects.NewNumber(0))
	require.NoError(t, err)
	assert.Equal(t, float64(1), popped.(*objects.Number).Value)
	assert.Equal(t, 1, alias.Len())

	_, err = invoke(t, "pop", rt, &out, list, objects.NewNumber(9))
	require.Error(t, err)

	other := objects.NewList([]objects.FreshObject{objects.NewNumber(8), objects.NewNumber(9)})
	_, err = invoke(t, "extend", rt, &out, list, other)
	require.NoError(t, err)
	assert.Equal(t, 3, alias.Len())

	_, err = invoke(t, "append", rt, &out, objects.NewNumber(1), objects.NewNumber(2))
	require.Error(t, err)
}

// TestBuiltins_Len verifies len over strings, lists and the error case
func TestBuiltins_Len(t *testing.T) {
	var out bytes.Buffer
	rt := newStub("")

	value, err := invoke(t, "len", rt, &out, objects.NewString("abc"))
	require.NoError(t, err)
	assert.Equal(t, float64(3), value.(*objects.Number).Value)

	value, err = invoke(t, "len", rt, &out, objects.NewList([]objects.FreshObject{objects.Null()}))
	require.NoError(t, err)
	assert.Equal(t, float64(1), value.(*objects.Number).Value)

	_, err = invoke(t, "len", rt, &out, objects.NewNumber(3))
	require.Error(t, err)
}

// TestBuiltins_Conversions verifies str/int/float and is_digit
func TestBuiltins_Conversions(t *testing.T) {
	var out bytes.Buffer
	rt := newStub("")

	value, err := invoke(t, "str", rt, &out, objects.NewNumber(123))
	require.NoError(t, err)
	assert.Equal(t, "123", value.(*objects.String).Value)

	_, err = invoke(t, "str", rt, &out, objects.NewString("x"))
	require.Error(t, err)

	value, err = invoke(t, "int", rt, &out, objects.NewString(" 42 "))
	require.NoError(t, err)
	assert.Equal(t, float64(42), value.(*objects.Number).Value)

	_, err = invoke(t, "int", rt, &out, objects.NewString("4.5"))
	require.Error(t, err)

	value, err = invoke(t, "float", rt, &out, objects.NewString("2.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, value.(*objects.Number).Value)

	_, err = invoke(t, "float", rt, &out, objects.NewString("abc"))
	require.Error(t, err)

	value, err = invoke(t, "is_digit", rt, &out, objects.NewString("0123"))
	require.NoError(t, err)
	assert.Equal(t, float64(1), value.(*objects.Number).Value)

	value, err = invoke(t, "is_digit", rt, &out, objects.NewString("12a"))
	require.NoError(t, err)
	assert.Equal(t, float64(0), value.(*objects.Number).Value)

	value, err = invoke(t, "is_digit", rt, &out, objects.NewString(""))
	require.NoError(t, err)
	assert.Equal(t, float64(0), value.(*objects.Number).Value)
}

// TestBuiltins_RandomInt verifies inclusive bounds and determinism
// under a fixed seed
func TestBuiltins_RandomInt(t *testing.T) {
	var out bytes.Buffer
	rt := newStub("")

	for i := 0; i < 50; i++ {
		value, err := invoke(t, "random_int", rt, &out, objects.NewNumber(1), objects.NewNumber(6))
		require.NoError(t, err)
		n := value.(*objects.Number).Value
		assert.GreaterOrEqual(t, n, float64(1))
		assert.LessOrEqual(t, n, float64(6))
	}

	// Same seed, same sequence
	first, _ := invoke(t, "random_int", newStub(""), &out, objects.NewNumber(0), objects.NewNumber(1000))
	second, _ := invoke(t, "random_int", newStub(""), &out, objects.NewNumber(0), objects.NewNumber(1000))
	assert.Equal(t, first.(*objects.Number).Value, second.(*objects.Number).Value)

	_, err := invoke(t, "random_int", rt, &out, objects.NewNumber(5), objects.NewNumber(1))
	require.Error(t, err)
}
