/*
File    : go-fresh/run/run_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package run

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-fresh/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCapture executes one program against the shared global scope and
// captures everything the builtins print.
func runCapture(t *testing.T, src string) (objects.FreshObject, string, string) {
	t.Helper()

	var out bytes.Buffer
	Interpreter().SetWriter(&out)
	Interpreter().SetReader(strings.NewReader(""))

	value, err := Run("<test>", src, false)
	rendered := ""
	if err != nil {
		rendered = err.AsString()
	}
	return value, out.String(), rendered
}

// TestRun_Scenarios walks the language's end-to-end behaviors through
// the embedder entry point.
func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		stdout string
	}{
		{
			name:   "precedence",
			src:    "log(1 + 2 * 3)",
			stdout: "7\n",
		},
		{
			name:   "right associative power",
			src:    "log(2 ^ 3 ^ 2)",
			stdout: "512\n",
		},
		{
			name:   "list index and len",
			src:    "set xs = [10, 20, 30]; log(xs ? 1); log(len(xs))",
			stdout: "20\n3\n",
		},
		{
			name:   "recursive factorial",
			src:    "func fact(n) -> if n == 0 then 1 else n * fact(n - 1); log(fact(5))",
			stdout: "120\n",
		},
		{
			name:   "block for with exclusive bound",
			src:    "set total = 0\nfor i = 1 to 5 then\n  set total = total + i\nend\nlog(total)",
			stdout: "10\n",
		},
		{
			name:   "break and continue",
			src:    "set s = 0\nfor i = 0 to 10 then\n  if i == 3 then continue\n  if i == 7 then break\n  set s = s + i\nend\nlog(s)",
			stdout: "18\n",
		},
		{
			name:   "string operators",
			src:    "log(\"ab\" + \"cd\"); log(\"abcabc\" - \"b\"); log(\"ab\" * 3)",
			stdout: "abcd\nacac\nababab\n",
		},
		{
			name:   "truthiness",
			src:    "log(if \"\" then 1 else 0); log(if \"x\" then 1 else 0); log(if 0 then 1 else 0)",
			stdout: "0\n1\n0\n",
		},
		{
			name:   "int str round trip",
			src:    "log(int(str(123)))",
			stdout: "123\n",
		},
		{
			name:   "alias and clone",
			src:    "set a = [1, 2, 3]\nset b = a\nappend(a, 4)\nlog(len(a))\nlog(len(b))",
			stdout: "4\n3\n",
		},
		{
			name:   "comments and semicolons",
			src:    "// leading comment\nset x = 1; log(x) // trailing",
			stdout: "1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, errText := runCapture(t, tt.src)
			require.Empty(t, errText, "unexpected error for %q", tt.src)
			assert.Equal(t, tt.stdout, out)
		})
	}
}

// TestRun_DivisionByZero verifies the runtime error rendering: the
// detail, the traceback header and the single top-level frame.
func TestRun_DivisionByZero(t *testing.T) {
	_, _, errText := runCapture(t, "log(1 / 0)")
	require.NotEmpty(t, errText)
	assert.Contains(t, errText, "RuntimeError: Division by zero")
	assert.Contains(t, errText, "Traceback (most recent call last):")
	assert.Contains(t, errText, "in <program>")
	assert.Equal(t, 1, strings.Count(errText, "    File "), "traceback depth")
}

// TestRun_TracebackDepth verifies frame ordering: outermost first.
func TestRun_TracebackDepth(t *testing.T) {
	src := "func boom() -> 1 / 0\nboom()"
	_, _, errText := runCapture(t, src)
	require.NotEmpty(t, errText)
	assert.Contains(t, errText, "in boom")
	assert.Contains(t, errText, "in <program>")
	assert.Less(t,
		strings.Index(errText, "in <program>"),
		strings.Index(errText, "in boom"),
		"outermost frame must print first")
}

// TestRun_LexAndParseErrors verifies the error short-circuit of the
// pipeline stages.
func TestRun_LexAndParseErrors(t *testing.T) {
	value, _, errText := runCapture(t, "set x = @")
	assert.Nil(t, value)
	assert.Contains(t, errText, "IllegalCharacterError")
	assert.Contains(t, errText, "File <test>, line 1:9")

	value, _, errText = runCapture(t, "set = 3")
	assert.Nil(t, value)
	assert.Contains(t, errText, "InvalidSyntaxError: Expected identifier")
}

// TestRun_GlobalScopePersists verifies that repeated Run calls share
// the process-wide environment, REPL style.
func TestRun_GlobalScopePersists(t *testing.T) {
	_, _, errText := runCapture(t, "set persistent_counter = 41")
	require.Empty(t, errText)

	_, out, errText := runCapture(t, "log(persistent_counter + 1)")
	require.Empty(t, errText)
	assert.Equal(t, "42\n", out)
}

// TestRun_Determinism verifies that a fixed seed and scripted stdin
// reproduce identical output.
func TestRun_Determinism(t *testing.T) {
	src := "log(random_int(1, 1000000))\nlog(random_int(1, 1000000))"

	var first bytes.Buffer
	Interpreter().SetWriter(&first)
	Interpreter().SetSeed(42)
	_, err := Run("<test>", src, false)
	require.Nil(t, err)

	var second bytes.Buffer
	Interpreter().SetWriter(&second)
	Interpreter().SetSeed(42)
	_, err = Run("<test>", src, false)
	require.Nil(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.NotEmpty(t, first.String())
}

// TestRun_ScriptedInput verifies the input builtins end to end.
func TestRun_ScriptedInput(t *testing.T) {
	var out bytes.Buffer
	Interpreter().SetWriter(&out)
	Interpreter().SetReader(strings.NewReader("fresh\n41\n"))

	_, err := Run("<test>", "log(str_input(\"\"))\nlog(num_input(\"\") + 1)", false)
	require.Nil(t, err)
	assert.Equal(t, "fresh\n42\n", out.String())
}

// TestRun_DebugDump verifies the --debug token dump format.
func TestRun_DebugDump(t *testing.T) {
	var out bytes.Buffer
	Interpreter().SetWriter(&out)

	_, err := Run("<test>", "1 + 2", true)
	require.Nil(t, err)
	assert.Contains(t, out.String(), "[INT:1, PLUS, INT:2, EOF]")
}

// TestRun_TopLevelResult verifies that the embedder receives the List
// of top-level statement values.
func TestRun_TopLevelResult(t *testing.T) {
	value, _, errText := runCapture(t, "1 + 1\n\"two\"")
	require.Empty(t, errText)
	list, ok := value.(*objects.List)
	require.True(t, ok)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "2", list.Items()[0].ToString())
	assert.Equal(t, "two", list.Items()[1].ToString())
}
