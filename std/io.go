/*
File    : go-fresh/std/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - io.go
// Line-oriented input/output builtins: log, str_input, num_input,
// clear and wait. These are the only places the language touches the
// terminal.
package std

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/objects"
)

var ioBuiltins = []*Builtin{
	{Name: "log", ArgNames: []string{"value"}, Callback: logValue},
	{Name: "str_input", ArgNames: []string{"prompt"}, Callback: strInput},
	{Name: "num_input", ArgNames: []string{"prompt"}, Callback: numInput},
	{Name: "clear", ArgNames: []string{}, Callback: clearScreen},
	{Name: "wait", ArgNames: []string{"seconds"}, Callback: wait},
}

func init() {
	Builtins = append(Builtins, ioBuiltins...)
}

// logValue stringifies its argument and prints one line.
//
// Syntax: log(value)
func logValue(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	io.WriteString(writer, args[0].ToString()+"\n")
	return objects.Null(), nil
}

// strInput prints the prompt and reads one line, returned as a String
// without the trailing newline.
//
// Syntax: str_input(prompt)
func strInput(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	io.WriteString(writer, args[0].ToString())
	line := readLine(rt)
	return objects.NewString(line), nil
}

// numInput prints the prompt and reads one line which must parse as an
// integer.
//
// Syntax: num_input(prompt)
func numInput(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	io.WriteString(writer, args[0].ToString())
	line := readLine(rt)
	number, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return nil, call.Error("Expected number input")
	}
	return objects.NewNumber(float64(number)), nil
}

// clearScreen clears the terminal with the platform-appropriate command.
//
// Syntax: clear()
func clearScreen(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
	return objects.Null(), nil
}

// wait pauses evaluation for the given number of seconds.
//
// Syntax: wait(seconds)
func wait(rt Runtime, writer io.Writer, call *CallSite, args ...objects.FreshObject) (objects.FreshObject, *errors.Error) {
	seconds, ok := args[0].(*objects.Number)
	if !ok {
		return nil, call.Error("Argument must be a number")
	}
	time.Sleep(time.Duration(seconds.Value * float64(time.Second)))
	return objects.Null(), nil
}

// readLine reads up to the next newline from the runtime's reader and
// strips the line terminator.
func readLine(rt Runtime) string {
	line, _ := rt.GetInputReader().ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}
