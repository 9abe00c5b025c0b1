/*
File    : go-fresh/errors/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errors defines the diagnostic values of the Fresh language.
// The four kinds (IllegalCharacterError, ExpectedCharError,
// InvalidSyntaxError, RuntimeError) are not Go errors: they are values
// that flow through the lexer, parser and evaluator outcomes and render
// themselves for the user with a source location, a caret-annotated
// excerpt and, for runtime errors, a call-stack traceback.
package errors

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-fresh/position"
	"github.com/akashmaji946/go-fresh/scope"
)

// Error kind names as they appear in rendered diagnostics.
const (
	IllegalCharacterKind = "IllegalCharacterError"
	ExpectedCharKind     = "ExpectedCharError"
	InvalidSyntaxKind    = "InvalidSyntaxError"
	RuntimeKind          = "RuntimeError"
)

// ErrorKeywords lists the statement-opening words mentioned by the
// catch-all parser diagnostics.
var ErrorKeywords = []string{
	"set", "if", "func", "while", "for",
	"log", "str_input", "num_input", "is_digit", "random_int", "clear",
	"is_number", "is_string", "is_list", "is_function",
	"append", "pop", "len", "extend",
}

// ExpectedStatement is the catch-all detail for a malformed statement.
var ExpectedStatement = "Expected " + strings.Join(ErrorKeywords, ", ") +
	", return, continue, break, type int, float, string, list or identifier, " +
	"or '+', '-', '*', '/', '^', '[', '(' or 'not'"

// ExpectedExpression is the catch-all detail for a malformed expression.
var ExpectedExpression = "Expected type int, float, string, list or identifier, " +
	"or '+', '-', '*', '/', '^', '[', '(' or 'not'"

// Error is a diagnostic produced by the lexer, parser or evaluator.
//
// The first three kinds carry only a span and details. RuntimeError
// additionally carries the Context active when it was raised, from
// which AsString generates the traceback.
type Error struct {
	PosStart *position.Position // Start of the offending span
	PosEnd   *position.Position // End of the offending span
	Name     string             // One of the four kind names
	Details  string             // Human-readable detail line
	Context  *scope.Context     // Call frame chain; non-nil only for RuntimeError
}

// NewIllegalCharacterError reports a character outside the language's alphabet.
func NewIllegalCharacterError(start, end *position.Position, details string) *Error {
	return &Error{PosStart: start, PosEnd: end, Name: IllegalCharacterKind, Details: details}
}

// NewExpectedCharError reports a two-character operator cut short,
// e.g. '!' not followed by '='.
func NewExpectedCharError(start, end *position.Position, details, expected string) *Error {
	return &Error{
		PosStart: start,
		PosEnd:   end,
		Name:     ExpectedCharKind,
		Details:  fmt.Sprintf("'%s' %s", expected, details),
	}
}

// NewInvalidSyntaxError reports a malformed construct from the lexer or parser.
func NewInvalidSyntaxError(start, end *position.Position, details string) *Error {
	return &Error{PosStart: start, PosEnd: end, Name: InvalidSyntaxKind, Details: details}
}

// NewRTError reports a runtime failure together with the call frame it
// occurred in.
func NewRTError(start, end *position.Position, details string, ctx *scope.Context) *Error {
	return &Error{PosStart: start, PosEnd: end, Name: RuntimeKind, Details: details, Context: ctx}
}

// Error implements the Go error interface with the diagnostic's
// header line, so language errors can flow through error-typed APIs.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Details)
}

// IsRuntime reports whether the error carries a traceback context.
func (e *Error) IsRuntime() bool {
	return e.Context != nil
}

// AsString renders the full user-visible diagnostic.
//
// Lex/parse errors render as:
//
//	KindName: details
//	File NAME, line L:C
//	Error occurred here:
//	<caret excerpt>
//
// Runtime errors prepend the traceback and move the kind line below it.
func (e *Error) AsString() string {
	if e.IsRuntime() {
		result := e.generateTraceback()
		result += fmt.Sprintf("\n%s: %s", e.Name, e.Details)
		result += "\nError occurred here:\n" + StringWithArrows(e.PosStart.Filetext, e.PosStart, e.PosEnd)
		return result
	}
	result := fmt.Sprintf("%s: %s", e.Name, e.Details)
	result += fmt.Sprintf("\nFile %s, line %d:%d", e.PosStart.Filename, e.PosStart.Line+1, e.PosStart.Column+1)
	result += "\nError occurred here:\n" + StringWithArrows(e.PosStart.Filetext, e.PosStart, e.PosEnd)
	return result
}

// generateTraceback walks the context chain from the failing frame up
// to the root and prints the frames outermost-first, each with the
// position its child frame was entered from.
func (e *Error) generateTraceback() string {
	frames := []string{}
	pos := e.PosStart
	ctx := e.Context
	for ctx != nil {
		frames = append(frames, fmt.Sprintf(
			"\n    File %s, line %d:%d, in %s",
			pos.Filename, pos.Line+1, pos.Column+1, ctx.DisplayName))
		pos = ctx.ParentEntryPos
		ctx = ctx.Parent
	}
	// Reverse so the outermost call prints first
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return "Traceback (most recent call last):" + strings.Join(frames, "")
}

// StringWithArrows excerpts the source lines covered by [start, end)
// and underlines the offending columns with carets. Tabs are stripped
// from the rendering so the caret columns stay aligned.
func StringWithArrows(text string, start, end *position.Position) string {
	var result strings.Builder

	// Locate the start of the first offending line
	indexStart := strings.LastIndex(text[:min(start.Index, len(text))], "\n")
	if indexStart < 0 {
		indexStart = 0
	}
	indexEnd := indexOfNewline(text, indexStart+1)

	lineCount := end.Line - start.Line + 1
	for i := 0; i < lineCount; i++ {
		line := text[indexStart:indexEnd]

		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line) - 1
		if i == lineCount-1 {
			colEnd = end.Column
		}

		result.WriteString(line)
		result.WriteString("\n")
		result.WriteString(strings.Repeat(" ", max(colStart, 0)))
		result.WriteString(strings.Repeat("^", max(colEnd-colStart, 0)))

		indexStart = indexEnd
		indexEnd = indexOfNewline(text, indexStart+1)
	}

	return strings.ReplaceAll(result.String(), "\t", "")
}

// indexOfNewline finds the next '\n' at or after from, or len(text).
func indexOfNewline(text string, from int) int {
	if from > len(text) {
		return len(text)
	}
	idx := strings.Index(text[from:], "\n")
	if idx < 0 {
		return len(text)
	}
	return from + idx
}
