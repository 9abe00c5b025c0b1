/*
File    : go-fresh/scope/context.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-fresh/position"

// Context represents one frame of the call stack.
//
// The root context is "<program>"; each user-function call pushes a
// child context whose Parent is the calling context and whose
// ParentEntryPos is the call site. Lexical scoping comes from the child's
// Symbols, which chain to the function's defining context's scope.
// Builtin calls push no context. Runtime errors walk this chain to
// generate their traceback, printing the outermost frame first.
type Context struct {
	// DisplayName is what the traceback prints for this frame,
	// e.g. "<program>", "fact" or "<anonymous>"
	DisplayName string

	// Parent is the enclosing context, nil for the root frame
	Parent *Context

	// ParentEntryPos is the source position of the call that entered
	// this frame, nil for the root frame
	ParentEntryPos *position.Position

	// Symbols holds this frame's variable bindings
	Symbols *Scope
}

// NewContext creates a call frame with the given display name, parent
// frame and entry position. The symbol scope is attached separately by
// the caller, since its parent scope depends on the callable's defining
// context rather than the calling one.
func NewContext(displayName string, parent *Context, entryPos *position.Position) *Context {
	return &Context{
		DisplayName:    displayName,
		Parent:         parent,
		ParentEntryPos: entryPos,
	}
}
