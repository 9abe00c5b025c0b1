/*
File    : go-fresh/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-fresh/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can rebind names from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup. Writes never walk the chain: in Fresh, `set` always binds in the
// current frame, shadowing any outer binding of the same name.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.FreshObject

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	functionScope := NewScope(globalScope) // Create function frame
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.FreshObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.FreshObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.FreshObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.FreshObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or replaces a variable binding in the current scope.
//
// Only the current frame is written; parent scopes are never modified.
// This matches the language's single assignment form: `set` writes go to
// the active frame, so an inner `set x = ...` shadows an outer x rather
// than updating it.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
func (s *Scope) Bind(varName string, obj objects.FreshObject) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.FreshObject)
	}
	s.Variables[varName] = obj
}
