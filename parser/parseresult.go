/*
File    : go-fresh/parser/parseresult.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-fresh/errors"

// ParseResult is the outcome carrier threaded through every parse
// function. Besides the produced node or error it counts how many
// tokens the parse consumed, which is what makes speculative parsing
// possible: a caller that try-registers a sub-parse learns how far the
// failed attempt advanced and can rewind the token cursor by exactly
// that amount.
type ParseResult struct {
	Node           Node          // The parsed node on success
	Err            *errors.Error // The parse error on failure
	Advancements   int           // Tokens consumed by this parse (including sub-parses)
	ToReverseCount int           // Tokens to rewind after a failed speculative sub-parse
}

// NewParseResult creates an empty outcome.
func NewParseResult() *ParseResult {
	return &ParseResult{}
}

// RegisterAdvancement counts one consumed token.
func (res *ParseResult) RegisterAdvancement() {
	res.Advancements++
}

// Register absorbs a sub-parse: its advancement count is added to this
// result and its error (if any) becomes this result's error. The
// sub-parse's node is returned for convenience.
func (res *ParseResult) Register(sub *ParseResult) Node {
	res.Advancements += sub.Advancements
	if sub.Err != nil {
		res.Err = sub.Err
	}
	return sub.Node
}

// TryRegister absorbs a sub-parse speculatively. On failure it records
// the failed attempt's advancement count in ToReverseCount, discards
// the error and returns nil; the caller is expected to rewind the
// cursor and carry on.
func (res *ParseResult) TryRegister(sub *ParseResult) Node {
	if sub.Err != nil {
		res.ToReverseCount = sub.Advancements
		return nil
	}
	return res.Register(sub)
}

// Success finishes the parse with a node.
func (res *ParseResult) Success(node Node) *ParseResult {
	res.Node = node
	return res
}

// Failure finishes the parse with an error. An error from a deeper,
// already-advanced sub-parse wins over a later, shallower one: the
// error is only replaced while no tokens have been consumed.
func (res *ParseResult) Failure(err *errors.Error) *ParseResult {
	if res.Err == nil || res.Advancements == 0 {
		res.Err = err
	}
	return res
}
