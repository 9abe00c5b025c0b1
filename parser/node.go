/*
File    : go-fresh/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/position"
	"github.com/samber/lo"
)

// Node is the base interface for all nodes of the AST.
// Every node carries the source span it was parsed from, and a Literal
// rendering used for debugging output.
//
// Fresh is expression-oriented: apart from return/continue/break, every
// construct (including if, loops and function definitions) is an
// expression, so the AST needs no statement/expression split.
type Node interface {
	// PosStart returns the start of the node's source span
	PosStart() *position.Position
	// PosEnd returns the end of the node's source span
	PosEnd() *position.Position
	// Literal returns a compact string representation of the node
	Literal() string
}

// NumberNode represents an integer or float literal.
// The numeric value is converted from the token text at parse time.
// Example: 42, 3.14
type NumberNode struct {
	Token lexer.Token     // The INT or FLOAT token
	Value *objects.Number // The converted numeric value
}

func (node *NumberNode) PosStart() *position.Position { return node.Token.PosStart }
func (node *NumberNode) PosEnd() *position.Position   { return node.Token.PosEnd }
func (node *NumberNode) Literal() string              { return node.Token.Literal }

// StringNode represents a string literal.
// Example: "hello", 'world'
type StringNode struct {
	Token lexer.Token // The STRING token; Literal holds the decoded text
}

func (node *StringNode) PosStart() *position.Position { return node.Token.PosStart }
func (node *StringNode) PosEnd() *position.Position   { return node.Token.PosEnd }
func (node *StringNode) Literal() string              { return fmt.Sprintf("%q", node.Token.Literal) }

// VariableAccessNode reads a variable from the scope chain.
// Example: x, total
type VariableAccessNode struct {
	NameToken lexer.Token // The IDENTIFIER token holding the name
}

func (node *VariableAccessNode) PosStart() *position.Position { return node.NameToken.PosStart }
func (node *VariableAccessNode) PosEnd() *position.Position   { return node.NameToken.PosEnd }
func (node *VariableAccessNode) Literal() string              { return node.NameToken.Literal }

// VariableAssignNode binds a value in the current frame.
// Example: set x = 10
type VariableAssignNode struct {
	NameToken lexer.Token // The IDENTIFIER being bound
	ValueNode Node        // The right-hand side expression
}

func (node *VariableAssignNode) PosStart() *position.Position { return node.NameToken.PosStart }
func (node *VariableAssignNode) PosEnd() *position.Position   { return node.ValueNode.PosEnd() }
func (node *VariableAssignNode) Literal() string {
	return fmt.Sprintf("(set %s = %s)", node.NameToken.Literal, node.ValueNode.Literal())
}

// BinOpNode represents a binary operation.
// Example: 1 + 2, a == b, xs ? 0
type BinOpNode struct {
	Left     Node        // Left operand
	Operator lexer.Token // The operator token (or an and/or KEYWORD token)
	Right    Node        // Right operand
}

func (node *BinOpNode) PosStart() *position.Position { return node.Left.PosStart() }
func (node *BinOpNode) PosEnd() *position.Position   { return node.Right.PosEnd() }
func (node *BinOpNode) Literal() string {
	return fmt.Sprintf("(%s, %s, %s)", node.Left.Literal(), node.Operator.String(), node.Right.Literal())
}

// UnaryOpNode represents a prefix operation.
// Example: -x, +1, not flag
type UnaryOpNode struct {
	Operator lexer.Token // MINUS, PLUS or the 'not' keyword
	Operand  Node        // The operand expression
}

func (node *UnaryOpNode) PosStart() *position.Position { return node.Operator.PosStart }
func (node *UnaryOpNode) PosEnd() *position.Position   { return node.Operand.PosEnd() }
func (node *UnaryOpNode) Literal() string {
	return fmt.Sprintf("(%s, %s)", node.Operator.String(), node.Operand.Literal())
}

// IfCase is one (condition, body) branch of an if/elif chain.
// ReturnNull is set for block-form branches, whose value is always null.
type IfCase struct {
	Condition  Node // The branch condition
	Body       Node // The branch body (statement or statement sequence)
	ReturnNull bool // true for block form, false for inline form
}

// ElseCase is the optional trailing else branch.
type ElseCase struct {
	Body       Node // The else body
	ReturnNull bool // true for block form, false for inline form
}

// IfNode represents an if/elif/else chain.
type IfNode struct {
	Cases []IfCase  // The if and elif branches, in source order
	Else  *ElseCase // The optional else branch
}

func (node *IfNode) PosStart() *position.Position { return node.Cases[0].Condition.PosStart() }
func (node *IfNode) PosEnd() *position.Position {
	if node.Else != nil {
		return node.Else.Body.PosEnd()
	}
	return node.Cases[len(node.Cases)-1].Body.PosEnd()
}
func (node *IfNode) Literal() string {
	return fmt.Sprintf("(if %s then %s)", node.Cases[0].Condition.Literal(), node.Cases[0].Body.Literal())
}

// ForNode represents a counted loop.
// StepNode is nil when the step clause is omitted (default step 1).
// Example: for i = 1 to 5 then ... / for i = 9 to 0 step -1 then ...
type ForNode struct {
	VarToken   lexer.Token // The loop variable identifier
	StartNode  Node        // Initial value expression
	EndNode    Node        // Exclusive end bound expression
	StepNode   Node        // Step expression, nil for the default
	Body       Node        // Loop body
	ReturnNull bool        // true for block form, false for inline form
}

func (node *ForNode) PosStart() *position.Position { return node.VarToken.PosStart }
func (node *ForNode) PosEnd() *position.Position   { return node.Body.PosEnd() }
func (node *ForNode) Literal() string {
	return fmt.Sprintf("(for %s = %s to %s)", node.VarToken.Literal, node.StartNode.Literal(), node.EndNode.Literal())
}

// WhileNode represents a condition-driven loop.
type WhileNode struct {
	Condition  Node // Re-evaluated before each iteration
	Body       Node // Loop body
	ReturnNull bool // true for block form, false for inline form
}

func (node *WhileNode) PosStart() *position.Position { return node.Condition.PosStart() }
func (node *WhileNode) PosEnd() *position.Position   { return node.Body.PosEnd() }
func (node *WhileNode) Literal() string {
	return fmt.Sprintf("(while %s then %s)", node.Condition.Literal(), node.Body.Literal())
}

// FuncDefNode represents a function definition, named or anonymous.
// AutoReturn is set for the inline arrow form, whose body expression
// value becomes the call result.
// Example: func add(a, b) -> a + b
type FuncDefNode struct {
	NameToken  *lexer.Token  // The function name, nil for anonymous functions
	ArgTokens  []lexer.Token // Parameter name identifiers
	Body       Node          // Body expression (arrow form) or statement sequence
	AutoReturn bool          // true for the arrow form
}

func (node *FuncDefNode) PosStart() *position.Position {
	if node.NameToken != nil {
		return node.NameToken.PosStart
	}
	if len(node.ArgTokens) > 0 {
		return node.ArgTokens[0].PosStart
	}
	return node.Body.PosStart()
}
func (node *FuncDefNode) PosEnd() *position.Position { return node.Body.PosEnd() }
func (node *FuncDefNode) Literal() string {
	name := "<anonymous>"
	if node.NameToken != nil {
		name = node.NameToken.Literal
	}
	args := lo.Map(node.ArgTokens, func(t lexer.Token, _ int) string { return t.Literal })
	return fmt.Sprintf("(func %s(%s))", name, strings.Join(args, ", "))
}

// CallNode represents a call of a user or builtin function.
// Example: fact(5), log("hi")
type CallNode struct {
	Callee Node   // Expression producing the callable
	Args   []Node // Argument expressions, evaluated left to right
}

func (node *CallNode) PosStart() *position.Position { return node.Callee.PosStart() }
func (node *CallNode) PosEnd() *position.Position {
	if len(node.Args) > 0 {
		return node.Args[len(node.Args)-1].PosEnd()
	}
	return node.Callee.PosEnd()
}
func (node *CallNode) Literal() string {
	args := lo.Map(node.Args, func(a Node, _ int) string { return a.Literal() })
	return fmt.Sprintf("(call %s(%s))", node.Callee.Literal(), strings.Join(args, ", "))
}

// ListNode represents a list literal. It doubles as the statement
// sequence node: the program root and every block body are ListNodes
// whose elements are the statements.
type ListNode struct {
	Elements []Node             // Element (or statement) expressions
	StartPos *position.Position // Explicit span: brackets/blocks have no single token
	EndPos   *position.Position
}

func (node *ListNode) PosStart() *position.Position { return node.StartPos }
func (node *ListNode) PosEnd() *position.Position   { return node.EndPos }
func (node *ListNode) Literal() string {
	parts := lo.Map(node.Elements, func(e Node, _ int) string { return e.Literal() })
	return "[" + strings.Join(parts, ", ") + "]"
}

// ReturnNode unwinds to the innermost function call.
// ValueNode is nil for a bare `return`, which returns null.
type ReturnNode struct {
	ValueNode Node // The returned expression, nil for bare return
	StartPos  *position.Position
	EndPos    *position.Position
}

func (node *ReturnNode) PosStart() *position.Position { return node.StartPos }
func (node *ReturnNode) PosEnd() *position.Position   { return node.EndPos }
func (node *ReturnNode) Literal() string {
	if node.ValueNode == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", node.ValueNode.Literal())
}

// ContinueNode skips to the next iteration of the innermost loop.
type ContinueNode struct {
	StartPos *position.Position
	EndPos   *position.Position
}

func (node *ContinueNode) PosStart() *position.Position { return node.StartPos }
func (node *ContinueNode) PosEnd() *position.Position   { return node.EndPos }
func (node *ContinueNode) Literal() string              { return "(continue)" }

// BreakNode terminates the innermost loop.
type BreakNode struct {
	StartPos *position.Position
	EndPos   *position.Position
}

func (node *BreakNode) PosStart() *position.Position { return node.StartPos }
func (node *BreakNode) PosEnd() *position.Position   { return node.EndPos }
func (node *BreakNode) Literal() string              { return "(break)" }
