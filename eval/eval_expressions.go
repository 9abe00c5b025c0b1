/*
File    : go-fresh/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"strings"

	"github.com/akashmaji946/go-fresh/errors"
	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/parser"
	"github.com/akashmaji946/go-fresh/scope"
)

// evalListNode evaluates a list literal or a statement sequence (the
// two share one node kind): every element is evaluated in order and
// collected into a List value.
func (e *Evaluator) evalListNode(n *parser.ListNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()
	elements := make([]objects.FreshObject, 0, len(n.Elements))

	for _, elementNode := range n.Elements {
		element := res.Register(e.Eval(elementNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		elements = append(elements, element)
	}

	return res.Success(objects.NewList(elements))
}

// evalVariableAccess looks a name up through the scope chain.
// An unbound name is a RuntimeError.
func (e *Evaluator) evalVariableAccess(n *parser.VariableAccessNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()
	name := n.NameToken.Literal

	value, ok := ctx.Symbols.LookUp(name)
	if !ok {
		return res.Failure(errors.NewRTError(
			n.PosStart(), n.PosEnd(),
			name+" is not defined.", ctx))
	}

	return res.Success(copyValue(value))
}

// evalVariableAssign evaluates the right-hand side and binds it in the
// current frame. A List result is snapshot-cloned first, so the new
// binding is detached from later in-place mutations of the source
// list.
func (e *Evaluator) evalVariableAssign(n *parser.VariableAssignNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	value := res.Register(e.Eval(n.ValueNode, ctx))
	if res.ShouldReturn() {
		return res
	}

	if list, ok := value.(*objects.List); ok {
		value = list.CloneElements()
	}

	ctx.Symbols.Bind(n.NameToken.Literal, value)
	return res.Success(value)
}

// evalBinOp evaluates both operands left to right and applies the
// operator via applyBinaryOp.
func (e *Evaluator) evalBinOp(n *parser.BinOpNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	left := res.Register(e.Eval(n.Left, ctx))
	if res.ShouldReturn() {
		return res
	}
	right := res.Register(e.Eval(n.Right, ctx))
	if res.ShouldReturn() {
		return res
	}

	result, err := e.applyBinaryOp(n, left, right, ctx)
	if err != nil {
		return res.Failure(err)
	}
	return res.Success(result)
}

// evalUnaryOp applies a prefix operator. Unary minus is multiplication
// by -1 through the regular dispatch (so it also "repeats" strings
// into emptiness, like the binary form); unary plus is the identity;
// `not` inverts a Number's truthiness and is illegal on anything else.
func (e *Evaluator) evalUnaryOp(n *parser.UnaryOpNode, ctx *scope.Context) *RuntimeResult {
	res := NewRuntimeResult()

	value := res.Register(e.Eval(n.Operand, ctx))
	if res.ShouldReturn() {
		return res
	}

	switch {
	case n.Operator.Type == lexer.MINUS_OP:
		result, err := e.multiply(n, value, objects.NewNumber(-1), ctx)
		if err != nil {
			return res.Failure(err)
		}
		return res.Success(result)

	case n.Operator.Matches(lexer.KEYWORD_ID, "not"):
		number, ok := value.(*objects.Number)
		if !ok {
			return res.Failure(e.illegalOperation(n, ctx))
		}
		return res.Success(objects.BoolNumber(number.Value == 0))
	}

	return res.Success(value)
}

// illegalOperation raises the standard cross-type error over the
// node's whole span.
func (e *Evaluator) illegalOperation(node parser.Node, ctx *scope.Context) *errors.Error {
	return errors.NewRTError(node.PosStart(), node.PosEnd(), "Illegal operation", ctx)
}

// applyBinaryOp dispatches a binary operator over the operand kinds.
// Cross-type combinations outside the defined table are "Illegal
// operation" errors; the equality operators are total and compare
// mismatched kinds as unequal.
func (e *Evaluator) applyBinaryOp(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	op := n.Operator

	switch {
	case op.Type == lexer.PLUS_OP:
		return e.add(n, left, right, ctx)
	case op.Type == lexer.MINUS_OP:
		return e.subtract(n, left, right, ctx)
	case op.Type == lexer.MUL_OP:
		return e.multiply(n, left, right, ctx)
	case op.Type == lexer.DIV_OP:
		return e.divide(n, left, right, ctx)
	case op.Type == lexer.POW_OP:
		return e.power(n, left, right, ctx)
	case op.Type == lexer.QUESTION_OP:
		return e.query(n, left, right, ctx)
	case op.Type == lexer.EQ_OP:
		return e.compareEquals(left, right, false), nil
	case op.Type == lexer.NE_OP:
		return e.compareEquals(left, right, true), nil
	case op.Type == lexer.LT_OP, op.Type == lexer.LE_OP, op.Type == lexer.GT_OP, op.Type == lexer.GE_OP:
		return e.compareOrdered(n, left, right, ctx)
	case op.Matches(lexer.KEYWORD_ID, "and"):
		return e.logicalAnd(n, left, right, ctx)
	case op.Matches(lexer.KEYWORD_ID, "or"):
		return e.logicalOr(n, left, right, ctx)
	}

	return nil, e.illegalOperation(n, ctx)
}

// add implements '+': numeric addition, string concatenation, and list
// append-as-new-list.
func (e *Evaluator) add(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return objects.NewNumber(l.Value + r.Value), nil
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return objects.NewString(l.Value + r.Value), nil
		}
	case *objects.List:
		// List + value produces a new list; the operand list is untouched
		newList := l.CloneElements()
		newList.Append(right)
		return newList, nil
	}
	return nil, e.illegalOperation(n, ctx)
}

// subtract implements '-': numeric subtraction, substring removal, and
// list element removal by index (as a new list).
func (e *Evaluator) subtract(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return objects.NewNumber(l.Value - r.Value), nil
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return objects.NewString(strings.ReplaceAll(l.Value, r.Value, "")), nil
		}
	case *objects.List:
		if r, ok := right.(*objects.Number); ok {
			newList := l.CloneElements()
			idx, ok := newList.NormalizeIndex(r.Value)
			if !ok {
				return nil, errors.NewRTError(n.PosStart(), n.PosEnd(), "Index out of bounds", ctx)
			}
			newList.RemoveAt(idx)
			return newList, nil
		}
	}
	return nil, e.illegalOperation(n, ctx)
}

// multiply implements '*': numeric multiplication, string repetition,
// and list concatenation (as a new list).
func (e *Evaluator) multiply(n parser.Node, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return objects.NewNumber(l.Value * r.Value), nil
		}
	case *objects.String:
		if r, ok := right.(*objects.Number); ok {
			count := int(r.Value)
			if count < 1 {
				return objects.NewString(""), nil
			}
			return objects.NewString(strings.Repeat(l.Value, count)), nil
		}
	case *objects.List:
		if r, ok := right.(*objects.List); ok {
			newList := l.CloneElements()
			newList.Extend(r)
			return newList, nil
		}
	}
	return nil, e.illegalOperation(n, ctx)
}

// divide implements '/': the real quotient of two Numbers. A zero
// divisor is a RuntimeError.
func (e *Evaluator) divide(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, e.illegalOperation(n, ctx)
	}
	if r.Value == 0 {
		return nil, errors.NewRTError(n.PosStart(), n.PosEnd(), "Division by zero", ctx)
	}
	return objects.NewNumber(l.Value / r.Value), nil
}

// power implements '^' on Numbers.
func (e *Evaluator) power(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, e.illegalOperation(n, ctx)
	}
	return objects.NewNumber(math.Pow(l.Value, r.Value)), nil
}

// query implements '?': list indexing. Negative indices count from the
// end; anything out of range (or not an integer) is an error.
func (e *Evaluator) query(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	l, lok := left.(*objects.List)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, e.illegalOperation(n, ctx)
	}
	idx, ok := l.NormalizeIndex(r.Value)
	if !ok {
		return nil, errors.NewRTError(n.PosStart(), n.PosEnd(), "Index out of bounds", ctx)
	}
	return l.Items()[idx], nil
}

// compareEquals implements '==' and '!='. Same-kind Numbers and
// Strings compare by value; every mismatched pairing is simply
// unequal.
func (e *Evaluator) compareEquals(left, right objects.FreshObject, negate bool) *objects.Number {
	equal := false
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			equal = l.Value == r.Value
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			equal = l.Value == r.Value
		}
	}
	if negate {
		return objects.BoolNumber(!equal)
	}
	return objects.BoolNumber(equal)
}

// compareOrdered implements '<', '<=', '>', '>=' on Numbers.
func (e *Evaluator) compareOrdered(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return nil, e.illegalOperation(n, ctx)
	}

	var result bool
	switch n.Operator.Type {
	case lexer.LT_OP:
		result = l.Value < r.Value
	case lexer.LE_OP:
		result = l.Value <= r.Value
	case lexer.GT_OP:
		result = l.Value > r.Value
	case lexer.GE_OP:
		result = l.Value >= r.Value
	}
	return objects.BoolNumber(result), nil
}

// logicalAnd implements 'and'. On Numbers the falsy operand wins,
// otherwise the right one, truncated to an integer; on Strings the
// result is the 0/1 truthiness conjunction. Mixed kinds are illegal.
func (e *Evaluator) logicalAnd(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			selected := r.Value
			if l.Value == 0 {
				selected = l.Value
			}
			return objects.NewNumber(math.Trunc(selected)), nil
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return objects.BoolNumber(l.IsTrue() && r.IsTrue()), nil
		}
	}
	return nil, e.illegalOperation(n, ctx)
}

// logicalOr implements 'or'. On Numbers the truthy operand wins,
// otherwise the right one, truncated to an integer; on Strings the
// result is the 0/1 truthiness disjunction. Mixed kinds are illegal.
func (e *Evaluator) logicalOr(n *parser.BinOpNode, left, right objects.FreshObject, ctx *scope.Context) (objects.FreshObject, *errors.Error) {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			selected := r.Value
			if l.Value != 0 {
				selected = l.Value
			}
			return objects.NewNumber(math.Trunc(selected)), nil
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return objects.BoolNumber(l.IsTrue() || r.IsTrue()), nil
		}
	}
	return nil, e.illegalOperation(n, ctx)
}
