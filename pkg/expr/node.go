package expr

import (
	"strconv"
	"strings"
)

// Result is the outcome of evaluating a node: an integer value plus a
// validity flag. Invalid results keep flowing through the arithmetic (any
// invalid operand makes the whole result invalid) so that a candidate
// expression can be discarded at the end without error handling inside the
// search loop.
type Result struct {
	Value int
	Valid bool
}

// Node is one node of an arithmetic expression tree. The variant set is
// closed: a Node is either a [Num] leaf or an [Expr] operator application.
// Nodes are immutable once constructed.
type Node interface {
	// Eval computes the node's value with validity propagation.
	Eval() Result

	// Signature returns the canonical structural identity of the node.
	// Two nodes are semantic duplicates exactly when their signatures
	// are equal.
	Signature() string

	// String renders the canonical parenthesized infix form.
	String() string

	node()
}

// Num is a leaf holding a single integer. It always evaluates valid.
type Num struct {
	Value int
}

func (n Num) node() {}

// Eval returns the literal value, always valid.
func (n Num) Eval() Result { return Result{Value: n.Value, Valid: true} }

// Signature of a leaf is its decimal value.
func (n Num) Signature() string { return strconv.Itoa(n.Value) }

// String renders the bare value without parentheses.
func (n Num) String() string { return strconv.Itoa(n.Value) }

// Expr is an operator applied to an ordered list of operand nodes. Always
// build Expr values through [Op.New]: it flattens and sorts the operands of
// groupable operators so that every Expr in circulation is canonical.
//
// A groupable Expr never contains an immediate child built with the same
// operator, and may hold more than two operands. Non-groupable operators
// hold exactly two.
type Expr struct {
	Op       *Op
	Operands []Node
}

func (e *Expr) node() {}

// Eval folds the operands left to right through the operator. For the
// groupable operators the fold order is irrelevant; for - and ÷ there are
// exactly two operands.
func (e *Expr) Eval() Result {
	acc := e.Operands[0].Eval()
	for _, operand := range e.Operands[1:] {
		acc = e.Op.apply(acc, operand.Eval())
	}
	return acc
}

// Signature is the operator symbol followed by the operand signatures, in
// the operands' canonical order.
func (e *Expr) Signature() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.Op.Symbol)
	for _, operand := range e.Operands {
		sb.WriteByte(' ')
		sb.WriteString(operand.Signature())
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the fully parenthesized infix form, n-ary for groupable
// operators: "(1 + 2 + 3)", "((5 - 3) × 2)".
func (e *Expr) String() string {
	parts := make([]string, len(e.Operands))
	for i, operand := range e.Operands {
		parts[i] = operand.String()
	}
	return "(" + strings.Join(parts, " "+e.Op.Symbol+" ") + ")"
}
