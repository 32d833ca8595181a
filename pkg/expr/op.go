package expr

import (
	"cmp"
	"slices"
)

// Op describes one binary arithmetic operator: its display symbol, its
// evaluation rule, and whether it is commutative and associative
// ("groupable"). The operator set is closed; the four instances below are
// the only ones.
type Op struct {
	Symbol    string
	Groupable bool
	apply     func(a, b Result) Result
}

// The four operators. Subtraction is valid only when the result is not
// negative; division only when the divisor is nonzero and divides exactly.
var (
	Add = &Op{Symbol: "+", Groupable: true, apply: evalAdd}
	Sub = &Op{Symbol: "-", apply: evalSub}
	Mul = &Op{Symbol: "×", Groupable: true, apply: evalMul}
	Div = &Op{Symbol: "÷", apply: evalDiv}
)

// Ops lists every operator, in the order candidates are generated.
var Ops = []*Op{Add, Sub, Mul, Div}

func evalAdd(a, b Result) Result {
	return Result{Value: a.Value + b.Value, Valid: a.Valid && b.Valid}
}

func evalSub(a, b Result) Result {
	return Result{Value: a.Value - b.Value, Valid: a.Valid && b.Valid && a.Value >= b.Value}
}

func evalMul(a, b Result) Result {
	return Result{Value: a.Value * b.Value, Valid: a.Valid && b.Valid}
}

func evalDiv(a, b Result) Result {
	if b.Value == 0 {
		return Result{Value: 0, Valid: false}
	}
	return Result{Value: a.Value / b.Value, Valid: a.Valid && b.Valid && a.Value%b.Value == 0}
}

// New combines two operand nodes under op, producing the canonical node.
//
// For a groupable operator the operands are flattened (a child built with
// the same operator contributes its own operand list instead of itself) and
// sorted, so any two mathematically equivalent groupings construct the
// identical structure. Non-groupable operators keep the two operands as
// given.
func (op *Op) New(left, right Node) *Expr {
	if !op.Groupable {
		return &Expr{Op: op, Operands: []Node{left, right}}
	}
	operands := make([]Node, 0, 4)
	operands = op.appendFlat(operands, left)
	operands = op.appendFlat(operands, right)
	slices.SortStableFunc(operands, compareOperands)
	return &Expr{Op: op, Operands: operands}
}

// appendFlat appends n's operands if n is an application of the same
// operator, otherwise n itself. One level suffices: every Expr is built
// through New, so same-operator children are already flat.
func (op *Op) appendFlat(dst []Node, n Node) []Node {
	if e, ok := n.(*Expr); ok && e.Op == op {
		return append(dst, e.Operands...)
	}
	return append(dst, n)
}

// compareOperands orders operands by evaluated value, with a literal
// sorting before a sub-expression of the same value. An invalid result
// orders as value zero. The value-and-rank key replaces the fractional
// offset trick some implementations use for the literal-first tie-break,
// which stops being an ordering once values grow large enough.
//
// Two distinct sub-expressions of equal value tie on both parts, so
// their signatures break the tie. Without that the order would depend
// on construction order: (1+5)×(2+4) and (2+4)×(1+5) would keep their
// operand order and survive as two signatures for one expression.
func compareOperands(a, b Node) int {
	av, ar := sortKey(a)
	bv, br := sortKey(b)
	if av != bv {
		return cmp.Compare(av, bv)
	}
	if ar != br {
		return cmp.Compare(ar, br)
	}
	return cmp.Compare(a.Signature(), b.Signature())
}

func sortKey(n Node) (value, rank int) {
	if r := n.Eval(); r.Valid {
		value = r.Value
	}
	if _, ok := n.(Num); !ok {
		rank = 1
	}
	return value, rank
}
