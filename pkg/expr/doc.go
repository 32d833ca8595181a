// Package expr enumerates arithmetic expressions over a bag of positive
// integers and reports those that evaluate to a target value.
//
// # Overview
//
// Given numbers and a target, [Solve] builds every binary expression tree
// over every distinct ordering of the numbers, using each number exactly
// once with the four operators +, -, × and ÷. Expressions that are
// algebraically identical under commutativity and associativity are
// collapsed to a single canonical form and emitted once.
//
// # Canonical form
//
// The commutative-and-associative operators (+ and ×) are "groupable":
// nested applications of the same operator are flattened into one n-ary
// node at construction time, and the operands are sorted into a canonical
// order. As a result ((1+2)+3), (3+(2+1)) and every other regrouping all
// reduce to the single node (1 + 2 + 3). Subtraction and division keep
// their two operands in the given order.
//
// # Arithmetic rules
//
// Every evaluation carries a validity flag alongside its value. Subtraction
// is valid only when it does not go negative, division only when it is
// exact and the divisor is nonzero, and invalidity propagates upward.
// Invalid candidates are silently excluded from the output; they are data,
// not errors.
//
// # Usage
//
//	err := expr.Solve([]int{2, 3, 5}, 13, func(match string) {
//	    fmt.Println(match)
//	})
//
// Each match arrives at the sink formatted as "(2 + 3) = 5" style
// parenthesized infix with a trailing "= target".
//
// For large inputs a [Solver] with Workers > 1 spreads the permutations
// across a goroutine pool; the set of emitted matches is unchanged but
// their order becomes unspecified.
package expr
