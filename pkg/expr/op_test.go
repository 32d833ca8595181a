package expr

import "testing"

func TestOperatorEval(t *testing.T) {
	tests := []struct {
		name string
		op   *Op
		a, b int
		want Result
	}{
		{"Add", Add, 2, 3, Result{Value: 5, Valid: true}},
		{"Sub", Sub, 5, 3, Result{Value: 2, Valid: true}},
		{"SubEqual", Sub, 3, 3, Result{Value: 0, Valid: true}},
		{"SubNegative", Sub, 3, 5, Result{Value: -2, Valid: false}},
		{"Mul", Mul, 4, 6, Result{Value: 24, Valid: true}},
		{"DivExact", Div, 6, 3, Result{Value: 2, Valid: true}},
		{"DivInexact", Div, 5, 3, Result{Value: 1, Valid: false}},
		{"DivByZero", Div, 5, 0, Result{Value: 0, Valid: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.New(Num{Value: tt.a}, Num{Value: tt.b}).Eval()
			if got != tt.want {
				t.Errorf("%d %s %d = %+v, want %+v", tt.a, tt.op.Symbol, tt.b, got, tt.want)
			}
		})
	}
}

func TestInvalidityPropagates(t *testing.T) {
	// (3 - 5) is invalid; anything containing it must be too.
	bad := Sub.New(Num{Value: 3}, Num{Value: 5})
	for _, op := range Ops {
		if got := op.New(bad, Num{Value: 2}).Eval(); got.Valid {
			t.Errorf("%s over an invalid operand evaluated valid: %+v", op.Symbol, got)
		}
	}
}

func TestGroupableFlags(t *testing.T) {
	if !Add.Groupable || !Mul.Groupable {
		t.Error("+ and × must be groupable")
	}
	if Sub.Groupable || Div.Groupable {
		t.Error("- and ÷ must not be groupable")
	}
}

func TestNewCanonicalizesOperandOrder(t *testing.T) {
	a := Add.New(Num{Value: 2}, Num{Value: 3})
	b := Add.New(Num{Value: 3}, Num{Value: 2})
	if a.Signature() != b.Signature() {
		t.Errorf("2+3 and 3+2 differ: %q vs %q", a.Signature(), b.Signature())
	}
	if got := a.Signature(); got != "(+ 2 3)" {
		t.Errorf("signature = %q, want (+ 2 3)", got)
	}
}

func TestNewFlattensSameOperator(t *testing.T) {
	// ((1+2)+3) and (1+(2+3)) both reduce to the 3-ary sum.
	left := Add.New(Add.New(Num{Value: 1}, Num{Value: 2}), Num{Value: 3})
	right := Add.New(Num{Value: 1}, Add.New(Num{Value: 2}, Num{Value: 3}))

	if len(left.Operands) != 3 {
		t.Fatalf("flattened operand count = %d, want 3", len(left.Operands))
	}
	if left.Signature() != right.Signature() {
		t.Errorf("groupings differ: %q vs %q", left.Signature(), right.Signature())
	}
	if got := left.String(); got != "(1 + 2 + 3)" {
		t.Errorf("String = %q, want (1 + 2 + 3)", got)
	}
}

func TestNewDoesNotFlattenAcrossOperators(t *testing.T) {
	// A product inside a sum stays a nested node.
	n := Add.New(Mul.New(Num{Value: 2}, Num{Value: 3}), Num{Value: 6})
	if len(n.Operands) != 2 {
		t.Fatalf("operand count = %d, want 2", len(n.Operands))
	}
	// Literal 6 sorts before the sub-expression of equal value.
	if got := n.String(); got != "(6 + (2 × 3))" {
		t.Errorf("String = %q, want (6 + (2 × 3))", got)
	}
}

func TestNewKeepsNonGroupableOrder(t *testing.T) {
	n := Sub.New(Num{Value: 3}, Num{Value: 5})
	if got := n.String(); got != "(3 - 5)" {
		t.Errorf("String = %q, want (3 - 5)", got)
	}
	if got := n.Signature(); got != "(- 3 5)" {
		t.Errorf("Signature = %q, want (- 3 5)", got)
	}
}

func TestNewOrdersEqualValueSubexpressions(t *testing.T) {
	// (1+5) and (2+4) both evaluate to 6; their signatures break the
	// tie, so both construction orders yield one canonical product.
	six := Add.New(Num{Value: 1}, Num{Value: 5})
	alsoSix := Add.New(Num{Value: 2}, Num{Value: 4})

	a := Mul.New(six, alsoSix)
	b := Mul.New(alsoSix, six)
	if a.Signature() != b.Signature() {
		t.Errorf("operand orders differ: %q vs %q", a.Signature(), b.Signature())
	}
	if got := a.String(); got != "((1 + 5) × (2 + 4))" {
		t.Errorf("String = %q, want ((1 + 5) × (2 + 4))", got)
	}
}

func TestInvalidOperandSortsAsZero(t *testing.T) {
	// (2 - 5) is invalid, so it orders ahead of the literal 1.
	n := Add.New(Num{Value: 1}, Sub.New(Num{Value: 2}, Num{Value: 5}))
	if got := n.String(); got != "((2 - 5) + 1)" {
		t.Errorf("String = %q, want ((2 - 5) + 1)", got)
	}
}
