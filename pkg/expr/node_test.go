package expr

import "testing"

func TestNumEval(t *testing.T) {
	n := Num{Value: 7}
	if got := n.Eval(); got != (Result{Value: 7, Valid: true}) {
		t.Errorf("Eval = %+v", got)
	}
	if got := n.String(); got != "7" {
		t.Errorf("String = %q, want 7", got)
	}
	if got := n.Signature(); got != "7" {
		t.Errorf("Signature = %q, want 7", got)
	}
}

func TestExprStringNested(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "SumOfProductAndDifference",
			node: Add.New(Mul.New(Num{Value: 4}, Num{Value: 5}), Sub.New(Num{Value: 9}, Num{Value: 2})),
			want: "((9 - 2) + (4 × 5))",
		},
		{
			name: "QuotientOfSums",
			node: Div.New(Add.New(Num{Value: 6}, Num{Value: 4}), Num{Value: 2}),
			want: "((4 + 6) ÷ 2)",
		},
		{
			name: "TernaryProduct",
			node: Mul.New(Mul.New(Num{Value: 2}, Num{Value: 3}), Num{Value: 4}),
			want: "(2 × 3 × 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNAryEvalFoldsAllOperands(t *testing.T) {
	n := Add.New(Add.New(Num{Value: 1}, Num{Value: 2}), Add.New(Num{Value: 3}, Num{Value: 4}))
	if len(n.Operands) != 4 {
		t.Fatalf("operand count = %d, want 4", len(n.Operands))
	}
	if got := n.Eval(); got != (Result{Value: 10, Valid: true}) {
		t.Errorf("Eval = %+v, want 10 valid", got)
	}
}
