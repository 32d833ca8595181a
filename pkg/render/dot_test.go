package render

import (
	"strings"
	"testing"

	"github.com/ldo/make-expr-answer/pkg/expr"
)

func TestToDOTLeaf(t *testing.T) {
	dot := ToDOT(expr.Num{Value: 7})

	if !strings.HasPrefix(dot, "digraph expression {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, `label="7"`) {
		t.Errorf("leaf label missing:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("leaf should have no edges:\n%s", dot)
	}
}

func TestToDOTTree(t *testing.T) {
	// (2 × (3 + 4))
	tree := expr.Mul.New(expr.Num{Value: 2}, expr.Add.New(expr.Num{Value: 3}, expr.Num{Value: 4}))
	dot := ToDOT(tree)

	for _, want := range []string{`label="×"`, `label="+"`, `label="2"`, `label="3"`, `label="4"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %s in DOT:\n%s", want, dot)
		}
	}

	// Root × has two children, + has two: four edges total.
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("edge count = %d, want 4:\n%s", got, dot)
	}
	// Operand order in the DOT source must follow the canonical order.
	if !strings.Contains(dot, "ordering=out") {
		t.Error("ordering=out missing")
	}
}
