package query

import (
	"context"
	"slices"
	"testing"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

func TestCombinations(t *testing.T) {
	var got [][]int
	Combinations(3, 2, func(combo []int) {
		got = append(got, slices.Clone(combo))
	})
	want := [][]int{{1, 1}, {1, 2}, {1, 3}, {2, 2}, {2, 3}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCombinationsEmpty(t *testing.T) {
	calls := 0
	Combinations(5, 0, func(combo []int) {
		calls++
		if len(combo) != 0 {
			t.Errorf("combo = %v, want empty", combo)
		}
	})
	if calls != 1 {
		t.Errorf("k=0 yielded %d combinations, want 1", calls)
	}
}

func TestCombinationCount(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{3, 2, 6},  // C(4,2)
		{9, 4, 495},
		{1, 3, 1},
		{5, 1, 5},
	}
	for _, tt := range tests {
		if got := combinationCount(tt.n, tt.k); got != tt.want {
			t.Errorf("combinationCount(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestScanCombos(t *testing.T) {
	r := newTestRunner(t)
	rows, err := r.ScanCombos(context.Background(), 2, 3, 2, Window{Min: 1})
	if err != nil {
		t.Fatalf("ScanCombos error: %v", err)
	}

	// Pairs from 1..3 reaching 2: (1,1) via 1+1; (1,2) via 1×2 and 2÷1;
	// (1,3) via 3-1. The remaining pairs have no solution.
	want := []ComboCount{
		{Numbers: []int{1, 1}, Count: 1},
		{Numbers: []int{1, 2}, Count: 2},
		{Numbers: []int{1, 3}, Count: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
	for i := range want {
		if !slices.Equal(rows[i].Numbers, want[i].Numbers) || rows[i].Count != want[i].Count {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestScanCombosValidation(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.ScanCombos(ctx, 0, 9, 10, Window{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero length: err = %v, want INVALID_INPUT", err)
	}
	if _, err := r.ScanCombos(ctx, 3, 12, 10, Window{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("digit max 12: err = %v, want INVALID_INPUT", err)
	}
	if _, err := r.ScanCombos(ctx, 3, 9, 0, Window{}); !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("zero target: err = %v, want INVALID_TARGET", err)
	}
}
