package query

import (
	"context"
	"slices"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

// Combinations calls visit with every nondecreasing length-k sequence of
// values from 1..n, that is, the multisets of k digits. The
// slice passed to visit is reused between calls.
//
// k == 0 yields a single empty combination.
func Combinations(n, k int, visit func([]int)) {
	combine(n, k, 1, make([]int, 0, k), visit)
}

func combine(n, k, from int, prefix []int, visit func([]int)) {
	if len(prefix) == k {
		visit(prefix)
		return
	}
	for v := from; v <= n; v++ {
		combine(n, k, v, append(prefix, v), visit)
	}
}

// ScanCombos counts solutions for target over every multiset of length
// digits drawn from 1..digitMax, returning the rows whose count falls
// inside the window.
func (r *Runner) ScanCombos(ctx context.Context, length, digitMax, target int, w Window) ([]ComboCount, error) {
	if length < 1 || length > errors.MaxNumbers {
		return nil, errors.New(errors.ErrCodeInvalidInput, "combination length must be 1..%d, got %d", errors.MaxNumbers, length)
	}
	if digitMax < 1 || digitMax > 9 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "digit maximum must be 1..9, got %d", digitMax)
	}
	if target < 1 {
		return nil, errors.New(errors.ErrCodeInvalidTarget, "target must be positive, got %d", target)
	}
	if err := errors.ValidateCountWindow(w.Min, w.Max); err != nil {
		return nil, err
	}

	total := combinationCount(digitMax, length)
	var rows []ComboCount
	var scanErr error
	done := 0
	Combinations(digitMax, length, func(combo []int) {
		if scanErr != nil {
			return
		}
		if err := ctx.Err(); err != nil {
			scanErr = err
			return
		}
		n, err := r.Count(ctx, combo, target)
		if err != nil {
			scanErr = err
			return
		}
		if w.Contains(n) {
			rows = append(rows, ComboCount{Numbers: slices.Clone(combo), Count: n})
		}
		done++
		r.step(done, total)
	})
	if scanErr != nil {
		return nil, scanErr
	}
	r.logger.Debug("combination scan finished", "combos", total, "hits", len(rows))
	return rows, nil
}

// combinationCount is C(n+k-1, k), the number of k-multisets over n digits.
func combinationCount(n, k int) int {
	count := 1
	for i := 1; i <= k; i++ {
		count = count * (n + i - 1) / i
	}
	return count
}
