package query

import (
	"context"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

// Range is an inclusive run of consecutive achievable targets.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// LargestTotal returns the largest value reachable from the numbers:
// the product of everything except the ones, plus the count of ones.
// Multiplying by 1 never grows a product, so ones are summed instead:
// (1,1,5) tops out at 1+1+5 = 7, not 1×1×5 = 5.
func LargestTotal(numbers []int) int {
	ones := 0
	product := 1
	rest := false
	for _, n := range numbers {
		if n == 1 {
			ones++
		} else {
			product *= n
			rest = true
		}
	}
	if !rest {
		return ones
	}
	return ones + product
}

// Coverage scans targets 1..LargestTotal(numbers) and returns the
// contiguous runs of achievable targets, plus the scanned upper bound.
//
// An unachievable target 1 does not produce an empty leading range; the
// first range simply starts at the first achievable target. When stopAtGap
// is set the scan ends at the first unachievable target, so at most one
// range comes back; an empty result means target 1 itself was a gap.
func (r *Runner) Coverage(ctx context.Context, numbers []int, stopAtGap bool) ([]Range, int, error) {
	if err := errors.ValidateNumbers(numbers); err != nil {
		return nil, 0, err
	}

	limit := LargestTotal(numbers)
	var ranges []Range
	open := false
	for target := 1; target <= limit; target++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		n, err := r.Count(ctx, numbers, target)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case n > 0 && open:
			ranges[len(ranges)-1].To = target
		case n > 0:
			ranges = append(ranges, Range{From: target, To: target})
			open = true
		default:
			if stopAtGap {
				r.step(limit, limit)
				return ranges, limit, nil
			}
			open = false
		}
		r.step(target, limit)
	}
	return ranges, limit, nil
}
