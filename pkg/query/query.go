// Package query builds aggregate searches on top of the expression
// enumeration core: per-target solution counts, scans over target ranges
// and digit combinations, and achievable-target coverage reports.
//
// The package consumes [expr.Solve] exclusively through its sink contract;
// no query here reaches into the enumeration itself. Counts can be
// memoized through a [cache.Cache] so overlapping scans stay cheap.
package query

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ldo/make-expr-answer/pkg/cache"
	"github.com/ldo/make-expr-answer/pkg/errors"
	"github.com/ldo/make-expr-answer/pkg/expr"
)

// countTTL bounds the life of memoized counts. The counts themselves never
// go stale, but a TTL keeps abandoned number sets from accumulating in the
// file cache forever.
const countTTL = 30 * 24 * time.Hour

// Window filters scan output by solution count. Max == 0 means unbounded
// above, so the zero value accepts everything.
type Window struct {
	Min int
	Max int
}

// Contains reports whether a solution count falls inside the window.
func (w Window) Contains(n int) bool {
	if n < w.Min {
		return false
	}
	return w.Max == 0 || n <= w.Max
}

// TargetCount is one row of a target-range scan.
type TargetCount struct {
	Target int `json:"target"`
	Count  int `json:"count"`
}

// ComboCount is one row of a digit-combination scan.
type ComboCount struct {
	Numbers []int `json:"numbers"`
	Count   int   `json:"count"`
}

// Runner drives aggregate queries, memoizing per-target counts through an
// optional cache and reporting scan progress through an optional callback.
type Runner struct {
	cache  cache.Cache
	solver expr.Solver
	logger *log.Logger

	// Progress, when set, is called after each completed target with the
	// number of targets done and the total. Used by the CLI progress view.
	Progress func(done, total int)
}

// NewRunner creates a query runner. A nil cache disables memoization and a
// nil logger discards log output.
func NewRunner(c cache.Cache, solver expr.Solver, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(nil)
	}
	return &Runner{cache: c, solver: solver, logger: logger}
}

// Count returns the number of semantically distinct expressions over
// numbers that evaluate to target.
func Count(numbers []int, target int) (int, error) {
	return expr.Solver{}.Count(numbers, target)
}

// Count is the memoizing variant of the package-level [Count]. Cache
// failures degrade to a fresh search rather than failing the query.
func (r *Runner) Count(ctx context.Context, numbers []int, target int) (int, error) {
	key := cache.Key("count", numbers, target)

	if data, ok, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Debug("count cache read failed", "err", err)
	} else if ok {
		if n, err := strconv.Atoi(string(data)); err == nil {
			return n, nil
		}
	}

	n, err := r.solver.Count(numbers, target)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Set(ctx, key, []byte(strconv.Itoa(n)), countTTL); err != nil {
		r.logger.Debug("count cache write failed", "err", err)
	}
	return n, nil
}

// ScanTargets counts solutions for every target in the inclusive range
// [from, to] and returns the rows whose count falls inside the window.
func (r *Runner) ScanTargets(ctx context.Context, numbers []int, from, to int, w Window) ([]TargetCount, error) {
	if err := errors.ValidateNumbers(numbers); err != nil {
		return nil, err
	}
	if err := errors.ValidateTargetRange(from, to); err != nil {
		return nil, err
	}
	if err := errors.ValidateCountWindow(w.Min, w.Max); err != nil {
		return nil, err
	}

	total := to - from + 1
	var rows []TargetCount
	for target := from; target <= to; target++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Count(ctx, numbers, target)
		if err != nil {
			return nil, err
		}
		if w.Contains(n) {
			rows = append(rows, TargetCount{Target: target, Count: n})
		}
		r.step(target-from+1, total)
	}
	r.logger.Debug("target scan finished", "targets", total, "hits", len(rows))
	return rows, nil
}

func (r *Runner) step(done, total int) {
	if r.Progress != nil {
		r.Progress(done, total)
	}
}
