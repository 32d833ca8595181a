package expr

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

// Sink receives each formatted match as it is discovered.
type Sink func(match string)

// Solve enumerates every semantically distinct expression over numbers and
// passes each one that evaluates exactly to target to sink, formatted as
// "(2 + 3) = 5". The full search space is exhausted before returning;
// callers wanting to stop early do so from inside the sink.
//
// The numbers must all be positive and there must be at least one; anything
// else is an invalid-argument error reported before any search runs.
func Solve(numbers []int, target int, sink Sink) error {
	return Solver{}.Solve(numbers, target, sink)
}

// Solver runs the enumeration, optionally across a worker pool. The zero
// value is the deterministic single-threaded solver.
type Solver struct {
	// Workers is the number of goroutines enumerating permutations.
	// Values below 2 select the single-threaded path, whose emission
	// order is deterministic. With more workers the emitted set is
	// identical but its order is unspecified.
	Workers int
}

// Solve implements the same contract as the package-level [Solve].
func (s Solver) Solve(numbers []int, target int, sink Sink) error {
	if err := errors.ValidateNumbers(numbers); err != nil {
		return err
	}
	if s.Workers > 1 {
		s.solveParallel(numbers, target, sink)
		return nil
	}

	// The dedup set spans all permutations of this call: different
	// permutations routinely canonicalize to the same tree.
	seen := make(map[string]struct{})
	Permutations(numbers, func(perm []int) {
		Trees(perm, func(n Node) {
			sig := n.Signature()
			if _, dup := seen[sig]; dup {
				return
			}
			seen[sig] = struct{}{}
			if r := n.Eval(); r.Valid && r.Value == target {
				sink(fmt.Sprintf("%s = %d", n, target))
			}
		})
	})
	return nil
}

// Count runs the enumeration with a counting sink and returns the number
// of distinct matching expressions.
func (s Solver) Count(numbers []int, target int) (int, error) {
	count := 0
	err := s.Solve(numbers, target, func(string) { count++ })
	return count, err
}

// Answers returns the matching expression trees themselves, for callers
// that need more than the formatted text (rendering, re-evaluation). The
// enumeration runs single-threaded so the order matches [Solve].
func Answers(numbers []int, target int) ([]Node, error) {
	if err := errors.ValidateNumbers(numbers); err != nil {
		return nil, err
	}
	var answers []Node
	seen := make(map[string]struct{})
	Permutations(numbers, func(perm []int) {
		Trees(perm, func(n Node) {
			sig := n.Signature()
			if _, dup := seen[sig]; dup {
				return
			}
			seen[sig] = struct{}{}
			if r := n.Eval(); r.Valid && r.Value == target {
				answers = append(answers, n)
			}
		})
	})
	return answers, nil
}

// solveParallel fans permutations out to Workers goroutines. Each
// permutation's tree enumeration is independent; the dedup set and the sink
// are the only shared state and both sit behind mu.
func (s Solver) solveParallel(numbers []int, target int, sink Sink) {
	perms := make(chan []int, s.Workers)
	seen := make(map[string]struct{})
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(s.Workers)
	for range s.Workers {
		go func() {
			defer wg.Done()
			for perm := range perms {
				Trees(perm, func(n Node) {
					sig := n.Signature()
					mu.Lock()
					if _, dup := seen[sig]; dup {
						mu.Unlock()
						return
					}
					seen[sig] = struct{}{}
					mu.Unlock()
					if r := n.Eval(); r.Valid && r.Value == target {
						mu.Lock()
						sink(fmt.Sprintf("%s = %d", n, target))
						mu.Unlock()
					}
				})
			}
		}()
	}

	Permutations(numbers, func(perm []int) {
		// The generator reuses its slice between visits.
		perms <- slices.Clone(perm)
	})
	close(perms)
	wg.Wait()
}
