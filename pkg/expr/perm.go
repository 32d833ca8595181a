package expr

import "slices"

// Permutations calls visit with every distinct ordering of nums, exactly
// once each. Repeated values do not produce repeated orderings: a multiset
// of N numbers with multiplicities m1..mk yields N! / (m1!·…·mk!) visits.
//
// The slice passed to visit is reused between calls; callers that retain
// an ordering must copy it. An empty nums yields a single empty ordering.
func Permutations(nums []int, visit func([]int)) {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	permute(sorted, make([]int, 0, len(sorted)), visit)
}

// permute extends prefix with each distinct candidate from remaining.
// Duplicate suppression: remaining is sorted, so skipping a candidate equal
// to its predecessor skips exactly the orderings already produced.
func permute(remaining, prefix []int, visit func([]int)) {
	if len(remaining) == 0 {
		visit(prefix)
		return
	}
	for i, v := range remaining {
		if i > 0 && v == remaining[i-1] {
			continue
		}
		rest := make([]int, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)
		permute(rest, append(prefix, v), visit)
	}
}
