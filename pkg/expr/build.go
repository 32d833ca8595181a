package expr

// Trees calls visit with every expression tree buildable over the ordered
// numbers: for each split point of the sequence and each operator, every
// tree over the left part combined with every tree over the right part.
// A single number yields its leaf.
//
// Canonicalization happens during construction ([Op.New]), so equivalent
// shapes produced at different split points arrive as identical structures;
// the caller deduplicates them by signature. nums must be non-empty.
func Trees(nums []int, visit func(Node)) {
	if len(nums) == 1 {
		visit(Num{Value: nums[0]})
		return
	}
	for split := 1; split < len(nums); split++ {
		Trees(nums[:split], func(left Node) {
			Trees(nums[split:], func(right Node) {
				for _, op := range Ops {
					visit(op.New(left, right))
				}
			})
		})
	}
}
