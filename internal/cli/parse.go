package cli

import (
	"strconv"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

// parseNumbers converts positional arguments into the number bag,
// validating against the solver's preconditions.
func parseNumbers(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "not a number: %q", arg)
		}
		nums = append(nums, n)
	}
	if err := errors.ValidateNumbers(nums); err != nil {
		return nil, err
	}
	return nums, nil
}
