package errors

// Input limits shared by the CLI and the HTTP API. The enumeration grows
// super-exponentially, so the number count is capped well before any search
// would finish in reasonable time anyway.
const (
	// MaxNumbers is the largest accepted number-bag size.
	MaxNumbers = 9

	// MaxNumberValue is the largest accepted individual number.
	MaxNumberValue = 1_000_000
)

// ValidateNumbers checks a number bag before a search begins.
//
// The rules match the solver's preconditions:
//   - at least one number
//   - no more than MaxNumbers numbers
//   - every number positive and no larger than MaxNumberValue
func ValidateNumbers(numbers []int) error {
	if len(numbers) == 0 {
		return New(ErrCodeInvalidInput, "at least one number is required")
	}
	if len(numbers) > MaxNumbers {
		return New(ErrCodeInvalidInput, "too many numbers (%d, max %d)", len(numbers), MaxNumbers)
	}
	for _, n := range numbers {
		if n <= 0 {
			return New(ErrCodeInvalidInput, "numbers must be positive, got %d", n)
		}
		if n > MaxNumberValue {
			return New(ErrCodeInvalidInput, "number %d too large (max %d)", n, MaxNumberValue)
		}
	}
	return nil
}

// ValidateTargetRange checks an inclusive target range for aggregate scans.
func ValidateTargetRange(from, to int) error {
	if from < 1 {
		return New(ErrCodeInvalidRange, "range start must be at least 1, got %d", from)
	}
	if to < from {
		return New(ErrCodeInvalidRange, "range end %d is before start %d", to, from)
	}
	return nil
}

// ValidateCountWindow checks a [min,max] solution-count filter.
// max == 0 means unbounded.
func ValidateCountWindow(min, max int) error {
	if min < 0 {
		return New(ErrCodeInvalidWindow, "window minimum cannot be negative, got %d", min)
	}
	if max != 0 && max < min {
		return New(ErrCodeInvalidWindow, "window maximum %d is below minimum %d", max, min)
	}
	return nil
}
