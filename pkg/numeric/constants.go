package numeric

const (
	// MaxUint64 is the maximum value that can be stored in a 64-bit unsigned
	// integer. It is the largest value accepted by ParseUint64.
	MaxUint64 = 1<<64 - 1

	// MaxUint64Description is a human-friendly mathematic description of
	// MaxUint64, used in help output.
	MaxUint64Description = "2⁶⁴−1"
)
