package numeric

import (
	"math"
	"strconv"
	"testing"
)

// TestMaxUint64Equivalence checks that our MaxUint64 constant is equal to the
// MaxUint64 constant defined in the math package.
func TestMaxUint64Equivalence(t *testing.T) {
	if MaxUint64 != math.MaxUint64 {
		t.Error("constants not equal")
	}
}

// TestMaxUint64Parsable checks that the decimal form of MaxUint64 is accepted
// by ParseUint64.
func TestMaxUint64Parsable(t *testing.T) {
	text := strconv.FormatUint(MaxUint64, 10)
	if value, err := ParseUint64(text); err != nil {
		t.Fatal("unable to parse maximum value:", err)
	} else if value != MaxUint64 {
		t.Error("maximum value parsed incorrectly")
	}
}
