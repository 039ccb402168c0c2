// Package primality provides a trial division primality predicate for 64-bit
// unsigned integers.
package primality

import (
	"math"
)

const (
	// maximumSquareRoot is the largest value whose square fits in a 64-bit
	// unsigned integer. It is the integer square root of 2⁶⁴−1.
	maximumSquareRoot = 1<<32 - 1
)

// SquareRootBound computes the integer square root of n, i.e. the largest
// value r such that r*r <= n. The floating-point estimate can be off by one in
// either direction for values close to 2⁶⁴ because float64 only carries 53
// bits of mantissa, so the estimate is corrected with integer arithmetic.
func SquareRootBound(n uint64) uint64 {
	// Start from the floating-point estimate. Values that round up to 2⁶⁴
	// produce an estimate of 2³², which is one past the largest valid root.
	root := uint64(math.Sqrt(float64(n)))
	if root > maximumSquareRoot {
		root = maximumSquareRoot
	}

	// Walk the estimate down while it overshoots. The square can't overflow
	// because root is at most maximumSquareRoot.
	for root*root > n {
		root--
	}

	// Walk the estimate up while the next value still fits.
	for root < maximumSquareRoot && (root+1)*(root+1) <= n {
		root++
	}

	// Done.
	return root
}

// SmallestDivisor returns the smallest divisor d of n with 2 <= d <= √n, along
// with whether or not such a divisor exists. Values less than 4 never have a
// divisor in that range.
func SmallestDivisor(n uint64) (uint64, bool) {
	// Test every candidate up to and including the square root bound. The
	// bound never exceeds 2³²−1, so the loop counter can't overflow.
	bound := SquareRootBound(n)
	for i := uint64(2); i <= bound; i++ {
		if n%i == 0 {
			return i, true
		}
	}

	// No divisor was found.
	return 0, false
}

// IsPrime reports whether or not n is prime. It is a pure function and is
// defined for every 64-bit unsigned value.
func IsPrime(n uint64) bool {
	// Neither 0 nor 1 is prime.
	if n <= 1 {
		return false
	}

	// Any other value is prime exactly when it has no divisor up to its square
	// root.
	_, composite := SmallestDivisor(n)
	return !composite
}
