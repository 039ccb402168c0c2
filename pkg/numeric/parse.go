package numeric

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty indicates that there was no text to parse.
	ErrEmpty = errors.New("cannot parse number from empty text")
	// ErrSyntax indicates that the text contained something other than an
	// optional leading plus sign followed by decimal digits.
	ErrSyntax = errors.New("invalid digit found in text")
	// ErrRange indicates that the text described a value larger than
	// MaxUint64.
	ErrRange = errors.New("number too large to fit in 64 bits")
)

// ParseUint64 parses a decimal representation of a 64-bit unsigned integer. A
// single leading plus sign is permitted. Whitespace, digit separators, and
// minus signs are not. The returned error (if any) wraps one of ErrEmpty,
// ErrSyntax, or ErrRange.
func ParseUint64(text string) (uint64, error) {
	// Reject empty text outright.
	if text == "" {
		return 0, ErrEmpty
	}

	// Strip any leading plus sign. A lone sign has no digits.
	digits := text
	if digits[0] == '+' {
		digits = digits[1:]
		if digits == "" {
			return 0, errors.Wrap(ErrSyntax, "sign without digits")
		}
	}

	// Verify that only decimal digits remain. We do this ourselves (rather
	// than relying on strconv) so that syntax and range failures are reported
	// distinctly.
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, errors.Wrapf(ErrSyntax, "unexpected character %q", c)
		}
	}

	// Perform conversion. At this point the only possible failure is overflow.
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(ErrRange, "value exceeds %s", MaxUint64Description)
		}
		return 0, errors.Wrap(err, "unable to convert digits")
	}

	// Success.
	return value, nil
}
