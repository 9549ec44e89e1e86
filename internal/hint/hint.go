// Package hint implements the base-36 cell labels used to jump straight to a
// grid entry. Hints are minimal digit strings over [0-9a-z]; within one table
// they are left-padded with '0' to a shared fixed width so the label shown on
// screen is exactly the label the user types.
package hint

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ErrInvalidHint reports a hint containing characters outside [0-9a-z],
// an empty hint, or one too long to denote a real index.
var ErrInvalidHint = errors.New("invalid hint")

// Encode returns the minimal base-36 representation of index. The encode loop
// always runs at least once, so Encode(0) is "0" rather than the empty
// string. Negative input clamps to "0".
func Encode(index int) string {
	if index <= 0 {
		return "0"
	}
	var buf [13]byte
	i := len(buf)
	for index > 0 {
		i--
		buf[i] = digits[index%len(digits)]
		index /= len(digits)
	}
	return string(buf[i:])
}

// Decode interprets s as a base-36 hint and returns the index it denotes.
// Only lowercase digits are accepted; anything else fails with
// ErrInvalidHint.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidHint)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'z':
			d = int(c-'a') + 10
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidHint, s)
		}
		if n > (math.MaxInt-d)/len(digits) {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidHint, s)
		}
		n = n*len(digits) + d
	}
	return n, nil
}

// Pad left-pads s with the codec's zero digit to the given width. Leading
// zeros are value-preserving under Decode, so padded hints decode to the
// same index as their unpadded form.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Width returns the fixed hint width for a table of n candidates: the length
// of the largest hint that can occur, Encode(n-1). Zero for an empty table.
func Width(n int) int {
	if n <= 0 {
		return 0
	}
	return len(Encode(n - 1))
}
