// Package digit maps characters of the 0-9A-Za-z alphabet to and from
// their digit values 0 through 61.
package digit

import (
	"fmt"

	"github.com/zeebo/errs"
)

// ErrInvalidDigit is the class of characters that have no digit value
// or whose value is not below the radix being parsed.
var ErrInvalidDigit = errs.Class("invalid digit")

// Alphabet is the ordered digit alphabet shared by every radix.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type span struct {
	lo, hi byte
	value  uint8 // value of lo
}

// Match returns true if this span contains the given character.
func (s span) Match(c byte) bool {
	return c >= s.lo && c <= s.hi
}

var spans = []span{
	{'0', '9', 0},
	{'A', 'Z', 10},
	{'a', 'z', 36},
}

// ToValue returns the digit value of c.
//
// Only alphabet membership is checked here; whether the value is below
// a particular radix is the caller's concern.
func ToValue(c byte) (uint8, error) {
	for _, s := range spans {
		if s.Match(c) {
			return s.value + c - s.lo, nil
		}
	}

	return 0, ErrInvalidDigit.New("no digit value for character %q", c)
}

// ToDigit returns the character for the digit value v.
//
// v must be in [0, 61]. Values outside the alphabet are a programming
// error and panic.
func ToDigit(v uint8) byte {
	for _, s := range spans {
		if v <= s.value+(s.hi-s.lo) {
			return s.lo + v - s.value
		}
	}

	panic(fmt.Sprintf("digit value out of range: %d", v))
}
