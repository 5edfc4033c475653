package radix

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/radix/fixed"
)

// Error is the class of radix errors.
var Error = errs.Class("radix")

// ErrInvalidBase is the class of radices outside [2, 62].
var ErrInvalidBase = errs.Class("invalid base")

// MinBase and MaxBase bound the usable radices. The upper bound is
// fixed by the 62 symbol digit alphabet.
const (
	MinBase = 2
	MaxBase = 62
)

// Convert parses number as a digit string in fromBase and returns it
// rendered in toBase.
//
// The number grammar is digits ('.' digits)? over the 0-9A-Za-z
// alphabet: no sign, no radix prefix, no whitespace. The result uses
// the same alphabet with no leading zero padding and renders zero as
// "0". The first failure aborts the conversion; there is no partial
// output.
func Convert(number string, fromBase, toBase uint32) (_ string, err error) {
	defer Error.WrapP(&err)

	if fromBase < MinBase || fromBase > MaxBase {
		return "", ErrInvalidBase.New("from base must be in [%d, %d]: %d", MinBase, MaxBase, fromBase)
	}
	if toBase < MinBase || toBase > MaxBase {
		return "", ErrInvalidBase.New("to base must be in [%d, %d]: %d", MinBase, MaxBase, toBase)
	}

	d, err := fixed.Parse(number, fromBase)
	if err != nil {
		return "", err
	}

	return d.Render(toBase), nil
}
