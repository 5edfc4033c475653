package fixed

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/radix/bigint"
	"github.com/calebcase/radix/digit"
)

// Error is the class of fixed decimal errors.
var Error = errs.Class("fixed")

// ErrInvalidInput is the class of strings with more than one '.'
// separator.
var ErrInvalidInput = errs.Class("invalid input")

// Decimal is an unscaled arbitrary-precision integer paired with the
// count of fractional digits it absorbed during parsing.
type Decimal struct {
	Value bigint.Uint
	Scale uint32
}

// Parse reads a digit string in the given radix, with at most one '.'
// separator, into a Decimal. radix must be in [2, 62].
func Parse(text string, radix uint32) (d Decimal, err error) {
	defer Error.WrapP(&err)

	parts := strings.Split(text, ".")
	if len(parts) > 2 {
		return d, ErrInvalidInput.New("more than one '.' separator: %q", text)
	}

	value := bigint.Zero()
	scale := uint32(0)

	accumulate := func(c byte) error {
		v, err := digit.ToValue(c)
		if err != nil {
			return err
		}
		if uint32(v) >= radix {
			return digit.ErrInvalidDigit.New("digit %q is not below radix %d", c, radix)
		}

		value.MulSmall(uint8(radix))
		value.AddSmall(v)

		return nil
	}

	for i := 0; i < len(parts[0]); i++ {
		err = accumulate(parts[0][i])
		if err != nil {
			return d, err
		}
	}

	if len(parts) == 2 {
		for i := 0; i < len(parts[1]); i++ {
			err = accumulate(parts[1][i])
			if err != nil {
				return d, err
			}
			scale++
		}
	}

	return Decimal{Value: value, Scale: scale}, nil
}

// Render returns the decimal as a digit string in the given radix.
// radix must be in [2, 62].
//
// A zero value renders as "0" regardless of scale, so trailing
// fractional zeros never produce a '.' suffix. Fractional digits are
// approximate; see the package documentation.
func (d Decimal) Render(radix uint32) string {
	if d.Value.IsZero() {
		return "0"
	}

	intPart := d.Value.Clone()
	frac := bigint.Zero()

	for i := uint32(0); i < d.Scale; i++ {
		r := intPart.DivModSmall(uint16(radix))
		frac.MulSmall(uint8(radix))
		frac.AddSmall(r)
	}

	out := renderInt(intPart, radix)

	if !frac.IsZero() {
		buf := []byte{'.'}
		for i := uint32(0); i < d.Scale; i++ {
			frac.MulSmall(uint8(radix))
			buf = append(buf, digit.ToDigit(frac.DivModSmall(256)))
		}
		out += string(buf)
	}

	return out
}

// renderInt returns n as a digit string in the given radix by repeated
// division, most significant digit first.
func renderInt(n bigint.Uint, radix uint32) string {
	if n.IsZero() {
		return "0"
	}

	n = n.Clone()

	buf := []byte{}
	for !n.IsZero() {
		buf = append(buf, digit.ToDigit(n.DivModSmall(uint16(radix))))
	}

	// Digits came out least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
