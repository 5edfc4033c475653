// Package fixed provides a scaled arbitrary-precision decimal for
// radix conversion.
//
// The equation for a fixed decimal is:
//
//  number = value / radix ^ scale
//
// Where number is the parsed value, value is an unscaled arbitrary
// precision integer, and scale is the count of fractional digit
// characters consumed during parsing. For example, in radix 10:
//
//  1.23 = 123 / 10^2
//
// Parsing folds every digit character, integer and fractional alike,
// into value with Horner's method (value = value*radix + digit), so
// the equation holds exactly for the radix the string was parsed in.
// No rounding happens at parse time.
//
// Rendering
//
// Rendering in a radix first separates value: scale divisions by the
// radix peel the low order digits off a clone of value, accumulating
// them remainder first into a fractional accumulator with the same
// Horner step used at parse time. The remaining quotient renders as
// the integer part by repeated division. If the accumulator is
// nonzero, scale fractional digits follow a '.', each obtained by
// multiplying the accumulator by the radix and peeling a byte with a
// division by 256 reinterpreted through the digit codec.
//
// Values without fractional digits render exactly in every radix. The
// fractional rendering is a byte granular approximation rather than an
// exact radix conversion: scale counts parse radix digits while the
// separation divides by the rendering radix, and the final peel
// divides by 256 rather than the rendering radix. Callers that need
// exact fractions must keep the rendering radix in agreement with the
// parse radix and interpret the digits accordingly.
package fixed
