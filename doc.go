// Package radix converts digit strings between positional notations
// with radices from 2 to 62.
//
// Numbers are parsed into an exact arbitrary-precision representation
// and re-rendered in the destination radix, so integer conversions are
// exact for inputs of any length. A single '.' separator is accepted
// and the count of fractional digits is carried through the
// conversion.
//
// Digit Alphabet
//
// All radices share one ordered, case-sensitive alphabet:
//
//  | Characters | Values  |
//  |------------|---------|
//  | 0-9        |  0 -  9 |
//  | A-Z        | 10 - 35 |
//  | a-z        | 36 - 61 |
//
// A digit is valid for a radix when its value is below the radix, so
// "FF" parses in base 16 but "G" does not, and base 62 uses the whole
// table.
//
// Precision
//
// Integer parts convert exactly. Fractional parts are carried as the
// parsed digit count and re-rendered through a byte-granular remainder
// accumulator; when the destination radix differs from the source
// radix the fractional digits are an approximation, not an exact radix
// conversion. Fractional results are only faithful on the leg whose
// radix matches the radix the fraction was parsed in.
//
// Errors
//
// Failures are classified by three error classes: ErrInvalidBase in
// this package for radices outside [2, 62], digit.ErrInvalidDigit for
// characters without a value below the parsing radix, and
// fixed.ErrInvalidInput for strings with more than one '.' separator.
// Classes are matched with their Has method and survive wrapping.
package radix
