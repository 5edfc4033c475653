// Package bigint provides an arbitrary-precision unsigned integer
// specialized for radix conversion: multiplication and addition by a
// one byte value and division by a value of up to 16 bits.
package bigint

import "bytes"

// Uint is an arbitrary-precision unsigned integer stored as base 256
// limbs, least significant limb first.
//
// The limb sequence is never empty and carries no most significant
// zero limbs beyond the single limb representing zero. Instances are
// independent values; use Clone before sharing one across mutations.
type Uint struct {
	limbs []byte
}

// Zero returns a new Uint of value zero.
func Zero() Uint {
	return Uint{limbs: []byte{0}}
}

// FromSmall returns a new Uint of value n.
func FromSmall(n uint8) Uint {
	return Uint{limbs: []byte{n}}
}

// FromLimbs returns a new Uint with the given base 256 limbs, least
// significant first. The limbs are copied and trimmed.
func FromLimbs(limbs []byte) Uint {
	u := Uint{limbs: append([]byte(nil), limbs...)}
	u.trim()

	if len(u.limbs) == 0 {
		u.limbs = []byte{0}
	}

	return u
}

// Limbs returns a copy of the base 256 limbs, least significant first.
func (u Uint) Limbs() []byte {
	return append([]byte(nil), u.limbs...)
}

// IsZero returns true if the value is zero.
func (u Uint) IsZero() bool {
	for _, l := range u.limbs {
		if l != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (u Uint) Clone() Uint {
	return Uint{limbs: append([]byte(nil), u.limbs...)}
}

// Equal returns true if both values have the same trimmed limbs.
func (u Uint) Equal(v Uint) bool {
	return bytes.Equal(u.limbs, v.limbs)
}

// MulSmall multiplies the value by n in place.
func (u *Uint) MulSmall(n uint8) {
	carry := uint16(0)

	for i, l := range u.limbs {
		prod := uint16(l)*uint16(n) + carry
		u.limbs[i] = uint8(prod % 256)
		carry = prod / 256
	}

	if carry > 0 {
		u.limbs = append(u.limbs, uint8(carry))
	}
}

// AddSmall adds n to the value in place.
func (u *Uint) AddSmall(n uint8) {
	carry := n

	for i, l := range u.limbs {
		sum := uint16(l) + uint16(carry)
		u.limbs[i] = uint8(sum % 256)
		carry = uint8(sum / 256)

		if carry == 0 {
			break
		}
	}

	if carry > 0 {
		u.limbs = append(u.limbs, carry)
	}
}

// DivModSmall divides the value by n in place and returns the
// remainder. n must be nonzero.
//
// Limbs are processed most significant first carrying the running
// remainder down, then most significant zero limbs are trimmed.
func (u *Uint) DivModSmall(n uint16) uint8 {
	remainder := uint16(0)

	for i := len(u.limbs) - 1; i >= 0; i-- {
		dividend := remainder*256 + uint16(u.limbs[i])
		u.limbs[i] = uint8(dividend / n)
		remainder = dividend % n
	}

	u.trim()

	return uint8(remainder)
}

// trim drops most significant zero limbs, keeping at least one limb.
func (u *Uint) trim() {
	for len(u.limbs) > 1 && u.limbs[len(u.limbs)-1] == 0 {
		u.limbs = u.limbs[:len(u.limbs)-1]
	}
}
