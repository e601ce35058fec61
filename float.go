package biguint

import (
	"math"
	"math/bits"
)

// AsFloat64 returns u as a float64, or +Inf if u is too large. The result is
// rounded to nearest even, as big.Float does.
func (u Uint) AsFloat64() float64 {
	n := u.sigLen()
	if n <= 1 {
		return float64(u.limb(0))
	}

	hi, lo := u.limb(n-1), u.limb(n-2)
	lz := uint(bits.LeadingZeros64(hi))
	top := (hi << lz) | (lo >> (wordBits - lz))

	// The top 64 bits are rounded again by the conversion to float64. Any
	// nonzero bit below them is folded into the lowest bit of top so that
	// second rounding sees it; the lowest bit is far below the 53-bit
	// mantissa so it only ever breaks a tie.
	sticky := lo<<lz != 0
	for i := n - 3; i >= 0 && !sticky; i-- {
		sticky = u.limb(i) != 0
	}
	if sticky {
		top |= 1
	}
	return math.Ldexp(float64(top), (n-1)*wordBits-int(lz))
}

// FromFloat64 creates a Uint from a float64. Any fractional portion will be
// truncated towards zero.
//
// NaN, negative numbers and infinities return 0 and set inRange to 'false'.
func FromFloat64(f float64) (out Uint, inRange bool) {
	if f != f || f < 0 || math.IsInf(f, 0) { // (f != f) == NaN
		return out, false

	} else if f < wrapUint64Float {
		return Uint{word: uint64(f)}, true
	}

	// f >= 2^64, so it has no fractional part and its 53-bit mantissa just
	// needs to be moved into place.
	frac, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(frac, 53))
	out = Uint{word: mant}
	out.LshAssign(uint(exp - 53))
	return out, true
}
