package biguint

import (
	"github.com/holiman/uint256"
)

// FromUint256 creates a Uint from a 256-bit integer. The result is trimmed.
func FromUint256(v *uint256.Int) Uint {
	out := FromLimbs(v[:]...)
	out.Trim()
	return out
}

// AsUint256 truncates u to 256 bits. inRange is 'false' if any bits were
// discarded.
func (u Uint) AsUint256() (out *uint256.Int, inRange bool) {
	out = new(uint256.Int)
	for i := range out {
		out[i] = u.limb(i)
	}
	return out, u.sigLen() <= len(out)
}
