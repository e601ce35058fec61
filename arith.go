package biguint

import "math/bits"

// carryingAdd returns a+b+carry, and whether the true sum exceeded 64 bits.
func carryingAdd(a, b uint64, carry bool) (sum uint64, carryOut bool) {
	var c uint64
	if carry {
		c = 1
	}
	sum, c = bits.Add64(a, b, c)
	return sum, c != 0
}

// borrowingSub returns a-b-borrow, and whether the true difference was
// negative.
func borrowingSub(a, b uint64, borrow bool) (diff uint64, borrowOut bool) {
	var c uint64
	if borrow {
		c = 1
	}
	diff, c = bits.Sub64(a, b, c)
	return diff, c != 0
}

// carryingMulAdd computes a*b + carry + add as a 128-bit value split into
// two words. The largest possible result is (2^64-1)^2 + 2*(2^64-1), which
// is exactly 2^128-1, so it can never overflow.
func carryingMulAdd(a, b, carry, add uint64) (lo, hi uint64) {
	var c uint64
	hi, lo = bits.Mul64(a, b)
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	lo, c = bits.Add64(lo, add, 0)
	hi += c
	return lo, hi
}

// mulLimbs scales limbs in place by v and returns the carry word left over
// from the most significant position.
func mulLimbs(limbs []uint64, v uint64) (carry uint64) {
	for i, l := range limbs {
		limbs[i], carry = carryingMulAdd(l, v, carry, 0)
	}
	return carry
}
