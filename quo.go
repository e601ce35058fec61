package biguint

import "math/bits"

// QuoRemAssign sets u to the quotient u/n and returns the remainder. If n is
// zero, a division-by-zero run-time panic occurs.
//
// The quotient and remainder always satisfy:
//
//	u == q*n + r, r < n
//
// Both results are trimmed.
func (u *Uint) QuoRemAssign(n Uint) (r Uint) {
	if n.IsZero() {
		panic("biguint: division by zero")
	}

	switch u.Cmp(n) {
	case -1:
		r = *u // it's 100% remainder
		*u = Uint{}
		r.Trim()
		return r
	case 0:
		*u = Uint{word: 1}
		return r
	}

	if !u.expanded {
		// n < u, so n must fit in its first limb:
		d := n.limb(0)
		r.word = u.word % d
		u.word /= d
		return r
	}

	if d, ok := n.fitsWord(); ok {
		// Single limb divisor; the running remainder is always < d, so each
		// 128-by-64 step yields exactly one quotient limb.
		var rem uint64
		for i := len(u.limbs) - 1; i >= 0; i-- {
			u.limbs[i], rem = bits.Div64(rem, u.limbs[i], d)
		}
		u.Trim()
		return Uint{word: rem}
	}

	// Multi-limb divisor: long division one limb at a time, most significant
	// first. rem < n holds at the top of every iteration, so the combined
	// value is < n*2^64 and the quotient digit fits in a limb.
	for i := len(u.limbs) - 1; i >= 0; i-- {
		r.AddAssign64(u.limbs[i])
		u.limbs[i] = quoDigit(&r, n)

		// Only make room for the next limb if there is one; the last
		// remainder is the result.
		if i > 0 {
			r.ShiftLimbs(1)
			r.Trim()
		}
	}

	u.Trim()
	r.Trim()
	return r
}

// quoDigit divides c by n in place, leaving the remainder in c and returning
// the quotient. c must be less than n*2^64.
//
// This is restoring binary division: n is aligned with the top bit of c and
// conditionally subtracted once per bit position on the way back down. The
// bound on c caps the number of positions at 64.
func quoDigit(c *Uint, n Uint) (q uint64) {
	if c.LessThan(n) {
		return 0
	}

	shift := c.BitLen() - n.BitLen()
	if shift > wordBits-1 {
		shift = wordBits - 1
	}

	d := n.Lsh(uint(shift))
	for s := shift; s >= 0; s-- {
		if c.GreaterOrEqualTo(d) {
			c.SubAssign(d)
			q |= 1 << uint(s)
		}
		d.RshAssign(1)
	}
	return q
}

// QuoAssign sets u to u/n. If n is zero, a division-by-zero run-time panic
// occurs.
func (u *Uint) QuoAssign(n Uint) { u.QuoRemAssign(n) }

// RemAssign sets u to u%n. If n is zero, a division-by-zero run-time panic
// occurs.
func (u *Uint) RemAssign(n Uint) { *u = u.QuoRemAssign(n) }

func (u *Uint) QuoAssign64(n uint64) { u.QuoAssign(Uint{word: n}) }
func (u *Uint) RemAssign64(n uint64) { u.RemAssign(Uint{word: n}) }

// QuoRem returns the quotient q and remainder r for n != 0. If n == 0, a
// division-by-zero run-time panic occurs. Neither u nor n is modified.
func (u Uint) QuoRem(n Uint) (q, r Uint) {
	q = u.Clone()
	r = q.QuoRemAssign(n)
	return q, r
}

// Quo returns the quotient u/n for n != 0. If n == 0, a division-by-zero
// run-time panic occurs.
func (u Uint) Quo(n Uint) (q Uint) {
	q, _ = u.QuoRem(n)
	return q
}

// Rem returns the remainder of u%n for n != 0. If n == 0, a division-by-zero
// run-time panic occurs.
func (u Uint) Rem(n Uint) (r Uint) {
	_, r = u.QuoRem(n)
	return r
}

func (u Uint) Quo64(n uint64) Uint { return u.Quo(Uint{word: n}) }
func (u Uint) Rem64(n uint64) Uint { return u.Rem(Uint{word: n}) }
