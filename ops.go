package biguint

// AddAssign sets u to u+n.
func (u *Uint) AddAssign(n Uint) {
	switch {
	case !u.expanded && !n.expanded:
		sum, carry := carryingAdd(u.word, n.word, false)
		if carry {
			*u = Uint{expanded: true, limbs: []uint64{sum, 1}}
		} else {
			u.word = sum
		}

	case !n.expanded:
		u.addWord(n.word)

	default:
		u.Grow(len(n.limbs))

		var carry bool
		for i := range u.limbs {
			if i >= len(n.limbs) && !carry {
				return
			}
			u.limbs[i], carry = carryingAdd(u.limbs[i], n.limb(i), carry)
		}
		if carry {
			u.limbs = append(u.limbs, 1)
		}
	}
}

// addWord adds w to an expanded u, rippling the carry upwards.
func (u *Uint) addWord(w uint64) {
	if len(u.limbs) == 0 {
		*u = Uint{word: w}
		return
	}

	var carry bool
	u.limbs[0], carry = carryingAdd(u.limbs[0], w, false)
	for i := 1; carry && i < len(u.limbs); i++ {
		u.limbs[i], carry = carryingAdd(u.limbs[i], 0, true)
	}
	if carry {
		u.limbs = append(u.limbs, 1)
	}
}

// SubAssign sets u to u-n. If n > u, SubAssign panics; a Uint can not hold a
// negative number.
//
// The result is not trimmed, so an expanded u may be left holding trailing
// zero limbs. Call Trim if that matters.
func (u *Uint) SubAssign(n Uint) {
	switch u.Cmp(n) {
	case 0:
		*u = Uint{}
		return
	case -1:
		panic("biguint: subtraction underflow")
	}

	switch {
	case !u.expanded:
		// n < u, so n must fit in its first limb:
		u.word -= n.limb(0)

	case !n.expanded:
		u.subWord(n.word)

	default:
		var borrow bool
		for i := range u.limbs {
			if i >= len(n.limbs) && !borrow {
				return
			}
			u.limbs[i], borrow = borrowingSub(u.limbs[i], n.limb(i), borrow)
		}
	}
}

// subWord subtracts w from an expanded u that is known to be greater than w.
// The borrow can't ripple off the end.
func (u *Uint) subWord(w uint64) {
	var borrow bool
	u.limbs[0], borrow = borrowingSub(u.limbs[0], w, false)
	for i := 1; borrow && i < len(u.limbs); i++ {
		u.limbs[i], borrow = borrowingSub(u.limbs[i], 0, true)
	}
}

// MulAssign sets u to u*n using schoolbook multiplication.
func (u *Uint) MulAssign(n Uint) {
	if u.IsZero() || n.IsZero() {
		*u = Uint{}
		return
	}

	switch {
	case !u.expanded && !n.expanded:
		lo, hi := carryingMulAdd(u.word, n.word, 0, 0)
		if hi != 0 {
			*u = Uint{expanded: true, limbs: []uint64{lo, hi}}
		} else {
			u.word = lo
		}

	case !n.expanded:
		u.mulWord(n.word)

	case !u.expanded:
		w := u.word
		*u = n.Clone()
		u.mulWord(w)

	default:
		// The shorter operand drives the outer loop; each of its limbs scales
		// a copy of the longer operand, which is shifted into place and
		// accumulated.
		outer, inner := u.limbs, n.limbs
		if len(outer) > len(inner) {
			outer, inner = inner, outer
		}

		var acc Uint
		for p, d := range outer {
			if d == 0 {
				continue
			}
			partial := FromLimbs(inner...)
			partial.mulWord(d)
			partial.ShiftLimbs(p)
			acc.AddAssign(partial)
		}
		*u = acc
	}
}

// mulWord scales an expanded u by w.
func (u *Uint) mulWord(w uint64) {
	if carry := mulLimbs(u.limbs, w); carry != 0 {
		u.limbs = append(u.limbs, carry)
	}
}

// LshAssign sets u to u<<n.
func (u *Uint) LshAssign(n uint) {
	if n == 0 || u.IsZero() {
		return
	}

	if !u.expanded && n < wordBits && u.word>>(wordBits-n) == 0 {
		u.word <<= n
		return
	}

	u.Grow(1)
	u.ShiftLimbs(int(n / wordBits))

	n %= wordBits
	if n == 0 {
		return
	}

	var carry uint64
	for i, l := range u.limbs {
		u.limbs[i] = (l << n) | carry
		carry = l >> (wordBits - n)
	}
	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	}
}

// RshAssign sets u to u>>n.
func (u *Uint) RshAssign(n uint) {
	if n == 0 {
		return
	}

	if !u.expanded {
		if n >= wordBits {
			u.word = 0
		} else {
			u.word >>= n
		}
		return
	}

	drop := int(n / wordBits)
	if drop >= len(u.limbs) {
		*u = Uint{}
		return
	}
	if drop > 0 {
		ln := copy(u.limbs, u.limbs[drop:])
		u.limbs = u.limbs[:ln]
	}

	n %= wordBits
	if n == 0 {
		return
	}

	last := len(u.limbs) - 1
	for i := range u.limbs {
		u.limbs[i] >>= n
		if i < last {
			u.limbs[i] |= u.limbs[i+1] << (wordBits - n)
		}
	}
}

func (u *Uint) AddAssign64(n uint64) { u.AddAssign(Uint{word: n}) }
func (u *Uint) SubAssign64(n uint64) { u.SubAssign(Uint{word: n}) }
func (u *Uint) MulAssign64(n uint64) { u.MulAssign(Uint{word: n}) }

// Add returns u+n. Neither u nor n is modified.
func (u Uint) Add(n Uint) Uint {
	v := u.Clone()
	v.AddAssign(n)
	return v
}

// Sub returns u-n. If n > u, Sub panics.
func (u Uint) Sub(n Uint) Uint {
	v := u.Clone()
	v.SubAssign(n)
	return v
}

// Mul returns u*n.
func (u Uint) Mul(n Uint) Uint {
	v := u.Clone()
	v.MulAssign(n)
	return v
}

func (u Uint) Add64(n uint64) Uint { return u.Add(Uint{word: n}) }
func (u Uint) Sub64(n uint64) Uint { return u.Sub(Uint{word: n}) }
func (u Uint) Mul64(n uint64) Uint { return u.Mul(Uint{word: n}) }

func (u Uint) Inc() Uint { return u.Add64(1) }
func (u Uint) Dec() Uint { return u.Sub64(1) }

func (u Uint) Lsh(n uint) Uint {
	v := u.Clone()
	v.LshAssign(n)
	return v
}

func (u Uint) Rsh(n uint) Uint {
	v := u.Clone()
	v.RshAssign(n)
	return v
}
