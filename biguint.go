package biguint

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("biguint")

// ErrOverflow is returned when a Uint is narrowed to a type that cannot hold
// its magnitude.
var ErrOverflow = Error.New("value overflows uint64")

// Uint is an unsigned integer of unbounded size. Values that fit in a
// uint64 are held inline (the "compact" form); anything larger is held as a
// little-endian slice of 64-bit limbs (the "expanded" form).
//
// The zero value is 0 and is ready to use.
//
// A Uint shares its limbs with any copy made by assignment. Use Clone if you
// need to mutate a copy independently. Methods with value receivers never
// mutate the receiver.
type Uint struct {
	expanded bool
	word     uint64
	limbs    []uint64
}

func From64(v uint64) Uint { return Uint{word: v} }
func From32(v uint32) Uint { return Uint{word: uint64(v)} }
func From16(v uint16) Uint { return Uint{word: uint64(v)} }
func From8(v uint8) Uint   { return Uint{word: uint64(v)} }

// FromLimbs creates an expanded Uint from little-endian limbs. The limbs are
// copied; the result is not trimmed.
func FromLimbs(limbs ...uint64) Uint {
	out := make([]uint64, len(limbs))
	copy(out, limbs)
	return Uint{expanded: true, limbs: out}
}

func Zero() Uint { return Uint{} }
func One() Uint  { return Uint{word: 1} }

// RandUint generates a random Uint with the given number of limbs from an
// external source. The result is trimmed.
func RandUint(source RandSource, limbs int) (out Uint) {
	if limbs <= 1 {
		if limbs == 1 {
			out.word = source.Uint64()
		}
		return out
	}
	out.expanded = true
	out.limbs = make([]uint64, limbs)
	for i := range out.limbs {
		out.limbs[i] = source.Uint64()
	}
	out.Trim()
	return out
}

// Clone returns a copy of u that does not share storage with u.
func (u Uint) Clone() Uint {
	if !u.expanded {
		return Uint{word: u.word}
	}
	return FromLimbs(u.limbs...)
}

// IsCompact reports whether u is held inline rather than as a limb slice.
// Equal values may differ in form; this is never needed for correctness.
func (u Uint) IsCompact() bool { return !u.expanded }

// Limbs returns a copy of u's little-endian limbs. A compact value returns a
// single limb.
func (u Uint) Limbs() []uint64 {
	if !u.expanded {
		return []uint64{u.word}
	}
	out := make([]uint64, len(u.limbs))
	copy(out, u.limbs)
	return out
}

// limb returns limb i of u, or 0 if u has no such limb.
func (u Uint) limb(i int) uint64 {
	if !u.expanded {
		if i == 0 {
			return u.word
		}
		return 0
	}
	if i < len(u.limbs) {
		return u.limbs[i]
	}
	return 0
}

// sigLen returns the number of limbs in u ignoring trailing zeros.
func (u Uint) sigLen() int {
	if !u.expanded {
		if u.word == 0 {
			return 0
		}
		return 1
	}
	n := len(u.limbs)
	for n > 0 && u.limbs[n-1] == 0 {
		n--
	}
	return n
}

// fitsWord returns u's magnitude if it fits in a single limb.
func (u Uint) fitsWord() (v uint64, ok bool) {
	if !u.expanded {
		return u.word, true
	}
	if u.sigLen() > 1 {
		return 0, false
	}
	return u.limb(0), true
}

// ShiftLimbs multiplies u by 2^(64*n) by inserting n zero limbs at the least
// significant end. A compact u becomes expanded if n > 0.
func (u *Uint) ShiftLimbs(n int) {
	if n <= 0 {
		return
	}
	if !u.expanded {
		limbs := make([]uint64, n+1)
		limbs[n] = u.word
		*u = Uint{expanded: true, limbs: limbs}
		return
	}

	ln := len(u.limbs)
	u.resize(ln + n)
	copy(u.limbs[n:], u.limbs[:ln])
	for i := 0; i < n; i++ {
		u.limbs[i] = 0
	}
}

// Trim removes trailing zero limbs from an expanded u, converting it to the
// compact form if what remains fits in a single limb.
func (u *Uint) Trim() {
	if !u.expanded {
		return
	}
	switch n := u.sigLen(); n {
	case 0:
		*u = Uint{}
	case 1:
		*u = Uint{word: u.limbs[0]}
	default:
		u.limbs = u.limbs[:n]
	}
}

// Grow ensures u is expanded with at least n limbs, zero-filling any new
// limbs. It never shrinks u.
func (u *Uint) Grow(n int) {
	if !u.expanded {
		if n < 1 {
			n = 1
		}
		limbs := make([]uint64, n)
		limbs[0] = u.word
		*u = Uint{expanded: true, limbs: limbs}
		return
	}
	if n > len(u.limbs) {
		u.resize(n)
	}
}

// resize sets the length of an expanded u's limbs to n, zero-filling new
// limbs. Growth reuses spare capacity where possible and otherwise lets
// append pick the new capacity.
func (u *Uint) resize(n int) {
	ln := len(u.limbs)
	switch {
	case n <= ln:
		u.limbs = u.limbs[:n]
	case n <= cap(u.limbs):
		u.limbs = u.limbs[:n]
		for i := ln; i < n; i++ {
			u.limbs[i] = 0
		}
	default:
		u.limbs = append(u.limbs, make([]uint64, n-ln)...)
	}
}

// IsZero reports whether u is 0, in any form.
func (u Uint) IsZero() bool { return u.sigLen() == 0 }

// IsOne reports whether u is 1, in any form.
func (u Uint) IsOne() bool {
	v, ok := u.fitsWord()
	return ok && v == 1
}

// SetZero sets u to the compact 0.
func (u *Uint) SetZero() { *u = Uint{} }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	_, ok := u.fitsWord()
	return ok
}

// AsUint64 truncates u to its least significant limb. See Uint64 if you need
// to know whether anything was lost.
func (u Uint) AsUint64() uint64 { return u.limb(0) }

// Uint64 returns u as a uint64, or ErrOverflow if it does not fit.
func (u Uint) Uint64() (uint64, error) {
	v, ok := u.fitsWord()
	if !ok {
		return 0, ErrOverflow
	}
	return v, nil
}

// BitLen returns the number of bits required to represent u. BitLen of 0 is
// 0.
func (u Uint) BitLen() int {
	n := u.sigLen()
	if n == 0 {
		return 0
	}
	return (n-1)*wordBits + bits.Len64(u.limb(n-1))
}
