package biguint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// quarter is 2^62, which multiplied by 4 carries exactly into the next limb.
const quarter = maxUint64/4 + 1

func mustPanic(tt assert.T, msg string, fn func()) {
	tt.Helper()
	defer func() {
		tt.Helper()
		r := recover()
		tt.MustAssert(r != nil, "expected panic %q", msg)
		tt.MustEqual(msg, r)
	}()
	fn()
}

func TestAddAssignCarriesIntoNewLimb(t *testing.T) {
	tt := assert.WrapTB(t)

	a := u64(maxUint64)
	a.AddAssign64(1)
	tt.MustAssert(!a.IsCompact())
	tt.MustEqual([]uint64{0, 1}, a.Limbs())

	a.AddAssign64(3)
	tt.MustEqual([]uint64{3, 1}, a.Limbs())

	a.AddAssign64(maxUint64)
	tt.MustEqual([]uint64{2, 2}, a.Limbs())

	a.AddAssign(FromLimbs(1, maxUint64))
	tt.MustEqual([]uint64{3, 1, 1}, a.Limbs())
}

func TestAddAssignMixed(t *testing.T) {
	for idx, tc := range []struct {
		a, b Uint
		out  string
	}{
		{u64(1), FromLimbs(maxUint64, maxUint64), "340282366920938463463374607431768211456"},
		{FromLimbs(maxUint64, maxUint64), u64(1), "340282366920938463463374607431768211456"},
		{FromLimbs(1), FromLimbs(0, 0, 1), "340282366920938463463374607431768211457"},
		{FromLimbs(0, 0, 1), FromLimbs(maxUint64), "340282366920938463481821351505477763071"},
		{FromLimbs(), FromLimbs(), "0"},
		{FromLimbs(), u64(4), "4"},
		{u64(4), FromLimbs(), "4"},
	} {
		t.Run(fmt.Sprintf("%d/%#v+%#v", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Add(tc.b).String())
			tt.MustEqual(tc.out, tc.b.Add(tc.a).String())
		})
	}
}

func TestSubAssignSequence(t *testing.T) {
	tt := assert.WrapTB(t)

	a := FromLimbs(3, 0, 1)
	a.SubAssign64(3)
	tt.MustAssert(a.Equal(FromLimbs(0, 0, 1)))

	a.SubAssign64(1)
	tt.MustAssert(a.Equal(FromLimbs(maxUint64, maxUint64)))

	a.SubAssign64(1)
	tt.MustAssert(a.Equal(FromLimbs(maxUint64-1, maxUint64)))

	a.SubAssign(FromLimbs(maxUint64, 1))
	tt.MustAssert(a.Equal(FromLimbs(maxUint64, maxUint64-2)))

	a.SubAssign(FromLimbs(maxUint64-1, maxUint64-2))
	tt.MustAssert(a.Equal64(1))

	a.SubAssign(FromLimbs(1, 0, 0))
	tt.MustAssert(a.IsZero())
	tt.MustAssert(a.IsCompact())
}

func TestSubSelfIsCompactZero(t *testing.T) {
	for idx, u := range []Uint{
		u64(0),
		u64(77),
		FromLimbs(),
		FromLimbs(9, 0, 0),
		FromLimbs(1, 2, 3),
	} {
		t.Run(fmt.Sprintf("%d/%#v", idx, u), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := u.Clone()
			v.SubAssign(v)
			tt.MustAssert(v.IsCompact())
			tt.MustEqual([]uint64{0}, v.Limbs())

			tt.MustAssert(u.Sub(padded(u, 2)).IsCompact())
		})
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	for idx, tc := range []struct{ a, b Uint }{
		{u64(0), u64(1)},
		{u64(maxUint64), FromLimbs(0, 1)},
		{FromLimbs(0, 1), FromLimbs(1, 1)},
		{FromLimbs(5, 0, 0), u64(6)},
	} {
		t.Run(fmt.Sprintf("%d/%#v-%#v", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			mustPanic(tt, "biguint: subtraction underflow", func() { tc.a.Sub(tc.b) })
		})
	}
}

func TestMulAssignSequence(t *testing.T) {
	tt := assert.WrapTB(t)

	a := One()
	a.MulAssign64(4)
	tt.MustEqual([]uint64{4}, a.Limbs())

	a.MulAssign64(quarter)
	tt.MustEqual([]uint64{0, 1}, a.Limbs())

	a.MulAssign64(4)
	tt.MustEqual([]uint64{0, 4}, a.Limbs())

	a.MulAssign64(quarter)
	tt.MustEqual([]uint64{0, 0, 1}, a.Limbs())

	a.MulAssign(FromLimbs(0, 4, 1))
	tt.MustEqual([]uint64{0, 0, 0, 4, 1}, a.Limbs())

	a.MulAssign(FromLimbs(0, quarter))
	tt.MustEqual([]uint64{0, 0, 0, 0, 0, quarter + 1}, a.Limbs())
}

func TestMulByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, z := range []Uint{u64(0), FromLimbs(), FromLimbs(0, 0)} {
		for _, n := range []Uint{u64(3), FromLimbs(1, 2, 3)} {
			tt.MustAssert(n.Mul(z).IsCompact())
			tt.MustAssert(n.Mul(z).IsZero())
			tt.MustAssert(z.Mul(n).IsZero())
		}
	}
}

func TestQuoAssignSequence(t *testing.T) {
	tt := assert.WrapTB(t)

	a := FromLimbs(0, 0, 0, 0, 0, quarter+1)
	a.QuoAssign(FromLimbs(0, quarter))
	tt.MustEqual([]uint64{0, 0, 0, 4, 1}, a.Limbs())

	a.QuoAssign(FromLimbs(0, 4, 1))
	tt.MustEqual([]uint64{0, 0, 1}, a.Limbs())

	a.QuoAssign64(quarter)
	tt.MustEqual([]uint64{0, 4}, a.Limbs())

	a.QuoAssign64(4)
	tt.MustEqual([]uint64{0, 1}, a.Limbs())

	a.QuoAssign64(quarter)
	tt.MustAssert(a.IsCompact())
	tt.MustEqual([]uint64{4}, a.Limbs())

	a.QuoAssign64(4)
	tt.MustAssert(a.IsOne())
}

func TestMulThenQuoRemRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	a := FromLimbs(0, 0, 0, 4, 1)
	b := FromLimbs(0, quarter)
	p := a.Mul(b)

	q, r := p.QuoRem(b)
	tt.MustEqual([]uint64{0, 0, 0, 4, 1}, q.Limbs())
	tt.MustAssert(r.IsZero())
	tt.MustAssert(r.IsCompact())

	q, r = p.Add64(17).QuoRem(b)
	tt.MustEqual([]uint64{0, 0, 0, 4, 1}, q.Limbs())
	tt.MustEqual([]uint64{17}, r.Limbs())
}

func TestQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, n Uint
		q, r string
	}{
		{u64(7), u64(2), "3", "1"},
		{u64(2), u64(7), "0", "2"},
		{u64(7), u64(7), "1", "0"},
		{FromLimbs(7, 0, 0), u64(7), "1", "0"},
		{u64(7), FromLimbs(0, 1), "0", "7"},
		{FromLimbs(0, 1), FromLimbs(0, 1, 0, 0), "1", "0"},
		{FromLimbs(5, 0, 1), FromLimbs(0, 1), "18446744073709551616", "5"},
		{FromLimbs(maxUint64, maxUint64, maxUint64), FromLimbs(maxUint64, maxUint64), "18446744073709551616", "18446744073709551615"},
		{FromLimbs(0, 0, 0, 1), FromLimbs(1, 0, 1), "18446744073709551615", "340282366920938463444927863358058659841"},
		{FromLimbs(0, 0, 0, 0, 1), u64(3), "38597363079105398474523661669562635951089994888546854679819194669304376546645", "1"},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s", idx, tc.u, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			q, r := tc.u.QuoRem(tc.n)
			tt.MustEqual(tc.q, q.String())
			tt.MustEqual(tc.r, r.String())
			tt.MustEqual(tc.q, tc.u.Quo(tc.n).String())
			tt.MustEqual(tc.r, tc.u.Rem(tc.n).String())

			// u == q*n + r, r < n
			tt.MustAssert(q.Mul(tc.n).Add(r).Equal(tc.u))
			tt.MustAssert(r.LessThan(tc.n))

			// Results are canonical:
			tt.MustEqual(q.IsUint64(), q.IsCompact())
			tt.MustEqual(r.IsUint64(), r.IsCompact())
		})
	}
}

func TestQuoRemMatchesBig(t *testing.T) {
	tt := assert.WrapTB(t)

	u := uints("0x 1234 5678 9abc def0 0fed cba9 8765 4321 1111 2222 3333 4444 5555 6666 7777 8888")
	for _, ns := range []string{
		"0x 1 0000 0000 0000 0001",
		"0x ffff ffff ffff ffff ffff ffff",
		"0x 8000 0000 0000 0000 0000 0000 0000 0000",
		"0x 1234 5678 9abc def0 0fed cba9 8765 4321 1111 2222 3333 4444 5555 6666 7777 8887",
	} {
		n := uints(ns)
		q, r := u.QuoRem(n)
		bq, br := new(big.Int).QuoRem(bigs(u.String()), bigs(ns), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "quo %s", ns)
		tt.MustEqual(br.String(), r.String(), "rem %s", ns)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	const msg = "biguint: division by zero"

	for idx, u := range []Uint{u64(0), u64(5), FromLimbs(1, 2)} {
		for jdx, z := range []Uint{u64(0), FromLimbs(), FromLimbs(0, 0)} {
			t.Run(fmt.Sprintf("%d/%d", idx, jdx), func(t *testing.T) {
				tt := assert.WrapTB(t)
				mustPanic(tt, msg, func() { u.Quo(z) })
				mustPanic(tt, msg, func() { u.Rem(z) })
				mustPanic(tt, msg, func() { u.QuoRem(z) })
				mustPanic(tt, msg, func() { u.Quo64(0) })
				mustPanic(tt, msg, func() { u.Rem64(0) })
				mustPanic(tt, msg, func() { v := u.Clone(); v.QuoAssign(z) })
				mustPanic(tt, msg, func() { v := u.Clone(); v.RemAssign(z) })
				mustPanic(tt, msg, func() { v := u.Clone(); v.QuoRemAssign(z) })
			})
		}
	}
}

func TestRemAssign(t *testing.T) {
	tt := assert.WrapTB(t)

	u := FromLimbs(5, 0, 1)
	u.RemAssign(FromLimbs(0, 1))
	tt.MustEqual([]uint64{5}, u.Limbs())

	u = FromLimbs(5, 7)
	u.RemAssign64(1 << 32)
	tt.MustEqual([]uint64{5}, u.Limbs())
}

func TestShifts(t *testing.T) {
	for idx, tc := range []struct {
		in  Uint
		n   uint
		lsh string
		rsh string
	}{
		{u64(1), 0, "1", "1"},
		{u64(1), 1, "2", "0"},
		{u64(1), 64, "18446744073709551616", "0"},
		{u64(3), 63, "27670116110564327424", "0"},
		{FromLimbs(0, 1), 1, "36893488147419103232", "9223372036854775808"},
		{FromLimbs(0, 1), 64, "340282366920938463463374607431768211456", "1"},
		{FromLimbs(0, 1), 65, "680564733841876926926749214863536422912", "0"},
		{FromLimbs(0, 0, 0), 5, "0", "0"},
		{FromLimbs(maxUint64, maxUint64), 4, "5444517870735015415413993718908291383280", "21267647932558653966460912964485513215"},
	} {
		t.Run(fmt.Sprintf("%d/%#v,%d", idx, tc.in, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.lsh, tc.in.Lsh(tc.n).String())
			tt.MustEqual(tc.rsh, tc.in.Rsh(tc.n).String())
		})
	}
}

func TestIncDec(t *testing.T) {
	tt := assert.WrapTB(t)

	u := u64(maxUint64).Inc()
	tt.MustEqual([]uint64{0, 1}, u.Limbs())
	tt.MustAssert(u.Dec().Equal64(maxUint64))

	mustPanic(tt, "biguint: subtraction underflow", func() { Zero().Dec() })
}
