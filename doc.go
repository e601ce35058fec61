/*
Package biguint provides Uint, an unsigned integer of unbounded size.

A Uint behaves like a uint64 while it fits in one, and grows transparently
into a little-endian slice of 64-bit limbs when it doesn't. The caller never
chooses the representation.

Simple example:

	u := biguint.From64(math.MaxUint64)
	u.AddAssign64(1)
	fmt.Println(u)
	// Output: 18446744073709551616

Operations come in two flavours. The ...Assign methods mutate the receiver in
place; the value methods (Add, Sub, Mul, Quo, Rem, QuoRem) clone the receiver
first and return a new Uint:

	u.MulAssign(v)   // u = u * v
	w := u.Mul(v)    // w = u * v, u unchanged

Subtracting a larger number from a smaller one, and dividing by zero, are
programming errors and cause a run-time panic, just as dividing a uint64 by
zero does.

Uint can be created from a variety of sources:

	From64(v uint64) Uint
	From32(v uint32) Uint
	From16(v uint16) Uint
	From8(v uint8) Uint
	FromLimbs(limbs ...uint64) Uint
	FromString(s string) (out Uint, err error)
	FromBigInt(v *big.Int) (out Uint, accurate bool)
	FromUint256(v *uint256.Int) Uint
	FromFloat64(f float64) (out Uint, inRange bool)

Uint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package biguint
