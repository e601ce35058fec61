package biguint

import (
	"math/big"
)

// FromBigInt creates a Uint from a big.Int. Negative numbers can't be
// represented; they return 0 and sets accurate to 'false'.
func FromBigInt(v *big.Int) (out Uint, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) <= 1 {
			if len(words) == 1 {
				out.word = uint64(words[0])
			}
			return out, true
		}
		limbs := make([]uint64, len(words))
		for i, w := range words {
			limbs[i] = uint64(w)
		}
		return Uint{expanded: true, limbs: limbs}, true

	case 32:
		limbs := make([]uint64, (len(words)+1)/2)
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		out = Uint{expanded: true, limbs: limbs}
		out.Trim()
		return out, true

	default:
		panic("biguint: unsupported bit size")
	}
}

// IntoBigInt sets b to the value of u.
func (u Uint) IntoBigInt(b *big.Int) {
	n := u.sigLen()

	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < n {
			words = make([]big.Word, n)
		}
		words = words[:n]
		for i := range words {
			words[i] = big.Word(u.limb(i))
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < n*2 {
			words = make([]big.Word, n*2)
		}
		words = words[:n*2]
		for i := 0; i < n; i++ {
			l := u.limb(i)
			words[i*2] = big.Word(l & 0xFFFFFFFF)
			words[i*2+1] = big.Word(l >> 32)
		}
		b.SetBits(words)

	default:
		panic("biguint: unsupported bit size")
	}
}

func (u Uint) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}
