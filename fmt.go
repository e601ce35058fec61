package biguint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the decimal representation of u with no leading zeros.
func (u Uint) String() string {
	if !u.expanded {
		return strconv.FormatUint(u.word, 10)
	}
	return string(u.appendDecimal(nil))
}

// appendDecimal converts an expanded u to decimal using double-dabble: each
// input bit, most significant first, is shifted into an array of BCD
// digits, after adding 3 to any digit of 5 or more so that the doubling
// carries correctly into the next digit.
func (u Uint) appendDecimal(out []byte) []byte {
	nbits := len(u.limbs) * wordBits
	bcd := make([]uint8, nbits/4+(nbits+2)/3)

	// Digits above 'active' are still zero; none of them can change until
	// the shift carries into them.
	active := 0

	for i := len(u.limbs) - 1; i >= 0; i-- {
		limb := u.limbs[i]
		for bit := wordBits - 1; bit >= 0; bit-- {
			for d := 0; d < active; d++ {
				if bcd[d] >= 5 {
					bcd[d] += 3
				}
			}

			carry := uint8(limb>>uint(bit)) & 1
			for d := 0; d < active; d++ {
				next := bcd[d] >> 3
				bcd[d] = ((bcd[d] << 1) | carry) & 0xf
				carry = next
			}
			if carry != 0 {
				bcd[active] = carry
				active++
			}
		}
	}

	if active == 0 {
		return append(out, '0')
	}
	for d := active - 1; d >= 0; d-- {
		out = append(out, '0'+bcd[d])
	}
	return out
}

// GoString returns a representation of u that exposes its internal form,
// i.e. "Compact(243)" or "Expanded(1_0)". Expanded limbs are written most
// significant first.
func (u Uint) GoString() string {
	if !u.expanded {
		return "Compact(" + strconv.FormatUint(u.word, 10) + ")"
	}

	var sb strings.Builder
	sb.WriteString("Expanded(")
	for i := len(u.limbs) - 1; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(u.limbs[i], 10))
		if i > 0 {
			sb.WriteByte('_')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Format implements fmt.Formatter. The decimal verbs are rendered natively,
// %#v shows the internal form, and every other verb is handed to math/big.
func (u Uint) Format(s fmt.State, c rune) {
	switch c {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, u.GoString())
			return
		}
		fallthrough
	case 's', 'd':
		if _, ok := s.Width(); ok || s.Flag('-') || s.Flag('0') || s.Flag('+') {
			u.AsBigInt().Format(s, 'd')
			return
		}
		io.WriteString(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// FromString parses a decimal string into a Uint. Only the digits 0-9 are
// accepted.
func FromString(s string) (out Uint, err error) {
	if s == "" {
		return out, Error.New("empty string")
	}

	// Consume the string in chunks of up to decimalChunkDigits digits. Each
	// chunk is exact in a uint64, so only whole chunks touch the Uint.
	first := len(s) % decimalChunkDigits
	if first == 0 {
		first = decimalChunkDigits
	}

	for pos, end := 0, first; pos < len(s); pos, end = end, end+decimalChunkDigits {
		var chunk uint64
		for i := pos; i < end; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return Uint{}, Error.New("invalid decimal string %q", s)
			}
			chunk = chunk*10 + uint64(c-'0')
		}
		if pos > 0 {
			out.MulAssign64(decimalChunk)
		}
		out.AddAssign64(chunk)
	}
	return out, nil
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
