package fixed

import (
	"math/bits"

	"github.com/clktmr/fpq/debug"
)

// A divider returns the low 64 bits of (a << s) / b for b != 0, and whether
// the quotient fits in 64 bits.
type divider func(a, b uint64, s Scale) (q uint64, ok bool)

var (
	_ divider = divWide
	_ divider = divRestoring
)

// Div returns y/z at scale s, truncated toward zero.
//
// Division by zero returns 0 and ErrDivisionByZero. If the quotient does not
// fit an int64 its low 64 bits are returned together with ErrOverflow.
func (s Scale) Div(y, z int64) (int64, error) {
	if z == 0 {
		return 0, ErrDivisionByZero
	}
	debug.Assert(s > 0 && s < 64, "fixed: scale out of range")
	yneg, a := split(y)
	zneg, b := split(z)
	mag, ok := divWide(a, b, s)
	if debug.Enabled {
		ref, refok := divRestoring(a, b, s)
		debug.AssertEqual(mag, ref, "fixed: wide and restoring division disagree")
		debug.AssertEqual(ok, refok, "fixed: wide and restoring division disagree on overflow")
	}
	x, fits := join(yneg != zneg, mag)
	if !ok || !fits {
		return x, ErrOverflow
	}
	return x, nil
}

// divWide divides in two passes: an integer pass a/b, and a fractional pass
// dividing the remainder padded with B zero bits. The remainder is less than
// b, so the 128 by 64 bit division of the second pass can't overflow and its
// quotient has at most B bits.
func divWide(a, b uint64, s Scale) (q uint64, ok bool) {
	qi, r := a/b, a%b
	qf, _ := bits.Div64(r>>(64-s), r<<s, b)
	return qi<<s | qf, qi>>(64-s) == 0
}

// divRestoring is bit-serial restoring division of the 64+B bit dividend
// a<<B, producing one quotient bit per step from the most significant down.
// Dividend positions below B are the implicit zero padding.
//
// The remainder stays below b <= 1<<63, so shifting it never loses a bit.
func divRestoring(a, b uint64, s Scale) (q uint64, ok bool) {
	var r uint64
	ok = true
	for i := 63 + int(s); i >= 0; i-- {
		r <<= 1
		if i >= int(s) {
			r |= a >> (i - int(s)) & 1
		}
		if r >= b {
			r -= b
			if i >= 64 {
				ok = false
			} else {
				q |= 1 << i
			}
		}
	}
	return q, ok
}
