package fixed

import (
	"math/bits"

	"github.com/clktmr/fpq/debug"
)

// Mul returns y*z at scale s, truncated toward zero.
//
// If the product does not fit an int64 the low 64 bits of the truncated product
// are returned together with ErrOverflow.
func (s Scale) Mul(y, z int64) (int64, error) {
	debug.Assert(s > 0 && s < 64, "fixed: scale out of range")
	yneg, a := split(y)
	zneg, b := split(z)
	mag, ok := s.mulMag(a, b)
	x, fits := join(yneg != zneg, mag)
	if !ok || !fits {
		return x, ErrOverflow
	}
	return x, nil
}

// mulMag returns a*b >> B as the sum of four partial products of the B-bit
// halves of a and b:
//
//	s0 = lo(a)*lo(b) >> B
//	s1 = hi(a)*lo(b)
//	s2 = lo(a)*hi(b)
//	s3 = hi(a)*hi(b) << B
//
// The low part of the product is only needed above bit B, so no partial
// product needs more than 64 bits unless the result itself does. ok is false
// if any partial product or sum carries out of the word.
func (s Scale) mulMag(a, b uint64) (mag uint64, ok bool) {
	ah, al := s.hi(a), s.lo(a)
	bh, bl := s.hi(b), s.lo(b)

	// lo(a)*lo(b) < 2^2B, the high word has no bits at or above B.
	h, l := bits.Mul64(al, bl)
	s0 := h<<(64-s) | l>>s

	h1, s1 := bits.Mul64(ah, bl)
	h2, s2 := bits.Mul64(al, bh)
	h3, l3 := bits.Mul64(ah, bh)
	s3 := l3 << s

	var c1, c2, c3 uint64
	mag, c1 = bits.Add64(s0, s1, 0)
	mag, c2 = bits.Add64(mag, s2, 0)
	mag, c3 = bits.Add64(mag, s3, 0)

	ok = h1|h2|h3|l3>>(64-s)|c1|c2|c3 == 0
	return mag, ok
}
