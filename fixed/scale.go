package fixed

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Scale is the number of fractional bits B of a Q format, 0 < B < 64.
//
// The methods of Scale implement the kernel on raw int64 words. They are pure
// functions of their arguments and the receiver.
type Scale uint

// NewScale returns bits as a Scale or ErrScale if it is not in (0, 64).
func NewScale(bits int) (Scale, error) {
	if bits <= 0 || bits >= 64 {
		return 0, fmt.Errorf("%w: %d", ErrScale, bits)
	}
	return Scale(bits), nil
}

// One returns the encoding of 1. It is not representable for B = 63.
func (s Scale) One() int64 { return 1 << s }

func (s Scale) mask() uint64 { return 1<<s - 1 }

// hi returns the bits of x at or above bit position B.
func (s Scale) hi(x uint64) uint64 { return x >> s }

// lo returns the low B bits of x.
func (s Scale) lo(x uint64) uint64 { return x & s.mask() }

// Frac returns the fractional bits of x, such that x == Floor(x) + Frac(x).
func (s Scale) Frac(x int64) int64 { return int64(s.lo(uint64(x))) }

// Floor returns the largest integer valued word less than or equal to x.
func (s Scale) Floor(x int64) int64 { return x >> s << s }

// Ceil returns the smallest integer valued word greater than or equal to x.
// Values above the largest representable integer wrap around.
func (s Scale) Ceil(x int64) int64 {
	if s.Frac(x) == 0 {
		return x
	}
	return (x>>s + 1) << s
}

// FromInt returns i at scale s.
func FromInt[I constraints.Integer](s Scale, i I) int64 { return int64(i) << s }

// FromFloat returns f at scale s, truncated toward zero. The result for values
// outside the representable range is undefined.
func (s Scale) FromFloat(f float64) int64 { return int64(math.Ldexp(f, int(s))) }

// Round returns f at scale s, rounded to the nearest word. Ties round toward
// positive infinity.
func (s Scale) Round(f float64) int64 { return int64(math.Floor(math.Ldexp(f, int(s)) + 0.5)) }

// Float returns x as a float64.
func (s Scale) Float(x int64) float64 { return math.Ldexp(float64(x), -int(s)) }

// Rescale returns x converted from scale s to scale to. Dropped fractional
// bits are floored, high bits shifted out are lost.
func (s Scale) Rescale(x int64, to Scale) int64 {
	if to >= s {
		return x << (to - s)
	}
	return x >> (s - to)
}

// Format returns x as "int:frac" where frac is the raw fractional bits in
// decimal, padded to the width of the largest fraction.
func (s Scale) Format(x int64) string {
	neg, mag := split(x)
	digits := len(strconv.FormatUint(s.mask(), 10))
	if neg {
		return fmt.Sprintf("-%d:%0*d", s.hi(mag), digits, s.lo(mag))
	}
	return fmt.Sprintf("%d:%0*d", s.hi(mag), digits, s.lo(mag))
}

// split decomposes x into its sign and unsigned magnitude. Zero is
// non-negative and math.MinInt64 has magnitude 1<<63.
func split(x int64) (neg bool, mag uint64) {
	if x < 0 {
		return true, uint64(-x)
	}
	return false, uint64(x)
}

// join reapplies the sign to mag. ok is false if the result does not fit an
// int64, in which case the low 64 bits are returned.
func join(neg bool, mag uint64) (x int64, ok bool) {
	if neg {
		return -int64(mag), mag <= 1<<63
	}
	return int64(mag), mag < 1<<63
}
