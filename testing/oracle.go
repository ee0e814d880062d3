// Package testing provides utilities for testing fixed-point kernels against
// arbitrary precision references.
package testing

import (
	"iter"
	"math"
	"math/big"
	"math/rand/v2"
)

var word = new(big.Int).Lsh(big.NewInt(1), 64)

// Mul returns y*z >> frac truncated toward zero, computed without bounds.
// ok reports whether the result fits an int64, otherwise x holds its low 64
// bits in two's complement.
func Mul(y, z int64, frac uint) (x int64, ok bool) {
	p := new(big.Int).Mul(big.NewInt(y), big.NewInt(z))
	p.Quo(p, new(big.Int).Lsh(big.NewInt(1), frac))
	return wrap(p)
}

// Div returns (y << frac) / z truncated toward zero, computed without bounds.
// It panics if z is zero. See [Mul] for x and ok.
func Div(y, z int64, frac uint) (x int64, ok bool) {
	q := new(big.Int).Lsh(big.NewInt(y), frac)
	q.Quo(q, big.NewInt(z))
	return wrap(q)
}

func wrap(v *big.Int) (int64, bool) {
	if v.IsInt64() {
		return v.Int64(), true
	}
	low := new(big.Int).Mod(v, word) // Euclidean, always non-negative
	return int64(low.Uint64()), false
}

// Edges are operands that tend to break fixed-point kernels.
var Edges = []int64{
	0, 1, -1, 2, -2,
	1 << 16, -1 << 16, 1<<16 - 1, 1<<16 + 1,
	1 << 31, -1 << 31, 1<<32 - 1, 1 << 32, -1 << 32,
	1 << 48, -1 << 48,
	math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1,
	math.MaxInt32, math.MinInt32,
}

// Pairs yields every pair of [Edges] followed by n pseudo-random pairs drawn
// from r. Random operands have uniformly distributed bit lengths, so small
// and large magnitudes are equally likely.
func Pairs(r *rand.Rand, n int) iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		for _, y := range Edges {
			for _, z := range Edges {
				if !yield(y, z) {
					return
				}
			}
		}
		for range n {
			if !yield(Operand(r), Operand(r)) {
				return
			}
		}
	}
}

// Operand returns a pseudo-random int64 with a uniformly distributed bit length.
func Operand(r *rand.Rand) int64 {
	return int64(r.Uint64()) >> r.IntN(64)
}
