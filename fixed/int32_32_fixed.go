package fixed

import (
	"golang.org/x/exp/constraints"
	xfixed "golang.org/x/image/math/fixed"
)

const scaleInt32_32 Scale = 32

func Int32_32U[I constraints.Integer](i I) Int32_32 { return Int32_32(int64(i) << 32) }
func Int32_32F(f float64) Int32_32                  { return Int32_32(scaleInt32_32.FromFloat(f)) }
func Int32_32R(f float64) Int32_32                  { return Int32_32(scaleInt32_32.Round(f)) }

func (x Int32_32) Float() float64  { return scaleInt32_32.Float(int64(x)) }
func (x Int32_32) Int() int        { return int(x >> 32) }
func (x Int32_32) Frac() Int32_32  { return x & (1<<32 - 1) }
func (x Int32_32) Floor() Int32_32 { return Int32_32(scaleInt32_32.Floor(int64(x))) }
func (x Int32_32) Ceil() Int32_32  { return Int32_32(scaleInt32_32.Ceil(int64(x))) }

func (x Int32_32) Mul(y Int32_32) (Int32_32, error) {
	z, err := scaleInt32_32.Mul(int64(x), int64(y))
	return Int32_32(z), err
}

func (x Int32_32) Div(y Int32_32) (Int32_32, error) {
	z, err := scaleInt32_32.Div(int64(x), int64(y))
	return Int32_32(z), err
}

func (x Int32_32) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(scaleInt32_32.Rescale(int64(x), 12))
}

func (x Int32_32) String() string { return scaleInt32_32.Format(int64(x)) }
