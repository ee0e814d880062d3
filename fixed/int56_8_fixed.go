package fixed

import (
	"golang.org/x/exp/constraints"
	xfixed "golang.org/x/image/math/fixed"
)

const scaleInt56_8 Scale = 8

func Int56_8U[I constraints.Integer](i I) Int56_8 { return Int56_8(int64(i) << 8) }
func Int56_8F(f float64) Int56_8                  { return Int56_8(scaleInt56_8.FromFloat(f)) }
func Int56_8R(f float64) Int56_8                  { return Int56_8(scaleInt56_8.Round(f)) }

func (x Int56_8) Float() float64 { return scaleInt56_8.Float(int64(x)) }
func (x Int56_8) Int() int       { return int(x >> 8) }
func (x Int56_8) Frac() Int56_8  { return x & (1<<8 - 1) }
func (x Int56_8) Floor() Int56_8 { return Int56_8(scaleInt56_8.Floor(int64(x))) }
func (x Int56_8) Ceil() Int56_8  { return Int56_8(scaleInt56_8.Ceil(int64(x))) }

func (x Int56_8) Mul(y Int56_8) (Int56_8, error) {
	z, err := scaleInt56_8.Mul(int64(x), int64(y))
	return Int56_8(z), err
}

func (x Int56_8) Div(y Int56_8) (Int56_8, error) {
	z, err := scaleInt56_8.Div(int64(x), int64(y))
	return Int56_8(z), err
}

func (x Int56_8) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(scaleInt56_8.Rescale(int64(x), 12))
}

func (x Int56_8) String() string { return scaleInt56_8.Format(int64(x)) }
