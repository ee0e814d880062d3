package fixed

import (
	"golang.org/x/exp/constraints"
	xfixed "golang.org/x/image/math/fixed"
)

const scaleInt48_16 Scale = 16

func Int48_16U[I constraints.Integer](i I) Int48_16 { return Int48_16(int64(i) << 16) }
func Int48_16F(f float64) Int48_16                  { return Int48_16(scaleInt48_16.FromFloat(f)) }
func Int48_16R(f float64) Int48_16                  { return Int48_16(scaleInt48_16.Round(f)) }

func (x Int48_16) Float() float64  { return scaleInt48_16.Float(int64(x)) }
func (x Int48_16) Int() int        { return int(x >> 16) }
func (x Int48_16) Frac() Int48_16  { return x & (1<<16 - 1) }
func (x Int48_16) Floor() Int48_16 { return Int48_16(scaleInt48_16.Floor(int64(x))) }
func (x Int48_16) Ceil() Int48_16  { return Int48_16(scaleInt48_16.Ceil(int64(x))) }

func (x Int48_16) Mul(y Int48_16) (Int48_16, error) {
	z, err := scaleInt48_16.Mul(int64(x), int64(y))
	return Int48_16(z), err
}

func (x Int48_16) Div(y Int48_16) (Int48_16, error) {
	z, err := scaleInt48_16.Div(int64(x), int64(y))
	return Int48_16(z), err
}

func (x Int48_16) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(scaleInt48_16.Rescale(int64(x), 12))
}

func (x Int48_16) String() string { return scaleInt48_16.Format(int64(x)) }
