// Package fixed provides Q-format fixed-point arithmetic on signed 64-bit words
// for targets without a floating-point unit.
//
// A value with B fractional bits represents v / 2^B. The scale B is fixed per
// type: each type declared here is generated by mkfixed.go with B baked into
// its methods, and values of different types must not be mixed. Code that needs
// to pick the scale at run time works on raw int64 words through [Scale].
//
// Multiplication and division truncate toward zero. Both report results that do
// not fit the word with [ErrOverflow], and division by zero yields 0 together
// with [ErrDivisionByZero]. Floor and Ceil round toward negative and positive
// infinity respectively and never fail.
package fixed

//go:generate go run mkfixed.go Int48_16
type Int48_16 int64

//go:generate go run mkfixed.go Int32_32
type Int32_32 int64

//go:generate go run mkfixed.go Int56_8
type Int56_8 int64
