package fixed_test

import (
	"errors"
	"fmt"

	"github.com/clktmr/fpq/fixed"
)

func ExampleInt48_16() {
	x, y := fixed.Int48_16F(3.5), fixed.Int48_16U(2)
	prod, _ := x.Mul(y)
	quo, _ := x.Div(y)
	fmt.Println(int64(x), int64(y))
	fmt.Println(prod.Float(), quo.Float())
	fmt.Println(x.Floor().Float(), x.Ceil().Float())
	fmt.Println(x)
	// Output:
	// 229376 131072
	// 7 1.75
	// 3 4
	// 3:32768
}

func ExampleScale_Div() {
	s, err := fixed.NewScale(16)
	if err != nil {
		panic(err)
	}
	q, err := s.Div(s.FromFloat(1), 0)
	fmt.Println(q, errors.Is(err, fixed.ErrDivisionByZero))
	q, _ = s.Div(s.FromFloat(-1), s.FromFloat(3))
	fmt.Println(q, s.Format(q))
	// Output:
	// 0 true
	// -21845 -0:21845
}
