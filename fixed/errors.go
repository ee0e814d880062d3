package fixed

import "errors"

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
	ErrScale          = errors.New("scale out of range")
)
