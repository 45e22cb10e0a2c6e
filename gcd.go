package gcdn

import (
	"errors"
	"slices"
)

var (
	// ErrNoOperands is returned when an N-ary entry point is called with no operands.
	ErrNoOperands = errors.New("at least one operand is required")

	// ErrOverflow is returned when a result does not fit in the operand type.
	ErrOverflow = errors.New("result overflows the operand type")
)

// stackOperands is the largest operand count GCD copies without allocating.
const stackOperands = 8

// GCDN returns the greatest common divisor of xs.
//
// This is the zero-allocation entry point: the operands are reordered and
// overwritten in place, so xs must be treated as consumed after the call.
// Callers that need to keep their operands should copy them first, use GCD,
// or use a Pool.
//
// Zero operands do not constrain the result; GCDN of an all-zero slice is 0.
// An empty slice is a caller error and yields ErrNoOperands.
func GCDN[T Unsigned](xs []T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrNoOperands
	}

	return reduce(xs), nil
}

// GCD returns the greatest common divisor of xs without modifying them.
//
// The operands are copied before the reduction runs. Up to eight operands
// are copied onto the stack; larger inputs allocate a scratch slice.
// An empty call yields ErrNoOperands.
func GCD[T Unsigned](xs ...T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrNoOperands
	}

	if len(xs) <= stackOperands {
		var buf [stackOperands]T

		n := copy(buf[:], xs)

		return reduce(buf[:n]), nil
	}

	return reduce(slices.Clone(xs)), nil
}
