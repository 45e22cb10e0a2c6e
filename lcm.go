package gcdn

import (
	"fmt"
	"math/bits"
	"slices"
)

// LCM2 returns the least common multiple of a and b.
// The result is 0 if either operand is 0. If the multiple does not fit in T,
// the returned error wraps ErrOverflow.
func LCM2[T Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	q := a / GCD2(a, b)

	hi, lo := bits.Mul64(uint64(q), uint64(b))
	if hi != 0 || lo > uint64(^T(0)) {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, a, b)
	}

	return T(lo), nil
}

// LCM3 returns the least common multiple of a, b and c.
func LCM3[T Unsigned](a, b, c T) (T, error) {
	buf := [3]T{a, b, c}
	return LCMN(buf[:])
}

// LCM4 returns the least common multiple of a, b, c and d.
func LCM4[T Unsigned](a, b, c, d T) (T, error) {
	buf := [4]T{a, b, c, d}
	return LCMN(buf[:])
}

// LCMN returns the least common multiple of xs. Unlike GCDN it does not
// modify xs.
//
// Any zero operand makes the result 0, even when the other operands alone
// would overflow. An empty slice yields ErrNoOperands.
func LCMN[T Unsigned](xs []T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrNoOperands
	}

	if slices.Contains(xs, 0) {
		return 0, nil
	}

	acc := xs[0]
	for _, x := range xs[1:] {
		var err error

		acc, err = LCM2(acc, x)
		if err != nil {
			return 0, err
		}
	}

	return acc, nil
}
