// Package gcdn computes the greatest common divisor of many fixed-width
// unsigned integers at once, faster than chaining pairwise GCDs.
//
// # Overview
//
// Folding gcd(gcd(gcd(a, b), c), d) rediscovers the shared power of two and
// restarts a full Euclidean reduction at every step. This package looks at
// all operands together instead:
//   - The common power of two is found once, from the OR of the operands
//   - Operands are made odd and sorted, so reduction starts from the smallest
//   - Every operand is reduced against one shared odd candidate using only
//     subtraction and shifts (Stein's algorithm)
//   - The reduction stops as soon as the candidate reaches 1
//
// All entry points are generic over the unsigned integer types.
//
// # Quick Start
//
// Fixed arity, no allocation and no error path:
//
//	g := gcdn.GCD4[uint32](15, 120, 30, 25) // 5
//
// Any arity, zero allocation, operands consumed in place:
//
//	xs := []uint64{12, 18, 24}
//	g, err := gcdn.GCDN(xs) // 6; xs is now scrambled
//
// Any arity, operands preserved:
//
//	g, err := gcdn.GCD[uint64](12, 18, 24)
//
// Large operand sets, operands preserved, buffers recycled:
//
//	pool, _ := gcdn.NewPool[uint64]()
//	g, err := pool.GCD(xs)
//
// Least common multiples are available through LCM2, LCM3, LCM4 and LCMN,
// which report results that do not fit the operand type with ErrOverflow.
//
// # Zero and Empty Inputs
//
// A zero operand places no constraint on the result, so GCDN([0, x]) is x
// and an all-zero input yields 0. Calling an N-ary entry point with no
// operands is a caller error and yields ErrNoOperands; the fixed-arity
// functions cannot be called that way.
//
// # Thread Safety
//
// The functions keep no state between calls. GCDN requires exclusive access
// to its slice for the duration of the call. A Pool may be shared by any
// number of goroutines.
package gcdn
