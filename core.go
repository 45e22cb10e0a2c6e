package gcdn

import (
	"math/bits"
	"slices"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of fixed-width operand types accepted by every entry point.
type Unsigned interface {
	constraints.Unsigned
}

// tz returns the trailing-zero count of x. x must be nonzero.
func tz[T Unsigned](x T) int {
	return bits.TrailingZeros64(uint64(x))
}

// reduce computes the GCD of xs in place and is the single core every entry
// point funnels into. xs must be non-empty; its contents are scrambled.
//
// The reduction runs in four phases:
//  1. Partition nonzero operands to the front (zeros constrain nothing)
//  2. Extract the common power of two once and make every residue odd
//  3. Sort the odd residues ascending
//  4. Fold every residue into one shared odd candidate with binary steps
//
// After phase 4 has visited index i, xs[i] holds the GCD of the odd residues
// xs[0..i].
func reduce[T Unsigned](xs []T) T {
	if len(xs) == 1 {
		return xs[0]
	}

	// Phase 1: partition, and bail out on a unit operand
	var (
		live int
		or   T
	)

	for i, x := range xs {
		if x == 0 {
			continue
		}

		if x == 1 {
			return 1
		}

		or |= x
		xs[live], xs[i] = x, xs[live]
		live++
	}

	switch live {
	case 0:
		return 0
	case 1:
		return xs[0]
	}

	ops := xs[:live]

	// Phase 2: the lowest set bit of the OR is the minimum trailing-zero count
	shift := tz(or)

	for i, x := range ops {
		x >>= tz(x)
		if x == 1 {
			return T(1) << shift
		}

		ops[i] = x
	}

	// Phase 3
	slices.Sort(ops)

	// Phase 4: shared-candidate reduction
	g := ops[0]
	for i := 1; i < live; i++ {
		if x := ops[i]; x != g {
			g = oddGCD(g, x)
			if g == 1 {
				ops[i] = 1
				return T(1) << shift
			}
		}

		ops[i] = g
	}

	return g << shift
}

// oddGCD is Stein's reduction specialised to two odd operands: the difference
// of two odd values is even, so every subtraction is followed by stripping the
// new trailing zeros, which at least halves the larger operand.
func oddGCD[T Unsigned](a, b T) T {
	for a != b {
		if a > b {
			a -= b
			a >>= tz(a)
		} else {
			b -= a
			b >>= tz(b)
		}
	}

	return a
}
