package gcdn_test

import (
	"encoding/binary"
	"testing"

	"github.com/kalbasit/gcdn"
)

func FuzzGCDN(f *testing.F) {
	f.Add([]byte{15, 0, 120, 0, 30, 0, 25, 0}, uint8(0))
	f.Add([]byte{0, 0, 0, 0, 7, 0}, uint8(3))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, uint8(1))
	f.Add([]byte{1}, uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, shift uint8) {
		// Operands are little-endian uint32 words scaled by a shared power of
		// two, so the common-factor path is exercised as well.
		shift %= 16

		var xs []uint64
		for len(data) >= 4 {
			xs = append(xs, uint64(binary.LittleEndian.Uint32(data))<<shift)
			data = data[4:]
		}

		if len(xs) == 0 {
			if _, err := gcdn.GCDN(xs); err == nil {
				t.Fatal("expected an error for an empty operand set")
			}

			return
		}

		want := bigGCD(xs)

		keep, err := gcdn.GCD(xs...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if keep != want {
			t.Fatalf("GCD(%v) = %d, want %d", xs, keep, want)
		}

		// Divisor property, checked before GCDN scrambles the operands.
		for _, x := range xs {
			if want != 0 && x%want != 0 {
				t.Fatalf("%d does not divide %d", want, x)
			}
		}

		got, err := gcdn.GCDN(xs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != want {
			t.Fatalf("GCDN = %d, want %d", got, want)
		}
	})
}
