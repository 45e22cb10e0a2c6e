package gcdn

// GCD2 returns the greatest common divisor of a and b.
func GCD2[T Unsigned](a, b T) T {
	buf := [2]T{a, b}
	return reduce(buf[:])
}

// GCD3 returns the greatest common divisor of a, b and c.
func GCD3[T Unsigned](a, b, c T) T {
	buf := [3]T{a, b, c}
	return reduce(buf[:])
}

// GCD4 returns the greatest common divisor of a, b, c and d.
func GCD4[T Unsigned](a, b, c, d T) T {
	buf := [4]T{a, b, c, d}
	return reduce(buf[:])
}
