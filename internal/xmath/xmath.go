// Package xmath provides generic scalar helpers used by the h3
// package's hex coordinate algebra and integer power helper, replacing
// per-type duplicated min/max/abs branches with one implementation.
package xmath

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a > b {
		return b
	}
	return a
}

// IPow computes base raised to exp for non-negative integer exponents.
func IPow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 > 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}
