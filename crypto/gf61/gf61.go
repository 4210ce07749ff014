//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gf61 implements arithmetic in the prime field of order
// 2^61-1. Elements are held in single uint64 words; most operations
// keep values only partially reduced and callers normalize with
// ReduceFull when a canonical representative is needed.
package gf61

import (
	"math/bits"
)

// P is the field order, the Mersenne prime 2^61-1.
const P = 1<<61 - 1

// Reduce maps any 64-bit value into [0, 2^61+6]. The result is
// congruent to x modulo P.
func Reduce(x uint64) uint64 {
	return (x & P) + (x >> 61)
}

// ReduceFull maps any 64-bit value into [0, P-1].
func ReduceFull(x uint64) uint64 {
	x = Reduce(x)
	if x >= P {
		x -= P
	}
	return x
}

// Add returns the plain 64-bit sum of a and b. The arguments must be
// below 2^63 or the sum may wrap; the Horner accumulator keeps its
// operands below 2^62.
func Add(a, b uint64) uint64 {
	return a + b
}

// reduceStep maps a value in [0, 2^62-2] into [0, P]. Unlike
// ReduceFull it leaves the value P in place, so table entries occupy
// [0, 2^61-1].
func reduceStep(x uint64) uint64 {
	if x > P {
		x -= P
	}
	return x
}

// Mul returns x*y mod P, partially reduced into [0, 2^61+6]. Both
// arguments must be below 2^62. This is the reference backend: the
// full 128-bit product is folded using 2^64 = 8 and 2^61 = 1 (mod P).
func Mul(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return Reduce((lo & P) + (hi<<3 | lo>>61))
}
