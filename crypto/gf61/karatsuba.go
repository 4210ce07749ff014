//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf61

import (
	"math/bits"
)

// MulKaratsuba returns x*y mod P, partially reduced into [0, 2^61+6],
// splitting both arguments into base-2^31 digits so that three
// multiplications replace the schoolbook four. This is the strategy used on cores
// whose multiplier is cheap but narrow. Both arguments must be below
// 2^62.
func MulKaratsuba(x, y uint64) uint64 {
	xl := x & (1<<31 - 1)
	xh := x >> 31
	yl := y & (1<<31 - 1)
	yh := y >> 31

	m0 := xl * yl
	m1 := xh * yh
	// (xl+xh) and (yl+yh) are below 2^32, so the product fits.
	k := (xl+xh)*(yl+yh) - m0 - m1

	// x*y = m0 + 2^31*k + 2^62*m1, assembled as a 128-bit value.
	lo, c := bits.Add64(m0, k<<31, 0)
	hi := k>>33 + c
	lo, c = bits.Add64(lo, m1<<62, 0)
	hi += m1>>2 + c

	return Reduce((lo & P) + (hi<<3 | lo>>61))
}
