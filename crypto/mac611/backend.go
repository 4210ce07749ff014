//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mac611

import (
	"fmt"

	"github.com/markkurossi/mac611/crypto/gf61"
)

// Backend selects the field multiplication strategy of a context. The
// choice is made at construction time; there is no process-wide
// switch.
type Backend int

// Multiplication backends. All backends produce bit-identical tags;
// they differ only in how x*h mod 2^61-1 is evaluated.
const (
	// Generic uses the 64x64->128 reference multiplier.
	Generic Backend = iota
	// Mul32 uses the 32-bit schoolbook multiplier.
	Mul32
	// Karatsuba uses the base-2^31 Karatsuba multiplier.
	Karatsuba
	// Tabled evaluates products through 8x256 lookup tables built
	// per sub-key. The table lives in the context and is rebuilt in
	// place when the sub-key rotates.
	Tabled
)

var backendNames = map[Backend]string{
	Generic:   "generic",
	Mul32:     "mul32",
	Karatsuba: "karatsuba",
	Tabled:    "tabled",
}

func (b Backend) String() string {
	name, ok := backendNames[b]
	if !ok {
		return fmt.Sprintf("Backend(%d)", int(b))
	}
	return name
}

// ParseBackend maps a backend name to its value.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("mac611: unknown backend %q", name)
}

// multiplier is what a Tag evaluation needs from a backend: multiply
// the accumulator by the installed sub-key, and install the next
// sub-key on rotation.
type multiplier interface {
	mulKey(x uint64) uint64
	install(h uint64)
}

var scalarMulFunc = map[Backend]func(x, y uint64) uint64{
	Generic:   gf61.Mul,
	Mul32:     gf61.Mul32,
	Karatsuba: gf61.MulKaratsuba,
}

// scalarMul evaluates products directly against the sub-key word. It
// is created per Tag call, leaving the context untouched.
type scalarMul struct {
	h   uint64
	mul func(x, y uint64) uint64
}

func (m *scalarMul) mulKey(x uint64) uint64 {
	return m.mul(x, m.h)
}

func (m *scalarMul) install(h uint64) {
	m.h = h
}

// tableMul evaluates products through the context-owned lookup table.
// Installing a sub-key rebuilds the table in place.
type tableMul struct {
	table *gf61.Table
}

func (m *tableMul) mulKey(x uint64) uint64 {
	return m.table.Mul(x)
}

func (m *tableMul) install(h uint64) {
	m.table.Init(h)
}
