//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package noekeon implements the Noekeon block cipher in direct-key
// mode. The cipher operates on 128-bit blocks under a 128-bit key and
// satisfies crypto/cipher.Block. Blocks are interpreted as four 32-bit
// big-endian words, following the NESSIE submission.
package noekeon

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// Block and key sizes in bytes.
const (
	BlockSize = 16
	KeySize   = 16
)

// Round constants, generated by the x^8+x^4+x^3+x+1 LFSR from 0x80.
var rc = [17]uint32{
	0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a, 0x2f,
	0x5e, 0xbc, 0x63, 0xc6, 0x97, 0x35, 0x6a, 0xd4,
}

type noekeonCipher struct {
	k  [4]uint32
	dk [4]uint32
}

// New creates a Noekeon instance for the given 16-byte key.
func New(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("noekeon: invalid key length %d", len(key))
	}
	c := new(noekeonCipher)
	for i := 0; i < 4; i++ {
		c.k[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	// Decryption runs theta with the key transformed by a null key.
	c.dk = c.k
	var null [4]uint32
	theta(&null, &c.dk)
	return c, nil
}

func (c *noekeonCipher) BlockSize() int {
	return BlockSize
}

func rotl(x uint32, n uint) uint32 {
	return x<<n | x>>(32-n)
}

// theta is the linear layer: two column-parity mixes around the
// working-key addition.
func theta(k, a *[4]uint32) {
	t := a[0] ^ a[2]
	t ^= rotl(t, 8) ^ rotl(t, 24)
	a[1] ^= t
	a[3] ^= t

	a[0] ^= k[0]
	a[1] ^= k[1]
	a[2] ^= k[2]
	a[3] ^= k[3]

	t = a[1] ^ a[3]
	t ^= rotl(t, 8) ^ rotl(t, 24)
	a[0] ^= t
	a[2] ^= t
}

// gamma is the nonlinear layer, an involution.
func gamma(a *[4]uint32) {
	a[1] ^= ^a[3] & ^a[2]
	a[0] ^= a[2] & a[1]

	a[0], a[3] = a[3], a[0]

	a[2] ^= a[0] ^ a[1] ^ a[3]

	a[1] ^= ^a[3] & ^a[2]
	a[0] ^= a[2] & a[1]
}

func pi1(a *[4]uint32) {
	a[1] = rotl(a[1], 1)
	a[2] = rotl(a[2], 5)
	a[3] = rotl(a[3], 2)
}

func pi2(a *[4]uint32) {
	a[1] = rotl(a[1], 31)
	a[2] = rotl(a[2], 27)
	a[3] = rotl(a[3], 30)
}

// Encrypt encrypts the 16-byte block in src into dst. The buffers may
// alias.
func (c *noekeonCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("noekeon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("noekeon: output not full block")
	}
	var a [4]uint32
	for i := 0; i < 4; i++ {
		a[i] = binary.BigEndian.Uint32(src[4*i:])
	}
	for i := 0; i < 16; i++ {
		a[0] ^= rc[i]
		theta(&c.k, &a)
		pi1(&a)
		gamma(&a)
		pi2(&a)
	}
	a[0] ^= rc[16]
	theta(&c.k, &a)
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint32(dst[4*i:], a[i])
	}
}

// Decrypt decrypts the 16-byte block in src into dst. The buffers may
// alias.
func (c *noekeonCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("noekeon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("noekeon: output not full block")
	}
	var a [4]uint32
	for i := 0; i < 4; i++ {
		a[i] = binary.BigEndian.Uint32(src[4*i:])
	}
	for i := 16; i > 0; i-- {
		theta(&c.dk, &a)
		a[0] ^= rc[i]
		pi1(&a)
		gamma(&a)
		pi2(&a)
	}
	theta(&c.dk, &a)
	a[0] ^= rc[0]
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint32(dst[4*i:], a[i])
	}
}
