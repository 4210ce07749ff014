//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mac611 implements MAC611, a nonce-based Wegman-Carter
// message authentication code for constrained cores. A polynomial hash
// over the prime field of order 2^61-1 compresses the message in
// 56-bit blocks; Noekeon under the 128-bit master key derives the hash
// sub-keys and pseudorandomizes the hash together with the 64-bit
// nonce into a 64-bit tag.
package mac611

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/mac611/crypto/gf61"
	"github.com/markkurossi/mac611/crypto/noekeon"
)

// Sizes of the MAC inputs and output in bytes.
const (
	KeySize   = 16
	NonceSize = 8
	TagSize   = 8
)

// Lambda is the number of Horner steps evaluated under one hash
// sub-key before the schedule installs the next one.
const Lambda = 1024

// Context holds the keyed state of a MAC611 instance. A Context built
// with the Tabled backend is mutated during Tag and must not be shared
// between concurrent Tag calls; the other backends keep the Context
// read-only and may be shared.
type Context struct {
	block   cipher.Block
	backend Backend
	h0      uint64
	table   *gf61.Table
}

// New creates a MAC611 context for the 16-byte key using the default
// backend.
func New(key []byte) (*Context, error) {
	return NewBackend(key, Generic)
}

// NewBackend creates a MAC611 context for the 16-byte key using the
// given multiplication backend.
func NewBackend(key []byte, backend Backend) (*Context, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("mac611: invalid key length %d", len(key))
	}
	block, err := noekeon.New(key)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		block:   block,
		backend: backend,
		h0:      subKey(block, 0),
	}
	switch backend {
	case Generic, Mul32, Karatsuba:

	case Tabled:
		ctx.table = new(gf61.Table)
		ctx.table.Init(ctx.h0)

	default:
		return nil, fmt.Errorf("mac611: unknown backend %d", backend)
	}
	return ctx, nil
}

// Tag authenticates msg under the context key and the 8-byte nonce and
// writes the 8-byte tag. Tagging the same message under two nonces
// leaks nothing about the hash key; the caller must never reuse a
// nonce with the same key for different messages.
func (ctx *Context) Tag(msg []byte, nonce *[NonceSize]byte, tag *[TagSize]byte) {
	var m multiplier
	if ctx.backend == Tabled {
		m = &tableMul{table: ctx.table}
	} else {
		m = &scalarMul{h: ctx.h0, mul: scalarMulFunc[ctx.backend]}
	}

	ks := keySchedule{block: ctx.block}
	state := uint64(0)
	cnt := Lambda
	rotated := false

	p := packer{msg: msg}
	for p.more() {
		state = m.mulKey(state + p.next())
		cnt--
		if cnt == 0 {
			m.install(ks.next())
			cnt = Lambda
			rotated = true
		}
	}

	// Length padding: one more Horner step absorbing the byte count.
	// The count may exceed 2^56; it is still far below the 2^62
	// multiplier domain on any real host.
	state = m.mulKey(state + uint64(len(msg)))

	// Finalization: encrypt S || N. The 2^63 bit separates the
	// finalization blocks from the sub-key schedule blocks, whose low
	// halves have a zero top bit.
	var blk [noekeon.BlockSize]byte
	binary.LittleEndian.PutUint64(blk[:8], gf61.ReduceFull(state)|1<<63)
	copy(blk[8:], nonce[:])
	ctx.block.Encrypt(blk[:], blk[:])
	copy(tag[:], blk[:TagSize])

	// The tabled backend overwrote its table on rotation; put the
	// first sub-key back so the context is reusable.
	if rotated && ctx.backend == Tabled {
		ctx.table.Init(ctx.h0)
	}
}

// Destroy clears the key material owned by the context. The context
// must not be used afterwards.
func (ctx *Context) Destroy() {
	ctx.block = nil
	ctx.h0 = 0
	if ctx.table != nil {
		ctx.table.Wipe()
		ctx.table = nil
	}
}

// VerifyTag compares two tags in constant time.
func VerifyTag(a, b *[TagSize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
