//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mac611

import (
	"crypto/cipher"
	"encoding/binary"

	"github.com/markkurossi/mac611/crypto/gf61"
	"github.com/markkurossi/mac611/crypto/noekeon"
)

// subKey derives the k-th hash sub-key: Noekeon of the 128-bit block
// whose high 64 bits hold k little-endian, fully reduced into the
// field. Sub-key zero comes from the all-zero block.
func subKey(block cipher.Block, k uint64) uint64 {
	var blk [noekeon.BlockSize]byte
	binary.LittleEndian.PutUint64(blk[8:], k)
	block.Encrypt(blk[:], blk[:])
	return gf61.ReduceFull(binary.LittleEndian.Uint64(blk[:8]))
}

// keySchedule walks the sub-key stream h_1, h_2, ... during one Tag
// evaluation. The stream is a pure function of the master key and the
// index, so rotation needs no state beyond the counter.
type keySchedule struct {
	block cipher.Block
	k     uint64
}

// next returns the next sub-key in the stream.
func (ks *keySchedule) next() uint64 {
	ks.k++
	return subKey(ks.block, ks.k)
}
