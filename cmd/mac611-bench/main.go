//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command mac611-bench prints the MAC611 test vectors and measures
// tagging throughput of every multiplication backend against a couple
// of well-known MACs.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/markkurossi/mac611/crypto/mac611"
	"github.com/markkurossi/tabulate"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

// The canonical key of the published MAC611 vectors.
var testKey = []byte{
	0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
}

var backends = []mac611.Backend{
	mac611.Generic, mac611.Mul32, mac611.Karatsuba, mac611.Tabled,
}

func main() {
	vectors := flag.Bool("vectors", false, "print test vectors")
	flag.Parse()

	log.SetFlags(0)

	if *vectors {
		printVectors()
		return
	}
	benchmark()
}

func printVectors() {
	ctxs := make(map[mac611.Backend]*mac611.Context)
	for _, b := range backends {
		ctx, err := mac611.NewBackend(testKey, b)
		if err != nil {
			log.Fatal(err)
		}
		ctxs[b] = ctx
	}

	fmt.Printf("MAC611 test vectors, key %x\n", testKey)

	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Len").SetAlign(tabulate.MR)
	tab.Header("Nonce").SetAlign(tabulate.ML)
	tab.Header("Tag").SetAlign(tabulate.ML)
	tab.Header("Backends").SetAlign(tabulate.ML)

	for _, n := range []int{0, 7, 8, 56, 7 * mac611.Lambda, 7*mac611.Lambda + 7} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i)
		}
		var nonce [mac611.NonceSize]byte
		if n == 7 {
			for i := range nonce {
				nonce[i] = 7
			}
		} else {
			binary.LittleEndian.PutUint64(nonce[:], uint64(n))
		}

		var ref [mac611.TagSize]byte
		ctxs[mac611.Generic].Tag(msg, &nonce, &ref)
		agree := "agree"
		for _, b := range backends {
			var tag [mac611.TagSize]byte
			ctxs[b].Tag(msg, &nonce, &tag)
			if tag != ref {
				agree = fmt.Sprintf("MISMATCH (%v)", b)
			}
		}

		row := tab.Row()
		row.Column(fmt.Sprintf("%d", n))
		row.Column(fmt.Sprintf("%x", nonce))
		row.Column(fmt.Sprintf("%x", ref))
		row.Column(agree)
	}
	tab.Print(os.Stdout)
}

// measure runs fn repeatedly over a msgLen-byte message for a fixed
// wall-time slice and returns the throughput in MB/s.
func measure(msgLen int, fn func(msg []byte)) float64 {
	msg := make([]byte, msgLen)
	for i := range msg {
		msg[i] = byte(i)
	}

	// Warm up.
	fn(msg)

	var rounds int
	start := time.Now()
	for time.Since(start) < 250*time.Millisecond {
		fn(msg)
		rounds++
	}
	elapsed := time.Since(start)

	return float64(rounds*msgLen) / elapsed.Seconds() / 1e6
}

func benchmark() {
	sizes := []int{64, 1024, 65536}

	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	for _, size := range sizes {
		tab.Header(fmt.Sprintf("%d B (MB/s)", size)).SetAlign(tabulate.MR)
	}

	var nonce [mac611.NonceSize]byte
	var tag [mac611.TagSize]byte

	for _, b := range backends {
		ctx, err := mac611.NewBackend(testKey, b)
		if err != nil {
			log.Fatal(err)
		}
		row := tab.Row()
		row.Column(fmt.Sprintf("MAC611 %v", b))
		for _, size := range sizes {
			mbs := measure(size, func(msg []byte) {
				ctx.Tag(msg, &nonce, &tag)
			})
			row.Column(fmt.Sprintf("%.1f", mbs))
		}
	}

	// Baselines. Both take 32-byte keys; double the MAC611 key.
	key32 := append(append([]byte(nil), testKey...), testKey...)

	aead, err := chacha20poly1305.New(key32)
	if err != nil {
		log.Fatal(err)
	}
	aeadNonce := make([]byte, chacha20poly1305.NonceSize)
	var sealed []byte
	row := tab.Row()
	row.Column("ChaCha20-Poly1305 seal")
	for _, size := range sizes {
		mbs := measure(size, func(msg []byte) {
			sealed = aead.Seal(sealed[:0], aeadNonce, msg, nil)
		})
		row.Column(fmt.Sprintf("%.1f", mbs))
	}

	var sum []byte
	row = tab.Row()
	row.Column("BLAKE2b-256 keyed")
	for _, size := range sizes {
		mbs := measure(size, func(msg []byte) {
			h, _ := blake2b.New256(key32)
			h.Write(msg)
			sum = h.Sum(sum[:0])
		})
		row.Column(fmt.Sprintf("%.1f", mbs))
	}

	tab.Print(os.Stdout)
}
