//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/mac611/crypto/mac611"
)

func main() {
	k := flag.String("k", "", "16-byte key as hex")
	n := flag.String("n", "0000000000000000", "8-byte nonce as hex")
	b := flag.String("b", "generic", "backend: generic, mul32, karatsuba, tabled")
	flag.Parse()

	log.SetFlags(0)

	if len(*k) == 0 {
		log.Fatalf("no key")
	}
	key, err := hex.DecodeString(*k)
	if err != nil {
		log.Fatalf("invalid key: %v", err)
	}
	nb, err := hex.DecodeString(*n)
	if err != nil {
		log.Fatalf("invalid nonce: %v", err)
	}
	if len(nb) != mac611.NonceSize {
		log.Fatalf("invalid nonce length %v", len(nb))
	}
	var nonce [mac611.NonceSize]byte
	copy(nonce[:], nb)

	backend, err := mac611.ParseBackend(*b)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := mac611.NewBackend(key, backend)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Destroy()

	if len(flag.Args()) == 0 {
		err := tagStream(ctx, &nonce, os.Stdin, "-")
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range flag.Args() {
		f, err := os.Open(arg)
		if err != nil {
			log.Fatal(err)
		}
		err = tagStream(ctx, &nonce, f, arg)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
}

func tagStream(ctx *mac611.Context, nonce *[mac611.NonceSize]byte,
	in io.Reader, name string) error {

	msg, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	var tag [mac611.TagSize]byte
	ctx.Tag(msg, nonce, &tag)
	fmt.Printf("%x  %s\n", tag, name)
	return nil
}
