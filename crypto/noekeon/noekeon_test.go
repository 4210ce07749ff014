//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package noekeon

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Direct-key mode vectors from the NESSIE submission.
var nessieVectors = []struct {
	key        string
	plaintext  string
	ciphertext string
}{
	{
		key:        "00000000000000000000000000000000",
		plaintext:  "00000000000000000000000000000000",
		ciphertext: "b1656851699e29fa24b70148503d2dfc",
	},
	{
		key:        "b1656851699e29fa24b70148503d2dfc",
		plaintext:  "2a78421b87c7d0924f26113f1d1349b2",
		ciphertext: "e2f687e07b75660ffc372233bc47532c",
	},
}

func TestNessieVectors(t *testing.T) {
	for i, test := range nessieVectors {
		key, err := hex.DecodeString(test.key)
		if err != nil {
			t.Fatalf("invalid key: %v", err)
		}
		pt, err := hex.DecodeString(test.plaintext)
		if err != nil {
			t.Fatalf("invalid plaintext: %v", err)
		}
		ct, err := hex.DecodeString(test.ciphertext)
		if err != nil {
			t.Fatalf("invalid ciphertext: %v", err)
		}

		c, err := New(key)
		if err != nil {
			t.Fatal(err)
		}

		var out [BlockSize]byte
		c.Encrypt(out[:], pt)
		if !bytes.Equal(out[:], ct) {
			t.Errorf("vector %d: encrypt %x, want %x", i, out, ct)
		}

		c.Decrypt(out[:], ct)
		if !bytes.Equal(out[:], pt) {
			t.Errorf("vector %d: decrypt %x, want %x", i, out, pt)
		}
	}
}

func TestInPlace(t *testing.T) {
	key := []byte("0123456789abcdef")
	c, err := New(key)
	if err != nil {
		t.Fatal(err)
	}

	buf := []byte("MAC611 test blk!")
	var sep [BlockSize]byte
	c.Encrypt(sep[:], buf)

	inPlace := append([]byte(nil), buf...)
	c.Encrypt(inPlace, inPlace)
	if !bytes.Equal(inPlace, sep[:]) {
		t.Errorf("in-place encrypt %x, separate %x", inPlace, sep)
	}

	c.Decrypt(inPlace, inPlace)
	if !bytes.Equal(inPlace, buf) {
		t.Errorf("in-place roundtrip %x, want %x", inPlace, buf)
	}
}

func TestKeyLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		if _, err := New(make([]byte, n)); err == nil {
			t.Errorf("no error for %d-byte key", n)
		}
	}
}

func TestBlockSize(t *testing.T) {
	c, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatal(err)
	}
	if c.BlockSize() != BlockSize {
		t.Errorf("BlockSize() = %d, want %d", c.BlockSize(), BlockSize)
	}
}
