// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"encoding/base64"
	"math/rand"
	"testing"
)

func TestDecodeBase64AgainstStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 17, 100} {
		data := make([]byte, n)
		r.Read(data)
		encoded := base64.StdEncoding.EncodeToString(data)

		got, err := DecodeBase64([]byte(encoded))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("n=%d: DecodeBase64 = %x want %x", n, got, data)
		}
	}
}

// TestDecodeBase64WhitespaceInvariance checks that inserting
// whitespace into a base64 payload must not change the decoded result.
func TestDecodeBase64WhitespaceInvariance(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	encoded := base64.StdEncoding.EncodeToString(data)

	variants := []string{
		encoded,
		encoded[:4] + "\n" + encoded[4:],
		encoded[:4] + "\r\n" + encoded[4:],
		encoded[:4] + "\t" + encoded[4:],
		encoded[:4] + "  " + encoded[4:],
		"\n" + encoded + "\n",
	}

	for _, v := range variants {
		got, err := DecodeBase64([]byte(v))
		if err != nil {
			t.Fatalf("variant %q: unexpected error: %v", v, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("variant %q: got %x want %x", v, got, data)
		}
	}
}

func TestDecodeBase64InvalidChar(t *testing.T) {
	if _, err := DecodeBase64([]byte("abc!def")); err == nil {
		t.Fatalf("expected error for invalid character")
	}
}

func TestDecodeBase64UnpaddedPrefix(t *testing.T) {
	// "YWJj" decodes to "abc"; an extra, non-multiple-of-4, unpadded
	// trailing character is silently dropped rather than erroring
	// a deliberate lenience, kept for interoperability.
	got, err := DecodeBase64([]byte("YWJjZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Fatalf("got %q want %q", got, "abc")
	}
}
