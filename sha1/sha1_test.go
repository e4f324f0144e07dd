// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha1

import (
	"bytes"
	crypto_sha1 "crypto/sha1"
	"math/rand"
	"testing"
)

// TestSumAgainstStdlib checks this package's one-shot digest against the
// standard library's implementation across a range of message lengths,
// including lengths that straddle the 64-byte block and 56-byte padding
// boundaries.
func TestSumAgainstStdlib(t *testing.T) {
	lengths := []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 121, 1000}
	r := rand.New(rand.NewSource(1))
	for _, n := range lengths {
		data := make([]byte, n)
		r.Read(data)

		got := Sum(data)
		want := crypto_sha1.Sum(data)
		if got != want {
			t.Errorf("len=%d: Sum = %x want %x", n, got, want)
		}
	}
}

// TestStreamingIdempotence checks that reset+input(x)+result must
// equal a one-shot hash(x) regardless of how x is split across Write
// calls.
func TestStreamingIdempotence(t *testing.T) {
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 5)
	want := Sum(data)

	splits := [][]int{
		{len(data)},
		{0, len(data)},
		{1, 63, len(data) - 64},
		{10, 10, 10, len(data) - 30},
	}

	for _, split := range splits {
		h := New()
		pos := 0
		for _, n := range split {
			h.Write(data[pos : pos+n])
			pos += n
		}
		var got [Size]byte
		copy(got[:], h.Sum(nil))
		if got != want {
			t.Errorf("split=%v: got %x want %x", split, got, want)
		}
	}
}

func TestResetReusable(t *testing.T) {
	h := New()
	h.Write([]byte("first"))
	h.Sum(nil)
	h.Reset()
	h.Write([]byte("second"))
	got := h.Sum(nil)

	want := Sum([]byte("second"))
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("after Reset, got %x want %x", got, want)
	}
}
