// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import "testing"

func TestParseSignature(t *testing.T) {
	// SEQUENCE { INTEGER 0x1234, INTEGER 0x05 }
	data := []byte{
		0x30, 0x07,
		0x02, 0x02, 0x12, 0x34,
		0x02, 0x01, 0x05,
	}
	r, s, err := ParseSignature(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "1234" {
		t.Errorf("r = %s, want 1234", r)
	}
	if s.String() != "05" {
		t.Errorf("s = %s, want 05", s)
	}
}

func TestParseSignatureZeroValues(t *testing.T) {
	// SEQUENCE { INTEGER 0, INTEGER 1 } -- the S5 scenario's malformed
	// signature; der.ParseSignature itself accepts it (range checking
	// r/s against Q is the verifier's job), but it should round-trip to
	// r=0, s=1 so the caller can reject it.
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x00, 0x02, 0x01, 0x01}
	r, s, err := ParseSignature(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsZero() {
		t.Errorf("r = %s, want 0", r)
	}
	if s.String() != "01" {
		t.Errorf("s = %s, want 01", s)
	}
}

func TestParseSignatureTrailingData(t *testing.T) {
	data := []byte{
		0x30, 0x06,
		0x02, 0x01, 0x01,
		0x02, 0x01, 0x02,
		0xff, // trailing junk
	}
	if _, _, err := ParseSignature(data); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestParseSignatureTruncated(t *testing.T) {
	data := []byte{0x30, 0x08, 0x02, 0x02, 0x12, 0x34, 0x02, 0x01}
	if _, _, err := ParseSignature(data); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestParseSignatureWrongTag(t *testing.T) {
	data := []byte{0x31, 0x03, 0x02, 0x01, 0x01} // 0x31 is not a SEQUENCE
	if _, _, err := ParseSignature(data); err == nil {
		t.Fatalf("expected error for wrong outer tag")
	}
}
