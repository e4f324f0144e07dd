// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import (
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestParsePublicKeyFixture(t *testing.T) {
	pem, err := os.ReadFile("../testdata/pubkey.pem")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	payload, err := Dearmor(pem)
	if err != nil {
		t.Fatalf("Dearmor: %v", err)
	}
	keyDER, err := DecodeBase64(payload)
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}

	p, q, g, y, err := ParsePublicKey(keyDER)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if p.BitLen() < 3060 || p.BitLen() > 3072 {
		t.Errorf("P.BitLen() = %d, want ~3072: %s", p.BitLen(), spew.Sdump(p))
	}
	if q.BitLen() != 256 {
		t.Errorf("Q.BitLen() = %d, want 256: %s", q.BitLen(), spew.Sdump(q))
	}
	if g.IsZero() || y.IsZero() {
		t.Errorf("G or Y decoded as zero")
	}
}

// TestParsePublicKeyWrongOID checks that a key whose algorithm
// OID isn't id-dsa must be rejected (scenario S6, RSA's
// 1.2.840.113549.1.1.1 in place of 1.2.840.10040.4.1).
func TestParsePublicKeyWrongOID(t *testing.T) {
	pem, err := os.ReadFile("../testdata/pubkey_rsa_oid.pem")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	payload, err := Dearmor(pem)
	if err != nil {
		t.Fatalf("Dearmor: %v", err)
	}
	keyDER, err := DecodeBase64(payload)
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}

	if _, _, _, _, err := ParsePublicKey(keyDER); err == nil {
		t.Fatalf("expected OID mismatch error")
	} else if kind, ok := err.(Error); !ok || kind.Err != ErrOID {
		t.Fatalf("expected ErrOID, got %v", err)
	}
}

func TestParsePublicKeyTruncated(t *testing.T) {
	if _, _, _, _, err := ParsePublicKey([]byte{0x30, 0x05, 0x30, 0x03}); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestParsePublicKeyBitStringUnusedBits(t *testing.T) {
	// A BIT STRING whose leading unused-bits byte is non-zero must be
	// rejected outright.
	params := testDERSequence(
		testDERInteger(5), testDERInteger(3), testDERInteger(2),
	)
	algID := testDERSequence(testDEROID(), params)
	badBitString := []byte{0x03, 0x03, 0x01, 0x02, 0x03} // unused-bits byte == 1
	outer := testDERSequence(algID, badBitString)

	if _, _, _, _, err := ParsePublicKey(outer); err == nil {
		t.Fatalf("expected error for non-zero unused-bits byte")
	}
}

// --- minimal DER builders for negative-path tests ---

func testDERLen(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var b []byte
	for v := n; v > 0; v >>= 8 {
		b = append([]byte{byte(v)}, b...)
	}
	return append([]byte{0x80 | byte(len(b))}, b...)
}

func testDERInteger(n int) []byte {
	b := []byte{byte(n)}
	return append([]byte{0x02}, append(testDERLen(len(b)), b...)...)
}

func testDERSequence(parts ...[]byte) []byte {
	var body []byte
	for _, p := range parts {
		body = append(body, p...)
	}
	return append([]byte{0x30}, append(testDERLen(len(body)), body...)...)
}

func testDEROID() []byte {
	body := dsaOID
	return append([]byte{0x06}, append(testDERLen(len(body)), body...)...)
}
