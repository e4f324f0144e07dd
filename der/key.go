// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import "github.com/marcizhu/dsaverify-go/mp"

// dsaOID is the DER encoding of 1.2.840.10040.4.1 (id-dsa, ANSI X9.57),
// the only algorithm identifier this decoder accepts.
var dsaOID = []byte{0x2a, 0x86, 0x48, 0xce, 0x38, 0x04, 0x01}

// ParsePublicKey decodes the RFC 3279 SubjectPublicKeyInfo structure for a
// DSA public key:
//
//	SEQUENCE {
//	  SEQUENCE {
//	    OBJECT IDENTIFIER   -- must be 1.2.840.10040.4.1
//	    SEQUENCE { INTEGER p, INTEGER q, INTEGER g }
//	  }
//	  BIT STRING { 0x00, INTEGER y }
//	}
//
// This is not a general ASN.1 parser: it matches exactly this shape and
// fails on any deviation, including trailing bytes after the outer
// SEQUENCE.
func ParsePublicKey(data []byte) (p, q, g, y *mp.Int, err error) {
	c := newCursor(data)

	outer, err := c.takeTLV(tagSequence)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !c.done() {
		return nil, nil, nil, nil, parseError(ErrTrailingData, "der: trailing data after public key")
	}

	oc := newCursor(outer)
	algID, err := oc.takeTLV(tagSequence)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ac := newCursor(algID)
	oid, err := ac.takeTLV(tagObjectID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !bytesEqual(oid, dsaOID) {
		return nil, nil, nil, nil, parseError(ErrOID, "der: unexpected algorithm OID, want id-dsa")
	}

	params, err := ac.takeTLV(tagSequence)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !ac.done() {
		return nil, nil, nil, nil, parseError(ErrTrailingData, "der: trailing data after DSA parameters")
	}
	pc := newCursor(params)
	pBytes, err := pc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	qBytes, err := pc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	gBytes, err := pc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !pc.done() {
		return nil, nil, nil, nil, parseError(ErrTrailingData, "der: trailing data after DSA parameter integers")
	}

	bitString, err := oc.takeTLV(tagBitString)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !oc.done() {
		return nil, nil, nil, nil, parseError(ErrTrailingData, "der: trailing data after public key BIT STRING")
	}
	if len(bitString) < 1 || bitString[0] != 0x00 {
		return nil, nil, nil, nil, parseError(ErrBitString, "der: unexpected unused-bits prefix in BIT STRING")
	}
	bc := newCursor(bitString[1:])
	yBytes, err := bc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !bc.done() {
		return nil, nil, nil, nil, parseError(ErrTrailingData, "der: trailing data after public key integer")
	}

	p = mp.New().SetBytes(pBytes)
	q = mp.New().SetBytes(qBytes)
	g = mp.New().SetBytes(gBytes)
	y = mp.New().SetBytes(yBytes)
	return p, q, g, y, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
