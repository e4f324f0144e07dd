// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import "github.com/marcizhu/dsaverify-go/mp"

// ParseSignature decodes a DSA signature's DER encoding, SEQUENCE {
// INTEGER r, INTEGER s }. Not a general ASN.1 parser: any trailing bytes
// after the SEQUENCE fail the parse.
func ParseSignature(data []byte) (r, s *mp.Int, err error) {
	c := newCursor(data)

	body, err := c.takeTLV(tagSequence)
	if err != nil {
		return nil, nil, err
	}
	if !c.done() {
		return nil, nil, parseError(ErrTrailingData, "der: trailing data after signature")
	}

	bc := newCursor(body)
	rBytes, err := bc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, err
	}
	sBytes, err := bc.takeTLV(tagInteger)
	if err != nil {
		return nil, nil, err
	}
	if !bc.done() {
		return nil, nil, parseError(ErrTrailingData, "der: trailing data after signature integers")
	}

	r = mp.New().SetBytes(rBytes)
	s = mp.New().SetBytes(sBytes)
	return r, s, nil
}
