// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package der implements PEM dearmoring, RFC 4648 base64 decoding, and a
// fixed-shape ASN.1/DER decoder for the two structures DSA verification
// needs: the RFC 3279 SubjectPublicKeyInfo for a DSA public key, and the
// two-INTEGER DSA signature sequence. It is not a general ASN.1 parser;
// any input that deviates from those exact shapes is rejected.
package der
