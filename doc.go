// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dsaverify verifies DSA (FIPS 186) signatures over arbitrary data
// or a precomputed SHA-1 digest, given a PEM-armored public key and a
// base64-encoded DER signature.
//
// The package owns the composed verification flow; the arithmetic,
// encoding, and hashing it's built from live in the mp, der, and sha1
// subpackages:
//
//   - mp implements the multiple-precision integer arithmetic (modular
//     exponentiation, modular inverse) DSA verification needs.
//   - der implements PEM dearmoring, base64 decoding, and the fixed-shape
//     ASN.1/DER decoder for the DSA SubjectPublicKeyInfo and signature
//     structures.
//   - sha1 implements the FIPS 180-1 digest this package's VerifyBlob entry
//     point hashes messages with.
//
// Every operand this package's arithmetic runs on during verification is
// public (a public key, a signature, a message digest); the mp package is
// accordingly not constant-time and should not be reused for secret
// material.
package dsaverify
