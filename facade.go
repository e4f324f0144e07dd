// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsaverify

import (
	"github.com/marcizhu/dsaverify-go/der"
	"github.com/marcizhu/dsaverify-go/sha1"
)

// VerifyBlob hashes data with SHA-1 and verifies the resulting digest
// against pubkeyPEM and sigB64. See VerifyHash for the rest of the
// pipeline.
func VerifyBlob(data []byte, pubkeyPEM, sigB64 string) Result {
	digest := sha1.Sum(data)
	return VerifyHash(digest, pubkeyPEM, sigB64)
}

// VerifyHash verifies a ready-to-use 20-byte DSA input (ordinarily the
// SHA-1 digest of a message) against pubkeyPEM and sigB64.
//
// hash is NOT re-hashed here: it is used verbatim as the DSA input. A
// variant that fed an already-20-byte digest through SHA-1 a second time
// would produce a hash-of-hash verdict, which is not what callers that
// precompute a digest expect.
func VerifyHash(hash [20]byte, pubkeyPEM, sigB64 string) Result {
	pemPayload, err := der.Dearmor([]byte(pubkeyPEM))
	if err != nil {
		return KeyFormatError
	}
	keyDER, err := der.DecodeBase64(pemPayload)
	if err != nil {
		return KeyFormatError
	}

	sigDER, err := der.DecodeBase64([]byte(sigB64))
	if err != nil {
		return SignFormatError
	}

	return VerifyHashDER(hash, keyDER, sigDER)
}

// VerifyHashDER verifies a 20-byte DSA input against a DER-encoded
// SubjectPublicKeyInfo and a DER-encoded signature.
func VerifyHashDER(hash [20]byte, pubkeyDER, sigDER []byte) Result {
	p, q, g, y, err := der.ParsePublicKey(pubkeyDER)
	if err != nil {
		return KeyParamError
	}

	r, s, err := der.ParseSignature(sigDER)
	if err != nil {
		return SignParamError
	}

	key := &PublicKey{P: p, Q: q, G: g, Y: y}
	sig := &Signature{R: r, S: s}
	return verify(hash, key, sig)
}
