// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsaverify

import "github.com/marcizhu/dsaverify-go/mp"

// PublicKey is a DSA public key: P is a large prime modulus, Q is a prime
// divisor of P-1, G generates the order-Q subgroup of Z/P, and Y = G^x mod
// P for the holder's private x. All four are treated as opaque by the
// verifier beyond the range check on the signature in Signature.
type PublicKey struct {
	P, Q, G, Y *mp.Int
}

// Signature is a DSA signature, the pair (R, S). Both must lie in (0, Q)
// for a well-formed signature; the verifier checks this before using
// either value arithmetically.
type Signature struct {
	R, S *mp.Int
}
