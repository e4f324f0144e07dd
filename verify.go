// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsaverify

import "github.com/marcizhu/dsaverify-go/mp"

// verify drives the DSA verification equation (FIPS 186-4 §4.7) given a
// 20-byte SHA-1 digest, a public key, and a signature. It returns
// VerificationOK, VerificationFailed, SignParamError (R or S out of
// range), or GenericError (an mp failure partway through the modular
// arithmetic, which should not occur for a well-formed key but is
// surfaced rather than panicking).
func verify(hash [20]byte, key *PublicKey, sig *Signature) Result {
	zero := mp.New()
	if sig.R.Cmp(zero) <= 0 || sig.S.Cmp(zero) <= 0 ||
		sig.R.Cmp(key.Q) >= 0 || sig.S.Cmp(key.Q) >= 0 {
		return SignParamError
	}

	// FIPS 186-4 truncates the hash to min(|H|, |Q|) leftmost bits; in
	// practice every DSA key in use has |Q| >= 160 bits, so the full
	// SHA-1 digest is used verbatim without truncation.
	h := mp.New().SetBytes(hash[:])

	w := mp.New()
	if err := mp.ModInverse(w, sig.S, key.Q); err != nil {
		return GenericError
	}

	u1 := mp.New()
	if err := mp.MulMod(u1, h, w, key.Q); err != nil {
		return GenericError
	}
	u2 := mp.New()
	if err := mp.MulMod(u2, sig.R, w, key.Q); err != nil {
		return GenericError
	}

	gu1 := mp.New()
	if err := mp.ExptMod(gu1, key.G, u1, key.P); err != nil {
		return GenericError
	}
	yu2 := mp.New()
	if err := mp.ExptMod(yu2, key.Y, u2, key.P); err != nil {
		return GenericError
	}

	v := mp.New()
	if err := mp.MulMod(v, gu1, yu2, key.P); err != nil {
		return GenericError
	}
	if err := mp.Mod(v, v, key.Q); err != nil {
		return GenericError
	}

	if v.Cmp(sig.R) == 0 {
		return VerificationOK
	}
	return VerificationFailed
}
