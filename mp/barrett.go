// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mp

// barrettReducer holds mu = floor(b^(2k)/n), the precomputed reciprocal
// used for Barrett reduction modulo n (b == 2^digitBits, k == n's digit
// length). Used for moduli that can't take the Montgomery fast path
// (an even modulus never arises from a real DSA prime, but the generic
// path exists so ExptMod is total over any positive modulus).
type barrettReducer struct {
	n  *Int
	mu *Int
	k  int
}

func newBarrettReducer(n *Int) *barrettReducer {
	k := len(n.digits)

	b2k := New()
	b2k.setDigitsLen(2*k + 1)
	b2k.digits[2*k] = 1
	b2k.clamp()

	mu := New()
	QuoRem(b2k, n, mu, nil)
	return &barrettReducer{n: n, mu: mu, k: k}
}

// loDigits returns x mod b^m (its low m digits).
func loDigits(x *Int, m int) *Int {
	if m > len(x.digits) {
		m = len(x.digits)
	}
	t := New()
	t.setDigitsLen(m)
	copy(t.digits, x.digits[:m])
	return t.clamp()
}

// hiDigits returns floor(x / b^m) (x with its low m digits dropped).
func hiDigits(x *Int, m int) *Int {
	if m >= len(x.digits) {
		return New()
	}
	t := New()
	t.setDigitsLen(len(x.digits) - m)
	copy(t.digits, x.digits[m:])
	return t.clamp()
}

// reduce sets x = x mod n, following the classical Barrett algorithm
// (HAC Algorithm 14.42). x must satisfy 0 <= x < n^2, which holds for the
// product of two values already reduced mod n.
func (br *barrettReducer) reduce(x *Int) {
	k := br.k

	q1 := hiDigits(x, k-1)
	var q2 Int
	q2.Mul(q1, br.mu)
	q3 := hiDigits(&q2, k+1)

	r1 := loDigits(x, k+1)
	var q3n Int
	q3n.Mul(q3, br.n)
	r2 := loDigits(&q3n, k+1)

	var r Int
	r.Sub(r1, r2)
	if r.Sign() < 0 {
		modulus := New()
		modulus.setDigitsLen(k + 2)
		modulus.digits[k+1] = 1
		modulus.clamp()
		r.Add(&r, modulus)
	}
	for r.CmpAbs(br.n) >= 0 {
		r.Sub(&r, br.n)
	}
	x.Set(&r)
}
