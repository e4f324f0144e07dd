// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mp

// Mod sets z = a mod n, with z always in [0, n) even when a is negative.
// n must be positive; otherwise an error is returned.
func Mod(z, a, n *Int) error {
	if n.Sign() <= 0 {
		return valueError("mp: modulus must be positive")
	}
	var r Int
	if err := QuoRem(a, n, nil, &r); err != nil {
		return err
	}
	if r.Sign() < 0 {
		z.Add(&r, n)
	} else {
		z.Set(&r)
	}
	return nil
}

// MulMod sets z = (a*b) mod n. It returns Mod's error, if any.
func MulMod(z, a, b, n *Int) error {
	var p Int
	p.Mul(a, b)
	return Mod(z, &p, n)
}

// gcdExt computes g = gcd(a, b) along with Bezout coefficients x, y such
// that a*x + b*y == g, using the classical (non-binary) extended
// Euclidean algorithm. Used by ModInverse when b is even, since the fast
// binary variant requires an odd modulus.
func gcdExt(g, x, y, a, b *Int) {
	if b.IsZero() {
		g.Set(a)
		x.SetInt64(1)
		y.SetInt64(0)
		return
	}

	var q, r, x1, y1 Int
	QuoRem(a, b, &q, &r)
	gcdExt(g, &x1, &y1, b, &r)

	// x, y := y1, x1 - q*y1
	var qy1 Int
	qy1.Mul(&q, &y1)
	x.Set(&y1)
	y.Sub(&x1, &qy1)
}

// ModInverse sets z = a^-1 mod n. Implemented via the binary
// extended GCD for odd n (the fast variant), falling back to the classical
// extended Euclidean algorithm otherwise. Returns an error if a and n are
// not coprime.
func ModInverse(z, a, n *Int) error {
	if n.Sign() <= 0 {
		return valueError("mp: modulus must be positive")
	}

	var aMod Int
	if err := Mod(&aMod, a, n); err != nil {
		return err
	}
	if aMod.IsZero() {
		return valueError("mp: no inverse: a is 0 mod n")
	}

	var inv *Int
	var err error
	if n.digits[0]&1 == 1 {
		inv, err = binaryModInverse(&aMod, n)
	} else {
		inv, err = slowModInverse(&aMod, n)
	}
	if err != nil {
		return err
	}
	z.Set(inv)
	return nil
}

// slowModInverse computes a^-1 mod n via the classical extended Euclidean
// algorithm, used when n is even (the binary algorithm requires an odd
// modulus).
func slowModInverse(a, n *Int) (*Int, error) {
	var g, x, y Int
	gcdExt(&g, &x, &y, a, n)
	if g.CmpAbs(New().SetInt64(1)) != 0 {
		return nil, valueError("mp: a and n are not coprime")
	}
	z := New()
	Mod(z, &x, n)
	return z, nil
}

// isEven reports whether x's magnitude is even (zero counts as even).
func isEven(x *Int) bool {
	return x.IsZero() || x.digits[0]&1 == 0
}

// binaryModInverse computes a^-1 mod n for odd n using the binary extended
// GCD (HAC Algorithm 14.61 / Stein's algorithm), which avoids division
// entirely in favor of shifts, comparisons, and subtractions. Throughout
// the loop the invariants u == A*a + B*n and v == C*a + D*n are
// maintained; when u reaches 0, v == gcd(a,n) and C is a's inverse mod n.
func binaryModInverse(a, n *Int) (*Int, error) {
	u := a.Clone()
	v := n.Clone()
	A, B := New().SetInt64(1), New().SetInt64(0)
	C, D := New().SetInt64(0), New().SetInt64(1)

	for !u.IsZero() {
		for isEven(u) {
			u.Rsh(u, 1)
			if isEven(A) && isEven(B) {
				A.Rsh(A, 1)
				B.Rsh(B, 1)
			} else {
				A.Add(A, n).Rsh(A, 1)
				B.Sub(B, a).Rsh(B, 1)
			}
		}
		for isEven(v) {
			v.Rsh(v, 1)
			if isEven(C) && isEven(D) {
				C.Rsh(C, 1)
				D.Rsh(D, 1)
			} else {
				C.Add(C, n).Rsh(C, 1)
				D.Sub(D, a).Rsh(D, 1)
			}
		}
		if u.CmpAbs(v) >= 0 {
			u.Sub(u, v)
			A.Sub(A, C)
			B.Sub(B, D)
		} else {
			v.Sub(v, u)
			C.Sub(C, A)
			D.Sub(D, B)
		}
	}

	if v.CmpAbs(New().SetInt64(1)) != 0 {
		return nil, valueError("mp: a and n are not coprime")
	}
	z := New()
	Mod(z, C, n)
	return z, nil
}
