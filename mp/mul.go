// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mp

// mpWarray bounds the input size (in digits) below which the flattened
// Comba-style accumulator is used instead of the schoolbook nested loop:
// both operands must be shorter than mpWarray digits. The value is the
// number of digit*digit products a single 64-bit word can sum without
// overflow; combaMulMag's two-word accumulator has more headroom than
// that, so the bound is conservative.
const mpWarray = 1 << (64 - 2*digitBits - 1)

// mulMag sets z to the product of the magnitudes of a and b (signs
// ignored), choosing the Comba-style accumulator for operand sizes within
// mpWarray and falling back to schoolbook multiplication otherwise.
func mulMag(z, a, b *Int) {
	na, nb := len(a.digits), len(b.digits)
	if na == 0 || nb == 0 {
		z.digits = z.digits[:0]
		return
	}

	if na < mpWarray && nb < mpWarray {
		combaMulMag(z, a, b)
		return
	}
	schoolbookMulMag(z, a, b)
}

// schoolbookMulMag implements the textbook O(n*m) multiplication: each
// digit of a is multiplied against all of b with carry propagated within
// the row, and rows are added into the accumulator with a per-row carry.
func schoolbookMulMag(z, a, b *Int) {
	na, nb := len(a.digits), len(b.digits)
	ad, bd := a.digits, b.digits

	out := make([]digit, na+nb)
	for i := 0; i < na; i++ {
		if ad[i] == 0 {
			continue
		}
		var carry word
		ai := word(ad[i])
		for j := 0; j < nb; j++ {
			v := ai*word(bd[j]) + word(out[i+j]) + carry
			out[i+j] = digit(v & digitMask)
			carry = v >> digitBits
		}
		out[i+nb] = digit(word(out[i+nb]) + carry)
	}

	z.digits = out
	z.clamp()
}

// combaMulMag implements the column-wise Comba accumulation: for each
// output digit position, every (i, j) pair with i+j == column contributes
// a product, and the running sum is kept in a two-word (lo, hi) carry
// chain wide enough for mpWarray-bounded operand sizes.
func combaMulMag(z, a, b *Int) {
	na, nb := len(a.digits), len(b.digits)
	ad, bd := a.digits, b.digits

	outLen := na + nb
	out := make([]digit, outLen)

	var lo, hi word
	for col := 0; col < outLen; col++ {
		jmin := 0
		if col >= nb {
			jmin = col - nb + 1
		}
		jmax := col
		if jmax > na-1 {
			jmax = na - 1
		}
		for i := jmin; i <= jmax; i++ {
			j := col - i
			v := word(ad[i]) * word(bd[j])
			var c word
			lo, c = addWithCarry(lo, v)
			hi += c
		}
		out[col] = digit(lo & digitMask)
		lo, hi = shiftAccRight(lo, hi)
	}

	z.digits = out
	z.clamp()
}

// addWithCarry adds v into lo, returning the new lo and the carry out (0
// or 1) into the next word of the accumulator.
func addWithCarry(lo, v word) (word, word) {
	sum := lo + v
	carry := word(0)
	if sum < lo {
		carry = 1
	}
	return sum, carry
}

// shiftAccRight shifts the two-word (hi:lo) accumulator right by
// digitBits, discarding the low digitBits bits of lo (the caller has
// already extracted them into the output digit).
func shiftAccRight(lo, hi word) (word, word) {
	newLo := (lo >> digitBits) | (hi << (64 - digitBits))
	newHi := hi >> digitBits
	return newLo, newHi
}

// Mul sets z = a * b and returns z.
func (z *Int) Mul(a, b *Int) *Int {
	mulMag(z, a, b)
	z.neg = (a.neg != b.neg) && !z.IsZero()
	return z
}

// MulInt multiplies z in place by the small non-negative integer m and
// returns z.
func (z *Int) MulInt(m uint32) *Int {
	n := len(z.digits)
	out := make([]digit, n+1)
	var carry word
	mv := word(m)
	for i := 0; i < n; i++ {
		v := word(z.digits[i])*mv + carry
		out[i] = digit(v & digitMask)
		carry = v >> digitBits
	}
	out[n] = digit(carry)
	z.digits = out
	z.clamp()
	return z
}

// Square sets z = x*x and returns z. Dedicated squaring halves the number
// of cross-term multiplications relative to Mul(x, x) by computing each
// ad[i]*ad[j] (i != j) product once and doubling it.
func (z *Int) Square(x *Int) *Int {
	n := len(x.digits)
	if n == 0 {
		z.digits = z.digits[:0]
		z.neg = false
		return z
	}
	xd := x.digits
	out := make([]digit, 2*n)

	for i := 0; i < n; i++ {
		// Cross terms x[i]*x[j] for j > i, each counted twice.
		var carry word
		xi := word(xd[i])
		for j := i + 1; j < n; j++ {
			v := xi*word(xd[j])*2 + word(out[i+j]) + carry
			out[i+j] = digit(v & digitMask)
			carry = v >> digitBits
		}
		k := i + n
		for carry != 0 && k < len(out) {
			v := word(out[k]) + carry
			out[k] = digit(v & digitMask)
			carry = v >> digitBits
			k++
		}
	}

	// Add the diagonal terms x[i]*x[i].
	var carry word
	for i := 0; i < n; i++ {
		v := word(xd[i])*word(xd[i]) + word(out[2*i]) + carry
		out[2*i] = digit(v & digitMask)
		c2 := v >> digitBits
		v2 := word(out[2*i+1]) + c2
		out[2*i+1] = digit(v2 & digitMask)
		carry = v2 >> digitBits
		k := 2*i + 2
		for carry != 0 && k < len(out) {
			v3 := word(out[k]) + carry
			out[k] = digit(v3 & digitMask)
			carry = v3 >> digitBits
			k++
		}
	}

	z.digits = out
	z.neg = false
	return z.clamp()
}
