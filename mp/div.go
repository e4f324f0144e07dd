// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mp

// QuoRem sets q = a/b (truncated toward zero) and r = a - q*b, following
// Knuth's Algorithm D: the divisor is normalized by a left shift until its
// top digit's high bit is set, each quotient digit is estimated from the
// top two (resp. three) digits of the remaining dividend and divisor, an
// at-most-two-step correction loop fixes any over-estimate, and the final
// remainder is denormalized back by the same shift. Either q or r may be
// nil if the caller does not need that output. Returns an error if b is
// zero.
func QuoRem(a, b, q, r *Int) error {
	if b.IsZero() {
		return valueError("mp: division by zero")
	}
	if cmpMag(a, b) < 0 {
		if q != nil {
			q.SetInt64(0)
		}
		if r != nil {
			r.Set(a)
		}
		return nil
	}
	if len(b.digits) == 1 {
		return quoRemSmall(a, b.digits[0], q, r, a.neg, b.neg)
	}

	// Normalize: shift both operands left so the divisor's top digit has
	// its high bit set, which keeps the trial-quotient estimate within 2
	// of the true digit (Knuth TAOCP vol.2 §4.3.1, theorem B).
	shift := 0
	top := b.digits[len(b.digits)-1]
	for top&(1<<(digitBits-1)) == 0 {
		top <<= 1
		shift++
	}

	x := New().Lsh(&Int{digits: absDigits(a)}, shift)
	y := New().Lsh(&Int{digits: absDigits(b)}, shift)
	yd := y.digits
	n := len(yd)

	xlen0 := len(x.digits)
	x.setDigitsLen(xlen0 + 1) // room for the algorithm's extra leading digit
	m := xlen0 - n

	quo := make([]digit, m+1)
	yTop := word(yd[n-1])
	ySecond := word(yd[n-2])

	for j := m; j >= 0; j-- {
		num := word(x.digits[j+n])<<digitBits | word(x.digits[j+n-1])
		qhat := num / yTop
		rhat := num % yTop
		if qhat > digitMask {
			qhat = digitMask
			rhat = num - qhat*yTop
		}
		for rhat <= digitMask && qhat*ySecond > (rhat<<digitBits)+word(x.digits[j+n-2]) {
			qhat--
			rhat += yTop
		}

		borrow := subScaled(x.digits[j:j+n+1], yd, qhat)
		if borrow != 0 {
			qhat--
			addBack(x.digits[j:j+n+1], yd)
		}
		quo[j] = digit(qhat)
	}

	if q != nil {
		q.digits = quo
		q.clamp()
		q.neg = (a.neg != b.neg) && !q.IsZero()
	}
	if r != nil {
		rem := &Int{digits: x.digits[:n]}
		rem.clamp()
		r.Rsh(rem, shift)
		r.neg = a.neg && !r.IsZero()
	}
	return nil
}

// absDigits returns a copy of a's digit slice (its magnitude), used to
// build scratch Ints that share no state with the caller's operands.
func absDigits(a *Int) []digit {
	d := make([]digit, len(a.digits))
	copy(d, a.digits)
	return d
}

// subScaled computes x -= qhat*y in place over the window x[0:len(y)+1],
// returning 1 if the subtraction underflowed (qhat was one too large) or 0
// otherwise.
func subScaled(x []digit, y []digit, qhat word) word {
	var carry, borrow word
	for i := 0; i < len(y); i++ {
		p := qhat*word(y[i]) + carry
		carry = p >> digitBits
		sub := word(x[i]) - (p & digitMask) - borrow
		x[i] = digit(sub & digitMask)
		borrow = (sub >> digitBits) & 1
	}
	sub := word(x[len(y)]) - carry - borrow
	x[len(y)] = digit(sub & digitMask)
	return (sub >> digitBits) & 1
}

// addBack adds y back into the window x[0:len(y)+1], discarding any carry
// out of the top digit; this is Knuth's correction step when subScaled's
// trial digit turned out to be one too large.
func addBack(x []digit, y []digit) {
	var carry word
	for i := 0; i < len(y); i++ {
		v := word(x[i]) + word(y[i]) + carry
		x[i] = digit(v & digitMask)
		carry = v >> digitBits
	}
	x[len(y)] = digit((word(x[len(y)]) + carry) & digitMask)
}

// quoRemSmall divides by a single-digit divisor using straightforward
// digit-at-a-time long division.
func quoRemSmall(a *Int, d digit, q, r *Int, aNeg, bNeg bool) error {
	n := len(a.digits)
	quo := make([]digit, n)
	var rem word
	for i := n - 1; i >= 0; i-- {
		cur := rem<<digitBits | word(a.digits[i])
		quo[i] = digit(cur / word(d))
		rem = cur % word(d)
	}
	if q != nil {
		q.digits = quo
		q.clamp()
		q.neg = (aNeg != bNeg) && !q.IsZero()
	}
	if r != nil {
		r.SetUint64(uint64(rem))
		r.neg = aNeg && !r.IsZero()
	}
	return nil
}
