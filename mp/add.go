// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mp

// addMag sets z to the sum of the magnitudes of a and b (signs ignored).
// Lengths are captured before z is resized so the routine stays correct
// when z aliases a or b (e.g. x.Add(x, y)).
func addMag(z, a, b *Int) {
	if len(a.digits) < len(b.digits) {
		a, b = b, a
	}
	na, nb := len(a.digits), len(b.digits)
	ad, bd := a.digits, b.digits

	z.setDigitsLen(na + 1)

	var carry word
	i := 0
	for ; i < nb; i++ {
		sum := word(ad[i]) + word(bd[i]) + carry
		z.digits[i] = digit(sum & digitMask)
		carry = sum >> digitBits
	}
	for ; i < na; i++ {
		sum := word(ad[i]) + carry
		z.digits[i] = digit(sum & digitMask)
		carry = sum >> digitBits
	}
	z.digits[i] = digit(carry)
	z.clamp()
}

// subMag sets z to |a| - |b|, which must satisfy |a| >= |b|. Lengths and
// source slices are captured before z is resized for the same aliasing
// reason as addMag.
func subMag(z, a, b *Int) {
	na, nb := len(a.digits), len(b.digits)
	ad, bd := a.digits, b.digits

	z.setDigitsLen(na)

	var borrow word
	i := 0
	for ; i < nb; i++ {
		diff := word(ad[i]) - word(bd[i]) - borrow
		z.digits[i] = digit(diff & digitMask)
		borrow = (diff >> digitBits) & 1
	}
	for ; i < na; i++ {
		diff := word(ad[i]) - borrow
		z.digits[i] = digit(diff & digitMask)
		borrow = (diff >> digitBits) & 1
	}
	z.clamp()
}

// Add sets z = a + b and returns z. Follows the textbook sign rules: if
// signs agree, add magnitudes and keep the sign; if they differ, subtract
// the smaller magnitude from the larger and take the sign of the larger.
func (z *Int) Add(a, b *Int) *Int {
	if a.neg == b.neg {
		wasNeg := a.neg
		addMag(z, a, b)
		z.neg = wasNeg && !z.IsZero()
		return z
	}

	switch cmpMag(a, b) {
	case 0:
		z.digits = z.digits[:0]
		z.neg = false
	case 1:
		wasNeg := a.neg
		subMag(z, a, b)
		z.neg = wasNeg && !z.IsZero()
	default:
		wasNeg := b.neg
		subMag(z, b, a)
		z.neg = wasNeg && !z.IsZero()
	}
	return z
}

// Sub sets z = a - b and returns z. Implemented as addition with the
// right-hand operand's sign inverted.
func (z *Int) Sub(a, b *Int) *Int {
	negB := Int{digits: b.digits, neg: !b.neg && !b.IsZero()}
	return z.Add(a, &negB)
}
