// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

// base64Value maps an RFC 4648 alphabet byte to its 6-bit value, or -1 if
// the byte isn't in the alphabet.
var base64Value = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// isIgnoredByte reports whether b is whitespace tolerated anywhere in a
// base64 payload ('\n', '\r', '\t', space).
func isIgnoredByte(b byte) bool {
	return b == '\n' || b == '\r' || b == '\t' || b == ' '
}

// DecodeBase64 decodes in as RFC 4648 base64. Whitespace ('\n','\r','\t',
// ' ') is ignored wherever it appears. A '=' pad byte terminates decoding.
// Any other byte outside the alphabet is a hard error. If the number of
// valid (non-ignored, non-pad) characters isn't a multiple of 4 and
// decoding reaches the end of input without a '=' pad, the prefix decoded
// so far is returned rather than an error — the source's lenience, kept
// here for interoperability.
func DecodeBase64(in []byte) ([]byte, error) {
	out := make([]byte, 0, (len(in)/4)*3+3)

	var group [4]int8
	n := 0
	for _, b := range in {
		if isIgnoredByte(b) {
			continue
		}
		if b == '=' {
			break
		}
		v := base64Value[b]
		if v < 0 {
			return nil, parseError(ErrBase64, "der: invalid base64 character")
		}
		group[n] = v
		n++
		if n == 4 {
			out = append(out,
				byte(group[0])<<2|byte(group[1])>>4,
				byte(group[1])<<4|byte(group[2])>>2,
				byte(group[2])<<6|byte(group[3]),
			)
			n = 0
		}
	}

	switch n {
	case 0:
		// Nothing left over; fully decoded groups of 4.
	case 2:
		out = append(out, byte(group[0])<<2|byte(group[1])>>4)
	case 3:
		out = append(out,
			byte(group[0])<<2|byte(group[1])>>4,
			byte(group[1])<<4|byte(group[2])>>2,
		)
	case 1:
		// A single leftover 6-bit value can't form a byte; drop it,
		// matching the "decode the valid prefix" lenience.
	}
	return out, nil
}
