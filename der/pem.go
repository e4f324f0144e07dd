// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

// Dearmor strips PEM armor from pem, returning the base64 payload between
// the opening and closing armor lines. Lines before the opening armor line
// that don't start with '-' are treated as comments and skipped, matching
// the source's tolerance for leading noise. The returned slice aliases
// pem; no copy is made.
//
// Any armor names are accepted ("-----BEGIN PUBLIC KEY-----", "-----BEGIN
// DSA PUBLIC KEY-----", ...): only the leading '-' of the line matters.
func Dearmor(pem []byte) ([]byte, error) {
	start, ok := firstArmorLineEnd(pem)
	if !ok {
		return nil, parseError(ErrArmor, "der: no opening PEM armor line found")
	}

	end := start
	for end < len(pem) && pem[end] != '-' {
		end++
	}
	if end >= len(pem) {
		return nil, parseError(ErrArmor, "der: no closing PEM armor line found")
	}
	return pem[start:end], nil
}

// firstArmorLineEnd scans pem line by line for the first line beginning
// with '-' and returns the offset just past that line's end.
func firstArmorLineEnd(pem []byte) (int, bool) {
	i := 0
	for i < len(pem) {
		lineStart := i
		for i < len(pem) && pem[i] != '\n' {
			i++
		}
		if len(pem) > lineStart && pem[lineStart] == '-' {
			if i < len(pem) {
				i++ // consume the newline
			}
			return i, true
		}
		if i < len(pem) {
			i++ // consume the newline, move to next line
		}
	}
	return 0, false
}
