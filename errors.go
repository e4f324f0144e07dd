// Copyright (c) 2024 The dsaverify-go developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsaverify

// Result is the numeric verdict returned by every public entry point.
// These values are a stable part of the contract: callers may rely on the
// literal integer, not just the named constant (the cmd/dsaverify CLI logs
// it in its debug output).
type Result int

const (
	// VerificationOK means the signature verified against the key and
	// input.
	VerificationOK Result = 1

	// VerificationFailed means every input was well-formed but the
	// signature does not match. This is a clean negative result, not an
	// error: the API call did what it was asked and got a "no".
	VerificationFailed Result = 0

	// GenericError means an internal failure (an mp invariant violated,
	// an unsupported modulus shape) prevented verification from running
	// to completion.
	GenericError Result = -1

	// KeyFormatError means the public key's PEM armor or base64 payload
	// was malformed.
	KeyFormatError Result = -2

	// KeyParamError means the key's DER structure didn't match the
	// expected DSA SubjectPublicKeyInfo shape (including a mismatched
	// algorithm OID).
	KeyParamError Result = -3

	// SignFormatError means the signature's base64 payload was malformed.
	SignFormatError Result = -4

	// SignParamError means the signature's DER structure was rejected, or
	// r/s fell outside the range (0, Q).
	SignParamError Result = -5
)

// String returns a short human-readable label for r, used by the CLI
// companion when reporting why verification did not succeed.
func (r Result) String() string {
	switch r {
	case VerificationOK:
		return "verification OK"
	case VerificationFailed:
		return "verification failed"
	case GenericError:
		return "internal error"
	case KeyFormatError:
		return "key format error"
	case KeyParamError:
		return "key parameter error"
	case SignFormatError:
		return "signature format error"
	case SignParamError:
		return "signature parameter error"
	default:
		return "unknown result"
	}
}
