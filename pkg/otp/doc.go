// Package otp implements the shared cryptographic core used by the HOTP and
// TOTP engines: HMAC digest computation over a moving factor, RFC 4226
// dynamic truncation, and time-step arithmetic.
//
// The package contains only pure functions. Both engines (pkg/hotp and
// pkg/totp) compose these primitives with their own mutable state — a
// monotonic counter for HOTP, a last-validated-code marker for TOTP — so the
// differing mutation rules stay explicit instead of being hidden in a shared
// base type.
//
// # Code Derivation
//
// A code is derived from three inputs: the shared secret, the hash algorithm
// and the moving factor (a non-negative 64-bit integer — the counter value
// for HOTP, the time step for TOTP). Derivation is deterministic: two parties
// holding the same secret, algorithm, digit count and moving factor always
// compute the same code, which is what lets a client device and a verifying
// server agree without communicating.
//
//	digest, _ := otp.Digest(otp.SHA1, secret, 42)
//	code, _ := otp.Truncate(digest, 6)
//
// Or in one step, producing the canonical zero-padded string form:
//
//	code, _ := otp.DeriveCode(otp.SHA1, secret, 42, 6)
//
// # Dynamic Truncation
//
// Truncate implements RFC 4226 §5.3 exactly: the low 4 bits of the last
// digest byte select an offset, 4 bytes starting there are read big-endian,
// the sign bit is cleared and the result is reduced modulo 10^digits. The
// 4-bit offset mask is what keeps the read in bounds for SHA-1's 20-byte
// digest; it must not be widened.
//
// # Error Handling
//
// All exported functions return sentinel errors inspectable with errors.Is:
// ErrUnsupportedAlgorithm, ErrInvalidMovingFactor, ErrInvalidDigest and
// ErrInvalidDigits. Short or empty digests indicate a programming error and
// are never retried.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otp
