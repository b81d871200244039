package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Digest computes the keyed HMAC digest over the moving factor encoded as an
// 8-byte big-endian unsigned integer (RFC 4226 §5.2). The digest length
// depends on the algorithm: 20 bytes for SHA-1, 32 for SHA-256, 64 for
// SHA-512. The secret is used as the HMAC key verbatim; it is never logged
// or retained.
func Digest(algo Algorithm, secret []byte, movingFactor int64) ([]byte, error) {
	if movingFactor < 0 {
		return nil, ErrInvalidMovingFactor
	}

	newHash, err := algo.Hash()
	if err != nil {
		return nil, err
	}

	factorBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(factorBytes, uint64(movingFactor))

	mac := hmac.New(newHash, secret)
	mac.Write(factorBytes)
	return mac.Sum(nil), nil
}

// Truncate applies RFC 4226 dynamic truncation to a digest, producing an
// integer in [0, 10^digits). The low 4 bits of the final digest byte select
// the offset of a 4-byte big-endian read; the sign bit of the extracted
// value is cleared before the modular reduction.
func Truncate(digest []byte, digits int) (int, error) {
	if digits < 1 || digits > 10 {
		return 0, ErrInvalidDigits
	}
	if len(digest) == 0 {
		return 0, ErrInvalidDigest
	}

	offset := int(digest[len(digest)-1] & 0x0f)
	if len(digest) < offset+4 {
		return 0, ErrInvalidDigest
	}

	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff
	return int(uint64(value) % uint64(math.Pow10(digits))), nil
}

// Derive computes the raw integer code for a moving factor: Digest followed
// by Truncate. Deterministic for fixed inputs.
func Derive(algo Algorithm, secret []byte, movingFactor int64, digits int) (int, error) {
	digest, err := Digest(algo, secret, movingFactor)
	if err != nil {
		return 0, err
	}
	return Truncate(digest, digits)
}

// DeriveCode computes the canonical string form of a code: the raw integer
// zero-padded to exactly digits characters.
func DeriveCode(algo Algorithm, secret []byte, movingFactor int64, digits int) (string, error) {
	code, err := Derive(algo, secret, movingFactor, digits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, code), nil
}

// TimeStep maps a wall-clock instant to its discrete time step:
// floor(unix_seconds / period). Timestamps before the Unix epoch are not
// supported; the result for them is unspecified.
func TimeStep(periodSeconds int64, t time.Time) int64 {
	return t.Unix() / periodSeconds
}
