package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"
)

// Algorithm selects the hash function used for the keyed HMAC digest.
// The zero value is not valid; use one of the exported constants.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1" // RFC 4226/6238 default
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// ParseAlgorithm converts a user-supplied name ("sha1", "SHA-256", ...) into
// an Algorithm. Hyphens, surrounding whitespace and case are ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	switch Algorithm(name) {
	case SHA1, SHA256, SHA512:
		return Algorithm(name), nil
	}
	return "", ErrUnsupportedAlgorithm
}

// Hash returns the hash constructor backing the algorithm, suitable for
// passing to hmac.New.
func (a Algorithm) Hash() (func() hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	}
	return nil, ErrUnsupportedAlgorithm
}

// Valid reports whether the algorithm is one of the supported constants.
func (a Algorithm) Valid() bool {
	_, err := a.Hash()
	return err == nil
}
