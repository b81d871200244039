package secret

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultLength is the generated secret size in bytes: 160 bits, the
	// RFC 4226 recommended shared-secret length.
	DefaultLength = 20

	// MinLength is the RFC 4226 minimum shared-secret length in bytes.
	MinLength = 16
)

// strictBase32Regex matches the standard RFC 4648 Base32 alphabet only,
// which excludes the 0, 1, 8 and 9 digits used by the Extended Hex variant.
var strictBase32Regex = regexp.MustCompile("^[A-Z2-7]+$")

// noPadding decodes secrets of any valid length; callers rarely carry the
// trailing '=' padding authenticator apps omit.
var noPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Decode converts a Base32 secret into raw key bytes. Input is
// case-insensitive, embedded whitespace is ignored, and padding is
// reconstructed so partial-block secrets of any valid length decode.
func Decode(text string) ([]byte, error) {
	normalized := normalize(text)
	if normalized == "" {
		return nil, ErrMissingSecret
	}

	key, err := noPadding.DecodeString(normalized)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// ValidateOption adjusts the checks applied by Validate.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	minLength bool
}

// WithMinLength additionally enforces the RFC 4226 minimum of 16 decoded
// bytes. Off by default: many deployed secrets are shorter.
func WithMinLength() ValidateOption {
	return func(o *validateOptions) { o.minLength = true }
}

// Validate reports whether text is a usable Base32 secret. It accepts only
// the strict standard alphabet, rejecting Extended Hex encodings, and
// optionally enforces the minimum decoded length.
func Validate(text string, opts ...ValidateOption) error {
	var options validateOptions
	for _, opt := range opts {
		opt(&options)
	}

	normalized := normalize(text)
	if normalized == "" {
		return ErrMissingSecret
	}
	if !strictBase32Regex.MatchString(normalized) {
		return ErrInvalidSecret
	}

	if options.minLength {
		key, err := Decode(text)
		if err != nil {
			return err
		}
		if len(key) < MinLength {
			return ErrSecretTooShort
		}
	}
	return nil
}

// GenerateOption adjusts secret generation.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	length    int
	allowWeak bool
}

// WithLength sets the generated secret size in bytes.
func WithLength(n int) GenerateOption {
	return func(o *generateOptions) { o.length = n }
}

// AllowWeak permits lengths below the 16 byte RFC minimum. Intended for
// interoperability with legacy enrollments, not for new secrets.
func AllowWeak() GenerateOption {
	return func(o *generateOptions) { o.allowWeak = true }
}

// Generate produces a new random shared secret as Base32 text without
// padding, 20 bytes by default. Lengths below 16 bytes fail unless
// AllowWeak is given.
func Generate(opts ...GenerateOption) (string, error) {
	options := generateOptions{length: DefaultLength}
	for _, opt := range opts {
		opt(&options)
	}

	if options.length < MinLength && !options.allowWeak {
		return "", ErrWeakSecretLength
	}
	if options.length < 1 {
		return "", ErrWeakSecretLength
	}

	key := make([]byte, options.length)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	return noPadding.EncodeToString(key), nil
}

// normalize strips whitespace, uppercases, and drops trailing padding.
func normalize(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimRight(strings.ToUpper(stripped), "=")
}
