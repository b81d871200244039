package recovery

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidCodeCount = errors.New("recovery code count must be greater than 0")
	ErrFailedToGenerate = errors.New("failed to generate recovery code")
)

// GenerateCodes creates cryptographically secure backup codes. Each code is
// 8 random bytes rendered as "XXXX-XXXX-XXXX-XXXX".
func GenerateCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, 8)
		if _, err := rand.Read(raw); err != nil {
			return nil, errors.Join(ErrFailedToGenerate, err)
		}
		codes[i] = group(fmt.Sprintf("%X", raw))
	}
	return codes, nil
}

// HashCode produces the SHA-256 hex digest of a code's canonical form, for
// storage instead of the plaintext code.
func HashCode(code string) string {
	hash := sha256.Sum256([]byte(normalize(code)))
	return hex.EncodeToString(hash[:])
}

// VerifyCode compares a submitted code against a stored hash in constant
// time. Hyphens, whitespace and case are ignored.
func VerifyCode(code, hashedCode string) bool {
	computed := HashCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}

// group inserts a hyphen every 4 characters.
func group(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalize strips separators and whitespace and uppercases the code.
func normalize(code string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
	return strings.ToUpper(stripped)
}
