// Package secret handles the shared OTP secret in its textual Base32 form:
// decoding, format/strength validation, secure generation, and optional
// AES-256-GCM encryption for at-rest storage.
//
// The HOTP and TOTP engines accept secrets as Base32 text and decode them
// through this package at construction time, so all tolerance rules live in
// one place: decoding is case-insensitive, ignores embedded whitespace, and
// pads the input to a multiple of 8 characters automatically.
//
// # Validation
//
// Validate checks that a secret uses the strict RFC 4648 Base32 alphabet
// (A–Z, 2–7) and rejects the "Extended Hex" variant. Length is not checked
// by default; pass WithMinLength to enforce the RFC 4226 minimum of 16
// decoded bytes:
//
//	err := secret.Validate(text, secret.WithMinLength())
//
// # Generation
//
// Generate produces a new random secret, 20 bytes (160 bits) by default per
// the RFC 4226 recommendation. Requests below 16 bytes fail unless the
// caller opts in explicitly:
//
//	s, err := secret.Generate()                                    // 20 bytes
//	s, err = secret.Generate(secret.WithLength(32))                // SHA-256 sized
//	s, err = secret.Generate(secret.WithLength(10), secret.AllowWeak())
//
// # At-Rest Encryption
//
// Encrypt and Decrypt wrap a secret in AES-256-GCM for persisting in a
// datastore. The key is a base64-encoded 32-byte value, typically loaded
// once per process from the OTP_ENCRYPTION_KEY environment variable via
// LoadConfig and EncryptionKey. Persistence itself is the caller's
// responsibility; this package only transforms values.
//
// # Error Handling
//
// Every operation returns descriptive errors wrapped with errors.Join;
// inspect them with errors.Is against the package sentinels such as
// ErrInvalidSecret, ErrSecretTooShort and ErrInvalidEncryptionKeyLength.
package secret
