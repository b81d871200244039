package secret

import "errors"

var (
	ErrMissingSecret                 = errors.New("missing secret")
	ErrInvalidSecret                 = errors.New("secret is not valid standard Base32")
	ErrSecretTooShort                = errors.New("secret shorter than 16 decoded bytes")
	ErrWeakSecretLength              = errors.New("requested secret length below 16 byte minimum")
	ErrFailedToGenerateSecret        = errors.New("failed to generate secret")
	ErrFailedToEncryptSecret         = errors.New("failed to encrypt secret")
	ErrFailedToDecryptSecret         = errors.New("failed to decrypt secret")
	ErrCiphertextTooShort            = errors.New("ciphertext too short")
	ErrFailedToGenerateEncryptionKey = errors.New("failed to generate encryption key")
	ErrFailedToLoadEncryptionKey     = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeyLength    = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet           = errors.New("encryption key not set")
)
