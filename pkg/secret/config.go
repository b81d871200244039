package secret

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

type Config struct {
	EncryptionKey string `env:"OTP_ENCRYPTION_KEY,required"` // Base64-encoded 32-byte AES key for at-rest secret encryption
}

// LoadConfig reads the process configuration from the environment exactly
// once. Subsequent calls return the cached result. The encryption key is
// required; use EncryptionKey to decode it into raw bytes.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		var loaded Config
		if err = env.Parse(&loaded); err != nil {
			return
		}
		if loaded.EncryptionKey == "" {
			err = ErrEncryptionKeyNotSet
			return
		}
		cfg = loaded
	})
	if err != nil {
		return Config{}, err
	}
	if cfg.EncryptionKey == "" {
		return Config{}, ErrEncryptionKeyNotSet
	}
	return cfg, nil
}
