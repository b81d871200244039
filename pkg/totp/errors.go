package totp

import "errors"

var (
	ErrMissingSecret = errors.New("missing shared secret")
	ErrInvalidWindow = errors.New("validation window must be non-negative")
	ErrInvalidPeriod = errors.New("step period must be positive")
)
