package hotp

import "errors"

var (
	ErrMissingSecret  = errors.New("missing shared secret")
	ErrInvalidWindow  = errors.New("validation window must be non-negative")
	ErrInvalidCounter = errors.New("counter must be non-negative")
)
