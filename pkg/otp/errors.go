package otp

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	ErrInvalidMovingFactor  = errors.New("moving factor must be non-negative")
	ErrInvalidDigest        = errors.New("digest too short for dynamic truncation")
	ErrInvalidDigits        = errors.New("digits must be between 1 and 10")
)
