// Package recovery creates and verifies single-use backup codes offered to
// users alongside OTP enrollment, for when the authenticator device is
// permanently lost.
//
// Each code carries 64 bits of entropy, rendered as four hyphen-separated
// groups of four hex characters ("3F2A-91C4-0B7D-E655"). Codes are meant to
// be stored hashed: HashCode produces a SHA-256 hex digest and VerifyCode
// compares a submitted code against it in constant time, tolerating missing
// hyphens, stray whitespace and lowercase input.
//
//	codes, _ := recovery.GenerateCodes(10)
//	hashed := recovery.HashCode(codes[0])
//	// persist hashed, show codes to the user once
//	ok := recovery.VerifyCode(userInput, hashed)
//
// Single-use enforcement (deleting a hash once consumed) is the caller's
// responsibility, as is persistence.
package recovery
