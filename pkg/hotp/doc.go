// Package hotp implements the RFC 4226 counter-based one-time-password
// engine: code generation and validation driven by a monotonic counter the
// engine owns.
//
// # Construction
//
// A Generator is built from a fully-resolved Config. Defaults are merged and
// validated exactly once at construction, never re-checked per call:
//
//	gen, err := hotp.New(hotp.Config{
//	    Secret: "JBSWY3DPEHPK3PXP", // Base32, decoded via pkg/secret
//	})
//
// Algorithm defaults to SHA-1 and Digits to 6 per the RFC. Window defaults
// to DefaultWindow; see its documentation for the tradeoff behind the value.
//
// # Counter Semantics
//
// The internal counter advances by exactly 1 on a successful Generate or
// Validate that used it, and never on failure. Supplying an explicit moving
// factor via WithMovingFactor bypasses the counter entirely: the code is
// computed for that factor and the counter is left untouched. The same
// applies to WithoutSideEffects, which computes against the counter but
// suppresses the advance. The counter never decreases; ResetCounter exists
// for callers restoring persisted state.
//
// # Validation Window
//
// Validate probes the forward-only range [counter, counter+Window] in
// ascending order and accepts the earliest match, per the RFC 4226
// resynchronization guidance. Scanning forward tolerates a client that
// generated codes the server never saw, while a stale counter value behind
// the server's position is never accepted. WithoutWindow restricts the probe
// to the base factor alone.
//
// Submitted codes are normalized (whitespace stripped) and compared in
// constant time. A mismatch is reported as (false, nil) — never an error —
// so callers see a constant-shape response regardless of why the code
// failed.
//
// # Concurrency
//
// A Generator holds mutable counter state and is not safe for concurrent
// use. Serialize access per secret (typically per user) externally.
package hotp
