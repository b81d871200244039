// Package totp implements the RFC 6238 time-based one-time-password engine:
// code generation and validation driven by the wall clock, with single-use
// enforcement for accepted codes.
//
// # Construction
//
// A Generator is built from a fully-resolved Config; defaults are merged and
// validated once at construction:
//
//	gen, err := totp.New(totp.Config{
//	    Secret: "JBSWY3DPEHPK3PXP", // Base32, decoded via pkg/secret
//	})
//
// Algorithm defaults to SHA-1, Digits to 6, Period to 30 seconds and Window
// to 1 step, the RFC 6238 recommendations.
//
// # Time Semantics
//
// The moving factor is the time step floor(unix_seconds / Period). There is
// no counter to advance: repeated Generate calls within one step return the
// identical code. AtTime computes against an explicit instant instead of
// now, which is how verifiers test historical codes and how callers
// pre-compute the next one.
//
// # Validation Window and Replay Protection
//
// Clock skew between the generating device and the verifier can run in
// either direction, so Validate probes the symmetric range
// [step-Window, step+Window], skipping steps that would be negative and
// accepting the earliest match. Because time itself is the moving factor,
// one-time use cannot be enforced by advancing a counter; instead the engine
// records the canonical form of the last accepted code — computed at the
// matched step, not taken from caller input — and rejects a resubmission of
// that exact code even though it is cryptographically correct. The marker
// updates only when side effects are enabled.
//
// SecondsUntilNextWindow reports how long the current code remains valid,
// for scheduling UI refreshes or pre-fetching.
//
// A mismatch or replay is reported as (false, nil), never an error, keeping
// the response shape constant regardless of the failure reason.
//
// # Concurrency
//
// A Generator holds the last-validated-code marker as mutable state and is
// not safe for concurrent use. Serialize access per secret externally.
package totp
