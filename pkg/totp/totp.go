package totp

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/codeformat"
	"github.com/dmitrymomot/otpkit/pkg/otp"
	"github.com/dmitrymomot/otpkit/pkg/secret"
)

const (
	// DefaultDigits is the RFC 6238 standard code length.
	DefaultDigits = 6

	// DefaultPeriod is the RFC 6238 recommended time-step size in seconds.
	DefaultPeriod = 30

	// DefaultWindow is the number of steps probed on each side of the
	// current one, tolerating one step of clock skew in either direction.
	DefaultWindow = 1
)

// Config carries the construction inputs for a Generator. Zero values fall
// back to the documented defaults during New.
type Config struct {
	Secret        string        // Base32-encoded shared secret
	RawSecret     []byte        // raw key bytes; takes precedence over Secret
	Algorithm     otp.Algorithm // HMAC hash, default SHA-1
	Digits        int           // code length, default 6
	Window        int           // steps probed each side, default 1
	Period        int64         // step size in seconds, default 30
	LastValidated string        // optional initial last-validated-code marker
}

// Generator derives and validates time-based one-time passcodes. It owns the
// last-validated-code marker and is not safe for concurrent use.
type Generator struct {
	key           []byte
	algo          otp.Algorithm
	digits        int
	window        int
	period        int64
	lastValidated string
}

// New resolves the config against defaults, decodes the secret, and
// validates every field once.
func New(cfg Config) (*Generator, error) {
	key := cfg.RawSecret
	if len(key) == 0 {
		if cfg.Secret == "" {
			return nil, ErrMissingSecret
		}
		decoded, err := secret.Decode(cfg.Secret)
		if err != nil {
			return nil, err
		}
		key = decoded
	}

	algo := cfg.Algorithm
	if algo == "" {
		algo = otp.SHA1
	}
	if !algo.Valid() {
		return nil, otp.ErrUnsupportedAlgorithm
	}

	digits := cfg.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < 1 || digits > 10 {
		return nil, otp.ErrInvalidDigits
	}

	window := cfg.Window
	if window == 0 {
		window = DefaultWindow
	}
	if window < 0 {
		return nil, ErrInvalidWindow
	}

	period := cfg.Period
	if period == 0 {
		period = DefaultPeriod
	}
	if period < 0 {
		return nil, ErrInvalidPeriod
	}

	return &Generator{
		key:           key,
		algo:          algo,
		digits:        digits,
		window:        window,
		period:        period,
		lastValidated: codeformat.Normalize(cfg.LastValidated),
	}, nil
}

// Generate derives the code for the time step containing now (or the AtTime
// instant). Purely time-driven: repeated calls within one step return the
// identical code and nothing mutates.
func (g *Generator) Generate(opts ...Option) (string, error) {
	o := newCallOptions(opts)

	step := otp.TimeStep(g.period, g.at(o))
	code, err := otp.Derive(g.algo, g.key, step, g.digits)
	if err != nil {
		return "", err
	}

	return g.render(code, o), nil
}

// Validate checks a submitted code against the symmetric window
// [step-Window, step+Window] around the current (or AtTime) step, skipping
// negative steps and accepting the earliest match. A matched code equal to
// the last accepted one is rejected as a replay. On genuine acceptance the
// last-validated-code marker is set to the canonical code computed at the
// matched step, unless WithoutSideEffects is given. A mismatch or replay is
// (false, nil), never an error.
func (g *Generator) Validate(code string, opts ...Option) (bool, error) {
	o := newCallOptions(opts)

	normalized := codeformat.Normalize(code)
	if normalized == "" {
		return false, nil
	}

	base := otp.TimeStep(g.period, g.at(o))

	first, last := base, base
	if o.window {
		first = base - int64(g.window)
		last = base + int64(g.window)
	}

	for step := first; step <= last; step++ {
		if step < 0 {
			continue
		}
		candidate, err := otp.DeriveCode(g.algo, g.key, step, g.digits)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(normalized)) != 1 {
			continue
		}

		// Correct code, but already consumed: at most one acceptance
		// per distinct code value.
		if g.lastValidated != "" && subtle.ConstantTimeCompare([]byte(g.lastValidated), []byte(normalized)) == 1 {
			return false, nil
		}

		if o.sideEffects {
			g.lastValidated = candidate
		}
		return true, nil
	}

	return false, nil
}

// SecondsUntilNextWindow reports how many seconds remain before the current
// time step rolls over. Pure; no side effects.
func (g *Generator) SecondsUntilNextWindow(opts ...Option) int64 {
	o := newCallOptions(opts)
	return g.period - (g.at(o).Unix() % g.period)
}

// LastValidated returns the current replay marker in canonical form, e.g.
// for persisting between restarts. Empty until a code has been accepted.
func (g *Generator) LastValidated() string {
	return g.lastValidated
}

func (g *Generator) at(o callOptions) time.Time {
	if o.hasTime {
		return o.at
	}
	return time.Now()
}

func (g *Generator) render(code int, o callOptions) string {
	if !o.formatted {
		return fmt.Sprintf("%0*d", g.digits, code)
	}
	if o.hasGroupSize {
		return codeformat.FormatGrouped(code, g.digits, o.groupSize)
	}
	return codeformat.Format(code, g.digits)
}
