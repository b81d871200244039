package hotp

import (
	"crypto/subtle"
	"fmt"

	"github.com/dmitrymomot/otpkit/pkg/codeformat"
	"github.com/dmitrymomot/otpkit/pkg/otp"
	"github.com/dmitrymomot/otpkit/pkg/secret"
)

const (
	// DefaultDigits is the RFC 4226 standard code length.
	DefaultDigits = 6

	// DefaultWindow is the look-ahead span probed during validation. The
	// value tolerates a client that burned through many unconsumed codes,
	// at the cost of widening the brute-force surface to Window+1 codes
	// per attempt. Deployments with tighter rate limits or lower drift
	// should set Config.Window explicitly.
	DefaultWindow = 100
)

// Config carries the construction inputs for a Generator. Zero values fall
// back to the documented defaults during New.
type Config struct {
	Secret    string        // Base32-encoded shared secret
	RawSecret []byte        // raw key bytes; takes precedence over Secret
	Algorithm otp.Algorithm // HMAC hash, default SHA-1
	Digits    int           // code length, default 6
	Window    int           // look-ahead steps, default DefaultWindow
	Counter   int64         // initial counter value, default 0
}

// Generator derives and validates counter-based one-time passcodes. It owns
// the monotonic counter and is not safe for concurrent use.
type Generator struct {
	key     []byte
	algo    otp.Algorithm
	digits  int
	window  int
	counter int64
}

// New resolves the config against defaults, decodes the secret, and
// validates every field once. Configuration problems surface here, not on
// later calls.
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

	if cfg.Counter < 0 {
		return nil, ErrInvalidCounter
	}

	return &Generator{
		key:     key,
		algo:    algo,
		digits:  digits,
		window:  window,
		counter: cfg.Counter,
	}, nil
}

// Generate derives the code for the current counter value and advances the
// counter by 1. With WithMovingFactor the code is derived for that factor
// instead and the counter is left untouched; WithoutSideEffects suppresses
// the advance.
func (g *Generator) Generate(opts ...Option) (string, error) {
	o := newCallOptions(opts)

	factor := g.counter
	if o.explicit {
		factor = o.factor
	}

	code, err := otp.Derive(g.algo, g.key, factor, g.digits)
	if err != nil {
		return "", err
	}

	if !o.explicit && o.sideEffects {
		g.counter++
	}

	return g.render(code, o), nil
}

// Validate checks a submitted code against the forward-only window
// [base, base+Window], ascending, accepting the earliest match. The base is
// the internal counter unless WithMovingFactor overrides it. On a match that
// used the internal counter, the counter advances by 1 unless
// WithoutSideEffects is given. A mismatch is (false, nil), never an error.
func (g *Generator) Validate(code string, opts ...Option) (bool, error) {
	o := newCallOptions(opts)

	normalized := codeformat.Normalize(code)
	if normalized == "" {
		return false, nil
	}

	base := g.counter
	if o.explicit {
		base = o.factor
	}

	last := base
	if o.window {
		last = base + int64(g.window)
	}

	for factor := base; factor <= last; factor++ {
		candidate, err := otp.DeriveCode(g.algo, g.key, factor, g.digits)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(normalized)) == 1 {
			if !o.explicit && o.sideEffects {
				g.counter++
			}
			return true, nil
		}
	}

	return false, nil
}

// Counter returns the current internal counter value, e.g. for persisting
// between restarts.
func (g *Generator) Counter() int64 {
	return g.counter
}

// ResetCounter sets the internal counter to an explicit value, e.g. when
// restoring persisted state or resynchronizing with a client.
func (g *Generator) ResetCounter(counter int64) error {
	if counter < 0 {
		return ErrInvalidCounter
	}
	g.counter = counter
	return nil
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
