package totp

import "time"

// Option adjusts a single Generate, Validate or SecondsUntilNextWindow call.
type Option func(*callOptions)

type callOptions struct {
	at           time.Time
	hasTime      bool
	sideEffects  bool
	window       bool
	formatted    bool
	groupSize    int
	hasGroupSize bool
}

func newCallOptions(opts []Option) callOptions {
	o := callOptions{sideEffects: true, window: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AtTime computes against an explicit instant instead of the current wall
// clock.
func AtTime(t time.Time) Option {
	return func(o *callOptions) {
		o.at = t
		o.hasTime = true
	}
}

// WithoutSideEffects suppresses the last-validated-code update on a
// successful validation. Useful for dry-run checks.
func WithoutSideEffects() Option {
	return func(o *callOptions) { o.sideEffects = false }
}

// WithoutWindow disables the symmetric scan: only the base time step itself
// is probed during validation.
func WithoutWindow() Option {
	return func(o *callOptions) { o.window = false }
}

// Formatted renders the generated code for display with the default digit
// grouping instead of the canonical zero-padded form.
func Formatted() Option {
	return func(o *callOptions) { o.formatted = true }
}

// WithGroupSize renders the generated code for display with an explicit
// group size; zero or less disables grouping. Implies Formatted.
func WithGroupSize(n int) Option {
	return func(o *callOptions) {
		o.formatted = true
		o.groupSize = n
		o.hasGroupSize = true
	}
}
