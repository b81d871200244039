package hotp

// Option adjusts a single Generate or Validate call.
type Option func(*callOptions)

type callOptions struct {
	factor       int64
	explicit     bool
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

// WithMovingFactor computes against an explicit counter value instead of the
// engine's internal counter. The internal counter is neither read nor
// advanced.
func WithMovingFactor(factor int64) Option {
	return func(o *callOptions) {
		o.factor = factor
		o.explicit = true
	}
}

// WithoutSideEffects computes against the internal counter but suppresses
// the advance on success. Useful for dry-run checks.
func WithoutSideEffects() Option {
	return func(o *callOptions) { o.sideEffects = false }
}

// WithoutWindow disables the look-ahead scan: only the base moving factor
// itself is probed during validation.
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
