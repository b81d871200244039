package totp_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/otp"
	"github.com/dmitrymomot/otpkit/pkg/secret"
	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B reference secrets, sized to each hash's block needs.
var (
	sha1Secret   = []byte("12345678901234567890")
	sha256Secret = []byte("12345678901234567890123456789012")
	sha512Secret = []byte("1234567890123456789012345678901234567890123456789012345678901234")
)

func newGenerator(t *testing.T, cfg totp.Config) *totp.Generator {
	t.Helper()
	if cfg.RawSecret == nil && cfg.Secret == "" {
		cfg.RawSecret = sha1Secret
	}
	gen, err := totp.New(cfg)
	require.NoError(t, err)
	return gen
}

func TestGenerateRFC6238Vectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algo   otp.Algorithm
		secret []byte
		unix   int64
		want   string
	}{
		{otp.SHA1, sha1Secret, 59, "94287082"},
		{otp.SHA1, sha1Secret, 1111111109, "07081804"},
		{otp.SHA1, sha1Secret, 1111111111, "14050471"},
		{otp.SHA1, sha1Secret, 1234567890, "89005924"},
		{otp.SHA1, sha1Secret, 2000000000, "69279037"},
		{otp.SHA1, sha1Secret, 20000000000, "65353130"},
		{otp.SHA256, sha256Secret, 59, "46119246"},
		{otp.SHA256, sha256Secret, 1111111109, "68084774"},
		{otp.SHA256, sha256Secret, 1111111111, "67062674"},
		{otp.SHA256, sha256Secret, 1234567890, "91819424"},
		{otp.SHA256, sha256Secret, 2000000000, "90698825"},
		{otp.SHA256, sha256Secret, 20000000000, "77737706"},
		{otp.SHA512, sha512Secret, 59, "90693936"},
		{otp.SHA512, sha512Secret, 1111111109, "25091201"},
		{otp.SHA512, sha512Secret, 1111111111, "99943326"},
		{otp.SHA512, sha512Secret, 1234567890, "93441116"},
		{otp.SHA512, sha512Secret, 2000000000, "38618901"},
		{otp.SHA512, sha512Secret, 20000000000, "47863826"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.algo), func(t *testing.T) {
			t.Parallel()
			gen := newGenerator(t, totp.Config{RawSecret: tt.secret, Algorithm: tt.algo, Digits: 8})
			code, err := gen.Generate(totp.AtTime(time.Unix(tt.unix, 0)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, code, "time %d", tt.unix)
		})
	}
}

func TestGenerateStableWithinStep(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, totp.Config{Digits: 8})

	// 1111111090 and 1111111109 share time step 37037036.
	first, err := gen.Generate(totp.AtTime(time.Unix(1111111090, 0)))
	require.NoError(t, err)
	second, err := gen.Generate(totp.AtTime(time.Unix(1111111109, 0)))
	require.NoError(t, err)
	assert.Equal(t, "07081804", first)
	assert.Equal(t, first, second)
}

func TestValidateSymmetricWindow(t *testing.T) {
	t.Parallel()

	const at = 1111111109

	tests := []struct {
		name   string
		offset int64
		want   bool
	}{
		{name: "current step", offset: 0, want: true},
		{name: "one step ahead", offset: 30, want: true},
		{name: "one step behind", offset: -59, want: true},
		{name: "two steps ahead", offset: 31, want: false},
		{name: "two steps behind", offset: -60, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := newGenerator(t, totp.Config{})

			code, err := gen.Generate(totp.AtTime(time.Unix(at+tt.offset, 0)))
			require.NoError(t, err)

			ok, err := gen.Validate(code, totp.AtTime(time.Unix(at, 0)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidateWithoutWindow(t *testing.T) {
	t.Parallel()

	const at = 1111111109

	gen := newGenerator(t, totp.Config{})

	previous, err := gen.Generate(totp.AtTime(time.Unix(at-30, 0)))
	require.NoError(t, err)

	ok, err := gen.Validate(previous, totp.AtTime(time.Unix(at, 0)), totp.WithoutWindow())
	require.NoError(t, err)
	assert.False(t, ok, "adjacent step must not match when scanning is disabled")

	current, err := gen.Generate(totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)

	ok, err = gen.Validate(current, totp.AtTime(time.Unix(at, 0)), totp.WithoutWindow())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateReplayRejected(t *testing.T) {
	t.Parallel()

	const at = 1111111109
	gen := newGenerator(t, totp.Config{})

	code, err := gen.Generate(totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)

	ok, err := gen.Validate(code, totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, code, gen.LastValidated())

	// Cryptographically correct and inside the window, but already used.
	ok, err = gen.Validate(code, totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)
	assert.False(t, ok)

	// The next step's code is a different value and passes.
	next, err := gen.Generate(totp.AtTime(time.Unix(at+30, 0)))
	require.NoError(t, err)
	ok, err = gen.Validate(next, totp.AtTime(time.Unix(at+30, 0)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, next, gen.LastValidated())
}

func TestValidateReplayMarkerStoresCanonicalForm(t *testing.T) {
	t.Parallel()

	const at = 1111111109
	gen := newGenerator(t, totp.Config{})

	code, err := gen.Generate(totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)

	// Submit the code with display grouping; the stored marker must be the
	// canonical form computed at the matched step, not the raw input.
	grouped := code[:3] + " " + code[3:]
	ok, err := gen.Validate(grouped, totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, code, gen.LastValidated())

	ok, err = gen.Validate(code, totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)
	assert.False(t, ok, "replay with canonical form must be rejected")
}

func TestValidateWithoutSideEffects(t *testing.T) {
	t.Parallel()

	const at = 1111111109
	gen := newGenerator(t, totp.Config{})

	code, err := gen.Generate(totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := gen.Validate(code, totp.AtTime(time.Unix(at, 0)), totp.WithoutSideEffects())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Empty(t, gen.LastValidated())
}

func TestValidateInitialLastValidated(t *testing.T) {
	t.Parallel()

	const at = 1111111109

	reference := newGenerator(t, totp.Config{})
	code, err := reference.Generate(totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)

	// Restored marker, e.g. loaded by the caller after a restart.
	gen := newGenerator(t, totp.Config{LastValidated: code})
	ok, err := gen.Validate(code, totp.AtTime(time.Unix(at, 0)))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateSkipsNegativeSteps(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, totp.Config{})

	// At the epoch the look-behind step would be negative and is skipped.
	code, err := gen.Generate(totp.AtTime(time.Unix(0, 0)))
	require.NoError(t, err)

	ok, err := gen.Validate(code, totp.AtTime(time.Unix(0, 0)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSecondsUntilNextWindow(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, totp.Config{})

	tests := []struct {
		unix int64
		want int64
	}{
		{unix: 0, want: 30},
		{unix: 1, want: 29},
		{unix: 59, want: 1},
		{unix: 60, want: 30},
		{unix: 1111111109, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gen.SecondsUntilNextWindow(totp.AtTime(time.Unix(tt.unix, 0))), "unix %d", tt.unix)
	}
}

func TestGenerateFormatted(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, totp.Config{Digits: 8})

	code, err := gen.Generate(totp.AtTime(time.Unix(1111111109, 0)), totp.Formatted())
	require.NoError(t, err)
	assert.Equal(t, "0708 1804", code)

	code, err = gen.Generate(totp.AtTime(time.Unix(1111111109, 0)), totp.WithGroupSize(0))
	require.NoError(t, err)
	assert.Equal(t, "07081804", code)
}

func TestNewConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  totp.Config
		err  error
	}{
		{name: "missing secret", cfg: totp.Config{}, err: totp.ErrMissingSecret},
		{name: "invalid base32 secret", cfg: totp.Config{Secret: "not-base32!"}, err: secret.ErrInvalidSecret},
		{name: "unsupported algorithm", cfg: totp.Config{RawSecret: sha1Secret, Algorithm: "MD5"}, err: otp.ErrUnsupportedAlgorithm},
		{name: "too many digits", cfg: totp.Config{RawSecret: sha1Secret, Digits: 11}, err: otp.ErrInvalidDigits},
		{name: "negative window", cfg: totp.Config{RawSecret: sha1Secret, Window: -1}, err: totp.ErrInvalidWindow},
		{name: "negative period", cfg: totp.Config{RawSecret: sha1Secret, Period: -30}, err: totp.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.New(tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
