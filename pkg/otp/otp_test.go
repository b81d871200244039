package otp_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4226 appendix D reference secret.
var rfcSecret = []byte("12345678901234567890")

func TestDeriveRFC4226Vectors(t *testing.T) {
	t.Parallel()

	// Appendix D of RFC 4226: HMAC-SHA-1 HOTP values for counters 0..9.
	expected := []int{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}

	for counter, want := range expected {
		code, err := otp.Derive(otp.SHA1, rfcSecret, int64(counter), 6)
		require.NoError(t, err)
		assert.Equal(t, want, code, "counter %d", counter)
	}
}

func TestDeriveDeterminism(t *testing.T) {
	t.Parallel()

	first, err := otp.Derive(otp.SHA256, rfcSecret, 123456, 8)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := otp.Derive(otp.SHA256, rfcSecret, 123456, 8)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeriveCodeZeroPadding(t *testing.T) {
	t.Parallel()

	// RFC 6238 appendix B: time 1111111109 (step 37037036) with the SHA-1
	// reference secret yields 7081804, so the canonical 8-digit form must
	// carry a leading zero.
	canonical, err := otp.DeriveCode(otp.SHA1, rfcSecret, 37037036, 8)
	require.NoError(t, err)
	assert.Equal(t, "07081804", canonical)
}

func TestDigestLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algo otp.Algorithm
		size int
	}{
		{otp.SHA1, 20},
		{otp.SHA256, 32},
		{otp.SHA512, 64},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.algo), func(t *testing.T) {
			t.Parallel()
			digest, err := otp.Digest(tt.algo, rfcSecret, 0)
			require.NoError(t, err)
			assert.Len(t, digest, tt.size)
		})
	}
}

func TestDigestErrors(t *testing.T) {
	t.Parallel()

	_, err := otp.Digest(otp.SHA1, rfcSecret, -1)
	assert.ErrorIs(t, err, otp.ErrInvalidMovingFactor)

	_, err = otp.Digest(otp.Algorithm("MD5"), rfcSecret, 0)
	assert.ErrorIs(t, err, otp.ErrUnsupportedAlgorithm)
}

func TestTruncateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		digest []byte
		digits int
		err    error
	}{
		{name: "empty digest", digest: nil, digits: 6, err: otp.ErrInvalidDigest},
		{name: "digest shorter than offset read", digest: []byte{0x01, 0x02, 0x03, 0x0f}, digits: 6, err: otp.ErrInvalidDigest},
		{name: "zero digits", digest: make([]byte, 20), digits: 0, err: otp.ErrInvalidDigits},
		{name: "too many digits", digest: make([]byte, 20), digits: 11, err: otp.ErrInvalidDigits},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := otp.Truncate(tt.digest, tt.digits)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTruncateRange(t *testing.T) {
	t.Parallel()

	for counter := int64(0); counter < 50; counter++ {
		digest, err := otp.Digest(otp.SHA512, rfcSecret, counter)
		require.NoError(t, err)

		code, err := otp.Truncate(digest, 6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, code, 0)
		assert.Less(t, code, 1000000)
	}
}

func TestTimeStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		period int64
		unix   int64
		want   int64
	}{
		{name: "start of first step", period: 30, unix: 0, want: 0},
		{name: "end of first step", period: 30, unix: 29, want: 0},
		{name: "start of second step", period: 30, unix: 30, want: 1},
		{name: "RFC 6238 test time", period: 30, unix: 59, want: 1},
		{name: "large timestamp", period: 30, unix: 1111111109, want: 37037036},
		{name: "sixty second period", period: 60, unix: 119, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := otp.TimeStep(tt.period, time.Unix(tt.unix, 0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    otp.Algorithm
		wantErr bool
	}{
		{in: "SHA1", want: otp.SHA1},
		{in: "sha1", want: otp.SHA1},
		{in: "SHA-256", want: otp.SHA256},
		{in: " sha512 ", want: otp.SHA512},
		{in: "MD5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := otp.ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, otp.ErrUnsupportedAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
