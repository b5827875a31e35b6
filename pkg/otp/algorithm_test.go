package otp_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    otp.Algorithm
		wantErr bool
	}{
		{input: "SHA1", want: otp.SHA1},
		{input: "sha1", want: otp.SHA1},
		{input: "SHA-256", want: otp.SHA256},
		{input: " sha512 ", want: otp.SHA512},
		{input: "MD5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := otp.ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, otp.ErrUnsupportedAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlgorithmValid(t *testing.T) {
	t.Parallel()

	assert.True(t, otp.SHA1.Valid())
	assert.True(t, otp.SHA256.Valid())
	assert.True(t, otp.SHA512.Valid())
	assert.False(t, otp.Algorithm("SHA3").Valid())
	assert.False(t, otp.Algorithm("").Valid())
}
