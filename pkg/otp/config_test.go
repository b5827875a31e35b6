package otp_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/otp"
	"github.com/dmitrymomot/otpkit/pkg/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	store, err := secret.NewFromBytes(rfcSecret)
	require.NoError(t, err)

	t.Run("applies settings", func(t *testing.T) {
		t.Parallel()
		engine, err := otp.NewFromConfig(store, otp.Config{
			Digits:        8,
			Algorithm:     "sha-256",
			TimeStep:      60,
			TolerancePrev: 1,
			ToleranceNext: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 8, engine.Digits())
		assert.Equal(t, otp.SHA256, engine.Algorithm())
		assert.Equal(t, int64(60), engine.TimeStep())
		prev, next := engine.Tolerance()
		assert.Equal(t, 1, prev)
		assert.Equal(t, 2, next)
	})

	t.Run("hotp config", func(t *testing.T) {
		t.Parallel()
		engine, err := otp.NewFromConfig(store, otp.Config{
			Digits:    6,
			Algorithm: "SHA1",
			TimeStep:  0,
		})
		require.NoError(t, err)
		assert.Equal(t, otp.ModeHOTP, engine.Mode())
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		t.Parallel()
		_, err := otp.NewFromConfig(store, otp.Config{Digits: 6, Algorithm: "MD5", TimeStep: 30})
		require.ErrorIs(t, err, otp.ErrUnsupportedAlgorithm)
	})

	t.Run("rejects out of range digits", func(t *testing.T) {
		t.Parallel()
		_, err := otp.NewFromConfig(store, otp.Config{Digits: 3, Algorithm: "SHA1", TimeStep: 30})
		require.ErrorIs(t, err, otp.ErrDigitsOutOfRange)
	})
}
