package secret

import "errors"

var (
	ErrMissingSecret       = errors.New("missing secret")
	ErrSecretTooLong       = errors.New("secret too long: exceeds 1024 bytes")
	ErrInvalidSecretFormat = errors.New("invalid secret format")
	ErrRandomSource        = errors.New("failed to read from random source")
	ErrMaskSetupFailed     = errors.New("failed to set up secret masking")
)
