package otp

import "errors"

var (
	ErrMissingSecretStore   = errors.New("missing secret store")
	ErrDigitsOutOfRange     = errors.New("digits out of range: must be between 4 and 9")
	ErrTimeStepOutOfRange   = errors.New("time step out of range: must be 0 or between 1 and 86400 seconds")
	ErrToleranceOutOfRange  = errors.New("tolerance out of range: must not be negative")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm: must be SHA1, SHA256 or SHA512")
	ErrCounterNotSettable   = errors.New("counter not settable in TOTP mode")
	ErrInvalidCodeFormat    = errors.New("invalid code format: expected decimal digits")
	ErrMissingClock         = errors.New("missing clock")
)
