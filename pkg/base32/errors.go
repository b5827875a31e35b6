package base32

import "errors"

var (
	ErrInvalidCharacter = errors.New("invalid character in base32 input")
	ErrMalformedPadding = errors.New("malformed padding: unexpected character after '='")
	ErrSecretTooLong    = errors.New("secret too long: exceeds 1024 bytes")
)
