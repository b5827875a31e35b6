// Package base32 implements the RFC 4648 Base32 text encoding used for
// one-time-password secret interchange with authenticator applications.
//
// The codec is deliberately more forgiving than encoding/base32 from the
// standard library because secrets are typed and pasted by humans: decoding
// ignores whitespace, accepts both cases of the A-Z,2-7 alphabet, and
// tolerates missing padding, including a trailing partial symbol group.
// Encoding is configurable through three independent flags (spacing, padding,
// uppercase); the default output form is the one third-party authenticator
// apps expect: uppercase, unpadded, space-grouped every four characters.
//
// # Usage
//
//	raw, err := base32.Decode("gezd gnbv gy3t qojq gezd gnbv gy3t qojq")
//	if err != nil {
//	    // errors.Is against ErrInvalidCharacter, ErrMalformedPadding,
//	    // ErrSecretTooLong
//	}
//	text := base32.Encode(raw, base32.DefaultOptions)
//
// Decode and Encode are exact inverses for the canonical padded, uppercase,
// unspaced form for every input length up to MaxDecodedLength.
package base32
