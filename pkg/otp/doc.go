// Package otp generates and validates one-time numeric passwords per the
// HOTP (RFC 4226) and TOTP (RFC 6238) algorithms for two-factor
// authentication flows.
//
// The package keeps the algorithm self-contained instead of depending on a
// third-party OTP library, which keeps services framework-agnostic while
// still following the RFC bit-for-bit: 8-byte big-endian counter, HMAC over
// the configured hash family, dynamic truncation to a 31-bit integer, and
// reduction to 4-9 decimal digits.
//
// # Architecture
//
// An Engine binds exactly one secret.Store to an operating configuration.
// The time step selects the mode: a zero step means counter-based HOTP with
// an explicitly settable counter, a positive step (1 to 86400 seconds) means
// time-based TOTP with the counter derived from the clock. Switching back to
// HOTP resets the counter to zero; setting the counter while in TOTP mode is
// a mode violation.
//
// Generation caches the last (counter, digits, algorithm) derivation so
// repeated reads within one TOTP window skip the HMAC. In HOTP mode every
// read consumes the code by advancing the counter, cache hit or not.
//
// Validation scans the tolerance window around the current counter and
// deliberately computes every candidate even after a match, so the work done
// for a given window size is constant regardless of match position. A
// successful HOTP validation advances the counter past the matched value to
// prevent replay.
//
// # Usage
//
//	engine, err := otp.NewFromBase32("gezd gnbv gy3t qojq gezd gnbv gy3t qojq")
//	if err != nil {
//	    // handle error
//	}
//
//	code, _ := engine.FormattedCode() // e.g. "123 456"
//
//	ok, err := engine.IsCodeStringValid("123 456")
//
// Engine defaults (6 digits, SHA1, 30-second step) can also be sourced from
// the environment via LoadConfig and NewFromConfig; see Config for the
// variable names.
//
// # Error Handling
//
// Every operation validates its preconditions before mutating state and
// returns package-level sentinels: ErrDigitsOutOfRange,
// ErrTimeStepOutOfRange, ErrToleranceOutOfRange, ErrUnsupportedAlgorithm,
// ErrCounterNotSettable, ErrInvalidCodeFormat, ErrMissingSecretStore.
// Inspect them with errors.Is.
//
// # Concurrency
//
// One Engine instance is not safe for concurrent use: the cache and, in HOTP
// mode, the counter mutate on Code and IsCodeValid. Serialize externally or
// use distinct instances, which are fully independent.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otp
