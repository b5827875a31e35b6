// Package secret owns the raw key material behind one-time-password
// generation and keeps it obfuscated in memory while idle.
//
// A Store is created once, from random bytes, raw bytes, or Base32 text, and
// its content never changes afterwards. The secret lives in a fixed-capacity
// buffer masked with an AES-CTR keystream derived per store, so idle process
// memory never holds the plaintext. Plaintext exists only as short-lived
// copies: Access unmasks the buffer, copies out exactly the stored length,
// re-masks before the callback runs, and zeroes the copy when the callback
// returns, on panic unwind included.
//
// # Usage
//
//	store, err := secret.NewFromBase32("gezd gnbv gy3t qojq")
//	if err != nil {
//	    // errors.Is against ErrInvalidSecretFormat, ErrSecretTooLong,
//	    // ErrMissingSecret
//	}
//
//	err = store.Access(func(plaintext []byte) error {
//	    // use plaintext; it is zeroed as soon as this returns
//	    return nil
//	})
//
// # Concurrency
//
// The mask toggle is not reentrant: concurrent Access or ExportBase32 calls
// on one Store must be serialized by the caller. Distinct Store instances
// are independent.
package secret
