package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"
)

// Algorithm selects the HMAC hash family used for code derivation.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA1, SHA256, SHA512:
		return true
	}
	return false
}

func (a Algorithm) hashFunc() func() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

// ParseAlgorithm resolves a case-insensitive algorithm name, tolerating the
// dashed spellings ("sha-256") some authenticator exports use.
func ParseAlgorithm(s string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	a := Algorithm(normalized)
	if !a.Valid() {
		return "", ErrUnsupportedAlgorithm
	}
	return a, nil
}
