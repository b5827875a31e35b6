package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/otpkit/pkg/base32"
)

const (
	// MaxSecretLength is the capacity of a Store's buffer.
	MaxSecretLength = 1024

	// GeneratedSecretLength is the size of randomly generated secrets,
	// 160 bits per the RFC 4226 recommendation.
	GeneratedSecretLength = 20

	maskSeedSize = 32
	maskKeySize  = 32 // AES-256

	// maskInfo provides HKDF domain separation for the masking key.
	maskInfo = "otpkit-secret-mask-v1"
)

// Store holds one secret in a fixed-capacity buffer, masked while idle.
// Content is immutable for the Store's lifetime. Not safe for concurrent use.
type Store struct {
	buf    [MaxSecretLength]byte
	length int
	block  cipher.Block
	iv     [aes.BlockSize]byte
}

// New creates a Store around a freshly generated random secret of
// GeneratedSecretLength bytes.
func New() (*Store, error) {
	plain, err := Generate()
	if err != nil {
		return nil, err
	}
	defer Zero(plain)
	return NewFromBytes(plain)
}

// NewFromBytes creates a Store holding a copy of b. The input is not
// modified; the caller should erase it once the Store exists.
func NewFromBytes(b []byte) (*Store, error) {
	if len(b) == 0 {
		return nil, ErrMissingSecret
	}
	if len(b) > MaxSecretLength {
		return nil, ErrSecretTooLong
	}

	seed := make([]byte, maskSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	defer Zero(seed)

	material := make([]byte, maskKeySize+aes.BlockSize)
	kdf := hkdf.New(sha256.New, seed, nil, []byte(maskInfo))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, errors.Join(ErrMaskSetupFailed, err)
	}
	defer Zero(material)

	block, err := aes.NewCipher(material[:maskKeySize])
	if err != nil {
		return nil, errors.Join(ErrMaskSetupFailed, err)
	}

	s := &Store{length: len(b), block: block}
	copy(s.iv[:], material[maskKeySize:])
	copy(s.buf[:], b)
	s.mask()
	return s, nil
}

// NewFromBase32 decodes Base32 text via the base32 codec and creates a Store
// from the result. Decoding failures surface as ErrInvalidSecretFormat,
// except oversized input which stays ErrSecretTooLong.
func NewFromBase32(text string) (*Store, error) {
	raw, err := base32.Decode(text)
	if err != nil {
		if errors.Is(err, base32.ErrSecretTooLong) {
			return nil, errors.Join(ErrSecretTooLong, err)
		}
		return nil, errors.Join(ErrInvalidSecretFormat, err)
	}
	defer Zero(raw)
	return NewFromBytes(raw)
}

// Generate returns a new cryptographically random secret of
// GeneratedSecretLength bytes. The caller owns the bytes and should erase
// them with Zero once consumed.
func Generate() ([]byte, error) {
	b := make([]byte, GeneratedSecretLength)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	return b, nil
}

// Len returns the secret's length in bytes.
func (s *Store) Len() int { return s.length }

// Access runs fn with a plaintext copy of the secret. The stored buffer is
// unmasked only long enough to take the copy and is masked again before fn
// runs; the copy is zeroed when fn returns, whether normally or by panic.
func (s *Store) Access(fn func(plaintext []byte) error) error {
	if s == nil {
		return ErrMissingSecret
	}

	s.mask()
	plain := make([]byte, s.length)
	copy(plain, s.buf[:s.length])
	s.mask()

	defer Zero(plain)
	return fn(plain)
}

// ExportBase32 encodes the secret as Base32 text with the given options,
// using one scoped access internally.
func (s *Store) ExportBase32(opts base32.Options) (string, error) {
	var out string
	err := s.Access(func(plaintext []byte) error {
		out = base32.Encode(plaintext, opts)
		return nil
	})
	return out, err
}

// mask XORs the occupied buffer region with the store's keystream. The
// operation is an involution: applying it twice restores the original bytes.
func (s *Store) mask() {
	stream := cipher.NewCTR(s.block, s.iv[:])
	stream.XORKeyStream(s.buf[:s.length], s.buf[:s.length])
}

// Zero erases b. Callers use it to destroy plaintext copies once consumed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
