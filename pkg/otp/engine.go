package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"

	"github.com/dmitrymomot/otpkit/pkg/clock"
	"github.com/dmitrymomot/otpkit/pkg/secret"
)

const (
	MinDigits = 4
	MaxDigits = 9

	// MaxTimeStep caps the TOTP step at one day.
	MaxTimeStep = 86400

	DefaultDigits    = 6    // standard 6-digit codes
	DefaultTimeStep  = 30   // 30-second window (RFC 6238 standard)
	DefaultAlgorithm = SHA1 // RFC 6238 standard
)

// Mode is the engine's operating mode, derived from the time step: a zero
// step means counter-based HOTP, a positive step means time-based TOTP.
type Mode int

const (
	ModeHOTP Mode = iota
	ModeTOTP
)

func (m Mode) String() string {
	if m == ModeTOTP {
		return "TOTP"
	}
	return "HOTP"
}

// cachedCode is the last derivation result. A cache entry is only reused
// when counter, digits and algorithm all still match.
type cachedCode struct {
	counter   uint64
	digits    int
	algorithm Algorithm
	code      uint64
}

// Engine computes and validates one-time codes against a single secret
// store. Configuration is mutable through the setters; every setter rejects
// out-of-range values without touching prior state. Not safe for concurrent
// use of one instance.
type Engine struct {
	store *secret.Store
	clk   clock.Clock

	digits        int
	algorithm     Algorithm
	timeStep      int64 // seconds; 0 selects HOTP
	counter       uint64
	tolerancePrev int
	toleranceNext int

	cache *cachedCode
}

// Option configures an Engine at construction time. Options are applied in
// order, so WithCounter must follow WithTimeStep(0).
type Option func(*Engine) error

// WithDigits sets the code length, 4 to 9 digits.
func WithDigits(d int) Option {
	return func(e *Engine) error { return e.SetDigits(d) }
}

// WithAlgorithm sets the HMAC hash family.
func WithAlgorithm(a Algorithm) Option {
	return func(e *Engine) error { return e.SetAlgorithm(a) }
}

// WithTimeStep sets the TOTP step in seconds; 0 switches to HOTP.
func WithTimeStep(seconds int64) Option {
	return func(e *Engine) error { return e.SetTimeStep(seconds) }
}

// WithCounter sets the HOTP counter. Only valid after WithTimeStep(0).
func WithCounter(c uint64) Option {
	return func(e *Engine) error { return e.SetCounter(c) }
}

// WithTolerance sets the validation window on both sides of the current
// counter.
func WithTolerance(prev, next int) Option {
	return func(e *Engine) error { return e.SetTolerance(prev, next) }
}

// WithClock replaces the time source, for deterministic TOTP tests.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) error {
		if c == nil {
			return ErrMissingClock
		}
		e.clk = c
		return nil
	}
}

// New creates an Engine bound to store with RFC 6238 defaults: 6 digits,
// SHA1, 30-second time step, no tolerance, system clock.
func New(store *secret.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrMissingSecretStore
	}

	e := &Engine{
		store:     store,
		clk:       clock.System(),
		digits:    DefaultDigits,
		algorithm: DefaultAlgorithm,
		timeStep:  DefaultTimeStep,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// NewFromBase32 creates a secret store from Base32 text and binds a new
// Engine to it.
func NewFromBase32(text string, opts ...Option) (*Engine, error) {
	store, err := secret.NewFromBase32(text)
	if err != nil {
		return nil, err
	}
	return New(store, opts...)
}

// Digits returns the configured code length.
func (e *Engine) Digits() int { return e.digits }

// SetDigits sets the code length, 4 to 9 digits.
func (e *Engine) SetDigits(d int) error {
	if d < MinDigits || d > MaxDigits {
		return ErrDigitsOutOfRange
	}
	e.digits = d
	return nil
}

// Algorithm returns the configured HMAC hash family.
func (e *Engine) Algorithm() Algorithm { return e.algorithm }

// SetAlgorithm sets the HMAC hash family.
func (e *Engine) SetAlgorithm(a Algorithm) error {
	if !a.Valid() {
		return ErrUnsupportedAlgorithm
	}
	e.algorithm = a
	return nil
}

// TimeStep returns the TOTP step in seconds, 0 in HOTP mode.
func (e *Engine) TimeStep() int64 { return e.timeStep }

// SetTimeStep switches between modes: 0 selects HOTP, 1 to 86400 seconds
// selects TOTP. Leaving TOTP mode resets the counter to 0.
func (e *Engine) SetTimeStep(seconds int64) error {
	if seconds < 0 || seconds > MaxTimeStep {
		return ErrTimeStepOutOfRange
	}
	if seconds == 0 && e.timeStep != 0 {
		e.counter = 0
	}
	e.timeStep = seconds
	return nil
}

// Mode reports the operating mode derived from the time step.
func (e *Engine) Mode() Mode {
	if e.timeStep > 0 {
		return ModeTOTP
	}
	return ModeHOTP
}

// Counter returns the current counter: the stored value in HOTP mode, the
// elapsed number of time steps in TOTP mode.
func (e *Engine) Counter() uint64 {
	if e.timeStep > 0 {
		return uint64(e.clk.Now().Unix() / e.timeStep)
	}
	return e.counter
}

// SetCounter sets the HOTP counter. In TOTP mode the counter is derived
// from time and not settable.
func (e *Engine) SetCounter(c uint64) error {
	if e.timeStep != 0 {
		return ErrCounterNotSettable
	}
	e.counter = c
	return nil
}

// Tolerance returns the validation window sizes on each side of the
// current counter.
func (e *Engine) Tolerance() (prev, next int) {
	return e.tolerancePrev, e.toleranceNext
}

// SetTolerance sets how many extra counters validation accepts before and
// after the current one.
func (e *Engine) SetTolerance(prev, next int) error {
	if prev < 0 || next < 0 {
		return ErrToleranceOutOfRange
	}
	e.tolerancePrev = prev
	e.toleranceNext = next
	return nil
}

// Code returns the one-time code for the current counter as a zero-padded
// decimal string. In HOTP mode every call consumes the code: the counter
// advances by 1 whether or not the result came from the cache. In TOTP mode
// generation never mutates the counter.
func (e *Engine) Code() (string, error) {
	counter := e.Counter()
	code, err := e.codeAt(counter, e.digits)
	if err != nil {
		return "", err
	}
	if e.timeStep == 0 {
		e.counter++
	}
	return fmt.Sprintf("%0*d", e.digits, code), nil
}

// codeAt returns the code for counter, reusing the cached result when
// counter, digits and algorithm are unchanged since the last derivation.
func (e *Engine) codeAt(counter uint64, digits int) (uint64, error) {
	if c := e.cache; c != nil && c.counter == counter && c.digits == digits && c.algorithm == e.algorithm {
		return c.code, nil
	}

	code, err := e.deriveCode(counter, digits)
	if err != nil {
		return 0, err
	}
	e.cache = &cachedCode{counter: counter, digits: digits, algorithm: e.algorithm, code: code}
	return code, nil
}

// deriveCode implements RFC 4226: HMAC over the 8-byte big-endian counter,
// dynamic truncation to a 31-bit integer, reduction mod 10^digits. The
// plaintext secret exists only for the duration of one scoped store access.
func (e *Engine) deriveCode(counter uint64, digits int) (uint64, error) {
	var code uint64
	err := e.store.Access(func(key []byte) error {
		var msg [8]byte
		binary.BigEndian.PutUint64(msg[:], counter)

		mac := hmac.New(e.algorithm.hashFunc(), key)
		mac.Write(msg[:])
		digest := mac.Sum(nil)

		offset := digest[len(digest)-1] & 0x0f
		truncated := uint64(digest[offset]&0x7f)<<24 |
			uint64(digest[offset+1])<<16 |
			uint64(digest[offset+2])<<8 |
			uint64(digest[offset+3])

		code = truncated % pow10(digits)
		secret.Zero(digest)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return code, nil
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
