package otp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"github.com/dmitrymomot/otpkit/pkg/secret"
)

var (
	cfg  Config
	once sync.Once
)

// Config carries engine defaults sourced from the environment, so deployments
// can tune code length, hash family and tolerance without code changes.
type Config struct {
	Digits        int    `env:"OTP_DIGITS" envDefault:"6"`
	Algorithm     string `env:"OTP_ALGORITHM" envDefault:"SHA1"`
	TimeStep      int64  `env:"OTP_TIME_STEP" envDefault:"30"`
	TolerancePrev int    `env:"OTP_TOLERANCE_PREV" envDefault:"0"`
	ToleranceNext int    `env:"OTP_TOLERANCE_NEXT" envDefault:"0"`
}

// LoadConfig parses the configuration from the environment once per process
// and returns the cached result on subsequent calls.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates an Engine bound to store with the settings carried
// by cfg. Out-of-range values are rejected the same way the setters reject
// them.
func NewFromConfig(store *secret.Store, cfg Config) (*Engine, error) {
	algorithm, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return New(store,
		WithDigits(cfg.Digits),
		WithAlgorithm(algorithm),
		WithTimeStep(cfg.TimeStep),
		WithTolerance(cfg.TolerancePrev, cfg.ToleranceNext),
	)
}
