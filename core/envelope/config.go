package envelope

import "fmt"

// Config contains cipher configuration loaded from environment variables.
type Config struct {
	Passphrase string `env:"CREDVAULT_PASSPHRASE"`
}

// NewFromConfig creates a Cipher with the fixed passphrase from cfg. The
// passphrase is validated eagerly so a misprovisioned service fails at
// startup rather than on the first credential write. Services that need
// restart-free rotation should use New with EnvPassphrase instead.
func NewFromConfig(cfg Config, opts ...Option) (*Cipher, error) {
	if cfg.Passphrase == "" {
		return nil, ErrPassphraseMissing
	}
	if len(cfg.Passphrase) < MinPassphraseLength {
		return nil, fmt.Errorf("%w: have %d", ErrPassphraseTooShort, len(cfg.Passphrase))
	}
	return New(StaticPassphrase(cfg.Passphrase), opts...)
}
