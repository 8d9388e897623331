package envelope

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const probePrefix = "credvault-selftest"

// VerifySetup reports whether the cipher is usable under its current
// configuration by running a full encrypt/decrypt round trip on a throwaway
// payload. It never panics; every failure mode maps to false. A service
// embedding the cipher should refuse to serve credential-writing traffic
// while this returns false.
func (c *Cipher) VerifySetup() bool {
	return c.selfTest() == nil
}

// Healthcheck returns a probe compatible with readiness endpoints. The probe
// runs the same round trip as VerifySetup but surfaces the underlying error.
func (c *Cipher) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		return c.selfTest()
	}
}

func (c *Cipher) selfTest() error {
	if _, err := c.passphrase(); err != nil {
		return err
	}

	// Unique payload per probe so repeated checks never collide.
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate probe id: %w", err)
	}
	probe := fmt.Sprintf("%s:%d:%s", probePrefix, time.Now().UnixNano(), id)

	sealed, err := c.Encrypt(probe)
	if err != nil {
		return err
	}
	opened, err := c.Decrypt(sealed)
	if err != nil {
		return err
	}
	if opened != probe {
		return ErrSelfTestFailed
	}
	return nil
}
