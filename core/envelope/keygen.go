package envelope

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// GenerateKey produces a fresh random secret suitable for provisioning as the
// cipher passphrase, 32 bytes of entropy hex-encoded to 64 characters. Meant
// to be run by an operator out-of-band; the result goes into configuration,
// not into code.
func GenerateKey() (string, error) {
	buf := make([]byte, KeyLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
