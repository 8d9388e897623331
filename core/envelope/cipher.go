package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/pbkdf2"

	"github.com/schemawrite/credvault/core/logger"
)

const (
	// KeyLength is the AES-256 key size produced by derivation.
	KeyLength = 32

	// SaltLength is the per-envelope random salt fed into key derivation.
	// 64 bytes rules out precomputed-table attacks even for passphrases
	// near the minimum length.
	SaltLength = 64

	// NonceLength is the GCM nonce size used in stored envelopes. Kept at
	// 16 bytes for compatibility with envelopes already at rest; GCM hashes
	// non-96-bit nonces down to a working IV internally. Every envelope also
	// gets its own derived key via the fresh salt, so nonce reuse across
	// envelopes is not a concern.
	NonceLength = 16

	// TagLength is the GCM authentication tag size.
	TagLength = 16

	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count, the OWASP
	// recommended minimum. Existing envelopes only decrypt under the count
	// they were sealed with, so raising it means re-encrypting stored data.
	KDFIterations = 600_000

	// MinPassphraseLength is the shortest passphrase the cipher accepts.
	MinPassphraseLength = 32
)

// Cipher seals credentials into self-contained envelopes and opens them
// again. Each Encrypt call derives a one-off AES-256 key from the configured
// passphrase and a fresh random salt, so two envelopes never share a key.
// A Cipher is stateless apart from its passphrase source and is safe for
// concurrent use.
type Cipher struct {
	source PassphraseSource
	log    *slog.Logger
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithLogger sets a logger for security-relevant events such as failed
// authentication. Log records never contain plaintext, passphrases, or
// derived keys.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cipher) {
		c.log = log
	}
}

// New creates a Cipher that reads its passphrase from source on every call.
// The passphrase itself is validated lazily, at call time, because a source
// backed by live configuration may start empty and be provisioned later.
func New(source PassphraseSource, opts ...Option) (*Cipher, error) {
	if source == nil {
		return nil, ErrNoPassphraseSource
	}

	c := &Cipher{source: source}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encrypt seals plaintext into an envelope string for storage. The envelope
// carries everything Decrypt needs besides the passphrase: salt, nonce, and
// authentication tag, hex-encoded and colon-joined.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	pass, err := c.passphrase()
	if err != nil {
		return "", err
	}

	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, NonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newAEAD(deriveKey(pass, salt))
	if err != nil {
		return "", err
	}

	// Seal appends the tag to the ciphertext; the envelope stores them as
	// separate segments.
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	boundary := len(sealed) - TagLength

	return encode(parts{
		salt:       salt,
		nonce:      nonce,
		tag:        sealed[boundary:],
		ciphertext: sealed[:boundary],
	}), nil
}

// Decrypt opens an envelope produced by Encrypt and returns the original
// plaintext. It fails with ErrMalformedEnvelope when the input does not parse
// and with ErrAuthenticationFailed when the tag does not verify, which covers
// both tampered ciphertext and a passphrase other than the sealing one.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	pass, err := c.passphrase()
	if err != nil {
		return "", err
	}

	p, err := decode(envelope)
	if err != nil {
		return "", err
	}

	aead, err := newAEAD(deriveKey(pass, p.salt))
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(p.ciphertext)+TagLength)
	sealed = append(sealed, p.ciphertext...)
	sealed = append(sealed, p.tag...)

	plaintext, err := aead.Open(nil, p.nonce, sealed, nil)
	if err != nil {
		if c.log != nil {
			c.log.Warn("credential envelope failed authentication",
				logger.Component("envelope"),
				logger.Event("authentication_failed"),
			)
		}
		return "", ErrAuthenticationFailed
	}
	return string(plaintext), nil
}

// passphrase fetches and validates the current passphrase. Reading through
// the source on every call lets rotated configuration take effect without a
// restart.
func (c *Cipher) passphrase() (string, error) {
	pass := c.source.Passphrase()
	if pass == "" {
		return "", ErrPassphraseMissing
	}
	if len(pass) < MinPassphraseLength {
		return "", fmt.Errorf("%w: have %d", ErrPassphraseTooShort, len(pass))
	}
	return pass, nil
}

// deriveKey stretches the passphrase into an AES-256 key. PBKDF2 keeps
// derivation deterministic for a given salt, which is what lets the envelope
// be self-contained.
func deriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, KDFIterations, KeyLength, sha256.New)
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, NonceLength)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return aead, nil
}
