// Package envelope encrypts third-party credentials for storage at rest and
// decrypts them on the way back out. Each value is sealed into a
// self-contained envelope string that can live in a regular database text
// column; everything needed to open it again, except the passphrase, travels
// inside the envelope itself.
//
// # Features
//
//   - AES-256-GCM authenticated encryption
//   - Per-envelope key derivation (PBKDF2-HMAC-SHA256, fresh 64-byte salt)
//   - Self-contained envelope format: salt:nonce:tag:ciphertext, hex segments
//   - Passphrase read through a source on every call, enabling rotation
//   - Typed errors split into configuration, format, and authentication kinds
//   - Startup self-test and readiness probe
//   - Stateless and safe for concurrent use
//
// # Basic Usage
//
// Create a cipher with a passphrase source and seal values for storage:
//
//	import "github.com/schemawrite/credvault/core/envelope"
//
//	cipher, err := envelope.New(envelope.EnvPassphrase("CREDVAULT_PASSPHRASE"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sealed, err := cipher.Encrypt(oauthToken)
//	// store sealed verbatim in a text column
//
//	token, err := cipher.Decrypt(sealed)
//	if err != nil {
//		switch {
//		case envelope.IsFormatError(err):
//			// stored value is corrupt; drop it and re-authorize
//		case envelope.IsAuthenticationError(err):
//			// tampering or wrong passphrase; alert, never retry
//		case envelope.IsConfigurationError(err):
//			// deployment problem; crash loudly
//		}
//	}
//
// # Configuration
//
// Load the passphrase through the config package and fail fast at startup:
//
//	var cfg envelope.Config
//	config.MustLoad(&cfg)
//
//	cipher, err := envelope.NewFromConfig(cfg)
//
// NewFromConfig fixes the passphrase for the process lifetime. To pick up a
// rotated passphrase without restarting, construct with a live source
// instead:
//
//	cipher, err := envelope.New(envelope.EnvPassphrase("CREDVAULT_PASSPHRASE"))
//
// Rotation is per-value: an envelope sealed under the old passphrase still
// requires the old passphrase, so rotating means decrypt-then-re-encrypt for
// every stored credential.
//
// # Provisioning
//
// Generate a passphrase once, out-of-band, and put it into configuration:
//
//	secret, err := envelope.GenerateKey() // 64 hex characters
//
// # Health Checks
//
// VerifySetup gates startup; Healthcheck plugs into readiness endpoints:
//
//	if !cipher.VerifySetup() {
//		log.Fatal("credential cipher is not operational")
//	}
//
//	health.Readiness(log, cipher.Healthcheck())
//
// Both run a real encrypt/decrypt round trip on a unique throwaway payload,
// so they catch a missing passphrase, a short passphrase, and anything wrong
// in the cipher path itself.
//
// # Envelope Format
//
// An envelope is four hex segments joined by colons:
//
//	salt : nonce : tag : ciphertext
//	128    32      32    2x plaintext bytes   (hex characters)
//
// Treat it as opaque. Decrypt validates the shape before any cryptographic
// work, so malformed storage surfaces as ErrMalformedEnvelope, not as a
// cipher failure.
//
// # Security Considerations
//
//   - The passphrase must be at least 32 characters; generate it with
//     GenerateKey rather than inventing one
//   - Keep the passphrase in environment configuration or a secret manager,
//     never in code or version control
//   - Encryption is non-deterministic: equal plaintexts produce different
//     envelopes, so envelopes cannot be compared for equality (use
//     pkg/secrethash digests for that)
//   - Authentication failures mean tampering or a wrong passphrase; log them
//     as security events and do not retry
//   - Derived keys are ephemeral per call and never cached or logged
package envelope
