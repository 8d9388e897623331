// Package credvault is a toolkit for protecting third-party credentials at
// rest. It encrypts OAuth tokens and API keys into self-contained envelope
// strings that fit a regular database text column, and provides the ambient
// pieces a service needs around that: configuration loading, structured
// logging, and digest-based change detection.
//
// # Package Organization
//
//	github.com/schemawrite/credvault/core/envelope   - AES-256-GCM credential encryption with per-envelope key derivation
//	github.com/schemawrite/credvault/core/config     - Type-safe environment variable loading with caching
//	github.com/schemawrite/credvault/core/logger     - Structured logging built on slog, with secret-hygiene helpers
//	github.com/schemawrite/credvault/pkg/secrethash  - One-way digests for credential equality and change detection
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/schemawrite/credvault/core/envelope
//	go doc -all github.com/schemawrite/credvault/pkg/secrethash
//
// # Typical Wiring
//
// A service stores a credential by sealing it and recording its digest, and
// gates startup on the cipher self-test:
//
//	var cfg envelope.Config
//	config.MustLoad(&cfg)
//
//	cipher, err := envelope.NewFromConfig(cfg, envelope.WithLogger(log))
//	if err != nil {
//		log.Error("credential cipher unavailable", logger.Error(err))
//		os.Exit(1)
//	}
//	if !cipher.VerifySetup() {
//		os.Exit(1)
//	}
//
//	sealed, err := cipher.Encrypt(token)
//	digest := secrethash.Hash(token)
//	// persist sealed + digest
package credvault
