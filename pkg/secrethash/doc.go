// Package secrethash produces one-way digests of credential values for
// equality comparison and change detection.
//
// Envelope encryption is deliberately non-deterministic, so two encrypted
// copies of the same credential never match byte-for-byte. Storing a digest
// next to the envelope answers "is the incoming token the one we already
// have?" without decrypting anything:
//
//	import "github.com/schemawrite/credvault/pkg/secrethash"
//
//	digest := secrethash.Hash(incomingToken)
//	if digest == stored.TokenDigest {
//		return nil // unchanged, skip the re-encrypt
//	}
//	// token rotated upstream: re-encrypt and store the new digest
//
// Use Verify when comparing against untrusted input; it runs in constant
// time over the digest:
//
//	if !secrethash.Verify(presentedKey, account.APIKeyDigest) {
//		return ErrInvalidAPIKey
//	}
//
// # Security Notes
//
// Digests are plain SHA-256, unsalted and unstretched. That is the right
// tool for high-entropy machine secrets (OAuth tokens, API keys), where
// brute-forcing the preimage is infeasible. It is the wrong tool for
// user-chosen passwords; those need a slow, salted password hash instead.
//
// A digest is one-way: the original value cannot be recovered from it, which
// makes digests safe to index, log, and compare in application code.
package secrethash
