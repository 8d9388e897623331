package secrethash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestLength is the length of a digest string: SHA-256's 32 bytes,
// hex-encoded. Fixed-width digests let callers size database columns and
// validate stored values cheaply.
const DigestLength = 64

// Hash returns the lowercase hex SHA-256 digest of value. Equal inputs
// always produce equal digests, so two credentials can be compared for
// equality through their digests alone, without decrypting anything.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether value hashes to digest. The comparison runs in
// constant time over the digest. The digest must be exactly as produced by
// Hash, lowercase hex included.
func Verify(value, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(value)), []byte(digest)) == 1
}
