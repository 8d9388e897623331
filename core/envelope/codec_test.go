package envelope_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemawrite/credvault/core/envelope"
)

func TestDecrypt_FormatValidation(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t, testPassphrase)

	validSalt := strings.Repeat("ab", envelope.SaltLength)
	validNonce := strings.Repeat("cd", envelope.NonceLength)
	validTag := strings.Repeat("ef", envelope.TagLength)

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"plain text", "not-an-envelope"},
		{"one segment", validSalt},
		{"two segments", validSalt + ":" + validNonce},
		{"three segments", validSalt + ":" + validNonce + ":" + validTag},
		{"five segments", validSalt + ":" + validNonce + ":" + validTag + ":abcd:1234"},
		{"trailing separator", validSalt + ":" + validNonce + ":" + validTag + ":abcd:"},
		{"invalid hex in salt", strings.Repeat("zx", envelope.SaltLength) + ":" + validNonce + ":" + validTag + ":abcd"},
		{"odd-length hex in nonce", validSalt + ":" + validNonce + "c:" + validTag + ":abcd"},
		{"invalid hex in ciphertext", validSalt + ":" + validNonce + ":" + validTag + ":not-hex!"},
		{"salt wrong length", strings.Repeat("ab", 32) + ":" + validNonce + ":" + validTag + ":abcd"},
		{"nonce wrong length", validSalt + ":" + strings.Repeat("cd", 12) + ":" + validTag + ":abcd"},
		{"tag wrong length", validSalt + ":" + validNonce + ":" + strings.Repeat("ef", 8) + ":abcd"},
		{"empty salt segment", ":" + validNonce + ":" + validTag + ":abcd"},
		{"empty nonce segment", validSalt + "::" + validTag + ":abcd"},
		{"empty tag segment", validSalt + ":" + validNonce + "::abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Decrypt(tt.input)
			require.ErrorIs(t, err, envelope.ErrMalformedEnvelope)
			assert.True(t, envelope.IsFormatError(err))
			assert.False(t, envelope.IsAuthenticationError(err))
		})
	}
}

// A structurally valid envelope with fabricated contents must make it past
// format validation and then fail authentication, not parsing.
func TestDecrypt_FabricatedEnvelope(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t, testPassphrase)

	validSalt := strings.Repeat("ab", envelope.SaltLength)
	validNonce := strings.Repeat("cd", envelope.NonceLength)
	validTag := strings.Repeat("ef", envelope.TagLength)

	t.Run("well-formed but never sealed", func(t *testing.T) {
		_, err := cipher.Decrypt(validSalt + ":" + validNonce + ":" + validTag + ":abcd1234")
		require.ErrorIs(t, err, envelope.ErrAuthenticationFailed)
		assert.False(t, envelope.IsFormatError(err))
	})

	t.Run("empty ciphertext segment is well-formed", func(t *testing.T) {
		// Encrypting an empty string yields an empty ciphertext segment, so
		// the codec accepts it; a fabricated tag still fails to verify.
		_, err := cipher.Decrypt(validSalt + ":" + validNonce + ":" + validTag + ":")
		require.ErrorIs(t, err, envelope.ErrAuthenticationFailed)
	})
}
