package envelope

import "errors"

var (
	// ErrNoPassphraseSource is returned by New when called without a source.
	ErrNoPassphraseSource = errors.New("no passphrase source provided")

	// ErrPassphraseMissing is returned when the source yields an empty
	// passphrase, typically because the environment variable is unset.
	ErrPassphraseMissing = errors.New("encryption passphrase is not configured")

	// ErrPassphraseTooShort is returned when the configured passphrase does
	// not meet the minimum length requirement.
	ErrPassphraseTooShort = errors.New("encryption passphrase must be at least 32 characters long")

	// ErrMalformedEnvelope is returned by Decrypt when the input does not
	// parse as a credential envelope. The stored value is corrupt or was
	// never produced by Encrypt; no key derivation or cipher work happens.
	ErrMalformedEnvelope = errors.New("stored value is not a valid credential envelope")

	// ErrAuthenticationFailed is returned by Decrypt when the envelope parses
	// but the authentication tag does not verify: the ciphertext was tampered
	// with or a different passphrase sealed it. Callers must not retry.
	ErrAuthenticationFailed = errors.New("credential envelope failed authentication")

	// ErrSelfTestFailed is returned by the healthcheck probe when a round
	// trip completes but does not reproduce the probe payload.
	ErrSelfTestFailed = errors.New("cipher self-test round trip mismatch")
)

// IsConfigurationError reports whether err means the process is not
// provisioned with a usable passphrase. These errors are fatal: crash at
// startup instead of retrying.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoPassphraseSource) ||
		errors.Is(err, ErrPassphraseMissing) ||
		errors.Is(err, ErrPassphraseTooShort)
}

// IsFormatError reports whether err means the stored value is not a parseable
// envelope. Recoverable: treat the credential as lost and re-authorize.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrMalformedEnvelope)
}

// IsAuthenticationError reports whether err means tag verification failed.
// Treat as a security event; never retry.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}
