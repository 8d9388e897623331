package envelope

import "os"

// PassphraseSource supplies the long-term passphrase used for key derivation.
// The cipher consults the source on every Encrypt and Decrypt call and never
// retains the returned value, so a rotated passphrase takes effect without
// restarting the process.
type PassphraseSource interface {
	Passphrase() string
}

// PassphraseSourceFunc adapts a plain function to a PassphraseSource.
type PassphraseSourceFunc func() string

func (f PassphraseSourceFunc) Passphrase() string { return f() }

// StaticPassphrase returns a source that always yields the given value.
// Used by NewFromConfig and convenient in tests.
func StaticPassphrase(passphrase string) PassphraseSource {
	return staticSource(passphrase)
}

// EnvPassphrase returns a source that reads the named environment variable on
// every call, so a variable updated in-process is picked up immediately.
func EnvPassphrase(key string) PassphraseSource {
	return PassphraseSourceFunc(func() string { return os.Getenv(key) })
}

type staticSource string

func (s staticSource) Passphrase() string { return string(s) }
