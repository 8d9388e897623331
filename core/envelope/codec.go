package envelope

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Envelope layout: salt:nonce:tag:ciphertext, each segment lowercase hex.
const (
	segmentSeparator = ":"
	segmentCount     = 4
)

type parts struct {
	salt       []byte
	nonce      []byte
	tag        []byte
	ciphertext []byte
}

func encode(p parts) string {
	segments := []string{
		hex.EncodeToString(p.salt),
		hex.EncodeToString(p.nonce),
		hex.EncodeToString(p.tag),
		hex.EncodeToString(p.ciphertext),
	}
	return strings.Join(segments, segmentSeparator)
}

// decode parses and validates an envelope string. Every failure is
// ErrMalformedEnvelope; no key derivation or cipher work has happened yet.
func decode(s string) (parts, error) {
	segments := strings.Split(s, segmentSeparator)
	if len(segments) != segmentCount {
		return parts{}, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedEnvelope, segmentCount, len(segments))
	}

	decoded := make([][]byte, segmentCount)
	for i, segment := range segments {
		b, err := hex.DecodeString(segment)
		if err != nil {
			return parts{}, fmt.Errorf("%w: segment %d is not valid hex", ErrMalformedEnvelope, i+1)
		}
		decoded[i] = b
	}

	p := parts{salt: decoded[0], nonce: decoded[1], tag: decoded[2], ciphertext: decoded[3]}
	if len(p.salt) != SaltLength {
		return parts{}, fmt.Errorf("%w: salt is %d bytes, want %d", ErrMalformedEnvelope, len(p.salt), SaltLength)
	}
	if len(p.nonce) != NonceLength {
		return parts{}, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformedEnvelope, len(p.nonce), NonceLength)
	}
	if len(p.tag) != TagLength {
		return parts{}, fmt.Errorf("%w: tag is %d bytes, want %d", ErrMalformedEnvelope, len(p.tag), TagLength)
	}
	return p, nil
}
