// Package signature turns primitive sets of signers and verifiers into
// single rotation-aware Signer and Verifier instances. Signatures carry the
// signing key's identifying prefix; verification routes by that prefix and
// falls back to RAW keys.
package signature

import (
	"errors"

	"github.com/pablobaxter/tink/tink"
	"github.com/pablobaxter/tink/tink/cryptofmt"
	"github.com/pablobaxter/tink/tink/primitiveset"
)

var (
	ErrNoPrimary          = errors.New("signature: set has no primary")
	ErrVerificationFailed = errors.New("signature: verification failed")
)

// WrapSigner returns a Signer backed by set. The set must have a primary.
func WrapSigner(set *primitiveset.Set[tink.Signer]) (tink.Signer, error) {
	if set == nil {
		return nil, errors.New("signature: set must not be nil")
	}
	if set.Primary() == nil {
		return nil, ErrNoPrimary
	}
	return &wrappedSigner{set: set}, nil
}

// WrapVerifier returns a Verifier backed by set. Unlike a signer set, a
// verifier set needs no primary: verification only routes among candidates.
func WrapVerifier(set *primitiveset.Set[tink.Verifier]) (tink.Verifier, error) {
	if set == nil {
		return nil, errors.New("signature: set must not be nil")
	}
	return &wrappedVerifier{set: set}, nil
}

type wrappedSigner struct {
	set *primitiveset.Set[tink.Signer]
}

func legacyData(data []byte) []byte {
	out := make([]byte, len(data)+1)
	copy(out, data)
	out[len(data)] = cryptofmt.LegacyStartByte
	return out
}

// Sign signs data with the primary key and prepends the primary's
// identifying prefix. A LEGACY primary signs data with a trailing zero byte.
func (w *wrappedSigner) Sign(data []byte) ([]byte, error) {
	primary := w.set.Primary()
	if primary == nil {
		return nil, ErrNoPrimary
	}
	if primary.OutputPrefixKind() == tink.PrefixLegacy {
		data = legacyData(data)
	}
	sig, err := primary.Primitive().Sign(data)
	if err != nil {
		return nil, err
	}
	return append([]byte(primary.Identifier()), sig...), nil
}

type wrappedVerifier struct {
	set *primitiveset.Set[tink.Verifier]
}

// Verify routes signature to candidate keys by its leading prefix bytes and
// tries each in registration order; if none succeeds, every RAW key is
// tried with the full signature.
func (w *wrappedVerifier) Verify(signature, data []byte) error {
	if len(signature) > cryptofmt.NonRawPrefixSize {
		prefix := string(signature[:cryptofmt.NonRawPrefixSize])
		if entries, err := w.set.EntriesForPrefix(prefix); err == nil {
			sig := signature[cryptofmt.NonRawPrefixSize:]
			for _, entry := range entries {
				candidate := data
				if entry.OutputPrefixKind() == tink.PrefixLegacy {
					candidate = legacyData(data)
				}
				if err := entry.Primitive().Verify(sig, candidate); err == nil {
					return nil
				}
			}
		}
	}

	if entries, err := w.set.RawEntries(); err == nil {
		for _, entry := range entries {
			if err := entry.Primitive().Verify(signature, data); err == nil {
				return nil
			}
		}
	}
	return ErrVerificationFailed
}
