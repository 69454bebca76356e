// Package aead turns a primitive set of AEADs into a single AEAD that
// supports key rotation: encryption uses the primary key and prepends its
// identifying prefix, decryption routes by the ciphertext prefix and tries
// every candidate key, falling back to RAW keys.
package aead

import (
	"errors"

	"github.com/pablobaxter/tink/tink"
	"github.com/pablobaxter/tink/tink/cryptofmt"
	"github.com/pablobaxter/tink/tink/primitiveset"
)

var (
	ErrNoPrimary        = errors.New("aead: set has no primary")
	ErrDecryptionFailed = errors.New("aead: decryption failed")
)

// Wrap returns an AEAD backed by set. The set must have a primary.
func Wrap(set *primitiveset.Set[tink.AEAD]) (tink.AEAD, error) {
	if set == nil {
		return nil, errors.New("aead: set must not be nil")
	}
	if set.Primary() == nil {
		return nil, ErrNoPrimary
	}
	return &wrappedAEAD{set: set}, nil
}

type wrappedAEAD struct {
	set *primitiveset.Set[tink.AEAD]
}

// Encrypt encrypts plaintext with the primary key and prepends the
// primary's identifying prefix to the ciphertext.
func (w *wrappedAEAD) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	primary := w.set.Primary()
	if primary == nil {
		return nil, ErrNoPrimary
	}
	ciphertext, err := primary.Primitive().Encrypt(plaintext, associatedData)
	if err != nil {
		return nil, err
	}
	return append([]byte(primary.Identifier()), ciphertext...), nil
}

// Decrypt routes ciphertext to candidate keys by its leading prefix bytes
// and tries each in registration order; if none succeeds, every RAW key is
// tried on the whole ciphertext.
func (w *wrappedAEAD) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) > cryptofmt.NonRawPrefixSize {
		prefix := string(ciphertext[:cryptofmt.NonRawPrefixSize])
		if entries, err := w.set.EntriesForPrefix(prefix); err == nil {
			payload := ciphertext[cryptofmt.NonRawPrefixSize:]
			for _, entry := range entries {
				if plaintext, err := entry.Primitive().Decrypt(payload, associatedData); err == nil {
					return plaintext, nil
				}
			}
		}
	}

	// No prefixed key succeeded; try all RAW keys on the full ciphertext.
	if entries, err := w.set.RawEntries(); err == nil {
		for _, entry := range entries {
			if plaintext, err := entry.Primitive().Decrypt(ciphertext, associatedData); err == nil {
				return plaintext, nil
			}
		}
	}
	return nil, ErrDecryptionFailed
}
