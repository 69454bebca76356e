// Package mac turns a primitive set of MACs into a single MAC that supports
// key rotation: tags are computed with the primary key and carry its
// identifying prefix, verification routes by the tag prefix and tries every
// candidate key, falling back to RAW keys.
package mac

import (
	"errors"

	"github.com/pablobaxter/tink/tink"
	"github.com/pablobaxter/tink/tink/cryptofmt"
	"github.com/pablobaxter/tink/tink/primitiveset"
)

var (
	ErrNoPrimary          = errors.New("mac: set has no primary")
	ErrVerificationFailed = errors.New("mac: verification failed")
)

// Wrap returns a MAC backed by set. The set must have a primary.
func Wrap(set *primitiveset.Set[tink.MAC]) (tink.MAC, error) {
	if set == nil {
		return nil, errors.New("mac: set must not be nil")
	}
	if set.Primary() == nil {
		return nil, ErrNoPrimary
	}
	return &wrappedMAC{set: set}, nil
}

type wrappedMAC struct {
	set *primitiveset.Set[tink.MAC]
}

// legacyData returns the message a LEGACY key actually authenticates: the
// data with a trailing zero byte. The input slice is never modified.
func legacyData(data []byte) []byte {
	out := make([]byte, len(data)+1)
	copy(out, data)
	out[len(data)] = cryptofmt.LegacyStartByte
	return out
}

// ComputeMAC computes a tag for data with the primary key and prepends the
// primary's identifying prefix.
func (w *wrappedMAC) ComputeMAC(data []byte) ([]byte, error) {
	primary := w.set.Primary()
	if primary == nil {
		return nil, ErrNoPrimary
	}
	if primary.OutputPrefixKind() == tink.PrefixLegacy {
		data = legacyData(data)
	}
	tag, err := primary.Primitive().ComputeMAC(data)
	if err != nil {
		return nil, err
	}
	return append([]byte(primary.Identifier()), tag...), nil
}

// VerifyMAC routes mac to candidate keys by its leading prefix bytes and
// tries each in registration order; if none succeeds, every RAW key is
// tried with the full tag.
func (w *wrappedMAC) VerifyMAC(mac, data []byte) error {
	if len(mac) > cryptofmt.NonRawPrefixSize {
		prefix := string(mac[:cryptofmt.NonRawPrefixSize])
		if entries, err := w.set.EntriesForPrefix(prefix); err == nil {
			tag := mac[cryptofmt.NonRawPrefixSize:]
			for _, entry := range entries {
				candidate := data
				if entry.OutputPrefixKind() == tink.PrefixLegacy {
					candidate = legacyData(data)
				}
				if err := entry.Primitive().VerifyMAC(tag, candidate); err == nil {
					return nil
				}
			}
		}
	}

	// No prefixed key succeeded; try all RAW keys with the full tag.
	if entries, err := w.set.RawEntries(); err == nil {
		for _, entry := range entries {
			if err := entry.Primitive().VerifyMAC(mac, data); err == nil {
				return nil
			}
		}
	}
	return ErrVerificationFailed
}
