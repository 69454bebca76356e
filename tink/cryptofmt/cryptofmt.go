// Package cryptofmt derives the identifying prefix embedded in outputs
// produced under a key.
//
// The prefix is a pure function of the key's output-prefix kind and key id:
//
//	RAW            -> empty prefix
//	TINK           -> 0x01 || big-endian key id (5 bytes)
//	LEGACY/CRUNCHY -> 0x00 || big-endian key id (5 bytes)
//
// The same derivation is used when registering a primitive in a set and when
// routing an incoming ciphertext or tag to candidate primitives, so two keys
// with the same kind and id always share a routing bucket.
package cryptofmt

import (
	"encoding/binary"
	"fmt"

	"github.com/pablobaxter/tink/tink"
)

const (
	// NonRawPrefixSize is the prefix length of TINK, LEGACY and CRUNCHY
	// outputs.
	NonRawPrefixSize = 5
	// RawPrefixSize is the prefix length of RAW outputs.
	RawPrefixSize = 0

	// TinkStartByte is the first byte of a TINK prefix.
	TinkStartByte = byte(1)
	// LegacyStartByte is the first byte of a LEGACY or CRUNCHY prefix.
	LegacyStartByte = byte(0)

	// RawPrefix is the (empty) prefix of RAW outputs.
	RawPrefix = ""
)

// OutputPrefix returns the identifying prefix for outputs produced under a
// key with the given output-prefix kind and key id. The derivation is
// deterministic; it fails only for an unrecognized kind.
func OutputPrefix(kind tink.OutputPrefixKind, keyID uint32) (string, error) {
	switch kind {
	case tink.PrefixTink:
		return createOutputPrefix(TinkStartByte, keyID), nil
	case tink.PrefixLegacy, tink.PrefixCrunchy:
		return createOutputPrefix(LegacyStartByte, keyID), nil
	case tink.PrefixRaw:
		return RawPrefix, nil
	default:
		return "", fmt.Errorf("cryptofmt: unsupported output prefix kind %v", kind)
	}
}

// Prefix returns the identifying prefix for the key described by info.
func Prefix(info tink.KeyInfo) (string, error) {
	return OutputPrefix(info.PrefixKind, info.KeyID)
}

func createOutputPrefix(startByte byte, keyID uint32) string {
	prefix := make([]byte, NonRawPrefixSize)
	prefix[0] = startByte
	binary.BigEndian.PutUint32(prefix[1:], keyID)
	return string(prefix)
}
