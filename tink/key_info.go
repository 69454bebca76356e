package tink

import "fmt"

// KeyStatus is the lifecycle status of a key within a keyset.
type KeyStatus int

const (
	KeyStatusUnknown KeyStatus = iota
	// KeyStatusEnabled keys may be used for all operations. Only enabled
	// keys may be registered in a primitive set.
	KeyStatusEnabled
	// KeyStatusDisabled keys are retained in the keyset but may not be used.
	KeyStatusDisabled
	// KeyStatusDestroyed keys have had their material deleted.
	KeyStatusDestroyed
)

func (s KeyStatus) String() string {
	switch s {
	case KeyStatusEnabled:
		return "ENABLED"
	case KeyStatusDisabled:
		return "DISABLED"
	case KeyStatusDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// OutputPrefixKind determines whether and how an identifying prefix is
// embedded in the output produced under a key.
type OutputPrefixKind int

const (
	PrefixUnknown OutputPrefixKind = iota
	// PrefixTink outputs carry a 5-byte prefix: 0x01 then the big-endian
	// key id.
	PrefixTink
	// PrefixLegacy outputs carry a 5-byte prefix: 0x00 then the big-endian
	// key id. Legacy keys additionally mix a trailing zero byte into the
	// signed or authenticated message.
	PrefixLegacy
	// PrefixCrunchy outputs carry the same 5-byte prefix as PrefixLegacy
	// but without the legacy message suffix.
	PrefixCrunchy
	// PrefixRaw outputs carry no prefix at all.
	PrefixRaw
)

func (k OutputPrefixKind) String() string {
	switch k {
	case PrefixTink:
		return "TINK"
	case PrefixLegacy:
		return "LEGACY"
	case PrefixCrunchy:
		return "CRUNCHY"
	case PrefixRaw:
		return "RAW"
	default:
		return "UNKNOWN_PREFIX"
	}
}

// KeyInfo is the metadata of a single key in a keyset, as supplied by the
// keyset-loading layer alongside the primitive instantiated from the key.
type KeyInfo struct {
	// KeyID identifies the key within its keyset.
	KeyID uint32
	// Status is the key's lifecycle status.
	Status KeyStatus
	// PrefixKind is the output-prefix policy of the key.
	PrefixKind OutputPrefixKind
	// TypeURL names the key's type. It is carried as opaque metadata.
	TypeURL string
}

func (i KeyInfo) String() string {
	return fmt.Sprintf("key %d (%v, %v)", i.KeyID, i.Status, i.PrefixKind)
}
