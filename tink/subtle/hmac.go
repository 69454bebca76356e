package subtle

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

const (
	// MinHMACKeySize is the smallest accepted HMAC key.
	MinHMACKeySize = 16
	// MinTagSize is the smallest accepted authentication tag.
	MinTagSize = 10
)

var (
	ErrHMACKeyTooShort = errors.New("subtle: hmac key too short")
	ErrInvalidTagSize  = errors.New("subtle: invalid tag size")
	ErrInvalidMAC      = errors.New("subtle: invalid mac")
)

// HMAC computes and verifies HMAC-SHA256 tags truncated to tagSize bytes.
type HMAC struct {
	key     []byte
	tagSize int
}

// NewHMAC creates an HMAC-SHA256 with the given key and tag size.
func NewHMAC(key []byte, tagSize int) (*HMAC, error) {
	if len(key) < MinHMACKeySize {
		return nil, ErrHMACKeyTooShort
	}
	if tagSize < MinTagSize || tagSize > sha256.Size {
		return nil, ErrInvalidTagSize
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &HMAC{key: k, tagSize: tagSize}, nil
}

// ComputeMAC computes an authentication tag for data.
func (h *HMAC) ComputeMAC(data []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, h.key)
	mac.Write(data)
	return mac.Sum(nil)[:h.tagSize], nil
}

// VerifyMAC verifies that mac is a valid tag for data in constant time.
func (h *HMAC) VerifyMAC(mac, data []byte) error {
	expected, err := h.ComputeMAC(data)
	if err != nil {
		return err
	}
	if !hmac.Equal(mac, expected) {
		return ErrInvalidMAC
	}
	return nil
}
