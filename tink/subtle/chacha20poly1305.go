package subtle

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrInvalidKeySize     = errors.New("subtle: invalid key size")
	ErrCiphertextTooShort = errors.New("subtle: ciphertext too short")
	ErrDecryptionFailed   = errors.New("subtle: decryption failed")
)

// ChaCha20Poly1305 is an AEAD over ChaCha20-Poly1305 with a random
// per-message nonce prepended to the ciphertext.
type ChaCha20Poly1305 struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates an AEAD from a 32-byte key.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeySize
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return &ChaCha20Poly1305{aead: aead}, nil
}

// Encrypt encrypts plaintext with associatedData.
// Output format: nonce (12 bytes) || ciphertext || tag (16 bytes).
func (c *ChaCha20Poly1305) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	out := make([]byte, chacha20poly1305.NonceSize, chacha20poly1305.NonceSize+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, out[:chacha20poly1305.NonceSize]); err != nil {
		return nil, err
	}
	return c.aead.Seal(out, out[:chacha20poly1305.NonceSize], plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext produced by Encrypt and verifies the
// integrity of both the ciphertext and associatedData.
func (c *ChaCha20Poly1305) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < chacha20poly1305.NonceSize+c.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	nonce := ciphertext[:chacha20poly1305.NonceSize]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSize:], associatedData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
