package subtle

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidPrivateKey = errors.New("subtle: invalid ed25519 private key")
	ErrInvalidPublicKey  = errors.New("subtle: invalid ed25519 public key")
	ErrInvalidSignature  = errors.New("subtle: invalid signature")
)

// ED25519Signer signs data with an Ed25519 private key.
type ED25519Signer struct {
	priv ed25519.PrivateKey
}

func NewED25519Signer(priv ed25519.PrivateKey) (*ED25519Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, ErrInvalidPrivateKey
	}
	return &ED25519Signer{priv: priv}, nil
}

func (s *ED25519Signer) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, data), nil
}

// ED25519Verifier verifies Ed25519 signatures.
type ED25519Verifier struct {
	pub ed25519.PublicKey
}

func NewED25519Verifier(pub ed25519.PublicKey) (*ED25519Verifier, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKey
	}
	return &ED25519Verifier{pub: pub}, nil
}

func (v *ED25519Verifier) Verify(signature, data []byte) error {
	if !ed25519.Verify(v.pub, data, signature) {
		return ErrInvalidSignature
	}
	return nil
}
