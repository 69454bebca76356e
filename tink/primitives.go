package tink

// AEAD is the interface for authenticated encryption with associated data.
// Implementations must be safe for concurrent use.
type AEAD interface {
	// Encrypt encrypts plaintext with associatedData as associated
	// authenticated data. The associated data is authenticated but not
	// encrypted, and must be supplied again to Decrypt.
	Encrypt(plaintext, associatedData []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and verifies the integrity of both the
	// ciphertext and associatedData.
	Decrypt(ciphertext, associatedData []byte) ([]byte, error)
}

// MAC computes and verifies message authentication codes.
// Implementations must be safe for concurrent use.
type MAC interface {
	// ComputeMAC computes an authentication tag for data.
	ComputeMAC(data []byte) ([]byte, error)

	// VerifyMAC verifies that mac is a valid authentication tag for data.
	VerifyMAC(mac, data []byte) error
}

// Signer produces digital signatures.
type Signer interface {
	// Sign computes a signature for data.
	Sign(data []byte) ([]byte, error)
}

// Verifier verifies digital signatures produced by the corresponding Signer.
type Verifier interface {
	// Verify returns nil iff signature is a valid signature for data.
	Verify(signature, data []byte) error
}
