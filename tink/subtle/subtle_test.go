package subtle

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
)

func TestChaCha20Poly1305RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	aead, err := NewChaCha20Poly1305(key)
	if err != nil {
		t.Fatalf("NewChaCha20Poly1305: %v", err)
	}

	plaintext := []byte("keyset material stays readable across rotation")
	ad := []byte("associated data")

	ciphertext, err := aead.Encrypt(plaintext, ad)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	decrypted, err := aead.Decrypt(ciphertext, ad)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatal("decrypted != plaintext")
	}

	// Wrong associated data must fail authentication.
	if _, err := aead.Decrypt(ciphertext, []byte("other")); err != ErrDecryptionFailed {
		t.Fatalf("Decrypt with wrong AD: err = %v, want ErrDecryptionFailed", err)
	}

	// Tampered ciphertext must fail.
	ciphertext[len(ciphertext)-1] ^= 0xff
	if _, err := aead.Decrypt(ciphertext, ad); err != ErrDecryptionFailed {
		t.Fatalf("Decrypt of tampered ciphertext: err = %v, want ErrDecryptionFailed", err)
	}
}

func TestChaCha20Poly1305RejectsBadInput(t *testing.T) {
	if _, err := NewChaCha20Poly1305(make([]byte, 16)); err != ErrInvalidKeySize {
		t.Fatalf("short key: err = %v, want ErrInvalidKeySize", err)
	}
	aead, err := NewChaCha20Poly1305(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewChaCha20Poly1305: %v", err)
	}
	if _, err := aead.Decrypt([]byte("short"), nil); err != ErrCiphertextTooShort {
		t.Fatalf("short ciphertext: err = %v, want ErrCiphertextTooShort", err)
	}
}

func TestHMACComputeAndVerify(t *testing.T) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand: %v", err)
	}
	mac, err := NewHMAC(key, 16)
	if err != nil {
		t.Fatalf("NewHMAC: %v", err)
	}

	data := []byte("some data")
	tag, err := mac.ComputeMAC(data)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	if len(tag) != 16 {
		t.Fatalf("tag length = %d, want 16", len(tag))
	}
	if err := mac.VerifyMAC(tag, data); err != nil {
		t.Fatalf("VerifyMAC: %v", err)
	}
	if err := mac.VerifyMAC(tag, []byte("other data")); err != ErrInvalidMAC {
		t.Fatalf("VerifyMAC with wrong data: err = %v, want ErrInvalidMAC", err)
	}
	tag[0] ^= 1
	if err := mac.VerifyMAC(tag, data); err != ErrInvalidMAC {
		t.Fatalf("VerifyMAC with tampered tag: err = %v, want ErrInvalidMAC", err)
	}
}

func TestHMACParameterValidation(t *testing.T) {
	if _, err := NewHMAC(make([]byte, 8), 16); err != ErrHMACKeyTooShort {
		t.Fatalf("short key: err = %v, want ErrHMACKeyTooShort", err)
	}
	if _, err := NewHMAC(make([]byte, 32), 4); err != ErrInvalidTagSize {
		t.Fatalf("tiny tag: err = %v, want ErrInvalidTagSize", err)
	}
	if _, err := NewHMAC(make([]byte, 32), 64); err != ErrInvalidTagSize {
		t.Fatalf("oversized tag: err = %v, want ErrInvalidTagSize", err)
	}
}

func TestED25519SignAndVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	signer, err := NewED25519Signer(priv)
	if err != nil {
		t.Fatalf("NewED25519Signer: %v", err)
	}
	verifier, err := NewED25519Verifier(pub)
	if err != nil {
		t.Fatalf("NewED25519Verifier: %v", err)
	}

	data := []byte("message")
	sig, err := signer.Sign(data)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := verifier.Verify(sig, data); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if err := verifier.Verify(sig, []byte("forged")); err != ErrInvalidSignature {
		t.Fatalf("Verify of forged message: err = %v, want ErrInvalidSignature", err)
	}

	if _, err := NewED25519Signer(priv[:10]); err != ErrInvalidPrivateKey {
		t.Fatalf("short private key: err = %v, want ErrInvalidPrivateKey", err)
	}
	if _, err := NewED25519Verifier(pub[:10]); err != ErrInvalidPublicKey {
		t.Fatalf("short public key: err = %v, want ErrInvalidPublicKey", err)
	}
}

func BenchmarkChaCha20Poly1305Encrypt(b *testing.B) {
	aead, _ := NewChaCha20Poly1305(make([]byte, 32))
	plaintext := make([]byte, 16*1024)
	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aead.Encrypt(plaintext, nil); err != nil {
			b.Fatal(err)
		}
	}
}
