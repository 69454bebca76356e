// Package subtle provides concrete primitive implementations used to
// populate primitive sets:
//
//   - AEAD via ChaCha20-Poly1305 (RFC 8439)
//   - MAC via HMAC-SHA256 with a configurable tag size
//   - Digital signatures via Ed25519
//
// These implementations operate on raw key material and perform no key
// management of their own; the prefix handling that supports key rotation
// lives in the wrapper packages.
package subtle
