// Package tink provides the building blocks of a multi-algorithm
// key-management library: opaque primitive interfaces (AEAD, MAC, digital
// signatures), the key metadata that binds primitives to keys in a keyset,
// and, in its subpackages, the prefix-routed primitive registry used to
// support key rotation.
//
// Primitives in a set correspond to keys in a keyset. New data is produced
// with the set's primary primitive; data produced under previously-valid
// keys remains readable because every enabled key stays registered and is
// routed to by the identifying prefix embedded in the output.
package tink
