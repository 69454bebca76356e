// Package primitiveset provides a thread-safe container binding the
// primitives of a keyset to their key metadata, organized by the identifying
// prefix their outputs carry on the wire.
//
// A Set holds one Entry per enabled key. One entry may be designated the
// primary; new encrypt/sign operations use it, while decrypt/verify
// operations route by prefix and try every entry in the matching bucket.
// Distinct keys may legitimately share a prefix (key-id collisions during
// rotation); the bucket then holds all of them in insertion order.
//
// A Set is created empty, populated by Add calls at keyset-load time
// (possibly from several goroutines), optionally given a primary, and used
// read-mostly afterwards. Entries are never removed, and entry references
// returned by Add or a lookup stay valid for the lifetime of the Set.
package primitiveset
