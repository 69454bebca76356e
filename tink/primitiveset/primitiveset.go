package primitiveset

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/pablobaxter/tink/tink"
	"github.com/pablobaxter/tink/tink/cryptofmt"
)

var (
	// ErrInvalidArgument indicates a caller-protocol violation: a nil or
	// already-registered primitive, a non-enabled key, or a bad primary
	// reference. The set remains usable after the failed call.
	ErrInvalidArgument = errors.New("primitiveset: invalid argument")

	// ErrNotFound indicates that no entry was ever registered under the
	// queried identifier.
	ErrNotFound = errors.New("primitiveset: not found")
)

// Entry pairs one primitive instance with its key metadata and derived
// identifier. Entries are constructed exclusively by Set.Add and never
// mutated afterwards; they are compared by reference identity.
type Entry[P any] struct {
	primitive  P
	keyID      uint32
	status     tink.KeyStatus
	prefixKind tink.OutputPrefixKind
	identifier string
	typeURL    string
	seq        uint64 // insertion sequence, internal bookkeeping only
}

// Primitive returns the primitive instance held by the entry.
func (e *Entry[P]) Primitive() P { return e.primitive }

// KeyID returns the id of the key the primitive was instantiated from.
func (e *Entry[P]) KeyID() uint32 { return e.keyID }

// Status returns the key's status. It is always tink.KeyStatusEnabled.
func (e *Entry[P]) Status() tink.KeyStatus { return e.status }

// OutputPrefixKind returns the key's output-prefix kind.
func (e *Entry[P]) OutputPrefixKind() tink.OutputPrefixKind { return e.prefixKind }

// Identifier returns the identifying prefix derived from the key's
// output-prefix kind and id. It is empty for RAW keys.
func (e *Entry[P]) Identifier() string { return e.identifier }

// TypeURL returns the key's type URL metadata.
func (e *Entry[P]) TypeURL() string { return e.typeURL }

// Set is a registry of primitives keyed by identifying prefix.
//
// All methods are safe for concurrent use. A single mutex guards the
// insertion-ordered sequence, the per-identifier buckets and the primary
// reference as one consistent unit; a lookup that begins after an Add has
// returned observes the added entry.
type Set[P any] struct {
	mu       sync.RWMutex
	entries  []*Entry[P]
	buckets  map[string][]*Entry[P]
	primary  *Entry[P]
	consumed map[any]struct{}
	nextSeq  uint64

	annotations map[string]string
}

// New returns an empty Set.
func New[P any]() *Set[P] {
	return &Set[P]{
		buckets:  make(map[string][]*Entry[P]),
		consumed: make(map[any]struct{}),
	}
}

// NewWithAnnotations returns an empty Set carrying the given monitoring
// annotations. The annotations are copied and immutable afterwards.
func NewWithAnnotations[P any](annotations map[string]string) *Set[P] {
	s := New[P]()
	if len(annotations) > 0 {
		s.annotations = make(map[string]string, len(annotations))
		for k, v := range annotations {
			s.annotations[k] = v
		}
	}
	return s
}

// Annotations returns a copy of the set's annotations.
func (s *Set[P]) Annotations() map[string]string {
	if len(s.annotations) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.annotations))
	for k, v := range s.annotations {
		out[k] = v
	}
	return out
}

// Add registers primitive under the key described by info and returns the
// new entry. The entry reference stays valid for the lifetime of the set.
//
// Add fails with ErrInvalidArgument when primitive is nil, when the same
// primitive value was already registered, when the key is not enabled, or
// when the output-prefix kind is unrecognized.
func (s *Set[P]) Add(primitive P, info tink.KeyInfo) (*Entry[P], error) {
	handle := any(primitive)
	if isNil(handle) {
		return nil, fmt.Errorf("%w: primitive must not be nil", ErrInvalidArgument)
	}
	if info.Status != tink.KeyStatusEnabled {
		return nil, fmt.Errorf("%w: %v, only enabled keys may be added", ErrInvalidArgument, info)
	}
	identifier, err := cryptofmt.Prefix(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Primitives are registered at most once. Dynamic types of practical
	// primitives (pointers, interfaces over pointers) are comparable;
	// anything else cannot be tracked by value and is rejected.
	if !reflect.TypeOf(handle).Comparable() {
		return nil, fmt.Errorf("%w: primitive type %T is not comparable", ErrInvalidArgument, primitive)
	}
	if _, dup := s.consumed[handle]; dup {
		return nil, fmt.Errorf("%w: primitive already registered in this set", ErrInvalidArgument)
	}
	s.consumed[handle] = struct{}{}

	entry := &Entry[P]{
		primitive:  primitive,
		keyID:      info.KeyID,
		status:     info.Status,
		prefixKind: info.PrefixKind,
		identifier: identifier,
		typeURL:    info.TypeURL,
		seq:        s.nextSeq,
	}
	s.nextSeq++
	s.entries = append(s.entries, entry)
	s.buckets[identifier] = append(s.buckets[identifier], entry)
	return entry, nil
}

// SetPrimary designates entry as the set's primary. The entry must have been
// returned by a prior Add on this same set; SetPrimary validates this and
// fails with ErrInvalidArgument otherwise, or when entry is nil.
//
// Replacement is atomic: a concurrent Primary call observes either the old
// or the new primary.
func (s *Set[P]) SetPrimary(entry *Entry[P]) error {
	if entry == nil {
		return fmt.Errorf("%w: primary entry must not be nil", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	held := false
	for _, e := range s.buckets[entry.identifier] {
		if e == entry {
			held = true
			break
		}
	}
	if !held {
		return fmt.Errorf("%w: primary must be an entry held by this set", ErrInvalidArgument)
	}
	s.primary = entry
	return nil
}

// Primary returns the current primary entry, or nil if none was designated.
func (s *Set[P]) Primary() *Entry[P] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

// EntriesForPrefix returns the entries registered under identifier, in
// insertion order. It fails with ErrNotFound when no entry was ever
// registered under identifier.
func (s *Set[P]) EntriesForPrefix(identifier string) ([]*Entry[P], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket, ok := s.buckets[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: no entries for identifier %q", ErrNotFound, identifier)
	}
	out := make([]*Entry[P], len(bucket))
	copy(out, bucket)
	return out, nil
}

// RawEntries returns the entries of RAW keys, whose outputs carry no
// identifying prefix. Equivalent to EntriesForPrefix(cryptofmt.RawPrefix).
func (s *Set[P]) RawEntries() ([]*Entry[P], error) {
	return s.EntriesForPrefix(cryptofmt.RawPrefix)
}

// All returns every entry of the set in insertion order. It returns an
// empty slice for an empty set.
func (s *Set[P]) All() []*Entry[P] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Entry[P], len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the set.
func (s *Set[P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// isNil reports whether v holds no usable primitive: a nil interface or a
// typed nil pointer (or other nil-able kind) boxed into one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
