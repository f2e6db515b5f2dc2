package gooey

import "hash/fnv"

// idKind discriminates the variants of ElementId.
type idKind uint8

const (
	idKindName idKind = iota
	idKindInteger
	idKindFocusHandle
)

// ElementId is a stable identity for an element, used as a cache key
// and as a map key anywhere the pipeline needs one. It is a tagged
// union over three variants: a hashed name, a plain integer, and a
// focus-handle integer. Two IDs are equal only when both their kind and
// payload match — a name whose hash happens to equal an integer ID's
// payload is not equal to it.
//
// Name hashing uses FNV-1a seeded at its standard offset basis, standing in for the
// spec's Wyhash: both are non-cryptographic 64-bit hashes seeded at a
// fixed value, and FNV-1a is available from the standard library
// (hash/fnv) rather than requiring a vendored Wyhash implementation.
type ElementId struct {
	kind    idKind
	payload uint64
}

// NamedID returns the ElementId for the given name. Equal names always
// hash to the same ElementId.
func NamedID(name string) ElementId {
	return ElementId{kind: idKindName, payload: hashName(name)}
}

// IntegerID returns the ElementId wrapping a plain integer identity.
func IntegerID(n uint64) ElementId {
	return ElementId{kind: idKindInteger, payload: n}
}

// FocusHandleID returns the ElementId wrapping a focus-handle integer.
func FocusHandleID(n uint64) ElementId {
	return ElementId{kind: idKindFocusHandle, payload: n}
}

// Hash returns the ID's payload, usable directly as a map/hash key
// alongside its kind for disambiguation.
func (id ElementId) Hash() uint64 { return id.payload }

// hashName computes the 64-bit FNV-1a hash of s, seeded at the
// algorithm's standard offset basis (the "keyed on zero" requirement:
// a fixed, input-independent seed rather than a random per-process one).
func hashName(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
