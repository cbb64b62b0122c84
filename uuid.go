package ulid

import "github.com/google/uuid"

// ULIDs and UUIDs share the same 16-byte width. Conversion preserves
// byte order exactly, so an identifier stored through a UUID column or
// API round-trips bit-for-bit and keeps its sort position.

// FromUUID reinterprets u's 16 bytes as a ULID.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

// UUID reinterprets the identifier's 16 bytes as a UUID.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromGUIDBytes wraps a GUID-compatible 16-byte value. No byte
// reordering is applied.
func FromGUIDBytes(b []byte) (ULID, error) {
	return FromBytes(b)
}

// GUIDBytes returns the GUID-compatible 16-byte form, identical to
// Bytes.
func (id ULID) GUIDBytes() []byte {
	return id.Bytes()
}
