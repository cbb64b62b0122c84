// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers: 128-bit values pairing a 48-bit millisecond timestamp
// with 80 bits of random entropy.
//
// # Format
//
// A ULID is 16 bytes: [6 bytes big-endian ms timestamp][10 bytes random].
// Byte-wise comparison therefore orders identifiers chronologically
// first and by entropy within the same millisecond. The canonical text
// form is 26 characters of base32 over the alphabet
// 0123456789ABCDEFGHJKMNPQRSTVWXYZ (I, L, O, U excluded); because the
// alphabet is ascending and both blocks are fixed width, plain string
// comparison of the text form yields the same order as byte comparison
// of the binary form.
//
// # Interop
//
// The binary layout is byte-for-byte compatible with a UUID/GUID; see
// FromUUID and ULID.UUID. The type also implements the encoding, json
// and database/sql marshalling interfaces, always using the canonical
// forms.
//
// Usage
//
//	u := ulid.Make()
//	s := u.String()          // e.g. 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	v, err := ulid.Parse(s)  // v == u
//	b := u.Bytes()           // 16-byte representation
//
// ULID is a comparable value type: == observes the same equivalence as
// Compare returning 0, and equal identifiers are interchangeable as map
// keys.
package ulid
