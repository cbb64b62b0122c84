package ulid

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"
)

const (
	// Size is the binary length of a ULID in bytes.
	Size = 16

	timeSize = 6
	randSize = 10

	// maxTimestamp is the largest millisecond offset the 6-byte time
	// part can hold, roughly the year 10889.
	maxTimestamp = 1<<48 - 1
)

// ULID is an immutable 128-bit identifier: a 6-byte big-endian
// millisecond timestamp followed by 10 random bytes. The zero value is
// Empty.
type ULID [Size]byte

var (
	// Empty is the zero identifier: epoch time part, all-zero random
	// part. It encodes as 26 '0' characters.
	Empty ULID

	// MaxValue is the largest identifier: maximum time part and all-0xFF
	// random part. It compares >= every identifier built from a valid
	// timestamp.
	MaxValue = ULID{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
)

var (
	// ErrInvalidInput is returned by Parse for empty input.
	ErrInvalidInput = errors.New("empty input")

	// ErrInvalidLength is returned when a byte or character sequence is
	// not the exact size an operation requires.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter is returned when decoding text containing a
	// character outside the base32 alphabet.
	ErrInvalidCharacter = errors.New("character outside base32 alphabet")

	// ErrInvalidTimestamp is returned when a timestamp precedes the
	// Unix epoch.
	ErrInvalidTimestamp = errors.New("timestamp precedes unix epoch")

	// ErrInvalidRandomLength is returned when a caller-supplied random
	// part is not exactly 10 bytes.
	ErrInvalidRandomLength = errors.New("random part must be 10 bytes")

	// ErrOverflow is returned when decoding text whose time block
	// exceeds the 48-bit range, i.e. sorts above "7ZZZZZZZZZ...".
	ErrOverflow = errors.New("text exceeds maximum identifier value")
)

var epoch = time.UnixMilli(0)

// DefaultEntropy returns the process-wide default entropy source used
// by Make: crypto/rand's reader, safe for concurrent use.
func DefaultEntropy() io.Reader {
	return rand.Reader
}

// New returns a ULID combining t with exactly 10 bytes read from
// entropy. t must not precede the Unix epoch; millisecond counts beyond
// the 48-bit range are truncated to their low 48 bits. Failures from
// the entropy source are propagated unmodified.
func New(t time.Time, entropy io.Reader) (ULID, error) {
	var id ULID
	if err := id.setTime(t); err != nil {
		return Empty, err
	}
	if _, err := io.ReadFull(entropy, id[timeSize:]); err != nil {
		return Empty, err
	}
	return id, nil
}

// Make returns a ULID for the current time using DefaultEntropy. It
// panics only if the entropy source fails, which crypto/rand does not.
func Make() ULID {
	id, err := New(time.Now(), DefaultEntropy())
	if err != nil {
		panic(fmt.Errorf("make ulid: %w", err))
	}
	return id
}

// FromParts builds a ULID from t and a caller-supplied 10-byte random
// part. The buffer is copied, never retained.
func FromParts(t time.Time, random []byte) (ULID, error) {
	if len(random) != randSize {
		return Empty, ErrInvalidRandomLength
	}
	var id ULID
	if err := id.setTime(t); err != nil {
		return Empty, err
	}
	copy(id[timeSize:], random)
	return id, nil
}

// FromBytes copies a raw 16-byte representation into a ULID.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != Size {
		return Empty, ErrInvalidLength
	}
	var id ULID
	copy(id[:], b)
	return id, nil
}

// Parse decodes the canonical 26-character text form: the first 10
// characters are the time block, the remaining 16 the random block.
// Lowercase input is accepted; characters outside the alphabet are not.
func Parse(s string) (ULID, error) {
	if s == "" {
		return Empty, ErrInvalidInput
	}
	if len(s) != EncodedSize {
		return Empty, ErrInvalidLength
	}
	var id ULID
	if err := decodeTime(id[:timeSize], s[:timeEncodedSize]); err != nil {
		return Empty, err
	}
	if err := decodeRandom(id[timeSize:], s[timeEncodedSize:]); err != nil {
		return Empty, err
	}
	return id, nil
}

// MustParse is Parse that panics on error, for fixtures and constants
// known to be valid.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Errorf("parse ulid %q: %w", s, err))
	}
	return id
}

// TryParse decodes s like Parse but never returns an error: on any
// failure it reports Empty and false.
func TryParse(s string) (ULID, bool) {
	id, err := Parse(s)
	if err != nil {
		return Empty, false
	}
	return id, true
}

// setTime writes the 6-byte big-endian millisecond encoding of t. Only
// the low 48 bits of the millisecond count are kept.
func (id *ULID) setTime(t time.Time) error {
	if t.Before(epoch) {
		return ErrInvalidTimestamp
	}
	ms := uint64(t.UnixMilli()) & maxTimestamp
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	return nil
}

// Timestamp returns the identifier's millisecond offset from the Unix
// epoch, zero-extended to 64 bits.
func (id ULID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Time returns the identifier's timestamp with millisecond resolution
// in UTC.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Bytes returns a fresh copy of the 16-byte representation. The
// identifier's own storage is never aliased by a return value.
func (id ULID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// Random returns a fresh copy of the 10-byte random part.
func (id ULID) Random() []byte {
	b := make([]byte, randSize)
	copy(b, id[timeSize:])
	return b
}

// IsEmpty reports whether id is the Empty identifier.
func (id ULID) IsEmpty() bool {
	return id == Empty
}

// String returns the canonical 26-character uppercase text form.
func (id ULID) String() string {
	text := make([]byte, EncodedSize)
	encodeTime(text[:timeEncodedSize], id[:timeSize])
	encodeRandom(text[timeEncodedSize:], id[timeSize:])
	return string(text)
}

// Compare returns -1, 0 or 1 ordering by time part first and random
// part second, which for this layout is plain byte-wise comparison.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// Sort orders ids ascending in place.
func Sort(ids []ULID) {
	slices.SortFunc(ids, ULID.Compare)
}
