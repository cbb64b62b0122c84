package ulid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// 26-character form.
func (id ULID) MarshalText() ([]byte, error) {
	text := make([]byte, EncodedSize)
	encodeTime(text[:timeEncodedSize], id[:timeSize])
	encodeRandom(text[timeEncodedSize:], id[timeSize:])
	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the raw
// 16-byte form.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ULID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as its quoted text form.
func (id ULID) MarshalJSON() ([]byte, error) {
	text := make([]byte, EncodedSize+2)
	text[0], text[EncodedSize+1] = '"', '"'
	encodeTime(text[1:1+timeEncodedSize], id[:timeSize])
	encodeRandom(text[1+timeEncodedSize:1+EncodedSize], id[timeSize:])
	return text, nil
}

// UnmarshalJSON decodes a quoted text form.
func (id *ULID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the text form.
func (id ULID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the 26-character text form
// as string or []byte, the raw 16-byte form, and NULL (scanned as
// Empty).
func (id *ULID) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*id = Empty
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("scan ulid: unsupported type %T", value)
	}
}
