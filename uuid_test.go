package ulid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDPassthrough(t *testing.T) {
	id := MustParse(refText)

	u := id.UUID()
	assert.Equal(t, id.Bytes(), u[:], "conversion must not reorder bytes")
	assert.Equal(t, id, FromUUID(u))
}

func TestFromUUIDKeepsOrdering(t *testing.T) {
	a := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	b := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAW")

	ua, ub := a.UUID(), b.UUID()
	require.Equal(t, -1, a.Compare(b))
	// uuid.UUID strings are hex of the same bytes, so order carries over.
	assert.Less(t, ua.String(), ub.String())
}

func TestGUIDBytesPassthrough(t *testing.T) {
	id := MustParse(refText)

	got, err := FromGUIDBytes(id.GUIDBytes())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = FromGUIDBytes(make([]byte, 15))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestFromUUIDRandomValues(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := uuid.New()
		id := FromUUID(u)
		assert.Equal(t, u[:], id.Bytes())
		assert.Equal(t, u, id.UUID())
	}
}
