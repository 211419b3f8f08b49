package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginationOffset(t *testing.T) {
	p := &PaginationParams{Page: 4, PerPage: 15}
	assert.Equal(t, 45, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = NewPagination(1, 15, 10)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, createdAt.Equal(cursor.CreatedAt))
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

type testItem struct {
	ID        string
	CreatedAt time.Time
}

func TestNewCursorPaginationTrimsExtraItem(t *testing.T) {
	now := time.Now()
	items := []testItem{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now},
	}

	// Fetched limit+1 to detect a next page
	pg, trimmed := NewCursorPagination(items, 2,
		func(i testItem) string { return i.ID },
		func(i testItem) time.Time { return i.CreatedAt },
	)

	assert.Len(t, trimmed, 2)
	assert.True(t, pg.HasNext)
	require.NotNil(t, pg.NextCursor)

	params := &CursorParams{Cursor: *pg.NextCursor}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", cursor.ID)
}
