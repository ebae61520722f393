package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventRows(t *testing.T) {
	raw := []byte(`[
		{"id":"7f1c2a52-3d7e-4a57-9a1e-6b8c2a0e9f10","title":"Fair","community":"CS Club",
		 "description":"desc","date":"2025-05-01T18:00:00+03:00","image_url":"https://img.test/a.png",
		 "created_by":"u1","created_at":"2025-04-01T10:00:00Z","updated_at":"2025-04-01T10:00:00Z"}
	]`)

	events, err := decodeEventRows(raw)
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "7f1c2a52-3d7e-4a57-9a1e-6b8c2a0e9f10", e.ID)
	assert.Equal(t, "https://img.test/a.png", e.ImageURL)
	assert.Equal(t, "u1", e.CreatedBy)
	assert.Equal(t, 15, e.Date.Hour())
}

func TestDecodeEventRows_Empty(t *testing.T) {
	events, err := decodeEventRows([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	_, err = decodeEventRows([]byte(`{"message":"oops"}`))
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New(`(23505) duplicate key value violates unique constraint "users_email_key"`)))
	assert.False(t, isUniqueViolation(errors.New("(42P01) relation does not exist")))
	assert.False(t, isUniqueViolation(errors.New("error parsing error response: 23505")))
	assert.False(t, isUniqueViolation(errors.New("duplicate key")))
}

func TestSupabaseRepo_InvalidIDIsNotFound(t *testing.T) {
	repo := SupabaseNewRepo(nil)
	ctx := context.Background()

	_, err := repo.GetEventByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.UpdateEvent(ctx, "not-a-uuid", &EventUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.DeleteEvent(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}
