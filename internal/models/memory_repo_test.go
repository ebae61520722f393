package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryRepo_EventLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	late, err := repo.CreateEvent(ctx, &Event{Title: "Late", Date: day(20), CreatedBy: "u1"})
	require.NoError(t, err)
	early, err := repo.CreateEvent(ctx, &Event{Title: "Early", Date: day(2), CreatedBy: "u2"})
	require.NoError(t, err)

	assert.NotEmpty(t, late.ID)
	assert.NotEqual(t, late.ID, early.ID)
	assert.Equal(t, DefaultImageURL, late.ImageURL)

	all, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Early", all[0].Title)
	assert.Equal(t, "Late", all[1].Title)

	mine, err := repo.ListEventsByCreator(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, late.ID, mine[0].ID)

	updated, err := repo.UpdateEvent(ctx, late.ID, &EventUpdate{Title: "Later", Community: "c", Description: "d", Date: day(21)})
	require.NoError(t, err)
	assert.Equal(t, "Later", updated.Title)
	assert.Equal(t, "u1", updated.CreatedBy)
	assert.Equal(t, DefaultImageURL, updated.ImageURL)

	deleted, err := repo.DeleteEvent(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "Early", deleted.Title)

	_, err = repo.GetEventByID(ctx, early.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.DeleteEvent(ctx, early.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.UpdateEvent(ctx, "missing", &EventUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	created, err := repo.CreateEvent(ctx, &Event{Title: "Fair", Date: day(1), CreatedBy: "u1"})
	require.NoError(t, err)
	created.Title = "mutated"

	got, err := repo.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fair", got.Title)
}

func TestMemoryRepo_EmptyListIsNotNil(t *testing.T) {
	events, err := NewMemoryRepo().ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestMemoryRepo_Users(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	u, err := repo.CreateUser(ctx, &User{Email: "a@b.edu", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.IsAdmin)

	_, err = repo.CreateUser(ctx, &User{Email: "a@b.edu", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	got, err := repo.GetUserByEmail(ctx, "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@b.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}
