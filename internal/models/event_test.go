package models

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-05-01", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-05-01T18:30", time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC)},
		{"2025-05-01T18:30:15", time.Date(2025, 5, 1, 18, 30, 15, 0, time.UTC)},
		{"2025-05-01T18:30:00Z", time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC)},
		{"2025-05-01T18:30:00+03:00", time.Date(2025, 5, 1, 15, 30, 0, 0, time.UTC)},
		{"2025-05-01T18:30:00.250Z", time.Date(2025, 5, 1, 18, 30, 0, 250000000, time.UTC)},
		{"  2025-05-01  ", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseEventDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: want %s got %s", tt.in, tt.want, got)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestParseEventDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2025-13-01", "01/05/2025"} {
		_, err := ParseEventDate(in)
		assert.Error(t, err, in)
	}
}

func TestEventInput_MissingFields(t *testing.T) {
	in := &EventInput{
		Title:       "Fair",
		Community:   "",
		Description: "http://x.test",
		Date:        "2025-05-01",
	}
	assert.Equal(t, []string{"community", "createdBy"}, in.MissingFields())

	full := &EventInput{Title: "a", Community: "b", Description: "c", Date: "2025-05-01", CreatedBy: "u1"}
	assert.Empty(t, full.MissingFields())
}

func TestEventInput_Normalize(t *testing.T) {
	in := &EventInput{Title: "  Fair ", Community: "\tCS Club\n", Date: " 2025-05-01", CreatedBy: " u1 ", ImageURL: "   "}
	in.Normalize()

	assert.Equal(t, "Fair", in.Title)
	assert.Equal(t, "CS Club", in.Community)
	assert.Equal(t, "2025-05-01", in.Date)
	assert.Equal(t, "u1", in.CreatedBy)
	assert.Empty(t, in.ImageURL)
	assert.Equal(t, []string{"description"}, in.MissingFields())
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	in := &EventInput{
		Title:       "Fair",
		Community:   "CS Club",
		Description: "desc",
		Date:        "2025-05-01",
		ImageURL:    "not a url",
	}

	err := Validate.Struct(in)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "imageUrl", verrs[0].Field())
	assert.Equal(t, "url", verrs[0].Tag())
}

func TestValidate_Credentials(t *testing.T) {
	assert.NoError(t, Validate.Struct(&Credentials{Email: "a@b.edu", Password: "secret1"}))
	assert.Error(t, Validate.Struct(&Credentials{Email: "not-an-email", Password: "secret1"}))
	assert.Error(t, Validate.Struct(&Credentials{Email: "a@b.edu", Password: "123"}))
}

func TestApplyEventDefaults(t *testing.T) {
	e := &Event{Title: "Fair"}
	applyEventDefaults(e)
	assert.Equal(t, DefaultImageURL, e.ImageURL)
	assert.Equal(t, DefaultCreatedBy, e.CreatedBy)

	e = &Event{ImageURL: "https://img.test/a.png", CreatedBy: "u1"}
	applyEventDefaults(e)
	assert.Equal(t, "https://img.test/a.png", e.ImageURL)
	assert.Equal(t, "u1", e.CreatedBy)
}

func TestUserProfile_HidesPassword(t *testing.T) {
	u := &User{ID: "abc", Email: "a@b.edu", PasswordHash: "$2a$10$hash", IsAdmin: true}
	p := u.Profile()
	assert.Equal(t, &UserProfile{ID: "abc", Email: "a@b.edu", IsAdmin: true}, p)
}

func TestSortEventsByDate_StableForTies(t *testing.T) {
	events := []*Event{
		{Title: "b", Date: day(5)},
		{Title: "a", Date: day(1)},
		{Title: "c", Date: day(5)},
	}
	sortEventsByDate(events)

	var titles []string
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles)
}
