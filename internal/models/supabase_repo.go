package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

const (
	EventsTable = "events"
	UsersTable  = "users"
)

// eventRow mirrors the columns of the events table.
type eventRow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Community   string    `json:"community"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"image_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *eventRow) toEvent() *Event {
	return &Event{
		ID:          r.ID.String(),
		Title:       r.Title,
		Community:   r.Community,
		Description: r.Description,
		Date:        r.Date.UTC(),
		ImageURL:    r.ImageURL,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

type userRow struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *userRow) toUser() *User {
	return &User{
		ID:           r.ID.String(),
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

func decodeEventRows(raw []byte) ([]*Event, error) {
	var rows []eventRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event rows: %w", err)
	}
	events := make([]*Event, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].toEvent())
	}
	return events, nil
}

// uniqueViolationCode is the postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reads the code out of a postgrest execute error. The
// client decodes the response body into postgrest.ExecuteError and then
// flattens it to "(<code>) <message>", so the code prefix is all that
// survives.
func isUniqueViolation(err error) bool {
	return strings.HasPrefix(err.Error(), "("+uniqueViolationCode+")")
}

// insertionOrder asks postgrest for rows oldest first so the stable date sort
// keeps insertion order for ties.
var insertionOrder = &postgrest.OrderOpts{Ascending: true}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	applyEventDefaults(event)
	row := eventRow{
		ID:          uuid.New(),
		Title:       event.Title,
		Community:   event.Community,
		Description: event.Description,
		Date:        event.Date,
		ImageURL:    event.ImageURL,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}

	raw, _, err := su.supabaseClient.From(EventsTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no event data returned after insert")
	}
	return events[0], nil
}

func (su *SupabaseRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	raw, _, err := su.supabaseClient.From(EventsTable).
		Select("*", "", false).
		Eq("id", eventID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events[0], nil
}

func (su *SupabaseRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	raw, _, err := su.supabaseClient.From(EventsTable).
		Select("*", "", false).
		Order("created_at", insertionOrder).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	sortEventsByDate(events)
	return events, nil
}

func (su *SupabaseRepo) ListEventsByCreator(ctx context.Context, createdBy string) ([]*Event, error) {
	raw, _, err := su.supabaseClient.From(EventsTable).
		Select("*", "", false).
		Eq("created_by", createdBy).
		Order("created_at", insertionOrder).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get events by creator: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	sortEventsByDate(events)
	return events, nil
}

func (su *SupabaseRepo) UpdateEvent(ctx context.Context, id string, update *EventUpdate) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	imageURL := update.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}
	fields := map[string]interface{}{
		"title":       update.Title,
		"community":   update.Community,
		"description": update.Description,
		"date":        update.Date,
		"image_url":   imageURL,
		"updated_at":  update.UpdatedAt,
	}

	raw, _, err := su.supabaseClient.From(EventsTable).
		Update(fields, "", "").
		Eq("id", eventID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events[0], nil
}

func (su *SupabaseRepo) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	raw, _, err := su.supabaseClient.From(EventsTable).
		Delete("", "").
		Eq("id", eventID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	events, err := decodeEventRows(raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events[0], nil
}

func (su *SupabaseRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	row := userRow{
		ID:           uuid.New(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	raw, _, err := su.supabaseClient.From(UsersTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	var rows []userRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no user data returned after insert")
	}
	return rows[0].toUser(), nil
}

func (su *SupabaseRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	raw, _, err := su.supabaseClient.From(UsersTable).
		Select("*", "", false).
		Eq("email", email).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	var rows []userRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	if len(rows) > 1 {
		return nil, fmt.Errorf("multiple users found for email %s", email)
	}
	return rows[0].toUser(), nil
}
