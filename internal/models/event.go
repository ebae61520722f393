package models

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	DefaultImageURL  = "https://picsum.photos/800/400"
	DefaultCreatedBy = "Admin"
	EventsCollection = "events"
)

// RequiredEventFields is reported back to clients whenever a create request
// omits any of them.
var RequiredEventFields = []string{"title", "community", "description", "date", "createdBy"}

type Event struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Community   string    `json:"community"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"` // when the event takes place
	ImageURL    string    `json:"imageUrl"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput is the payload accepted by create and update. CreatedBy is
// ignored on update.
type EventInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Community   string `json:"community" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	Date        string `json:"date" validate:"required"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CreatedBy   string `json:"createdBy,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (in *EventInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Community = strings.TrimSpace(in.Community)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.CreatedBy = strings.TrimSpace(in.CreatedBy)
}

// MissingFields lists the required create fields that are empty.
func (in *EventInput) MissingFields() []string {
	values := map[string]string{
		"title":       in.Title,
		"community":   in.Community,
		"description": in.Description,
		"date":        in.Date,
		"createdBy":   in.CreatedBy,
	}
	var missing []string
	for _, field := range RequiredEventFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// EventUpdate carries the mutable fields of an event.
type EventUpdate struct {
	Title       string
	Community   string
	Description string
	Date        time.Time
	ImageURL    string
	UpdatedAt   time.Time
}

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByCreator(ctx context.Context, createdBy string) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, update *EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) (*Event, error)
}

var eventDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventDate accepts RFC 3339 timestamps as well as bare dates, which are
// read as UTC midnight.
func ParseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event date %q", value)
}

// applyEventDefaults fills the schema-level defaults right before a record
// is persisted.
func applyEventDefaults(event *Event) {
	if event.ImageURL == "" {
		event.ImageURL = DefaultImageURL
	}
	if event.CreatedBy == "" {
		event.CreatedBy = DefaultCreatedBy
	}
}

// sortEventsByDate orders ascending by date, keeping insertion order for ties.
func sortEventsByDate(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
