package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshua-takyi/campus/internal/metrics"
	"github.com/joshua-takyi/campus/internal/models"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context) (events []*models.Event, err error) {
	defer func() { metrics.TrackEventOperation("list", statusOf(err)) }()

	events, err = es.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (es *EventService) ListEventsByCreator(ctx context.Context, userID string) (events []*models.Event, err error) {
	defer func() { metrics.TrackEventOperation("list_by_creator", statusOf(err)) }()

	events, err = es.eventRepo.ListEventsByCreator(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", userID, err)
	}
	return events, nil
}

func (es *EventService) GetEvent(ctx context.Context, id string) (event *models.Event, err error) {
	defer func() { metrics.TrackEventOperation("get", statusOf(err)) }()

	event, err = es.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, translateRepoError("get event", err)
	}
	return event, nil
}

func (es *EventService) CreateEvent(ctx context.Context, in *models.EventInput) (event *models.Event, err error) {
	defer func() { metrics.TrackEventOperation("create", statusOf(err)) }()

	in.Normalize()
	if missing := in.MissingFields(); len(missing) > 0 {
		required := make([]string, len(models.RequiredEventFields))
		copy(required, models.RequiredEventFields)
		return nil, &ValidationError{RequiredFields: required}
	}

	date, err := validateEventInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event = &models.Event{
		Title:       in.Title,
		Community:   in.Community,
		Description: in.Description,
		Date:        date,
		ImageURL:    in.ImageURL,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	event, err = es.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// UpdateEvent replaces the mutable fields of an event. The replacement is
// validated before the store is consulted, so an invalid body against an
// unknown id reports the validation failure.
func (es *EventService) UpdateEvent(ctx context.Context, id string, in *models.EventInput) (event *models.Event, err error) {
	defer func() { metrics.TrackEventOperation("update", statusOf(err)) }()

	in.Normalize()
	date, err := validateEventInput(in)
	if err != nil {
		return nil, err
	}

	event, err = es.eventRepo.UpdateEvent(ctx, id, &models.EventUpdate{
		Title:       in.Title,
		Community:   in.Community,
		Description: in.Description,
		Date:        date,
		ImageURL:    in.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, translateRepoError("update event", err)
	}
	return event, nil
}

func (es *EventService) DeleteEvent(ctx context.Context, id string) (event *models.Event, err error) {
	defer func() { metrics.TrackEventOperation("delete", statusOf(err)) }()

	event, err = es.eventRepo.DeleteEvent(ctx, id)
	if err != nil {
		return nil, translateRepoError("delete event", err)
	}
	return event, nil
}

func validateEventInput(in *models.EventInput) (time.Time, error) {
	var fields []FieldError
	if err := models.Validate.Struct(in); err != nil {
		fes, err := fieldErrors(err)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to validate event: %w", err)
		}
		fields = append(fields, fes...)
	}

	var date time.Time
	if in.Date != "" {
		parsed, err := models.ParseEventDate(in.Date)
		if err != nil {
			fields = append(fields, FieldError{Field: "date", Rule: "datetime"})
		}
		date = parsed
	}

	if len(fields) > 0 {
		return time.Time{}, &ValidationError{Fields: fields}
	}
	return date, nil
}

func translateRepoError(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
