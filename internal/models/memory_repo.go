package models

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps events and users in process memory. It backs local
// development (STORE_BACKEND=memory) and the service and handler tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []*Event
	users  []*User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func copyEvent(e *Event) *Event {
	c := *e
	return &c
}

func (m *MemoryRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	applyEventDefaults(event)
	stored := copyEvent(event)
	stored.ID = primitive.NewObjectID().Hex()

	m.mu.Lock()
	m.events = append(m.events, stored)
	m.mu.Unlock()

	return copyEvent(stored), nil
}

func (m *MemoryRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.events {
		if e.ID == id {
			return copyEvent(e), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	return m.filterEvents(func(*Event) bool { return true }), nil
}

func (m *MemoryRepo) ListEventsByCreator(ctx context.Context, createdBy string) ([]*Event, error) {
	return m.filterEvents(func(e *Event) bool { return e.CreatedBy == createdBy }), nil
}

func (m *MemoryRepo) filterEvents(keep func(*Event) bool) []*Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]*Event, 0, len(m.events))
	for _, e := range m.events {
		if keep(e) {
			events = append(events, copyEvent(e))
		}
	}
	sortEventsByDate(events)
	return events
}

func (m *MemoryRepo) UpdateEvent(ctx context.Context, id string, update *EventUpdate) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.events {
		if e.ID != id {
			continue
		}
		e.Title = update.Title
		e.Community = update.Community
		e.Description = update.Description
		e.Date = update.Date
		e.ImageURL = update.ImageURL
		if e.ImageURL == "" {
			e.ImageURL = DefaultImageURL
		}
		e.UpdatedAt = update.UpdatedAt
		return copyEvent(e), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, ErrDuplicateKey
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID().Hex()
	m.users = append(m.users, &stored)

	out := stored
	return &out, nil
}

func (m *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
