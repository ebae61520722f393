package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Community   string             `bson:"community"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	ImageURL    string             `bson:"imageUrl"`
	CreatedBy   string             `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *eventDocument) BeforeCreate() error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	return nil
}

func (d *eventDocument) toEvent() *Event {
	return &Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Community:   d.Community,
		Description: d.Description,
		Date:        d.Date.UTC(),
		ImageURL:    d.ImageURL,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

var sortByDate = bson.D{{Key: "date", Value: 1}}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	applyEventDefaults(event)
	doc := &eventDocument{
		Title:       event.Title,
		Community:   event.Community,
		Description: event.Description,
		Date:        event.Date,
		ImageURL:    event.ImageURL,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if err := doc.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare event for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}

	return doc.toEvent(), nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	col, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var doc eventDocument
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding event by ID: %w", err)
	}
	return doc.toEvent(), nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	return mdb.findEvents(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListEventsByCreator(ctx context.Context, createdBy string) ([]*Event, error) {
	return mdb.findEvents(ctx, bson.M{"createdBy": createdBy})
}

func (mdb *MongodbRepo) findEvents(ctx context.Context, filter bson.M) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	cursor, err := col.Find(ctx, filter, options.Find().SetSort(sortByDate))
	if err != nil {
		return nil, fmt.Errorf("error finding events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]*Event, 0)
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding event: %w", err)
		}
		events = append(events, doc.toEvent())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return events, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id string, update *EventUpdate) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	col, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	imageURL := update.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}
	set := bson.M{
		"$set": bson.M{
			"title":       update.Title,
			"community":   update.Community,
			"description": update.Description,
			"date":        update.Date,
			"imageUrl":    imageURL,
			"updatedAt":   update.UpdatedAt,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc eventDocument
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, set, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return doc.toEvent(), nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	col, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var doc eventDocument
	if err := col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error deleting event: %w", err)
	}
	return doc.toEvent(), nil
}

// EnsureIndexes creates the indexes the event and user queries rely on.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	events, err := mdb.GetCollection(ctx, EventsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	_, err = events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    sortByDate,
			Options: options.Index().SetName("date_asc"),
		},
		{
			Keys: bson.D{
				{Key: "createdBy", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("created_by_date"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	users, err := mdb.GetCollection(ctx, UsersCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}
