package seen

import (
	"context"
	"log/slog"
	"sort"

	"github.com/joshua-takyi/campus/internal/models"
)

const DefaultLatestCount = 3

type Item struct {
	Event *models.Event `json:"event"`
	Seen  bool          `json:"seen"`
}

type Snapshot struct {
	Items     []Item `json:"items"`
	HasUnseen bool   `json:"hasUnseen"`
}

type Tracker struct {
	store  Store
	logger *slog.Logger
	count  int
}

func NewTracker(store Store, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger,
		count:  DefaultLatestCount,
	}
}

// Latest picks the most recently inserted events, newest first, and flags
// which of them this device has not shown yet.
func (t *Tracker) Latest(ctx context.Context, events []*models.Event) *Snapshot {
	latest := make([]*models.Event, len(events))
	copy(latest, events)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].CreatedAt.After(latest[j].CreatedAt)
	})
	if len(latest) > t.count {
		latest = latest[:t.count]
	}

	seen := t.seenSet(ctx)
	snap := &Snapshot{Items: make([]Item, 0, len(latest))}
	for _, e := range latest {
		_, ok := seen[e.ID]
		snap.Items = append(snap.Items, Item{Event: e, Seen: ok})
		if !ok {
			snap.HasUnseen = true
		}
	}
	return snap
}

func (t *Tracker) seenSet(ctx context.Context) map[string]struct{} {
	set := make(map[string]struct{})
	ids, err := t.store.Load(ctx)
	if err != nil {
		t.logger.Warn("Seen events unavailable, treating all as unseen", "error", err)
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// MarkViewed is idempotent.
func (t *Tracker) MarkViewed(ctx context.Context, id string) error {
	return t.store.Add(ctx, id)
}
