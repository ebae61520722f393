// Package seen keeps track of which events a device has already shown to
// its user. The state only drives the "new events" badge, so every read
// failure degrades to "nothing seen yet" instead of failing the caller.
package seen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

var ErrCorrupt = errors.New("seen store is corrupt")

type Store interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, id string) error
}

// FileStore persists the seen ids as a JSON array in a single file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load(ctx context.Context) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.read()
}

func (fs *FileStore) read() ([]string, error) {
	raw, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fs.path, err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, fs.path, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Add records id. A corrupt file is replaced rather than repaired.
func (fs *FileStore) Add(ctx context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	ids, err := fs.read()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return fs.write(append(ids, id))
}

// write replaces the file atomically through a temp file in the same dir.
func (fs *FileStore) write(ids []string) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".viewed-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", fs.path, err)
	}
	return nil
}

const redisKeyPrefix = "campus:seen:"

// RedisStore keeps one redis set per device.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, deviceID string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    redisKeyPrefix + deviceID,
	}
}

// NewRedisClient accepts either a redis:// URL or a bare host:port.
func NewRedisClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{
			Addr: url,
		}
	}
	return redis.NewClient(opts)
}

func (rs *RedisStore) Load(ctx context.Context) ([]string, error) {
	ids, err := rs.client.SMembers(ctx, rs.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load seen events: %w", err)
	}
	return ids, nil
}

func (rs *RedisStore) Add(ctx context.Context, id string) error {
	if err := rs.client.SAdd(ctx, rs.key, id).Err(); err != nil {
		return fmt.Errorf("failed to mark event seen: %w", err)
	}
	return nil
}
