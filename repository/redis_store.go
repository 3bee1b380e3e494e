package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gpa-calculator/domain"
)

const (
	snapshotKeyPrefix   = "gpa:courses:"
	preferenceKeyPrefix = "gpa:prefs:"
)

// RedisStore keeps each snapshot as one JSON blob, so a save is a single
// SET and never leaves a partial list behind.
type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// NewRedisStore pings the server before returning.
func NewRedisStore(ctx context.Context, client *redis.Client) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Save(ctx context.Context, profile string, snapshot domain.Snapshot) error {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.client.Set(ctx, snapshotKeyPrefix+profile, blob, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, profile string) (domain.Snapshot, error) {
	blob, err := r.client.Get(ctx, snapshotKeyPrefix+profile).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *RedisStore) Delete(ctx context.Context, profile string) error {
	if err := r.client.Del(ctx, snapshotKeyPrefix+profile).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (r *RedisStore) GetPreference(ctx context.Context, profile, key string) (string, error) {
	val, err := r.client.HGet(ctx, preferenceKeyPrefix+profile, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return val, nil
}

func (r *RedisStore) SetPreference(ctx context.Context, profile, key, value string) error {
	if err := r.client.HSet(ctx, preferenceKeyPrefix+profile, key, value).Err(); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
