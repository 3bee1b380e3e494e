package repository

import "context"

// CacheRepository stores computed results by key. A miss and a backend
// failure look the same to callers; the value is simply recomputed.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
