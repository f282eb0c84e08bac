package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface - кеш готовых представлений.
// При отсутствии ключа Get возвращает apperrors.ErrCacheMiss.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}
