package repositories

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	apperrors "handover-crm/pkg/errors"
)

// MemoryCacheRepository - кеш в памяти процесса, используется без Redis.
// Просроченные ключи удаляет фоновая очистка go-cache, даже если их никто не читает.
type MemoryCacheRepository struct {
	items *gocache.Cache
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return newMemoryCache(time.Minute)
}

func newMemoryCache(cleanupInterval time.Duration) *MemoryCacheRepository {
	return &MemoryCacheRepository{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	v, ok := r.items.Get(key)
	if !ok {
		return "", apperrors.ErrCacheMiss
	}
	return v.(string), nil
}

// Set сохраняет строковое представление значения; expiration = 0 - без срока.
func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}

	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	r.items.Set(key, s, expiration)
	return nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		r.items.Delete(k)
	}
	return nil
}

// Len возвращает число ключей, включая просроченные, но еще не вычищенные.
func (r *MemoryCacheRepository) Len() int {
	return r.items.ItemCount()
}
