package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"handover-crm/internal/repositories"
	apperrors "handover-crm/pkg/errors"
)

// ViewCache кеширует готовые представления в JSON.
// Ошибки кеша не ломают запрос: представление просто строится заново.
type ViewCache struct {
	cache  repositories.CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewViewCache(cache repositories.CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) *ViewCache {
	return &ViewCache{cache: cache, ttl: ttl, logger: logger}
}

func loadView[T any](ctx context.Context, vc *ViewCache, key string, build func() (T, error)) (T, error) {
	if vc == nil || vc.cache == nil {
		return build()
	}

	raw, err := vc.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		uerr := json.Unmarshal([]byte(raw), &cached)
		if uerr == nil {
			return cached, nil
		}
		vc.logger.Warn("Повреждённое значение в кеше", zap.String("key", key), zap.Error(uerr))
	case !errors.Is(err, apperrors.ErrCacheMiss):
		vc.logger.Warn("Кеш недоступен", zap.String("key", key), zap.Error(err))
	}

	view, err := build()
	if err != nil {
		return view, err
	}

	payload, err := json.Marshal(view)
	if err != nil {
		vc.logger.Warn("Не удалось сериализовать представление", zap.String("key", key), zap.Error(err))
		return view, nil
	}
	if err := vc.cache.Set(ctx, key, payload, vc.ttl); err != nil {
		vc.logger.Warn("Не удалось записать в кеш", zap.String("key", key), zap.Error(err))
	}
	return view, nil
}
