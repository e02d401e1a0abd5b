package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain/repository"
)

// Префиксы ключей кеша каталога
const (
	cacheCityPrefix  = "catalog:cities:"
	cachePlacePrefix = "catalog:places:"
	cacheEventPrefix = "catalog:events:"
)

// cached реализует cache-aside: ошибки кеша логируются и не мешают чтению из хранилища
func cached[T any](ctx context.Context, cache repository.CacheRepository, logger *zap.Logger, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if data, err := cache.Get(ctx, key); err != nil {
		logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			logger.Debug("Cache hit", zap.String("key", key))
			return out, nil
		}
		logger.Warn("Cache entry is corrupted", zap.String("key", key))
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
