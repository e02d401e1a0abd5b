package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
)

// PlaceUseCase - чтение мест каталога
type PlaceUseCase struct {
	places repository.PlaceRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewPlaceUseCase(places repository.PlaceRepository, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{places: places, cache: cache, ttl: ttl, logger: logger}
}

func (uc *PlaceUseCase) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Place, error) {
	key := cachePlacePrefix + "list:" + filterKey(filter)
	return cached(ctx, uc.cache, uc.logger, key, uc.ttl, func() ([]domain.Place, error) {
		return uc.places.List(ctx, filter)
	})
}

func (uc *PlaceUseCase) Get(ctx context.Context, id string) (domain.Place, error) {
	place, err := cached(ctx, uc.cache, uc.logger, cachePlacePrefix+id, uc.ttl, func() (domain.Place, error) {
		return uc.places.GetByID(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Place{}, apperrors.ErrPlaceNotFound
	}
	return place, err
}

// EventUseCase - чтение событий каталога
type EventUseCase struct {
	events repository.EventRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewEventUseCase(events repository.EventRepository, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *EventUseCase {
	return &EventUseCase{events: events, cache: cache, ttl: ttl, logger: logger}
}

func (uc *EventUseCase) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Event, error) {
	key := cacheEventPrefix + "list:" + filterKey(filter)
	return cached(ctx, uc.cache, uc.logger, key, uc.ttl, func() ([]domain.Event, error) {
		return uc.events.List(ctx, filter)
	})
}

func (uc *EventUseCase) Get(ctx context.Context, id string) (domain.Event, error) {
	event, err := cached(ctx, uc.cache, uc.logger, cacheEventPrefix+id, uc.ttl, func() (domain.Event, error) {
		return uc.events.GetByID(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Event{}, apperrors.ErrEventNotFound
	}
	return event, err
}

func filterKey(f domain.CatalogFilter) string {
	from := ""
	if f.From != nil {
		from = f.From.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("city=%s:category=%s:from=%s:limit=%d", f.CityID, f.Category, from, f.Limit)
}
