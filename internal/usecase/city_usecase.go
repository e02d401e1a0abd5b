package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// cityRules - ограничения, которые нельзя выразить тегами DTO
var cityRules = []validator.Rule[dto.CityRequest]{
	{
		Field:  "name",
		Tag:    "required",
		Reason: "name cannot be blank",
		Value:  func(r dto.CityRequest) interface{} { return strings.TrimSpace(r.Name) },
	},
	{
		Field:  "description",
		Tag:    "min=10",
		Reason: "description must be at least 10 characters",
		Value:  func(r dto.CityRequest) interface{} { return strings.TrimSpace(r.Description) },
	},
}

// CityUseCase - каталог городов с кешированием в Redis
type CityUseCase struct {
	cities repository.CityRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCityUseCase(
	cities repository.CityRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *CityUseCase {
	return &CityUseCase{
		cities: cities,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (uc *CityUseCase) List(ctx context.Context) ([]domain.City, error) {
	return cached(ctx, uc.cache, uc.logger, cacheCityPrefix+"all", uc.ttl, func() ([]domain.City, error) {
		return uc.cities.List(ctx)
	})
}

func (uc *CityUseCase) Get(ctx context.Context, id string) (domain.City, error) {
	city, err := cached(ctx, uc.cache, uc.logger, cacheCityPrefix+id, uc.ttl, func() (domain.City, error) {
		return uc.cities.GetByID(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.City{}, apperrors.ErrCityNotFound
	}
	return city, err
}

func (uc *CityUseCase) Create(ctx context.Context, req dto.CityRequest) (domain.City, error) {
	if err := validateCity(req); err != nil {
		return domain.City{}, err
	}

	now := time.Now().UTC()
	city := cityFromRequest(req)
	city.CreatedAt = now
	city.UpdatedAt = now

	created, err := uc.cities.Create(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to create city", zap.String("name", city.Name), zap.Error(err))
		return domain.City{}, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("City created", zap.String("city_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *CityUseCase) Update(ctx context.Context, id string, req dto.CityRequest) (domain.City, error) {
	if err := validateCity(req); err != nil {
		return domain.City{}, err
	}

	existing, err := uc.cities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.City{}, apperrors.ErrCityNotFound
		}
		return domain.City{}, err
	}

	city := cityFromRequest(req)
	city.ID = existing.ID
	city.CreatedAt = existing.CreatedAt
	city.UpdatedAt = time.Now().UTC()

	updated, err := uc.cities.Update(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.City{}, apperrors.ErrCityNotFound
		}
		uc.logger.Error("Failed to update city", zap.String("city_id", id), zap.Error(err))
		return domain.City{}, err
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *CityUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.cities.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrCityNotFound
		}
		uc.logger.Error("Failed to delete city", zap.String("city_id", id), zap.Error(err))
		return err
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *CityUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.DeleteByPrefix(ctx, cacheCityPrefix); err != nil {
		uc.logger.Warn("Failed to invalidate city cache", zap.Error(err))
	}
}

func validateCity(req dto.CityRequest) error {
	return validator.Merge(
		validator.Validate(req),
		validator.NewError(validator.Check("", req, cityRules)...),
	)
}

func cityFromRequest(req dto.CityRequest) domain.City {
	return domain.City{
		Name:        strings.TrimSpace(req.Name),
		Country:     strings.TrimSpace(req.Country),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Rating:      req.Rating,
		Coordinates: domain.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		},
	}
}
