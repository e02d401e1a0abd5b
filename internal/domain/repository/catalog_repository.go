package repository

import (
	"context"

	"github.com/erdoganeray/travelApp/internal/domain"
)

// CityRepository определяет методы для работы с городами
type CityRepository interface {
	List(ctx context.Context) ([]domain.City, error)
	GetByID(ctx context.Context, id string) (domain.City, error)
	Create(ctx context.Context, city domain.City) (domain.City, error)
	Update(ctx context.Context, city domain.City) (domain.City, error)
	Delete(ctx context.Context, id string) error
}

// PlaceRepository - чтение мест каталога
type PlaceRepository interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Place, error)
	GetByID(ctx context.Context, id string) (domain.Place, error)
}

// EventRepository - чтение событий каталога
type EventRepository interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
}
