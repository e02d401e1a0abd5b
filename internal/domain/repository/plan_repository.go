package repository

import (
	"context"
	"time"

	"github.com/erdoganeray/travelApp/internal/domain"
)

// PlanRepository определяет методы для работы с планами поездок.
// План хранится одним документом вместе с днями и активностями.
type PlanRepository interface {
	// Create сохраняет новый план и возвращает его с присвоенным ID
	Create(ctx context.Context, plan domain.TravelPlan) (domain.TravelPlan, error)

	// GetByID возвращает план или domain.ErrNotFound
	GetByID(ctx context.Context, id string) (domain.TravelPlan, error)

	// ListByOwner возвращает планы пользователя и общее количество
	ListByOwner(ctx context.Context, filter domain.PlanFilter) ([]domain.TravelPlan, int64, error)

	// Update заменяет план, если его updatedAt совпадает с previousUpdatedAt,
	// иначе domain.ErrConflict
	Update(ctx context.Context, plan domain.TravelPlan, previousUpdatedAt time.Time) error

	// Delete удаляет план вместе с днями и активностями
	Delete(ctx context.Context, id string) error

	// ListDueForTransition возвращает планы в статусе status, чья дата
	// (startDate для planned, endDate для in-progress) подошла к today
	ListDueForTransition(ctx context.Context, status domain.PlanStatus, today time.Time, limit int) ([]domain.TravelPlan, error)
}
