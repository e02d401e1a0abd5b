package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/erdoganeray/travelApp/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет пользователя; занятый email возвращает domain.ErrAlreadyExists
	Create(ctx context.Context, user *domain.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)

	// MergePreferences накладывает patch поверх сохраненных настроек одной операцией,
	// ключи верхнего уровня из patch заменяют старые
	MergePreferences(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.User, error)
}
