package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/auth"
	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// UserUseCase - регистрация, вход и профиль пользователя
type UserUseCase struct {
	users    repository.UserRepository
	tokens   *auth.JWTManager
	hashCost int
	logger   *zap.Logger
}

func NewUserUseCase(users repository.UserRepository, tokens *auth.JWTManager, hashCost int, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		users:    users,
		tokens:   tokens,
		hashCost: hashCost,
		logger:   logger,
	}
}

func (uc *UserUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Preferences:  map[string]interface{}{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperrors.ErrEmailTaken
		}
		uc.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return uc.authResponse(user)
}

func (uc *UserUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		uc.logger.Debug("Wrong password", zap.String("user_id", user.ID.String()))
		return nil, apperrors.ErrInvalidCredentials
	}

	return uc.authResponse(user)
}

func (uc *UserUseCase) Profile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	id, err := userID(identity)
	if err != nil {
		return nil, err
	}
	return notFoundAsUser(uc.users.GetByID(ctx, id))
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, identity domain.Identity, req dto.UpdateProfileRequest) (*domain.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	id, err := userID(identity)
	if err != nil {
		return nil, err
	}
	return notFoundAsUser(uc.users.UpdateName(ctx, id, req.Name))
}

// UpdatePreferences сливает переданные ключи поверх сохраненных (без рекурсии)
func (uc *UserUseCase) UpdatePreferences(ctx context.Context, identity domain.Identity, prefs map[string]interface{}) (*domain.User, error) {
	id, err := userID(identity)
	if err != nil {
		return nil, err
	}

	return notFoundAsUser(uc.users.MergePreferences(ctx, id, prefs))
}

func (uc *UserUseCase) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := uc.tokens.Generate(domain.Identity{ID: user.ID.String(), Email: user.Email})
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func userID(identity domain.Identity) (uuid.UUID, error) {
	id, err := uuid.Parse(identity.ID)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return id, nil
}

func notFoundAsUser(user *domain.User, err error) (*domain.User, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	return user, err
}
