package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erdoganeray/travelApp/internal/auth"
	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

const testSecret = "test-secret-key-that-is-at-least-32-chars"

func newUserUseCase() (*usecase.UserUseCase, *MockUserRepository, *auth.JWTManager) {
	users := new(MockUserRepository)
	tokens := auth.NewJWTManager(testSecret, "travel-app", time.Hour)
	return usecase.NewUserUseCase(users, tokens, bcrypt.MinCost, zap.NewNop()), users, tokens
}

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.MustParse("5b0e6a4c-2f1d-4a7e-9c3b-8d2f1e0a9b7c"),
		Email:        "ayse@example.com",
		PasswordHash: hash,
		Name:         "Ayse",
		Preferences:  map[string]interface{}{"language": "tr", "currency": "TRY"},
	}
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: " Ayse@Example.com ", Password: "secret1", Name: "Ayse"}

	t.Run("returns token for new user", func(t *testing.T) {
		uc, users, tokens := newUserUseCase()
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ayse@example.com" && u.PasswordHash != "secret1" && u.ID != uuid.Nil
		})).Return(nil)

		resp, err := uc.Register(ctx, req)

		require.NoError(t, err)
		identity, err := tokens.Validate(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.String(), identity.ID)
		assert.Equal(t, "ayse@example.com", identity.Email)
		assert.True(t, auth.CheckPassword(resp.User.PasswordHash, "secret1"))
		users.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyExists)

		_, err := uc.Register(ctx, req)

		assert.Equal(t, apperrors.ErrEmailTaken, err)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc, users, _ := newUserUseCase()

		_, err := uc.Register(ctx, dto.RegisterRequest{Email: "nope", Password: "123", Name: "A"})

		var verr *validator.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.ElementsMatch(t, []string{"email", "password", "name"}, verr.Fields())
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		user := storedUser(t, "secret1")
		users.On("GetByEmail", ctx, "ayse@example.com").Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "AYSE@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("GetByEmail", ctx, "ayse@example.com").Return(storedUser(t, "secret1"), nil)

		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ayse@example.com", Password: "wrong"})

		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})

		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}

func TestUserUseCase_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		user := storedUser(t, "secret1")
		users.On("GetByID", ctx, user.ID).Return(user, nil)

		got, err := uc.Profile(ctx, domain.Identity{ID: user.ID.String()})

		require.NoError(t, err)
		assert.Equal(t, "Ayse", got.Name)
	})

	t.Run("deleted user", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		id := uuid.New()
		users.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

		_, err := uc.Profile(ctx, domain.Identity{ID: id.String()})

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("malformed identity", func(t *testing.T) {
		uc, _, _ := newUserUseCase()

		_, err := uc.Profile(ctx, domain.Identity{ID: "not-a-uuid"})

		assert.Equal(t, apperrors.ErrInvalidToken, err)
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newUserUseCase()
	user := storedUser(t, "secret1")

	renamed := *user
	renamed.Name = "Ayse Yilmaz"
	users.On("UpdateName", ctx, user.ID, "Ayse Yilmaz").Return(&renamed, nil)

	got, err := uc.UpdateProfile(ctx, domain.Identity{ID: user.ID.String()}, dto.UpdateProfileRequest{Name: "  Ayse Yilmaz "})

	require.NoError(t, err)
	assert.Equal(t, "Ayse Yilmaz", got.Name)
	users.AssertExpectations(t)
}

func TestUserUseCase_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newUserUseCase()
	user := storedUser(t, "secret1")

	patch := map[string]interface{}{"language": "en", "theme": "dark"}
	merged := map[string]interface{}{"language": "en", "currency": "TRY", "theme": "dark"}
	users.On("MergePreferences", ctx, user.ID, patch).Return(&domain.User{ID: user.ID, Preferences: merged}, nil)

	got, err := uc.UpdatePreferences(ctx, domain.Identity{ID: user.ID.String()}, patch)

	require.NoError(t, err)
	assert.Equal(t, merged, got.Preferences)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	users.AssertExpectations(t)

	t.Run("unknown user", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		id := uuid.New()
		users.On("MergePreferences", ctx, id, patch).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdatePreferences(ctx, domain.Identity{ID: id.String()}, patch)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
