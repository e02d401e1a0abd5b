package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/erdoganeray/travelApp/internal/domain"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager(testSecret, "travel-app-test", 24*time.Hour)
	identity := domain.Identity{ID: "3f8e2c1a-9b7d-4e6f-8a5c-1d2e3f4a5b6c", Email: "ayse@example.com"}

	token, err := manager.Generate(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestJWTManager_Validate_Failures(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "u1@example.com"}

	t.Run("expired", func(t *testing.T) {
		manager := NewJWTManager(testSecret, "travel-app-test", time.Hour)
		manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := manager.Generate(identity)
		require.NoError(t, err)

		manager.now = time.Now
		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("another-secret-that-is-32-chars-long!!", "travel-app-test", time.Hour).Generate(identity)
		require.NoError(t, err)

		_, err = NewJWTManager(testSecret, "travel-app-test", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewJWTManager(testSecret, "someone-else", time.Hour).Generate(identity)
		require.NoError(t, err)

		_, err = NewJWTManager(testSecret, "travel-app-test", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage and empty", func(t *testing.T) {
		manager := NewJWTManager(testSecret, "travel-app-test", time.Hour)

		_, err := manager.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)

		_, err = manager.Validate("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-pass"))
}
