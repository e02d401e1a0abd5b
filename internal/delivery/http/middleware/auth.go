package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/auth"
	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
)

const identityKey = "identity"

// TokenValidator - проверка bearer токена
type TokenValidator interface {
	Validate(token string) (domain.Identity, error)
}

// Auth - требует Authorization: Bearer <token> и кладет Identity в Locals
func Auth(tokens TokenValidator, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return utils.SendError(c, apperrors.ErrTokenRequired)
		}

		identity, err := tokens.Validate(token)
		if err != nil {
			logger.Debug("Token rejected", zap.String("path", c.Path()), zap.Error(err))
			if errors.Is(err, auth.ErrTokenExpired) {
				return utils.SendError(c, apperrors.ErrTokenExpired)
			}
			return utils.SendError(c, apperrors.ErrInvalidToken)
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFrom - вызывающий пользователь, положенный Auth
func IdentityFrom(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}
