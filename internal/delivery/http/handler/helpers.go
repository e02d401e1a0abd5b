package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/delivery/http/middleware"
	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

// fail - ответ с ошибкой; 5xx дополнительно логируются
func fail(c *fiber.Ctx, logger *zap.Logger, err error, notFound *apperrors.AppError) error {
	appErr := apperrors.Resolve(err, notFound)
	if appErr.StatusCode >= fiber.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return utils.SendError(c, appErr)
}

func identity(c *fiber.Ctx) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, apperrors.ErrTokenRequired
	}
	return id, nil
}

// objectID - проверка 24-символьного hex идентификатора из пути
func objectID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if err := validator.GetValidator().Var(id, "objectid"); err != nil {
		return "", apperrors.ErrInvalidID
	}
	return id, nil
}
