package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
	"github.com/erdoganeray/travelApp/internal/usecase"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// UserHandler - регистрация, вход и профиль
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Register - регистрация
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Credentials"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	result, err := h.userUC.Register(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendCreated(c, result)
}

// Login - вход
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	result, err := h.userUC.Login(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendSuccess(c, result, nil)
}

// Profile - профиль текущего пользователя
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Profile(c.UserContext(), caller)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrUserNotFound)
	}
	return utils.SendSuccess(c, user, nil)
}

// UpdateProfile - изменение имени
// @Summary Update profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	user, err := h.userUC.UpdateProfile(c.UserContext(), caller, req)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrUserNotFound)
	}
	return utils.SendSuccess(c, user, nil)
}

// UpdatePreferences - слияние пользовательских настроек
// @Summary Update preferences
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/users/preferences [put]
func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var prefs map[string]interface{}
	if err := c.BodyParser(&prefs); err != nil || prefs == nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage("Preferences must be a JSON object"))
	}

	user, err := h.userUC.UpdatePreferences(c.UserContext(), caller, prefs)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrUserNotFound)
	}
	return utils.SendSuccess(c, user, nil)
}
