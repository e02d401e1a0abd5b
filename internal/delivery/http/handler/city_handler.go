package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
	"github.com/erdoganeray/travelApp/internal/usecase"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// CityHandler - обработчик каталога городов
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// List - все города
// @Summary List cities
// @Tags cities
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	cities, err := h.cityUC.List(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// Get - город по ID
// @Summary Get a city
// @Tags cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{id} [get]
func (h *CityHandler) Get(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	city, err := h.cityUC.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrCityNotFound)
	}
	return utils.SendSuccess(c, city, nil)
}

// Create - новый город
// @Summary Create a city
// @Tags cities
// @Accept json
// @Produce json
// @Param request body dto.CityRequest true "City"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/cities [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	city, err := h.cityUC.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendCreated(c, city)
}

// Update - замена города
// @Summary Replace a city
// @Tags cities
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Param request body dto.CityRequest true "City"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{id} [put]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	city, err := h.cityUC.Update(c.UserContext(), id, req)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrCityNotFound)
	}
	return utils.SendSuccess(c, city, nil)
}

// Delete - удаление города
// @Summary Delete a city
// @Tags cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{id} [delete]
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.cityUC.Delete(c.UserContext(), id); err != nil {
		return fail(c, h.logger, err, apperrors.ErrCityNotFound)
	}
	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}
