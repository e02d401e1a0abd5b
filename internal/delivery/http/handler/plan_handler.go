package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// PlanHandler - обработчик планов поездок текущего пользователя
type PlanHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

func NewPlanHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC: planUC,
		logger: logger,
	}
}

// List - планы пользователя
// @Summary List travel plans
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param cityId query string false "Filter by destination city"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	page := utils.ParsePagination(c)
	result, err := h.planUC.List(c.UserContext(), caller, domain.PlanFilter{
		Status: domain.PlanStatus(c.Query("status")),
		CityID: c.Query("cityId"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return fail(c, h.logger, err, nil)
	}

	return utils.SendSuccess(c, result.Plans, &utils.Meta{
		Total:  int(result.Total),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// Create - новый план в статусе draft
// @Summary Create a travel plan
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.planUC.Create(c.UserContext(), caller, c.Body())
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendCreated(c, plan)
}

// Get - план по ID
// @Summary Get a travel plan
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/plans/{id} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.planUC.Get(c.UserContext(), caller, c.Params("id"))
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlanNotFound)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Update - частичное обновление плана
// @Summary Update a travel plan
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/plans/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.planUC.Update(c.UserContext(), caller, c.Params("id"), c.Body())
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlanNotFound)
	}
	return utils.SendSuccess(c, plan, nil)
}

// ChangeStatus - перевод плана в следующий статус
// @Summary Change plan status
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body dto.StatusRequest true "Target status"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/plans/{id}/status [patch]
func (h *PlanHandler) ChangeStatus(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.planUC.ChangeStatus(c.UserContext(), caller, c.Params("id"), domain.PlanStatus(req.Status))
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlanNotFound)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Transitions - допустимые следующие статусы
// @Summary List allowed status transitions
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/plans/{id}/transitions [get]
func (h *PlanHandler) Transitions(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.planUC.Transitions(c.UserContext(), caller, c.Params("id"))
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlanNotFound)
	}
	return utils.SendSuccess(c, result, nil)
}

// Delete - удаление плана
// @Summary Delete a travel plan
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	id := c.Params("id")
	if err := h.planUC.Delete(c.UserContext(), caller, id); err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlanNotFound)
	}
	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}
