package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
	"github.com/erdoganeray/travelApp/internal/usecase"
)

// PlaceHandler - чтение мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{placeUC: placeUC, logger: logger}
}

// List - места с фильтром по городу и категории
// @Summary List places
// @Tags places
// @Produce json
// @Param cityId query string false "City ID"
// @Param category query string false "Category"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} utils.SuccessResponse
// @Router /api/places [get]
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	page := utils.ParsePagination(c)
	places, err := h.placeUC.List(c.UserContext(), domain.CatalogFilter{
		CityID:   c.Query("cityId"),
		Category: c.Query("category"),
		Limit:    page.Limit,
	})
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendSuccess(c, places, &utils.Meta{Total: len(places), Limit: page.Limit})
}

// Get - место по ID
// @Summary Get a place
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/places/{id} [get]
func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrPlaceNotFound)
	}
	return utils.SendSuccess(c, place, nil)
}

// EventHandler - чтение событий
type EventHandler struct {
	eventUC *usecase.EventUseCase
	logger  *zap.Logger
}

func NewEventHandler(eventUC *usecase.EventUseCase, logger *zap.Logger) *EventHandler {
	return &EventHandler{eventUC: eventUC, logger: logger}
}

// List - события с фильтром по городу, категории и дате
// @Summary List events
// @Tags events
// @Produce json
// @Param cityId query string false "City ID"
// @Param category query string false "Category"
// @Param from query string false "Only events ending on or after this date (YYYY-MM-DD)"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	filter := domain.CatalogFilter{
		CityID:   c.Query("cityId"),
		Category: c.Query("category"),
		Limit:    utils.ParsePagination(c).Limit,
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage("from must be a date in YYYY-MM-DD format"))
		}
		filter.From = &from
	}

	events, err := h.eventUC.List(c.UserContext(), filter)
	if err != nil {
		return fail(c, h.logger, err, nil)
	}
	return utils.SendSuccess(c, events, &utils.Meta{Total: len(events), Limit: filter.Limit})
}

// Get - событие по ID
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	event, err := h.eventUC.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, h.logger, err, apperrors.ErrEventNotFound)
	}
	return utils.SendSuccess(c, event, nil)
}
