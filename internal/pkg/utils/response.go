package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/erdoganeray/travelApp/internal/pkg/errors"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// SendCreated - ответ 201 с созданным ресурсом
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// SendError - ответ с ошибкой; неизвестные ошибки превращаются в 500
func SendError(c *fiber.Ctx, err error) error {
	return SendErrorAs(c, err, nil)
}

// SendErrorAs - то же, но domain.ErrNotFound отдается как notFound
func SendErrorAs(c *fiber.Ctx, err error, notFound *errors.AppError) error {
	appErr := errors.Resolve(err, notFound)
	return c.Status(appErr.StatusCode).JSON(NewErrorResponse(appErr))
}

func NewErrorResponse(appErr *errors.AppError) ErrorResponse {
	resp := ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code,
	}
	if len(appErr.Details) > 0 {
		resp.Details = appErr.Details
	}
	return resp
}
