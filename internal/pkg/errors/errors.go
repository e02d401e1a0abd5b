package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails returns a copy of e carrying details; predefined errors stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	out := *e
	out.Details = details
	return &out
}

// WithMessage returns a copy of e with a different message.
func (e *AppError) WithMessage(message string) *AppError {
	out := *e
	out.Message = message
	return &out
}

// FromValidation converts a classified rejection into an AppError. The status
// code follows the primary (first) violation.
func FromValidation(verr *validator.ValidationError) *AppError {
	code, status := CodeValidationFailed, http.StatusBadRequest
	switch verr.Kind() {
	case validator.KindNotFound:
		code, status = CodeNotFound, http.StatusNotFound
	case validator.KindOwnershipViolation:
		code, status = CodeForbidden, http.StatusForbidden
	case validator.KindInvalidTransition:
		code, status = CodeInvalidTransition, http.StatusConflict
	}
	return New(code, verr.Error(), status).WithDetails(map[string]interface{}{
		"kind":       verr.Kind(),
		"violations": verr.Violations,
	})
}

// Resolve maps any error returned by a use case to an AppError. notFound is
// used for domain.ErrNotFound so each resource reports its own code.
func Resolve(err error, notFound *AppError) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	var verr *validator.ValidationError
	if stderrors.As(err, &verr) {
		return FromValidation(verr)
	}
	switch {
	case stderrors.Is(err, domain.ErrNotFound):
		if notFound != nil {
			return notFound
		}
		return New(CodeNotFound, "Resource not found", http.StatusNotFound)
	case stderrors.Is(err, domain.ErrConflict):
		return ErrConflict
	}
	return ErrInternalServer
}
