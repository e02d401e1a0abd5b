package errors

import "net/http"

var (
	ErrPlanNotFound = New(
		"PLAN_NOT_FOUND",
		"Travel plan not found",
		http.StatusNotFound,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrEventNotFound = New(
		"EVENT_NOT_FOUND",
		"Event not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrTokenRequired = New(
		"UNAUTHORIZED",
		"Access token is required",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = New(
		"TOKEN_EXPIRED",
		"Token expired",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"User already exists",
		http.StatusBadRequest,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Not allowed to access this resource",
		http.StatusForbidden,
	)

	ErrConflict = New(
		"CONFLICT",
		"Resource was modified concurrently, reload and retry",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Коды ошибок валидации
const (
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeForbidden         = "FORBIDDEN"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeNotFound          = "NOT_FOUND"
)
