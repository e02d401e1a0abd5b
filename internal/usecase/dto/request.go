package dto

// RegisterRequest - регистрация пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest - изменение профиля
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CoordinatesRequest - координаты города
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// CityRequest - создание или замена города
type CityRequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Country     string             `json:"country" validate:"required,min=2,max=100"`
	Description string             `json:"description" validate:"required,min=10"`
	ImageURL    string             `json:"imageUrl" validate:"omitempty,http_url"`
	Rating      float64            `json:"rating" validate:"gte=0,lte=5"`
	Coordinates CoordinatesRequest `json:"coordinates"`
}

// StatusRequest - смена статуса плана
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
