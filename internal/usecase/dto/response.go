package dto

import "github.com/erdoganeray/travelApp/internal/domain"

// AuthResponse - токен и пользователь после регистрации или входа
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// PlanListResponse - страница планов пользователя
type PlanListResponse struct {
	Plans []domain.TravelPlan `json:"plans"`
	Total int64               `json:"total"`
}

// TransitionsResponse - текущий статус плана и допустимые переходы
type TransitionsResponse struct {
	PlanID  string              `json:"planId"`
	Current domain.PlanStatus   `json:"current"`
	Next    []domain.PlanStatus `json:"next"`
}
