package domain

import (
	"time"

	"github.com/google/uuid"
)

// User - учетная запись пользователя
type User struct {
	ID           uuid.UUID              `json:"id" db:"id"`
	Email        string                 `json:"email" db:"email"`
	PasswordHash string                 `json:"-" db:"password_hash"`
	Name         string                 `json:"name" db:"name"`
	Preferences  map[string]interface{} `json:"preferences" db:"-"`
	CreatedAt    time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time              `json:"updatedAt" db:"updated_at"`
}

// Identity - проверенная личность вызывающего, прикрепленная к запросу
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
