package dto

import (
	"github.com/google/uuid"

	"artfolio/internal/domain/models"
)

// AdminInput carries the fields for a new administrator account.
type AdminInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

func (input AdminInput) ToDomain(passwordHash []byte) models.User {
	return models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: passwordHash,
		IsAdmin:  true,
	}
}

type UserResponse struct {
	ID      uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}
