package dto

import (
	"time"

	"github.com/ufvjm/estagiopro/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the orientador profile shape returned by auth endpoints;
// credential columns never appear here.
type UserResponse struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Telefone     *string   `json:"telefone,omitempty"`
	Departamento *string   `json:"departamento,omitempty"`
	Tipo         string    `json:"tipo"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromOrientador maps an orientador row to its public profile shape.
func FromOrientador(o *models.Orientador) UserResponse {
	return UserResponse{
		ID:           o.ID,
		Nome:         o.Nome,
		Email:        o.Email,
		Telefone:     o.Telefone,
		Departamento: o.Departamento,
		Tipo:         string(o.Tipo),
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// LoginResponse carries the authenticated profile and session tokens.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresIn    int          `json:"expiresIn"`
}
