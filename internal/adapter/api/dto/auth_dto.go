package dto

import (
	"time"
)

// LoginRequest representa os dados para login do administrador
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MeResponse representa o administrador autenticado
type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
