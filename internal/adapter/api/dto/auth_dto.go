package dto

import (
	"time"
)

// LoginRequest representa os dados para login no terminal
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
}
