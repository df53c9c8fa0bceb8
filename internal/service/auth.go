package service

import (
	"context"
	"time"

	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// LoginResult é o token emitido para o funcionário
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Employee  *employee.Employee
}

// AuthService troca o PIN do funcionário por um token JWT
type AuthService struct {
	employees *EmployeeService
	jwt       *auth.JWTService
}

// NewAuthService cria o serviço de autenticação
func NewAuthService(employees *EmployeeService, jwt *auth.JWTService) *AuthService {
	return &AuthService{employees: employees, jwt: jwt}
}

// Login autentica pelo PIN. PIN errado ou funcionário inativo retornam
// InvalidCredentials.
func (s *AuthService) Login(ctx context.Context, pin string) (*LoginResult, error) {
	e, err := s.employees.Authenticate(ctx, pin)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.GenerateToken(e)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Employee: e}, nil
}
