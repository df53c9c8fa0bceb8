package dto

import (
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
)

// EmployeeRequest representa a requisição de cadastro/alteração de funcionário.
// PIN vazio na alteração mantém o atual.
type EmployeeRequest struct {
	Name        string                `json:"name" binding:"required"`
	PIN         string                `json:"pin" binding:"omitempty,len=4,numeric"`
	Role        employee.Role         `json:"role" binding:"required,oneof=admin manager cashier"`
	Permissions *employee.Permissions `json:"permissions"`
	Active      *bool                 `json:"active"`
}

// EmployeeResponse representa o funcionário sem o hash do PIN
type EmployeeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Role        employee.Role        `json:"role"`
	Permissions employee.Permissions `json:"permissions"`
	Active      bool                 `json:"active"`
}

// ToEmployeeResponse converte um funcionário para a resposta da API
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		Permissions: e.Permissions,
		Active:      e.Active,
	}
}

// ToEmployeeResponses converte uma lista de funcionários
func ToEmployeeResponses(all []*employee.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(all))
	for _, e := range all {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}
