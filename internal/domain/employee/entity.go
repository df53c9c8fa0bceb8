package employee

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName   = errors.New("nome do funcionário não pode ser vazio")
	ErrInvalidPIN  = errors.New("PIN deve ter 4 dígitos")
	ErrInvalidRole = errors.New("papel inválido")
)

// Role representa o papel do funcionário
type Role string

const (
	RoleAdmin   Role = "admin"   // Administrador da cantina
	RoleManager Role = "manager" // Gerente
	RoleCashier Role = "cashier" // Operador de caixa
)

// Valid verifica se o papel é conhecido
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// Employee representa um funcionário que opera o terminal
type Employee struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PIN         string      `json:"pin"` // hash bcrypt, nunca o PIN em texto
	Role        Role        `json:"role"`
	Permissions Permissions `json:"permissions"`
	Active      bool        `json:"active"`
}

// NewEmployee cria um funcionário ativo com as permissões padrão do papel
func NewEmployee(id, name, pin string, role Role) (*Employee, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	e := &Employee{
		ID:          id,
		Name:        name,
		Role:        role,
		Permissions: PermissionsFor(role),
		Active:      true,
	}
	if err := e.SetPIN(pin); err != nil {
		return nil, err
	}
	return e, nil
}

// SetPIN configura o PIN do funcionário com hash
func (e *Employee) SetPIN(pin string) error {
	if !validPIN(pin) {
		return ErrInvalidPIN
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PIN = string(hashed)
	return nil
}

// CheckPIN verifica se o PIN informado é válido
func (e *Employee) CheckPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PIN), []byte(pin)) == nil
}

// IsActive verifica se o funcionário pode entrar no sistema
func (e *Employee) IsActive() bool {
	return e.Active
}

// IsAdmin verifica se o funcionário é administrador
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// Can verifica uma capacidade do funcionário
func (e *Employee) Can(c Capability) bool {
	return e.Active && e.Permissions.Has(c)
}

// FindByID busca um funcionário na lista
func FindByID(employees []*Employee, id string) *Employee {
	for _, e := range employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
