package service

import (
	"context"
	"strings"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
)

// EmployeeRequest são os dados de cadastro de um funcionário. PIN vazio na
// atualização mantém o atual; Permissions nil aplica o padrão do papel.
type EmployeeRequest struct {
	Name        string
	PIN         string
	Role        employee.Role
	Permissions *employee.Permissions
	Active      *bool
}

// EmployeeService gerencia funcionários e o login por PIN
type EmployeeService struct {
	gw store.Gateway
	options
}

// NewEmployeeService cria o serviço de funcionários
func NewEmployeeService(gw store.Gateway, opts ...Option) *EmployeeService {
	return &EmployeeService{gw: gw, options: newOptions(opts)}
}

// Authenticate retorna o funcionário ativo cujo PIN confere
func (s *EmployeeService) Authenticate(ctx context.Context, pin string) (*employee.Employee, error) {
	all, err := s.gw.Employees().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.IsActive() && e.CheckPIN(pin) {
			s.logger.Info("login", "employee_id", e.ID, "role", e.Role)
			return e, nil
		}
	}
	s.logger.Warn("tentativa de login com PIN inválido")
	return nil, domain.NewError("employees.Authenticate", domain.KindInvalidCredentials, "", "")
}

// List retorna os funcionários
func (s *EmployeeService) List(ctx context.Context) ([]*employee.Employee, error) {
	return s.gw.Employees().FindAll(ctx)
}

// Get busca um funcionário pelo ID
func (s *EmployeeService) Get(ctx context.Context, id string) (*employee.Employee, error) {
	all, err := s.gw.Employees().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	e := employee.FindByID(all, id)
	if e == nil {
		return nil, domain.NewError("employees.Get", domain.KindUnknownEmployee, id, "")
	}
	return e, nil
}

// Create cadastra um funcionário ativo
func (s *EmployeeService) Create(ctx context.Context, req EmployeeRequest) (*employee.Employee, error) {
	const op = "employees.Create"

	e, err := employee.NewEmployee(s.newID(), strings.TrimSpace(req.Name), req.PIN, req.Role)
	if err != nil {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, "", err)
	}
	if req.Permissions != nil && e.Role != employee.RoleAdmin {
		e.Permissions = *req.Permissions
	}

	err = s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Employees().FindAll(ctx)
		if err != nil {
			return err
		}
		if err := checkPINUnique(op, all, "", req.PIN); err != nil {
			return err
		}
		return s.gw.Employees().ReplaceAll(ctx, append(all, e))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("funcionário criado", "id", e.ID, "role", e.Role)
	return e, nil
}

// Update altera os dados de um funcionário
func (s *EmployeeService) Update(ctx context.Context, id string, req EmployeeRequest) (*employee.Employee, error) {
	const op = "employees.Update"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, id, employee.ErrEmptyName)
	}
	if !req.Role.Valid() {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, id, employee.ErrInvalidRole)
	}

	var updated *employee.Employee
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Employees().FindAll(ctx)
		if err != nil {
			return err
		}
		e := employee.FindByID(all, id)
		if e == nil {
			return domain.NewError(op, domain.KindUnknownEmployee, id, "")
		}

		if req.PIN != "" {
			if err := checkPINUnique(op, all, id, req.PIN); err != nil {
				return err
			}
			if err := e.SetPIN(req.PIN); err != nil {
				return domain.Wrap(op, domain.KindInvalidRequest, id, err)
			}
		}

		roleChanged := e.Role != req.Role
		e.Name = name
		e.Role = req.Role
		switch {
		case e.Role == employee.RoleAdmin:
			e.Permissions = employee.AllPermissions()
		case req.Permissions != nil:
			e.Permissions = *req.Permissions
		case roleChanged:
			e.Permissions = employee.PermissionsFor(e.Role)
		}
		if req.Active != nil {
			e.Active = *req.Active
		}

		updated = e
		return s.gw.Employees().ReplaceAll(ctx, all)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Deactivate impede o login do funcionário sem apagar o histórico
func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	const op = "employees.Deactivate"

	return s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Employees().FindAll(ctx)
		if err != nil {
			return err
		}
		e := employee.FindByID(all, id)
		if e == nil {
			return domain.NewError(op, domain.KindUnknownEmployee, id, "")
		}
		if e.IsAdmin() && activeAdmins(all) == 1 && e.Active {
			return domain.Invalid(op, "não é possível desativar o último administrador")
		}
		e.Active = false
		return s.gw.Employees().ReplaceAll(ctx, all)
	})
}

// O login é só por PIN, então dois funcionários não podem compartilhar um
func checkPINUnique(op string, all []*employee.Employee, exceptID, pin string) error {
	for _, other := range all {
		if other.ID != exceptID && other.CheckPIN(pin) {
			return domain.Invalid(op, "PIN já utilizado por outro funcionário")
		}
	}
	return nil
}

func activeAdmins(all []*employee.Employee) int {
	n := 0
	for _, e := range all {
		if e.IsAdmin() && e.Active {
			n++
		}
	}
	return n
}
