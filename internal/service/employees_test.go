package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

func TestEmployees_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestGateway(t), testOptions()...)

	e, err := svc.Authenticate(ctx, "1111")
	require.NoError(t, err)
	assert.Equal(t, "e2", e.ID)

	_, err = svc.Authenticate(ctx, "9999")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	active := false
	_, err = svc.Update(ctx, "e2", EmployeeRequest{Name: "Tuckshop Cashier", Role: employee.RoleCashier, Active: &active})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "1111")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestEmployees_CreateRequiresUniquePIN(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestGateway(t), testOptions()...)

	_, err := svc.Create(ctx, EmployeeRequest{Name: "Second Cashier", PIN: "1111", Role: employee.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.Create(ctx, EmployeeRequest{Name: "Short", PIN: "12", Role: employee.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	perms := employee.PermissionsFor(employee.RoleCashier)
	perms.Set(employee.CapAdjustInventory, true)
	m, err := svc.Create(ctx, EmployeeRequest{Name: "Manager", PIN: "2468", Role: employee.RoleManager, Permissions: &perms})
	require.NoError(t, err)
	assert.True(t, m.Can(employee.CapAdjustInventory))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEmployees_UpdateRolePermissions(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestGateway(t), testOptions()...)

	e, err := svc.Update(ctx, "e2", EmployeeRequest{Name: "Promoted", Role: employee.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, employee.AllPermissions(), e.Permissions)

	e, err = svc.Update(ctx, "e2", EmployeeRequest{Name: "Demoted", Role: employee.RoleCashier, PIN: "4321"})
	require.NoError(t, err)
	assert.Equal(t, employee.PermissionsFor(employee.RoleCashier), e.Permissions)

	_, err = svc.Authenticate(ctx, "4321")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "e2", EmployeeRequest{Name: "Clash", Role: employee.RoleCashier, PIN: "0000"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.Update(ctx, "e9", EmployeeRequest{Name: "Ghost", Role: employee.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrUnknownEmployee)
}

func TestEmployees_KeepsLastAdmin(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestGateway(t), testOptions()...)

	err := svc.Deactivate(ctx, "e1")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	require.NoError(t, svc.Deactivate(ctx, "e2"))
	e, err := svc.Get(ctx, "e2")
	require.NoError(t, err)
	assert.False(t, e.IsActive())
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	jwtService, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	svc := NewAuthService(NewEmployeeService(newTestGateway(t)), jwtService)

	res, err := svc.Login(ctx, "0000")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "e1", res.Employee.ID)

	claims, err := jwtService.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "e1", claims.EmployeeID)
	assert.True(t, claims.Can(employee.CapManageEmployees))

	_, err = svc.Login(ctx, "1234")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
