package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	e, err := NewEmployee("e9", "Cashier", "4321", RoleCashier)
	require.NoError(t, err)
	assert.NotEqual(t, "4321", e.PIN)
	assert.True(t, e.CheckPIN("4321"))
	assert.False(t, e.CheckPIN("1234"))
	assert.True(t, e.Can(CapAccessPOS))
	assert.False(t, e.Can(CapManageEmployees))

	e.Active = false
	assert.False(t, e.Can(CapAccessPOS))

	tests := []struct {
		name string
		pin  string
		role Role
		want error
	}{
		{"PIN curto", "123", RoleCashier, ErrInvalidPIN},
		{"PIN com letras", "12a4", RoleCashier, ErrInvalidPIN},
		{"papel inválido", "1234", Role("owner"), ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmployee("e9", "X", tt.pin, tt.role)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPermissions(t *testing.T) {
	all := AllPermissions()
	for _, c := range Capabilities {
		assert.True(t, all.Has(c), c)
	}
	assert.False(t, all.Has(Capability("launchRockets")))

	var p Permissions
	assert.True(t, p.Set(CapExportReports, true))
	assert.True(t, p.ExportReports)
	assert.False(t, p.Set(Capability("launchRockets"), true))

	assert.Equal(t, all, PermissionsFor(RoleAdmin))
	assert.Equal(t, DefaultPermissions(), PermissionsFor(RoleManager))
}
