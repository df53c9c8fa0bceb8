package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/adapter/repository"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

func TestDefault_Fixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	changes, err := f.Changes()
	require.NoError(t, err)

	assert.Len(t, changes.Categories, 5)
	assert.Len(t, changes.Suppliers, 2)
	assert.Equal(t, "orders@freshfoods.com", changes.Suppliers[0].Email)
	require.NotNil(t, changes.Settings)
	assert.Equal(t, settings.CurrencyUSD, changes.Settings.Currency)

	juice := product.FindByID(changes.Products, "p1")
	require.NotNil(t, juice)
	assert.True(t, juice.SellingPrice.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, juice.TrackStock)
	assert.Equal(t, 50, juice.StockQuantity)
	assert.Equal(t, product.DefaultLowStockThreshold, juice.MinStockLevel)

	combo := product.FindByID(changes.Products, "p5")
	require.NotNil(t, combo)
	assert.True(t, combo.IsComposite)
	assert.Len(t, combo.Components, 2)

	shirt := product.FindByID(changes.Products, "p6")
	require.NotNil(t, shirt)
	require.Len(t, shirt.Variants, 3)
	assert.Equal(t, "ST001-L", shirt.Variants[2].SKU)

	alex := student.FindByID(changes.Students, "s1")
	require.NotNil(t, alex)
	assert.Equal(t, []string{"p4"}, alex.RestrictedProducts)
	assert.Equal(t, "QR_ALEX", alex.QRCode)
	assert.Equal(t, "1234", alex.PIN)
	assert.True(t, alex.WalletBalance.Equal(decimal.RequireFromString("25.5")))

	admin := employee.FindByID(changes.Employees, "e1")
	require.NotNil(t, admin)
	assert.NotEqual(t, "0000", admin.PIN)
	assert.True(t, admin.CheckPIN("0000"))
	assert.True(t, admin.IsAdmin())

	cashier := employee.FindByID(changes.Employees, "e2")
	require.NotNil(t, cashier)
	assert.True(t, cashier.CheckPIN("1111"))
	assert.Equal(t, employee.PermissionsFor(employee.RoleCashier), cashier.Permissions)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"yaml inválido", "products: [\n"},
		{"moeda desconhecida", "settings:\n  currency: XYZ\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestChanges_InvalidPrice(t *testing.T) {
	f, err := Parse([]byte("products:\n  - { id: x, name: X, selling_price: abc }\n"))
	require.NoError(t, err)

	_, err = f.Changes()
	assert.ErrorContains(t, err, "produto x")
}

func TestParse_DefaultsCurrency(t *testing.T) {
	f, err := Parse([]byte("categories: []\n"))
	require.NoError(t, err)

	changes, err := f.Changes()
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), *changes.Settings)
	assert.NotNil(t, changes.Products)
	assert.Empty(t, changes.Products)
}

func TestEnsureInitialData(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewStore(repository.NewMemoryBackend())
	log := logger.NewNopLogger()

	seeded, err := EnsureInitialData(ctx, gw, log)
	require.NoError(t, err)
	assert.True(t, seeded)

	ok, err := gw.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	products, err := gw.Products().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	// Estoque alterado depois da carga não é sobrescrito
	products[0].StockQuantity = 1
	require.NoError(t, gw.Products().ReplaceAll(ctx, products))

	seeded, err = EnsureInitialData(ctx, gw, log)
	require.NoError(t, err)
	assert.False(t, seeded)

	products, err = gw.Products().FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, products[0].StockQuantity)
}
