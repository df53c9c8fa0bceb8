package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
)

func TestCatalog_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestGateway(t), testOptions()...)

	p, err := svc.CreateProduct(ctx, &product.Product{
		Name: " Banana ", CategoryID: "1", SellingPrice: money("0.60"), StockQuantity: 30, TrackStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "Banana", p.Name)

	all, err := svc.ListProducts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	active, err := svc.ListProducts(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 6)

	_, err = svc.CreateProduct(ctx, &product.Product{ID: "p1", Name: "Duplicate"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.CreateProduct(ctx, &product.Product{Name: "Bad", SellingPrice: money("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestCatalog_CompositeValidation(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewCatalogService(gw, testOptions()...)

	sandwich, err := svc.GetProduct(ctx, "p2")
	require.NoError(t, err)
	sandwich.IsComposite = true
	sandwich.Components = []product.Component{{ProductID: "p5", Quantity: 1}}

	_, err = svc.UpdateProduct(ctx, sandwich)
	assert.ErrorIs(t, err, domain.ErrCompositeCycle)
	assert.False(t, getProduct(t, gw, "p2").IsComposite)

	_, err = svc.CreateProduct(ctx, &product.Product{
		Name: "Mystery Box", IsComposite: true, TrackStock: true,
		Components: []product.Component{{ProductID: "ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)

	box, err := svc.CreateProduct(ctx, &product.Product{
		Name: "Snack Box", IsComposite: true, TrackStock: true, SellingPrice: money("2.00"),
		Components: []product.Component{{ProductID: "p3", Quantity: 1}, {ProductID: "p4", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, box.Components, 2)
}

func TestCatalog_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestGateway(t), testOptions()...)

	err := svc.DeleteProduct(ctx, "p2")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest, "componente do combo")

	require.NoError(t, svc.DeleteProduct(ctx, "p3"))
	_, err = svc.GetProduct(ctx, "p3")
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)

	err = svc.DeleteProduct(ctx, "p3")
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)

	_, err = svc.UpdateProduct(ctx, &product.Product{ID: "p3", Name: "Chips"})
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestCatalog_Categories(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestGateway(t), testOptions()...)

	_, err := svc.CreateCategory(ctx, "", "bg-red-500")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	c, err := svc.CreateCategory(ctx, "Fruit", "bg-yellow-500")
	require.NoError(t, err)
	assert.Equal(t, "Fruit", c.Name)

	all, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
