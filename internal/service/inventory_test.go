package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/inventory"
)

func TestInventory_AdjustAndStocktake(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewInventoryService(gw, testOptions()...)

	adj, err := svc.Adjust(ctx, AdjustRequest{
		ProductID: "p3", QuantityChange: -5, Reason: inventory.ReasonDamage, EmployeeID: "e1", Note: "pacotes rasgados",
	})
	require.NoError(t, err)
	assert.Equal(t, -5, adj.QuantityChange)
	assert.Nil(t, adj.ExpectedStock)
	assert.Equal(t, 95, getProduct(t, gw, "p3").StockQuantity)

	count, err := svc.Stocktake(ctx, StocktakeRequest{ProductID: "p3", ActualStock: 90, EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, inventory.ReasonInventoryCount, count.Reason)
	require.NotNil(t, count.ExpectedStock)
	require.NotNil(t, count.ActualStock)
	assert.Equal(t, 95, *count.ExpectedStock)
	assert.Equal(t, 90, *count.ActualStock)
	assert.Equal(t, -5, count.QuantityChange)
	assert.Equal(t, 90, getProduct(t, gw, "p3").StockQuantity)

	log, err := svc.ListAdjustments(ctx, "p3")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, count.ID, log[0].ID)
	assert.Equal(t, adj.ID, log[1].ID)

	other, err := svc.ListAdjustments(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestInventory_StocktakeWithoutDifferenceIsRecorded(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewInventoryService(gw, testOptions()...)

	adj, err := svc.Stocktake(ctx, StocktakeRequest{ProductID: "p1", ActualStock: 50})
	require.NoError(t, err)
	assert.Zero(t, adj.QuantityChange)
	assert.Equal(t, 50, getProduct(t, gw, "p1").StockQuantity)

	log, err := svc.ListAdjustments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, log, 1)
}

func TestInventory_AdjustVariantAllowsNegative(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewInventoryService(gw, testOptions()...)

	_, err := svc.Adjust(ctx, AdjustRequest{ProductID: "p6", VariantID: "l", QuantityChange: -8, Reason: inventory.ReasonWaste})
	require.NoError(t, err)

	shirt := getProduct(t, gw, "p6")
	assert.Equal(t, -2, shirt.FindVariant("l").StockQuantity)
	assert.Equal(t, 10, shirt.FindVariant("m").StockQuantity)
}

func TestInventory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     AdjustRequest
		wantErr error
	}{
		{"variação zero", AdjustRequest{ProductID: "p1", Reason: inventory.ReasonRestock}, domain.ErrInvalidRequest},
		{"motivo desconhecido", AdjustRequest{ProductID: "p1", QuantityChange: 1, Reason: "theft"}, domain.ErrInvalidRequest},
		{"produto desconhecido", AdjustRequest{ProductID: "ghost", QuantityChange: 1, Reason: inventory.ReasonRestock}, domain.ErrUnknownProduct},
		{"composto", AdjustRequest{ProductID: "p5", QuantityChange: 1, Reason: inventory.ReasonRestock}, domain.ErrInvalidRequest},
		{"variação ausente", AdjustRequest{ProductID: "p6", QuantityChange: 1, Reason: inventory.ReasonRestock}, domain.ErrInvalidRequest},
		{"variação desconhecida", AdjustRequest{ProductID: "p6", VariantID: "xl", QuantityChange: 1, Reason: inventory.ReasonRestock}, domain.ErrUnknownProduct},
		{"variação em produto simples", AdjustRequest{ProductID: "p1", VariantID: "s", QuantityChange: 1, Reason: inventory.ReasonRestock}, domain.ErrUnknownProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gw := newTestGateway(t)
			svc := NewInventoryService(gw, testOptions()...)

			_, err := svc.Adjust(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			log, err := svc.ListAdjustments(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, log)
		})
	}

	t.Run("contagem negativa", func(t *testing.T) {
		svc := NewInventoryService(newTestGateway(t), testOptions()...)
		_, err := svc.Stocktake(context.Background(), StocktakeRequest{ProductID: "p1", ActualStock: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}
