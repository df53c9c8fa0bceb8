package service

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/adapter/repository"
	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

func TestSimulation_Seed(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewSimulationService(gw, rand.NewPCG(1, 2), testOptions()...)

	res, err := svc.Seed(ctx, SimulationRequest{Students: 20, Days: 3})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Students)
	// 4 dias (hoje incluso), de 15 a 39 vendas por dia, hoje só até 10:30
	assert.GreaterOrEqual(t, res.Transactions, 45)
	assert.LessOrEqual(t, res.Transactions, 4*39)

	students, err := gw.Students().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 20)
	assert.Equal(t, "S1000", students[0].ID)
	for _, st := range students {
		assert.True(t, st.WalletBalance.GreaterThanOrEqual(money("10")), st.ID)
		assert.True(t, st.WalletBalance.LessThan(money("110")), st.ID)
	}

	products, err := gw.Products().FindAll(ctx)
	require.NoError(t, err)
	index := product.Index(products)

	txs, err := gw.Transactions().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, txs, res.Transactions)
	for _, tx := range txs {
		assert.False(t, tx.Timestamp.After(testNow), tx.ID)
		assert.True(t, tx.Total.Equal(tx.ItemsTotal()), tx.ID)
		if tx.PaymentMethod == transaction.PaymentWallet {
			assert.NotEmpty(t, tx.StudentID, tx.ID)
		}
		for _, item := range tx.Items {
			p := index[item.ProductID]
			require.NotNil(t, p)
			if p.HasVariants() {
				assert.NotNil(t, p.FindVariant(item.VariantID), tx.ID)
			}
		}
	}

	// estoque não é alterado pela simulação
	assert.Equal(t, 50, index["p1"].StockQuantity)
}

func TestSimulation_Deterministic(t *testing.T) {
	ctx := context.Background()

	run := func() int {
		gw := newTestGateway(t)
		svc := NewSimulationService(gw, rand.NewPCG(7, 7), testOptions()...)
		res, err := svc.Seed(ctx, SimulationRequest{Students: 5, Days: 2})
		require.NoError(t, err)
		return res.Transactions
	}
	assert.Equal(t, run(), run())
}

func TestSimulation_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewSimulationService(newTestGateway(t), rand.NewPCG(1, 1), testOptions()...)
	_, err := svc.Seed(ctx, SimulationRequest{Students: 5000})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	empty := NewSimulationService(repository.NewStore(repository.NewMemoryBackend()), nil, testOptions()...)
	_, err = empty.Seed(ctx, SimulationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
