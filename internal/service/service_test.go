package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/adapter/repository"
	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
	"github.com/hugohenrick/tuckshop/internal/seed"
	"github.com/hugohenrick/tuckshop/internal/settlement"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

var testNow = time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

// fakeClock avança um minuto a cada leitura
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.t
	c.t = c.t.Add(time.Minute)
	return t
}

type sequence struct {
	mu sync.Mutex
	n  int
}

func (s *sequence) next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func testOptions() []Option {
	clock := &fakeClock{t: testNow}
	return []Option{WithClock(clock.now), WithIDGenerator((&sequence{}).next)}
}

// newTestGateway retorna um armazenamento em memória com os dados iniciais
func newTestGateway(t *testing.T) store.Gateway {
	t.Helper()
	gw := repository.NewStore(repository.NewMemoryBackend())
	_, err := seed.EnsureInitialData(context.Background(), gw, logger.NewNopLogger())
	require.NoError(t, err)
	return gw
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func getProduct(t *testing.T, gw store.Gateway, id string) *product.Product {
	t.Helper()
	all, err := gw.Products().FindAll(context.Background())
	require.NoError(t, err)
	p := product.FindByID(all, id)
	require.NotNil(t, p, id)
	return p
}

func getStudent(t *testing.T, gw store.Gateway, id string) *student.Student {
	t.Helper()
	all, err := gw.Students().FindAll(context.Background())
	require.NoError(t, err)
	s := student.FindByID(all, id)
	require.NotNil(t, s, id)
	return s
}

func TestCheckout_WalletSale(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewCheckoutService(gw, testOptions()...)

	tx, err := svc.Settle(ctx, settlement.Request{
		Cart:          []settlement.CartLine{{ProductID: "p1", Quantity: 3}},
		StudentID:     "s1",
		PaymentMethod: transaction.PaymentWallet,
		EmployeeID:    "e2",
		Discount:      decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", tx.ID)
	assert.Equal(t, testNow, tx.Timestamp)
	assertMoney(t, "4.50", tx.Total)

	assert.Equal(t, 47, getProduct(t, gw, "p1").StockQuantity)
	alex := getStudent(t, gw, "s1")
	assertMoney(t, "21.00", alex.WalletBalance)
	assertMoney(t, "4.50", alex.SpentTodayAt(testNow))

	txs, err := gw.Transactions().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "s1", txs[0].StudentID)
}

func TestCheckout_CompositeSaleDrawsComponents(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewCheckoutService(gw, testOptions()...)

	_, err := svc.Settle(ctx, settlement.Request{
		Cart:          []settlement.CartLine{{ProductID: "p5", Quantity: 2}, {ProductID: "p6", VariantID: "m", Quantity: 1}},
		PaymentMethod: transaction.PaymentCash,
		EmployeeID:    "e2",
		Discount:      money("1.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 18, getProduct(t, gw, "p2").StockQuantity)
	assert.Equal(t, 48, getProduct(t, gw, "p1").StockQuantity)
	assert.Equal(t, 9, getProduct(t, gw, "p6").FindVariant("m").StockQuantity)
}

func TestCheckout_RejectedSaleChangesNothing(t *testing.T) {
	tests := []struct {
		name    string
		req     settlement.Request
		wantErr error
	}{
		{
			name: "produto restrito",
			req: settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p4", Quantity: 1}},
				StudentID:     "s1",
				PaymentMethod: transaction.PaymentWallet,
			},
			wantErr: domain.ErrRestrictedProduct,
		},
		{
			name: "limite diário",
			req: settlement.Request{
				Cart: []settlement.CartLine{
					{ProductID: "p1", Quantity: 2}, {ProductID: "p3", Quantity: 1}, {ProductID: "p4", Quantity: 1},
				},
				StudentID:     "s2",
				PaymentMethod: transaction.PaymentWallet,
			},
			wantErr: domain.ErrDailyLimitExceeded,
		},
		{
			name: "saldo insuficiente",
			req: settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p2", Quantity: 2}},
				StudentID:     "s2",
				PaymentMethod: transaction.PaymentWallet,
			},
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name: "carteira sem aluno",
			req: settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p1", Quantity: 1}},
				PaymentMethod: transaction.PaymentWallet,
			},
			wantErr: domain.ErrWalletRequiresStudent,
		},
		{
			name: "estoque insuficiente",
			req: settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p6", VariantID: "l", Quantity: 7}},
				PaymentMethod: transaction.PaymentCash,
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "aluno desconhecido",
			req: settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p1", Quantity: 1}},
				StudentID:     "ghost",
				PaymentMethod: transaction.PaymentCash,
			},
			wantErr: domain.ErrUnknownStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gw := newTestGateway(t)
			svc := NewCheckoutService(gw, testOptions()...)
			tt.req.EmployeeID = "e2"
			tt.req.Discount = decimal.Zero

			_, err := svc.Settle(ctx, tt.req)
			require.ErrorIs(t, err, tt.wantErr)

			txs, err := gw.Transactions().FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, txs)
			assert.Equal(t, 50, getProduct(t, gw, "p1").StockQuantity)
			assert.Equal(t, 20, getProduct(t, gw, "p2").StockQuantity)
			assertMoney(t, "5.20", getStudent(t, gw, "s2").WalletBalance)
			assertMoney(t, "25.50", getStudent(t, gw, "s1").WalletBalance)
		})
	}
}

func TestCheckout_ConcurrentSalesKeepStockConsistent(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewCheckoutService(gw, testOptions()...)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Settle(ctx, settlement.Request{
				Cart:          []settlement.CartLine{{ProductID: "p3", Quantity: 2}},
				PaymentMethod: transaction.PaymentCard,
				EmployeeID:    "e2",
				Discount:      decimal.Zero,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 80, getProduct(t, gw, "p3").StockQuantity)
	txs, err := gw.Transactions().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 10)
}

func TestSettings_Update(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewSettingsService(gw)

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.CurrencyUSD, cfg.Currency)

	_, err = svc.Update(ctx, settings.Settings{Currency: settings.CurrencyBWP})
	require.NoError(t, err)
	cfg, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.CurrencyBWP, cfg.Currency)

	_, err = svc.Update(ctx, settings.Settings{Currency: "EUR"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
