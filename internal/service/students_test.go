package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
	"github.com/hugohenrick/tuckshop/internal/settlement"
)

func TestStudents_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestGateway(t), testOptions()...)

	st, err := svc.Create(ctx, StudentRequest{
		Name: "Thabo Molefe", Grade: "Grade 5", InitialBalance: money("12.00"), DailySpendLimit: money("6.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", st.ID)
	assert.Equal(t, "QR_id-1", st.QRCode)
	assert.Len(t, st.PIN, 4)
	assert.NotNil(t, st.RestrictedProducts)

	byCode, err := svc.Get(ctx, "QR_ALEX")
	require.NoError(t, err)
	assert.Equal(t, "s1", byCode.ID)

	grade5, err := svc.List(ctx, "Grade 5")
	require.NoError(t, err)
	assert.Len(t, grade5, 2)

	byName, err := svc.List(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "s2", byName[0].ID)

	_, err = svc.Create(ctx, StudentRequest{Name: "Broke", InitialBalance: money("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	_, err = svc.Create(ctx, StudentRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestStudents_UpdateKeepsWallet(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	svc := NewStudentService(gw, testOptions()...)

	st, err := svc.Update(ctx, "s1", StudentRequest{
		Name: "Alex J.", Grade: "Grade 6", DailySpendLimit: money("12.00"), RestrictedProducts: []string{},
		InitialBalance: money("999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grade 6", st.Grade)
	assert.Empty(t, st.RestrictedProducts)

	stored := getStudent(t, gw, "s1")
	assertMoney(t, "25.50", stored.WalletBalance)
	assertMoney(t, "12.00", stored.DailySpendLimit)

	_, err = svc.Update(ctx, "ghost", StudentRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUnknownStudent)
}

func TestStudents_TopUpAndHistory(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	opts := testOptions()
	svc := NewStudentService(gw, opts...)
	checkout := NewCheckoutService(gw, opts...)

	st, err := svc.TopUp(ctx, "s2", money("10.00"))
	require.NoError(t, err)
	assertMoney(t, "15.20", st.WalletBalance)
	assertMoney(t, "15.20", getStudent(t, gw, "s2").WalletBalance)

	_, err = svc.TopUp(ctx, "s2", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	_, err = svc.TopUp(ctx, "ghost", money("1"))
	assert.ErrorIs(t, err, domain.ErrUnknownStudent)

	for i := 0; i < 2; i++ {
		_, err := checkout.Settle(ctx, settlement.Request{
			Cart:          []settlement.CartLine{{ProductID: "p3", Quantity: 1}},
			StudentID:     "s2",
			PaymentMethod: transaction.PaymentWallet,
			EmployeeID:    "e2",
			Discount:      decimal.Zero,
		})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))

	empty, err := svc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.History(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownStudent)
}

func TestStudents_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestGateway(t), testOptions()...)

	require.NoError(t, svc.Delete(ctx, "s2"))
	assert.ErrorIs(t, svc.Delete(ctx, "s2"), domain.ErrUnknownStudent)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStudents_ReadResetsSpentTodayOnNewDay(t *testing.T) {
	ctx := context.Background()
	gw := newTestGateway(t)
	opts := testOptions()
	checkout := NewCheckoutService(gw, opts...)

	_, err := checkout.Settle(ctx, settlement.Request{
		Cart:          []settlement.CartLine{{ProductID: "p1", Quantity: 3}},
		StudentID:     "s1",
		PaymentMethod: transaction.PaymentWallet,
		EmployeeID:    "e2",
		Discount:      decimal.Zero,
	})
	require.NoError(t, err)

	today, err := NewStudentService(gw, opts...).Get(ctx, "s1")
	require.NoError(t, err)
	assertMoney(t, "4.50", today.SpentToday)

	tomorrow := NewStudentService(gw, WithClock(func() time.Time { return testNow.AddDate(0, 0, 1) }))
	st, err := tomorrow.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, st.SpentToday.IsZero())
	assertMoney(t, "21.00", st.WalletBalance)

	all, err := tomorrow.List(ctx, "")
	require.NoError(t, err)
	for _, st := range all {
		assert.True(t, st.SpentToday.IsZero(), st.ID)
	}

	// o registro gravado não é alterado pela leitura
	assertMoney(t, "4.50", getStudent(t, gw, "s1").SpentToday)
}
