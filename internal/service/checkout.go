package service

import (
	"context"

	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
	"github.com/hugohenrick/tuckshop/internal/settlement"
)

// CheckoutService liquida vendas do PDV
type CheckoutService struct {
	gw     store.Gateway
	engine *settlement.Engine
	options
}

// NewCheckoutService cria o serviço de checkout
func NewCheckoutService(gw store.Gateway, opts ...Option) *CheckoutService {
	o := newOptions(opts)
	return &CheckoutService{
		gw:      gw,
		engine:  settlement.NewEngine(settlement.WithClock(o.now), settlement.WithIDGenerator(o.newID)),
		options: o,
	}
}

// Settle valida a venda e grava, numa única operação, o estoque, a carteira
// do aluno e a venda. Em caso de erro nada é gravado.
func (s *CheckoutService) Settle(ctx context.Context, req settlement.Request) (*transaction.Transaction, error) {
	var result *settlement.Result

	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}

		var students []*student.Student
		var payer *student.Student
		if req.StudentID != "" {
			students, err = s.gw.Students().FindAll(ctx)
			if err != nil {
				return err
			}
			payer = student.FindByID(students, req.StudentID)
		}

		result, err = s.engine.Settle(req, settlement.Snapshot{Products: products, Student: payer})
		if err != nil {
			return err
		}

		txs, err := s.gw.Transactions().FindAll(ctx)
		if err != nil {
			return err
		}

		// products e students são cópias recém-lidas do gateway
		changes := store.Changes{Transactions: append(txs, result.Transaction)}
		if len(result.StockDeltas) > 0 {
			if err := settlement.ApplyStock(products, result.StockDeltas); err != nil {
				return err
			}
			changes.Products = products
		}
		if result.Wallet != nil {
			settlement.ApplyWallet(payer, result.Wallet, result.Transaction.Timestamp)
			changes.Students = students
		}

		return s.gw.Commit(ctx, changes)
	})
	if err != nil {
		s.logger.Debug("venda recusada", "student_id", req.StudentID, "error", err)
		return nil, err
	}

	s.logger.Info("venda registrada",
		"id", result.Transaction.ID,
		"total", result.Transaction.Total.StringFixed(2),
		"payment", result.Transaction.PaymentMethod,
		"student_id", result.Transaction.StudentID,
	)
	return result.Transaction, nil
}
