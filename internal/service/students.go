package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

// StudentRequest são os dados editáveis de um aluno
type StudentRequest struct {
	Name               string
	Grade              string
	InitialBalance     decimal.Decimal // usado apenas na criação
	DailySpendLimit    decimal.Decimal
	RestrictedProducts []string
	ImageURL           string
}

// StudentService gerencia alunos e suas carteiras
type StudentService struct {
	gw store.Gateway
	options
}

// NewStudentService cria o serviço de alunos
func NewStudentService(gw store.Gateway, opts ...Option) *StudentService {
	return &StudentService{gw: gw, options: newOptions(opts)}
}

// List retorna os alunos; query filtra por nome ou turma
func (s *StudentService) List(ctx context.Context, query string) ([]*student.Student, error) {
	all, err := s.gw.Students().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	now := s.now()

	out := make([]*student.Student, 0, len(all))
	for _, st := range all {
		if query == "" || strings.Contains(strings.ToLower(st.Name), query) || strings.ToLower(st.Grade) == query {
			out = append(out, st.AsOf(now))
		}
	}
	return out, nil
}

// Get busca um aluno pelo ID ou pelo QR code
func (s *StudentService) Get(ctx context.Context, idOrCode string) (*student.Student, error) {
	all, err := s.gw.Students().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range all {
		if st.ID == idOrCode || st.QRCode == idOrCode {
			return st.AsOf(s.now()), nil
		}
	}
	return nil, domain.NewError("students.Get", domain.KindUnknownStudent, idOrCode, "")
}

// Create cadastra um aluno com PIN aleatório
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*student.Student, error) {
	const op = "students.Create"

	if req.InitialBalance.IsNegative() {
		return nil, domain.Invalid(op, "saldo inicial não pode ser negativo")
	}
	st, err := student.NewStudent(s.newID(), strings.TrimSpace(req.Name), req.Grade, req.InitialBalance, req.DailySpendLimit)
	if err != nil {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, "", err)
	}
	if req.RestrictedProducts != nil {
		st.RestrictedProducts = req.RestrictedProducts
	}
	st.ImageURL = req.ImageURL

	err = s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Students().FindAll(ctx)
		if err != nil {
			return err
		}
		return s.gw.Students().ReplaceAll(ctx, append(all, st))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("aluno criado", "id", st.ID, "grade", st.Grade)
	return st, nil
}

// Update altera nome, turma, limite, restrições e foto. Saldo e gasto do
// dia só mudam por recarga e venda.
func (s *StudentService) Update(ctx context.Context, id string, req StudentRequest) (*student.Student, error) {
	const op = "students.Update"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, id, student.ErrEmptyName)
	}
	if req.DailySpendLimit.IsNegative() {
		return nil, domain.Wrap(op, domain.KindInvalidRequest, id, student.ErrNegativeLimit)
	}

	var updated *student.Student
	err := s.mutate(ctx, op, id, func(st *student.Student) error {
		st.Name = name
		st.Grade = req.Grade
		st.DailySpendLimit = req.DailySpendLimit
		if req.RestrictedProducts != nil {
			st.RestrictedProducts = req.RestrictedProducts
		}
		st.ImageURL = req.ImageURL
		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated.AsOf(s.now()), nil
}

// Delete remove um aluno. As vendas já registradas continuam no histórico.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Students().FindAll(ctx)
		if err != nil {
			return err
		}
		kept := make([]*student.Student, 0, len(all))
		for _, st := range all {
			if st.ID != id {
				kept = append(kept, st)
			}
		}
		if len(kept) == len(all) {
			return domain.NewError("students.Delete", domain.KindUnknownStudent, id, "")
		}
		return s.gw.Students().ReplaceAll(ctx, kept)
	})
}

// TopUp adiciona saldo à carteira do aluno
func (s *StudentService) TopUp(ctx context.Context, id string, amount decimal.Decimal) (*student.Student, error) {
	const op = "students.TopUp"

	var updated *student.Student
	err := s.mutate(ctx, op, id, func(st *student.Student) error {
		if err := st.TopUp(amount); err != nil {
			return domain.Wrap(op, domain.KindInvalidRequest, id, err)
		}
		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("recarga de carteira", "student_id", id, "amount", amount.StringFixed(2),
		"balance", updated.WalletBalance.StringFixed(2))
	return updated.AsOf(s.now()), nil
}

// History retorna as vendas do aluno, da mais recente à mais antiga
func (s *StudentService) History(ctx context.Context, id string) ([]*transaction.Transaction, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	txs, err := s.gw.Transactions().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*transaction.Transaction, 0)
	for _, tx := range txs {
		if tx.StudentID == id {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *StudentService) mutate(ctx context.Context, op, id string, fn func(*student.Student) error) error {
	return s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Students().FindAll(ctx)
		if err != nil {
			return err
		}
		st := student.FindByID(all, id)
		if st == nil {
			return domain.NewError(op, domain.KindUnknownStudent, id, "")
		}
		if err := fn(st); err != nil {
			return err
		}
		return s.gw.Students().ReplaceAll(ctx, all)
	})
}
