package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

var (
	simFirstNames = []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas",
		"Sarah", "Charles", "Karen"}
	simLastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez"}
	simGrades = []string{"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6", "Grade 7"}
)

// SimulationRequest define o tamanho da massa de dados gerada
type SimulationRequest struct {
	Students int
	Days     int
}

// SimulationResult informa o que foi gerado
type SimulationResult struct {
	Students     int `json:"students"`
	Transactions int `json:"transactions"`
}

// SimulationService gera dados de demonstração
type SimulationService struct {
	gw  store.Gateway
	rng *rand.Rand
	options
}

// NewSimulationService cria o gerador. src nil usa uma semente aleatória.
func NewSimulationService(gw store.Gateway, src rand.Source, opts ...Option) *SimulationService {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &SimulationService{gw: gw, rng: rand.New(src), options: newOptions(opts)}
}

// Seed substitui alunos e vendas por dados gerados: req.Students alunos e
// de 15 a 39 vendas por dia, das 7h às 16h, nos últimos req.Days dias.
// Vendas históricas não alteram estoque nem carteiras.
func (s *SimulationService) Seed(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	const op = "simulation.Seed"

	if req.Students <= 0 {
		req.Students = 50
	}
	if req.Days <= 0 {
		req.Days = 30
	}
	if req.Students > 1000 || req.Days > 365 {
		return nil, domain.Invalid(op, "simulação limitada a 1000 alunos e 365 dias")
	}

	var result *SimulationResult
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		employees, err := s.gw.Employees().FindAll(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 || len(employees) == 0 {
			return domain.Invalid(op, "cadastre produtos e funcionários antes da simulação")
		}

		students := make([]*student.Student, 0, req.Students)
		for i := 0; i < req.Students; i++ {
			id := fmt.Sprintf("S%d", 1000+i)
			st, err := student.NewStudent(id, s.pick(simFirstNames)+" "+s.pick(simLastNames), s.pick(simGrades),
				s.money(10, 110), s.money(5, 20))
			if err != nil {
				return err
			}
			st.ImageURL = "https://i.pravatar.cc/150?u=" + id
			students = append(students, st)
		}

		now := s.now()
		txs := make([]*transaction.Transaction, 0, req.Days*30)
		for d := req.Days; d >= 0; d-- {
			day := now.AddDate(0, 0, -d)
			sales := 15 + s.rng.IntN(25)
			for n := 0; n < sales; n++ {
				at := time.Date(day.Year(), day.Month(), day.Day(), 7+s.rng.IntN(9), s.rng.IntN(60), 0, 0, now.Location())
				if at.After(now) {
					continue
				}

				tx := &transaction.Transaction{
					ID:            s.newID(),
					Timestamp:     at,
					EmployeeID:    employees[s.rng.IntN(len(employees))].ID,
					Discount:      decimal.Zero,
					PaymentMethod: transaction.PaymentCash,
					Status:        transaction.StatusCompleted,
				}
				methods := []transaction.PaymentMethod{transaction.PaymentCash, transaction.PaymentCard}
				if s.rng.Float64() > 0.2 {
					tx.StudentID = students[s.rng.IntN(len(students))].ID
					methods = append(methods, transaction.PaymentWallet)
				}
				tx.PaymentMethod = methods[s.rng.IntN(len(methods))]

				for i := 1 + s.rng.IntN(3); i > 0; i-- {
					p := products[s.rng.IntN(len(products))]
					item := transaction.Item{ProductID: p.ID, Quantity: 1 + s.rng.IntN(2), PriceAtSale: p.SellingPrice}
					if p.HasVariants() {
						v := p.Variants[s.rng.IntN(len(p.Variants))]
						item.VariantID = v.ID
						item.PriceAtSale = v.SellingPrice
					}
					tx.Items = append(tx.Items, item)
				}
				tx.Subtotal = tx.ItemsTotal()
				tx.Total = tx.Subtotal
				txs = append(txs, tx)
			}
		}

		result = &SimulationResult{Students: len(students), Transactions: len(txs)}
		return s.gw.Commit(ctx, store.Changes{Students: students, Transactions: txs})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("simulação gerada", "students", result.Students, "transactions", result.Transactions)
	return result, nil
}

func (s *SimulationService) pick(values []string) string {
	return values[s.rng.IntN(len(values))]
}

// money retorna um valor aleatório em [lo, hi) com 2 casas
func (s *SimulationService) money(lo, hi int) decimal.Decimal {
	cents := int64(lo*100) + s.rng.Int64N(int64((hi-lo)*100))
	return decimal.New(cents, -2)
}
