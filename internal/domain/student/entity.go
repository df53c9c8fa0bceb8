package student

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("nome do aluno não pode ser vazio")
	ErrNegativeLimit      = errors.New("limite diário não pode ser negativo")
	ErrInvalidTopUpAmount = errors.New("valor da recarga deve ser maior que zero")
)

// dateLayout é o formato do dia calendário usado em SpentOn
const dateLayout = "2006-01-02"

// Student representa um aluno com carteira pré-paga
type Student struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Grade              string          `json:"grade"`
	WalletBalance      decimal.Decimal `json:"wallet_balance"`
	DailySpendLimit    decimal.Decimal `json:"daily_spend_limit"`
	SpentToday         decimal.Decimal `json:"spent_today"`
	SpentOn            string          `json:"spent_on,omitempty"` // dia (AAAA-MM-DD) do último gasto
	RestrictedProducts []string        `json:"restricted_products"`
	PIN                string          `json:"pin"`
	QRCode             string          `json:"qr_code"`
	ImageURL           string          `json:"image_url,omitempty"`
}

// NewStudent cria um novo aluno com PIN aleatório de 4 dígitos
func NewStudent(id, name, grade string, balance, dailyLimit decimal.Decimal) (*Student, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if dailyLimit.IsNegative() {
		return nil, ErrNegativeLimit
	}
	return &Student{
		ID:                 id,
		Name:               name,
		Grade:              grade,
		WalletBalance:      balance,
		DailySpendLimit:    dailyLimit,
		SpentToday:         decimal.Zero,
		RestrictedProducts: []string{},
		PIN:                fmt.Sprintf("%04d", 1000+rand.IntN(9000)),
		QRCode:             "QR_" + id,
	}, nil
}

// IsRestricted verifica se o aluno não pode comprar o produto
func (s *Student) IsRestricted(productID string) bool {
	for _, id := range s.RestrictedProducts {
		if id == productID {
			return true
		}
	}
	return false
}

// SpentTodayAt retorna o gasto acumulado no dia de now. O acumulador é
// zerado de forma preguiçosa: um SpentOn de outro dia vale zero.
func (s *Student) SpentTodayAt(now time.Time) decimal.Decimal {
	if s.SpentOn != now.Format(dateLayout) {
		return decimal.Zero
	}
	return s.SpentToday
}

// AsOf retorna uma cópia com o gasto do dia já zerado se now for outro dia.
// Leituras devem passar por aqui para não exibir o gasto de ontem.
func (s *Student) AsOf(now time.Time) *Student {
	c := s.Clone()
	c.SpentToday = s.SpentTodayAt(now)
	if c.SpentToday.IsZero() {
		c.SpentOn = ""
	}
	return c
}

// RemainingToday retorna quanto ainda pode ser gasto no dia
func (s *Student) RemainingToday(now time.Time) decimal.Decimal {
	return s.DailySpendLimit.Sub(s.SpentTodayAt(now))
}

// RecordSpend debita a carteira e acumula o gasto do dia
func (s *Student) RecordSpend(balanceDelta, spentDelta decimal.Decimal, now time.Time) {
	s.SpentToday = s.SpentTodayAt(now).Add(spentDelta)
	s.SpentOn = now.Format(dateLayout)
	s.WalletBalance = s.WalletBalance.Add(balanceDelta)
}

// TopUp adiciona saldo à carteira
func (s *Student) TopUp(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidTopUpAmount
	}
	s.WalletBalance = s.WalletBalance.Add(amount)
	return nil
}

// Clone retorna uma cópia profunda do aluno
func (s *Student) Clone() *Student {
	c := *s
	c.RestrictedProducts = append([]string(nil), s.RestrictedProducts...)
	return &c
}

// FindByID busca um aluno na lista
func FindByID(students []*Student, id string) *Student {
	for _, s := range students {
		if s.ID == id {
			return s
		}
	}
	return nil
}
