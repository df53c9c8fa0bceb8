// Package settlement converte um carrinho e uma forma de pagamento numa venda
// registrada mais as mutações de estoque e carteira que ela implica. O motor é
// puro: lê um snapshot, valida e devolve as mutações, sem gravar nada.
package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

const opSettle = "settlement.Settle"

// CartLine é uma linha do carrinho. Linhas do mesmo produto/variação devem
// ser agrupadas pelo chamador.
type CartLine struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Request descreve uma venda a liquidar. StudentID vazio é um cliente avulso.
type Request struct {
	Cart          []CartLine
	StudentID     string
	PaymentMethod transaction.PaymentMethod
	EmployeeID    string
	Discount      decimal.Decimal
}

// Snapshot é o estado atual, somente leitura, fornecido pelo gateway
type Snapshot struct {
	Products []*product.Product
	Student  *student.Student
}

// StockDelta é uma baixa primitiva de estoque (Quantity negativo)
type StockDelta struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// WalletDelta é a mutação da carteira de um aluno
type WalletDelta struct {
	StudentID       string          `json:"student_id"`
	BalanceDelta    decimal.Decimal `json:"balance_delta"`
	SpentTodayDelta decimal.Decimal `json:"spent_today_delta"`
}

// Result é o produto de uma liquidação bem-sucedida
type Result struct {
	Transaction *transaction.Transaction
	StockDeltas []StockDelta
	Wallet      *WalletDelta
}

// Engine liquida vendas. Relógio e gerador de IDs são injetados.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configura o Engine
type Option func(*Engine)

// WithClock define o relógio usado no carimbo da venda e no limite diário
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator define o gerador de IDs das vendas
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// NewEngine cria um novo motor de liquidação
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settle valida a venda contra o snapshot e calcula as mutações. Em caso de
// erro nada é produzido.
func (e *Engine) Settle(req Request, snap Snapshot) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	products := product.Index(snap.Products)

	// Resolver produtos e fixar preços no momento da liquidação
	items := make([]transaction.Item, 0, len(req.Cart))
	subtotal := decimal.Zero
	for _, line := range req.Cart {
		p, v, err := resolveLine(products, line)
		if err != nil {
			return nil, err
		}
		price := p.PriceFor(v)
		items = append(items, transaction.Item{
			ProductID:   line.ProductID,
			VariantID:   line.VariantID,
			Quantity:    line.Quantity,
			PriceAtSale: price,
		})
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	var payer *student.Student
	if req.StudentID != "" {
		if snap.Student == nil || snap.Student.ID != req.StudentID {
			return nil, domain.NewError(opSettle, domain.KindUnknownStudent, req.StudentID, "")
		}
		payer = snap.Student
		for _, line := range req.Cart {
			if payer.IsRestricted(line.ProductID) {
				return nil, domain.NewError(opSettle, domain.KindRestrictedProduct, line.ProductID, "")
			}
		}
	}

	if req.Discount.GreaterThan(subtotal) {
		return nil, domain.Invalid(opSettle, "desconto %s maior que o subtotal %s", req.Discount, subtotal)
	}
	total := subtotal.Sub(req.Discount)
	now := e.now()

	var wallet *WalletDelta
	if req.PaymentMethod == transaction.PaymentWallet {
		if payer == nil {
			return nil, domain.NewError(opSettle, domain.KindWalletRequiresStudent, "", "")
		}
		if payer.WalletBalance.LessThan(total) {
			return nil, domain.NewError(opSettle, domain.KindInsufficientBalance, payer.ID, "")
		}
		if total.GreaterThan(payer.RemainingToday(now)) {
			return nil, domain.NewError(opSettle, domain.KindDailyLimitExceeded, payer.ID, "")
		}
		wallet = &WalletDelta{
			StudentID:       payer.ID,
			BalanceDelta:    total.Neg(),
			SpentTodayDelta: total,
		}
	}

	deltas, err := Expand(products, req.Cart)
	if err != nil {
		return nil, err
	}
	if err := checkStock(products, deltas); err != nil {
		return nil, err
	}

	tx := &transaction.Transaction{
		ID:            e.newID(),
		Timestamp:     now,
		EmployeeID:    req.EmployeeID,
		StudentID:     req.StudentID,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      req.Discount,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Status:        transaction.StatusCompleted,
	}

	return &Result{
		Transaction: tx,
		StockDeltas: deltas,
		Wallet:      wallet,
	}, nil
}

func validateRequest(req Request) error {
	if len(req.Cart) == 0 {
		return domain.Invalid(opSettle, "carrinho vazio")
	}
	for _, line := range req.Cart {
		if line.ProductID == "" {
			return domain.Invalid(opSettle, "linha sem produto")
		}
		if line.Quantity < 1 {
			return domain.Invalid(opSettle, "quantidade inválida para %s: %d", line.ProductID, line.Quantity)
		}
	}
	if !req.PaymentMethod.Valid() {
		return domain.Invalid(opSettle, "forma de pagamento desconhecida: %q", req.PaymentMethod)
	}
	if req.Discount.IsNegative() {
		return domain.Invalid(opSettle, "desconto negativo")
	}
	return nil
}

func resolveLine(products map[string]*product.Product, line CartLine) (*product.Product, *product.Variant, error) {
	p, ok := products[line.ProductID]
	if !ok {
		return nil, nil, domain.NewError(opSettle, domain.KindUnknownProduct, line.ProductID, "")
	}
	if line.VariantID != "" {
		v := p.FindVariant(line.VariantID)
		if v == nil {
			return nil, nil, domain.NewError(opSettle, domain.KindUnknownProduct, line.ProductID+"/"+line.VariantID, "variação não encontrada")
		}
		return p, v, nil
	}
	if p.HasVariants() && !p.IsComposite {
		return nil, nil, domain.Invalid(opSettle, "produto %s exige uma variação", p.ID)
	}
	return p, nil, nil
}

func checkStock(products map[string]*product.Product, deltas []StockDelta) error {
	for _, d := range deltas {
		p := products[d.ProductID]
		available := p.StockQuantity
		if d.VariantID != "" {
			available = p.FindVariant(d.VariantID).StockQuantity
		}
		if available < -d.Quantity {
			id := d.ProductID
			if d.VariantID != "" {
				id += "/" + d.VariantID
			}
			return domain.NewError(opSettle, domain.KindInsufficientStock, id, "")
		}
	}
	return nil
}
