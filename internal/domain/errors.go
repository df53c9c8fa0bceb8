package domain

import (
	"errors"
	"fmt"
)

// Kind classifica uma falha de domínio
type Kind string

const (
	KindInvalidRequest        Kind = "invalid_request"
	KindUnknownProduct        Kind = "unknown_product"
	KindUnknownStudent        Kind = "unknown_student"
	KindUnknownEmployee       Kind = "unknown_employee"
	KindUnknownPurchaseOrder  Kind = "unknown_purchase_order"
	KindUnknownSupplier       Kind = "unknown_supplier"
	KindRestrictedProduct     Kind = "restricted_product"
	KindWalletRequiresStudent Kind = "wallet_requires_student"
	KindInsufficientBalance   Kind = "insufficient_balance"
	KindDailyLimitExceeded    Kind = "daily_limit_exceeded"
	KindInsufficientStock     Kind = "insufficient_stock"
	KindCompositeCycle        Kind = "composite_cycle"
	KindInvalidCredentials    Kind = "invalid_credentials"
)

// Erros sentinela, comparáveis com errors.Is
var (
	ErrInvalidRequest        = errors.New("requisição inválida")
	ErrUnknownProduct        = errors.New("produto não encontrado")
	ErrUnknownStudent        = errors.New("aluno não encontrado")
	ErrUnknownEmployee       = errors.New("funcionário não encontrado")
	ErrUnknownPurchaseOrder  = errors.New("pedido de compra não encontrado")
	ErrUnknownSupplier       = errors.New("fornecedor não encontrado")
	ErrRestrictedProduct     = errors.New("produto restrito para o aluno")
	ErrWalletRequiresStudent = errors.New("pagamento por carteira exige um aluno")
	ErrInsufficientBalance   = errors.New("saldo insuficiente na carteira")
	ErrDailyLimitExceeded    = errors.New("limite diário de gastos excedido")
	ErrInsufficientStock     = errors.New("estoque insuficiente")
	ErrCompositeCycle        = errors.New("produto composto referencia a si mesmo")
	ErrInvalidCredentials    = errors.New("PIN inválido")
)

var sentinels = map[Kind]error{
	KindInvalidRequest:        ErrInvalidRequest,
	KindUnknownProduct:        ErrUnknownProduct,
	KindUnknownStudent:        ErrUnknownStudent,
	KindUnknownEmployee:       ErrUnknownEmployee,
	KindUnknownPurchaseOrder:  ErrUnknownPurchaseOrder,
	KindUnknownSupplier:       ErrUnknownSupplier,
	KindRestrictedProduct:     ErrRestrictedProduct,
	KindWalletRequiresStudent: ErrWalletRequiresStudent,
	KindInsufficientBalance:   ErrInsufficientBalance,
	KindDailyLimitExceeded:    ErrDailyLimitExceeded,
	KindInsufficientStock:     ErrInsufficientStock,
	KindCompositeCycle:        ErrCompositeCycle,
	KindInvalidCredentials:    ErrInvalidCredentials,
}

// Error carrega o contexto de uma falha de domínio: a operação, o tipo e a
// entidade envolvida. Todas as falhas são recuperáveis e reportadas ao chamador.
type Error struct {
	Op      string // Operação que falhou (ex.: "settlement.Settle")
	Kind    Kind   // Tipo da falha
	ID      string // ID opcional da entidade envolvida
	Message string // Mensagem legível
	Err     error  // Erro sentinela encapsulado
}

// Error retorna a representação textual do erro
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.ID != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Op, e.ID, msg)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap permite o uso de errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError cria um erro de domínio do tipo informado
func NewError(op string, kind Kind, id, message string) *Error {
	return &Error{
		Op:      op,
		Kind:    kind,
		ID:      id,
		Message: message,
		Err:     sentinels[kind],
	}
}

// Invalid cria um erro do tipo InvalidRequest
func Invalid(op, format string, args ...interface{}) *Error {
	return NewError(op, KindInvalidRequest, "", fmt.Sprintf(format, args...))
}

// Wrap converte um erro de validação de entidade num erro de domínio
func Wrap(op string, kind Kind, id string, err error) *Error {
	return NewError(op, kind, id, err.Error())
}

// KindOf retorna o tipo de um erro de domínio, ou "" se não for um
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsNotFound verifica se o erro representa uma entidade inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrUnknownStudent) ||
		errors.Is(err, ErrUnknownEmployee) ||
		errors.Is(err, ErrUnknownPurchaseOrder) ||
		errors.Is(err, ErrUnknownSupplier)
}

// IsBusinessRule verifica se o erro é uma regra de negócio violada na venda
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrRestrictedProduct) ||
		errors.Is(err, ErrWalletRequiresStudent) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrDailyLimitExceeded) ||
		errors.Is(err, ErrInsufficientStock)
}
