// Package store define o contrato do gateway de persistência: um conjunto de
// coleções independentes, cada uma lida e gravada por inteiro.
package store

import (
	"context"

	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/domain/inventory"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

// Changes agrupa coleções que devem ser gravadas juntas. Um campo nil
// significa coleção inalterada; para gravar uma coleção vazia use um slice
// vazio não nil.
type Changes struct {
	Products       []*product.Product
	Categories     []*product.Category
	Students       []*student.Student
	Employees      []*employee.Employee
	Transactions   []*transaction.Transaction
	Adjustments    []*inventory.Adjustment
	PurchaseOrders []*purchase.Order
	Suppliers      []*purchase.Supplier
	Settings       *settings.Settings
}

// Empty verifica se não há nada a gravar
func (c Changes) Empty() bool {
	return c.Products == nil && c.Categories == nil && c.Students == nil &&
		c.Employees == nil && c.Transactions == nil && c.Adjustments == nil &&
		c.PurchaseOrders == nil && c.Suppliers == nil && c.Settings == nil
}

// Gateway é o acesso às coleções persistidas da cantina
type Gateway interface {
	Products() product.Repository
	Categories() product.CategoryRepository
	Students() student.Repository
	Employees() employee.Repository
	Transactions() transaction.Repository
	Adjustments() inventory.Repository
	PurchaseOrders() purchase.Repository
	Suppliers() purchase.SupplierRepository
	Settings() settings.Repository

	// Commit grava todas as coleções alteradas numa única operação do backend
	Commit(ctx context.Context, changes Changes) error

	// Exclusive executa fn como único escritor do processo. Leituras seguidas
	// de gravação (read-modify-write) devem acontecer dentro de fn.
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error

	// Initialized informa se o armazenamento já recebeu dados
	Initialized(ctx context.Context) (bool, error)

	Close() error
}
