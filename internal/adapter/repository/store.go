package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/domain/inventory"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

// Nomes das coleções no backend
const (
	CollectionProducts       = "products"
	CollectionCategories     = "categories"
	CollectionStudents       = "students"
	CollectionEmployees      = "employees"
	CollectionTransactions   = "transactions"
	CollectionAdjustments    = "adjustments"
	CollectionPurchaseOrders = "purchase_orders"
	CollectionSuppliers      = "suppliers"
	CollectionSettings       = "settings"
)

// Store implementa store.Gateway sobre qualquer Backend
type Store struct {
	backend Backend
	writer  sync.Mutex

	products       *Collection[*product.Product]
	categories     *Collection[*product.Category]
	students       *Collection[*student.Student]
	employees      *Collection[*employee.Employee]
	transactions   *Collection[*transaction.Transaction]
	adjustments    *Collection[*inventory.Adjustment]
	purchaseOrders *Collection[*purchase.Order]
	suppliers      *Collection[*purchase.Supplier]
	settings       *Document[settings.Settings]
}

var _ store.Gateway = (*Store)(nil)

// NewStore cria o gateway de persistência sobre o backend
func NewStore(backend Backend) *Store {
	return &Store{
		backend:        backend,
		products:       NewCollection[*product.Product](CollectionProducts, backend),
		categories:     NewCollection[*product.Category](CollectionCategories, backend),
		students:       NewCollection[*student.Student](CollectionStudents, backend),
		employees:      NewCollection[*employee.Employee](CollectionEmployees, backend),
		transactions:   NewCollection[*transaction.Transaction](CollectionTransactions, backend),
		adjustments:    NewCollection[*inventory.Adjustment](CollectionAdjustments, backend),
		purchaseOrders: NewCollection[*purchase.Order](CollectionPurchaseOrders, backend),
		suppliers:      NewCollection[*purchase.Supplier](CollectionSuppliers, backend),
		settings:       NewDocument(CollectionSettings, backend, settings.Default),
	}
}

func (s *Store) Products() product.Repository { return s.products }
func (s *Store) Categories() product.CategoryRepository { return s.categories }
func (s *Store) Students() student.Repository { return s.students }
func (s *Store) Employees() employee.Repository { return s.employees }
func (s *Store) Transactions() transaction.Repository { return s.transactions }
func (s *Store) Adjustments() inventory.Repository { return s.adjustments }
func (s *Store) PurchaseOrders() purchase.Repository { return s.purchaseOrders }
func (s *Store) Suppliers() purchase.SupplierRepository { return s.suppliers }
func (s *Store) Settings() settings.Repository { return s.settings }

// Commit implementa store.Gateway.Commit
func (s *Store) Commit(ctx context.Context, changes store.Changes) error {
	if changes.Empty() {
		return nil
	}

	var writes []Write
	var err error
	if writes, err = stageInto(writes, s.products, changes.Products); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.categories, changes.Categories); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.students, changes.Students); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.employees, changes.Employees); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.transactions, changes.Transactions); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.adjustments, changes.Adjustments); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.purchaseOrders, changes.PurchaseOrders); err != nil {
		return err
	}
	if writes, err = stageInto(writes, s.suppliers, changes.Suppliers); err != nil {
		return err
	}
	// settings por último: Initialized depende dele
	if changes.Settings != nil {
		w, err := s.settings.stage(*changes.Settings)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}

	if err := s.backend.Save(ctx, writes...); err != nil {
		return fmt.Errorf("erro ao gravar alterações: %w", err)
	}
	return nil
}

func stageInto[T any](writes []Write, c *Collection[T], items []T) ([]Write, error) {
	if items == nil {
		return writes, nil
	}
	w, err := c.stage(items)
	if err != nil {
		return writes, err
	}
	return append(writes, w), nil
}

// Exclusive implementa store.Gateway.Exclusive. O bloqueio vale apenas para
// este processo; vários processos sobre o mesmo Redis/PostgreSQL não são
// coordenados.
func (s *Store) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Initialized implementa store.Gateway.Initialized
func (s *Store) Initialized(ctx context.Context) (bool, error) {
	_, found, err := s.backend.Load(ctx, CollectionSettings)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar armazenamento: %w", err)
	}
	return found, nil
}

// Close libera o backend
func (s *Store) Close() error {
	return s.backend.Close()
}
