package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
)

// CreateOrderRequest descreve um novo pedido de compra
type CreateOrderRequest struct {
	SupplierID string
	Items      []purchase.Item
}

// CreateSupplierRequest descreve um novo fornecedor
type CreateSupplierRequest struct {
	Name        string
	ContactName string
	Email       string
}

// PurchasingService gerencia fornecedores e pedidos de compra
type PurchasingService struct {
	gw store.Gateway
	options
}

// NewPurchasingService cria o serviço de compras
func NewPurchasingService(gw store.Gateway, opts ...Option) *PurchasingService {
	return &PurchasingService{gw: gw, options: newOptions(opts)}
}

// Receive dá entrada de um pedido no estoque. O custo de cada linha
// substitui o custo do produto ou variação (último custo vale). Linhas de
// produtos sem controle de estoque são ignoradas: nem estoque nem custo mudam.
// Receber um pedido já recebido não altera nada e retorna applied=false.
func (s *PurchasingService) Receive(ctx context.Context, orderID string) (order *purchase.Order, applied bool, err error) {
	const op = "purchasing.Receive"

	err = s.gw.Exclusive(ctx, func(ctx context.Context) error {
		orders, err := s.gw.PurchaseOrders().FindAll(ctx)
		if err != nil {
			return err
		}
		order = findOrder(orders, orderID)
		if order == nil {
			return domain.NewError(op, domain.KindUnknownPurchaseOrder, orderID, "")
		}
		if order.IsReceived() {
			return nil
		}

		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}

		// resolver todas as linhas antes de alterar qualquer produto
		type target struct {
			product *product.Product
			variant *product.Variant
		}
		targets := make([]target, len(order.Items))
		for i, item := range order.Items {
			p, v, err := resolveOrderLine(op, products, item)
			if err != nil {
				return err
			}
			targets[i] = target{product: p, variant: v}
		}

		for i, item := range order.Items {
			t := targets[i]
			if !t.product.TrackStock {
				continue
			}
			if t.variant != nil {
				t.variant.CostPrice = item.Cost
				t.variant.StockQuantity += item.Quantity
				continue
			}
			t.product.CostPrice = item.Cost
			t.product.StockQuantity += item.Quantity
		}

		if err := order.MarkReceived(s.now()); err != nil {
			return domain.Wrap(op, domain.KindInvalidRequest, order.ID, err)
		}
		applied = true

		return s.gw.Commit(ctx, store.Changes{Products: products, PurchaseOrders: orders})
	})
	if err != nil {
		return nil, false, err
	}

	if applied {
		s.logger.Info("pedido de compra recebido", "id", order.ID, "items", len(order.Items), "total", order.Total.StringFixed(2))
	} else {
		s.logger.Warn("pedido de compra já recebido", "id", order.ID)
	}
	return order, applied, nil
}

// CreateOrder cria um pedido em rascunho
func (s *PurchasingService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*purchase.Order, error) {
	const op = "purchasing.CreateOrder"

	var order *purchase.Order
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		suppliers, err := s.gw.Suppliers().FindAll(ctx)
		if err != nil {
			return err
		}
		if req.SupplierID != "" && findSupplier(suppliers, req.SupplierID) == nil {
			return domain.NewError(op, domain.KindUnknownSupplier, req.SupplierID, "")
		}

		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		for _, item := range req.Items {
			if _, _, err := resolveOrderLine(op, products, item); err != nil {
				return err
			}
		}

		order, err = purchase.NewOrder(s.newID(), req.SupplierID, s.now(), req.Items)
		if err != nil {
			return domain.Wrap(op, domain.KindInvalidRequest, "", err)
		}
		return s.gw.PurchaseOrders().Append(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pedido de compra criado", "id", order.ID, "supplier_id", order.SupplierID)
	return order, nil
}

// MarkOrdered marca o pedido como enviado ao fornecedor
func (s *PurchasingService) MarkOrdered(ctx context.Context, orderID string) (*purchase.Order, error) {
	const op = "purchasing.MarkOrdered"

	var order *purchase.Order
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		orders, err := s.gw.PurchaseOrders().FindAll(ctx)
		if err != nil {
			return err
		}
		order = findOrder(orders, orderID)
		if order == nil {
			return domain.NewError(op, domain.KindUnknownPurchaseOrder, orderID, "")
		}
		if err := order.MarkOrdered(); err != nil {
			return domain.Wrap(op, domain.KindInvalidRequest, orderID, err)
		}
		return s.gw.PurchaseOrders().ReplaceAll(ctx, orders)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder busca um pedido pelo ID
func (s *PurchasingService) GetOrder(ctx context.Context, orderID string) (*purchase.Order, error) {
	orders, err := s.gw.PurchaseOrders().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	order := findOrder(orders, orderID)
	if order == nil {
		return nil, domain.NewError("purchasing.GetOrder", domain.KindUnknownPurchaseOrder, orderID, "")
	}
	return order, nil
}

// ListOrders retorna os pedidos, do mais recente ao mais antigo. status
// vazio retorna todos.
func (s *PurchasingService) ListOrders(ctx context.Context, status purchase.Status) ([]*purchase.Order, error) {
	all, err := s.gw.PurchaseOrders().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*purchase.Order, 0, len(all))
	for _, o := range all {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// ListSuppliers retorna os fornecedores
func (s *PurchasingService) ListSuppliers(ctx context.Context) ([]*purchase.Supplier, error) {
	return s.gw.Suppliers().FindAll(ctx)
}

// CreateSupplier cadastra um fornecedor
func (s *PurchasingService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*purchase.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Invalid("purchasing.CreateSupplier", "nome do fornecedor não pode ser vazio")
	}

	supplier := &purchase.Supplier{
		ID:          s.newID(),
		Name:        name,
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.TrimSpace(req.Email),
	}
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		suppliers, err := s.gw.Suppliers().FindAll(ctx)
		if err != nil {
			return err
		}
		return s.gw.Suppliers().ReplaceAll(ctx, append(suppliers, supplier))
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// resolveOrderLine localiza o produto/variação de uma linha do pedido
func resolveOrderLine(op string, products []*product.Product, item purchase.Item) (*product.Product, *product.Variant, error) {
	p := product.FindByID(products, item.ProductID)
	if p == nil {
		return nil, nil, domain.NewError(op, domain.KindUnknownProduct, item.ProductID, "")
	}
	if item.VariantID == "" {
		if p.HasVariants() {
			return nil, nil, domain.Invalid(op, "produto %s exige uma variação", p.ID)
		}
		return p, nil, nil
	}
	v := p.FindVariant(item.VariantID)
	if v == nil {
		return nil, nil, domain.NewError(op, domain.KindUnknownProduct, p.ID+"/"+item.VariantID, "variação não encontrada")
	}
	return p, v, nil
}

func findOrder(orders []*purchase.Order, id string) *purchase.Order {
	for _, o := range orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func findSupplier(suppliers []*purchase.Supplier, id string) *purchase.Supplier {
	for _, s := range suppliers {
		if s.ID == id {
			return s
		}
	}
	return nil
}
