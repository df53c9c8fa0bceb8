package service

import (
	"context"
	"sort"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/inventory"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
)

// AdjustRequest descreve um ajuste manual de estoque
type AdjustRequest struct {
	ProductID      string
	VariantID      string
	QuantityChange int
	Reason         inventory.Reason
	EmployeeID     string
	Note           string
}

// StocktakeRequest descreve uma contagem física
type StocktakeRequest struct {
	ProductID   string
	VariantID   string
	ActualStock int
	EmployeeID  string
	Note        string
}

// InventoryService registra ajustes e contagens de estoque
type InventoryService struct {
	gw store.Gateway
	options
}

// NewInventoryService cria o serviço de estoque
func NewInventoryService(gw store.Gateway, opts ...Option) *InventoryService {
	return &InventoryService{gw: gw, options: newOptions(opts)}
}

// Adjust aplica a variação ao estoque e registra o ajuste. Não há piso: o
// estoque pode ficar negativo.
func (s *InventoryService) Adjust(ctx context.Context, req AdjustRequest) (*inventory.Adjustment, error) {
	const op = "inventory.Adjust"

	if req.QuantityChange == 0 {
		return nil, domain.Invalid(op, "variação de estoque não pode ser zero")
	}
	if !req.Reason.Valid() {
		return nil, domain.Invalid(op, "motivo desconhecido: %q", req.Reason)
	}

	var adj *inventory.Adjustment
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		current, err := stockTarget(op, products, req.ProductID, req.VariantID)
		if err != nil {
			return err
		}

		adj = &inventory.Adjustment{
			ID:             s.newID(),
			Timestamp:      s.now(),
			ProductID:      req.ProductID,
			VariantID:      req.VariantID,
			QuantityChange: req.QuantityChange,
			Reason:         req.Reason,
			EmployeeID:     req.EmployeeID,
			Note:           req.Note,
		}
		return s.apply(ctx, products, current, adj)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("estoque ajustado", "product_id", adj.ProductID, "variant_id", adj.VariantID,
		"change", adj.QuantityChange, "reason", adj.Reason)
	return adj, nil
}

// Stocktake compara a contagem com o estoque do sistema e registra a
// diferença como ajuste inventory_count
func (s *InventoryService) Stocktake(ctx context.Context, req StocktakeRequest) (*inventory.Adjustment, error) {
	const op = "inventory.Stocktake"

	if req.ActualStock < 0 {
		return nil, domain.Invalid(op, "contagem não pode ser negativa: %d", req.ActualStock)
	}

	var adj *inventory.Adjustment
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		products, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		current, err := stockTarget(op, products, req.ProductID, req.VariantID)
		if err != nil {
			return err
		}

		expected := *current
		actual := req.ActualStock
		adj = &inventory.Adjustment{
			ID:             s.newID(),
			Timestamp:      s.now(),
			ProductID:      req.ProductID,
			VariantID:      req.VariantID,
			QuantityChange: actual - expected,
			Reason:         inventory.ReasonInventoryCount,
			EmployeeID:     req.EmployeeID,
			ExpectedStock:  &expected,
			ActualStock:    &actual,
			Note:           req.Note,
		}
		return s.apply(ctx, products, current, adj)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contagem registrada", "product_id", adj.ProductID, "variant_id", adj.VariantID,
		"expected", *adj.ExpectedStock, "actual", *adj.ActualStock)
	return adj, nil
}

// apply altera o estoque (somente produtos controlados) e grava produtos e
// log de ajustes juntos
func (s *InventoryService) apply(ctx context.Context, products []*product.Product, current *int, adj *inventory.Adjustment) error {
	adjustments, err := s.gw.Adjustments().FindAll(ctx)
	if err != nil {
		return err
	}

	changes := store.Changes{Adjustments: append(adjustments, adj)}
	if p := product.FindByID(products, adj.ProductID); p.TrackStock && adj.QuantityChange != 0 {
		*current += adj.QuantityChange
		changes.Products = products
	}
	return s.gw.Commit(ctx, changes)
}

// ListAdjustments retorna o log de ajustes, do mais recente ao mais antigo.
// productID vazio retorna todos.
func (s *InventoryService) ListAdjustments(ctx context.Context, productID string) ([]*inventory.Adjustment, error) {
	all, err := s.gw.Adjustments().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*inventory.Adjustment, 0, len(all))
	for _, a := range all {
		if productID == "" || a.ProductID == productID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// stockTarget resolve o campo de estoque de um produto ou variação.
// Compostos não têm estoque próprio.
func stockTarget(op string, products []*product.Product, productID, variantID string) (*int, error) {
	p := product.FindByID(products, productID)
	if p == nil {
		return nil, domain.NewError(op, domain.KindUnknownProduct, productID, "")
	}
	if p.IsComposite {
		return nil, domain.Invalid(op, "produto composto %s não tem estoque próprio", p.ID)
	}

	if p.HasVariants() {
		if variantID == "" {
			return nil, domain.Invalid(op, "produto %s exige uma variação", p.ID)
		}
		v := p.FindVariant(variantID)
		if v == nil {
			return nil, domain.NewError(op, domain.KindUnknownProduct, p.ID+"/"+variantID, "variação não encontrada")
		}
		return &v.StockQuantity, nil
	}
	if variantID != "" {
		return nil, domain.NewError(op, domain.KindUnknownProduct, p.ID+"/"+variantID, "variação não encontrada")
	}
	return &p.StockQuantity, nil
}
