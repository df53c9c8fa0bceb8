package service

import (
	"context"
	"strings"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/settlement"
)

// CatalogService gerencia produtos e categorias
type CatalogService struct {
	gw store.Gateway
	options
}

// NewCatalogService cria o serviço de catálogo
func NewCatalogService(gw store.Gateway, opts ...Option) *CatalogService {
	return &CatalogService{gw: gw, options: newOptions(opts)}
}

// ListProducts retorna os produtos. activeOnly filtra os inativos.
func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]*product.Product, error) {
	all, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}
	out := make([]*product.Product, 0, len(all))
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProduct busca um produto pelo ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	all, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	p := product.FindByID(all, id)
	if p == nil {
		return nil, domain.NewError("catalog.GetProduct", domain.KindUnknownProduct, id, "")
	}
	return p, nil
}

// CreateProduct cadastra um produto. ID vazio recebe um novo ID.
func (s *CatalogService) CreateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	const op = "catalog.CreateProduct"

	if p.ID == "" {
		p.ID = s.newID()
	}
	p.Name = strings.TrimSpace(p.Name)

	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		if product.FindByID(all, p.ID) != nil {
			return domain.Invalid(op, "produto %s já existe", p.ID)
		}
		all = append(all, p)
		if err := validateCatalog(op, all, p); err != nil {
			return err
		}
		return s.gw.Products().ReplaceAll(ctx, all)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("produto criado", "id", p.ID, "name", p.Name)
	return p, nil
}

// UpdateProduct substitui os dados de um produto existente
func (s *CatalogService) UpdateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	const op = "catalog.UpdateProduct"

	p.Name = strings.TrimSpace(p.Name)
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}
		replaced := false
		for i := range all {
			if all[i].ID == p.ID {
				all[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			return domain.NewError(op, domain.KindUnknownProduct, p.ID, "")
		}
		if err := validateCatalog(op, all, p); err != nil {
			return err
		}
		return s.gw.Products().ReplaceAll(ctx, all)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct remove um produto que não seja componente de outro
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	const op = "catalog.DeleteProduct"

	return s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Products().FindAll(ctx)
		if err != nil {
			return err
		}

		kept := make([]*product.Product, 0, len(all))
		found := false
		for _, p := range all {
			if p.ID == id {
				found = true
				continue
			}
			for _, c := range p.Components {
				if c.ProductID == id {
					return domain.Invalid(op, "produto %s é componente de %s", id, p.ID)
				}
			}
			kept = append(kept, p)
		}
		if !found {
			return domain.NewError(op, domain.KindUnknownProduct, id, "")
		}
		return s.gw.Products().ReplaceAll(ctx, kept)
	})
}

// ListCategories retorna as categorias
func (s *CatalogService) ListCategories(ctx context.Context) ([]*product.Category, error) {
	return s.gw.Categories().FindAll(ctx)
}

// CreateCategory cadastra uma categoria
func (s *CatalogService) CreateCategory(ctx context.Context, name, color string) (*product.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("catalog.CreateCategory", "nome da categoria não pode ser vazio")
	}

	c := &product.Category{ID: s.newID(), Name: name, Color: color}
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		all, err := s.gw.Categories().FindAll(ctx)
		if err != nil {
			return err
		}
		return s.gw.Categories().ReplaceAll(ctx, append(all, c))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// validateCatalog valida o produto alterado e garante que seus componentes
// existem e não formam ciclo
func validateCatalog(op string, all []*product.Product, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return domain.Wrap(op, domain.KindInvalidRequest, p.ID, err)
	}
	if !p.IsComposite {
		return nil
	}

	index := product.Index(all)
	lines := make([]settlement.CartLine, 0, len(p.Components))
	for _, c := range p.Components {
		if _, ok := index[c.ProductID]; !ok {
			return domain.NewError(op, domain.KindUnknownProduct, c.ProductID, "componente não encontrado")
		}
		lines = append(lines, settlement.CartLine{ProductID: c.ProductID, VariantID: c.VariantID, Quantity: c.Quantity})
	}
	_, err := settlement.Expand(index, lines)
	return err
}
