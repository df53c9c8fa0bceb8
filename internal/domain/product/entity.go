package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyID             = errors.New("id do produto não pode ser vazio")
	ErrEmptyName           = errors.New("nome do produto não pode ser vazio")
	ErrNegativePrice       = errors.New("preço não pode ser negativo")
	ErrMissingComponents   = errors.New("produto composto precisa de componentes")
	ErrInvalidComponentQty = errors.New("quantidade do componente deve ser maior que zero")
	ErrSelfComponent       = errors.New("produto composto não pode conter a si mesmo")
	ErrDuplicateVariant    = errors.New("variação duplicada")
)

// DefaultLowStockThreshold é usado quando o produto não define estoque mínimo
const DefaultLowStockThreshold = 10

// Variant representa uma variação vendável do produto (tamanho, sabor...)
type Variant struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
}

// Component referencia outro produto consumido por um produto composto
type Component struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Product representa um item do catálogo da cantina
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	CategoryID    string          `json:"category_id"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	ImageURL      string          `json:"image_url,omitempty"`
	Active        bool            `json:"active"`
	TrackStock    bool            `json:"track_stock"` // false para serviços
	IsComposite   bool            `json:"is_composite"`
	Variants      []Variant       `json:"variants,omitempty"`
	Components    []Component     `json:"components,omitempty"`
}

// Category agrupa produtos no terminal
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// HasVariants verifica se o produto é vendido por variação
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// IsStockTracked verifica se o próprio campo de estoque do produto é usado.
// Compostos e produtos com variações nunca usam o estoque do pai.
func (p *Product) IsStockTracked() bool {
	return p.TrackStock && !p.IsComposite && !p.HasVariants()
}

// FindVariant retorna a variação pelo ID
func (p *Product) FindVariant(id string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// PriceFor retorna o preço de venda do produto ou da variação
func (p *Product) PriceFor(v *Variant) decimal.Decimal {
	if v != nil {
		return v.SellingPrice
	}
	return p.SellingPrice
}

// TotalStock soma o estoque físico do produto ou de suas variações
func (p *Product) TotalStock() int {
	if !p.HasVariants() {
		return p.StockQuantity
	}
	total := 0
	for _, v := range p.Variants {
		total += v.StockQuantity
	}
	return total
}

// IsLowStock verifica se o estoque está abaixo do mínimo configurado
func (p *Product) IsLowStock() bool {
	if !p.TrackStock || p.IsComposite {
		return false
	}
	threshold := p.MinStockLevel
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return p.TotalStock() < threshold
}

// Validate verifica as invariantes estruturais do produto
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.SellingPrice.IsNegative() || p.CostPrice.IsNegative() {
		return ErrNegativePrice
	}

	seen := make(map[string]bool, len(p.Variants))
	for _, v := range p.Variants {
		if v.ID == "" || seen[v.ID] {
			return ErrDuplicateVariant
		}
		seen[v.ID] = true
		if v.SellingPrice.IsNegative() || v.CostPrice.IsNegative() {
			return ErrNegativePrice
		}
	}

	if p.IsComposite {
		if len(p.Components) == 0 {
			return ErrMissingComponents
		}
		for _, c := range p.Components {
			if c.Quantity <= 0 {
				return ErrInvalidComponentQty
			}
			if c.ProductID == p.ID {
				return ErrSelfComponent
			}
		}
	}
	return nil
}

// FindByID busca um produto na lista
func FindByID(products []*Product, id string) *Product {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Index cria um mapa de produtos por ID
func Index(products []*Product) map[string]*Product {
	m := make(map[string]*Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}
