package settlement

import (
	"math"
	"time"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
)

const opExpand = "settlement.Expand"

type target struct {
	productID string
	variantID string
}

type expander struct {
	products map[string]*product.Product
	onPath   map[string]bool
	totals   map[target]int
	order    []target
}

// Expand resolve as linhas em baixas primitivas de estoque, agregadas por
// produto/variação na ordem em que aparecem. Compostos são expandidos em
// profundidade e nunca baixam o próprio estoque; produtos sem controle de
// estoque são ignorados por inteiro.
func Expand(products map[string]*product.Product, lines []CartLine) ([]StockDelta, error) {
	x := &expander{
		products: products,
		onPath:   make(map[string]bool),
		totals:   make(map[target]int),
	}
	for _, line := range lines {
		if err := x.visit(line.ProductID, line.VariantID, line.Quantity); err != nil {
			return nil, err
		}
	}

	deltas := make([]StockDelta, 0, len(x.order))
	for _, t := range x.order {
		deltas = append(deltas, StockDelta{
			ProductID: t.productID,
			VariantID: t.variantID,
			Quantity:  -x.totals[t],
		})
	}
	return deltas, nil
}

func (x *expander) visit(productID, variantID string, qty int) error {
	p, ok := x.products[productID]
	if !ok {
		return domain.NewError(opExpand, domain.KindUnknownProduct, productID, "")
	}
	if !p.TrackStock {
		return nil
	}

	if p.IsComposite {
		if x.onPath[p.ID] {
			return domain.NewError(opExpand, domain.KindCompositeCycle, p.ID, "")
		}
		x.onPath[p.ID] = true
		for _, c := range p.Components {
			if c.Quantity > math.MaxInt/qty {
				return domain.Invalid(opExpand, "quantidade excessiva para %s", c.ProductID)
			}
			if err := x.visit(c.ProductID, c.VariantID, c.Quantity*qty); err != nil {
				return err
			}
		}
		delete(x.onPath, p.ID)
		return nil
	}

	if p.HasVariants() {
		if variantID == "" {
			return domain.Invalid(opExpand, "produto %s exige uma variação", p.ID)
		}
		if p.FindVariant(variantID) == nil {
			return domain.NewError(opExpand, domain.KindUnknownProduct, p.ID+"/"+variantID, "variação não encontrada")
		}
	} else if variantID != "" {
		return domain.NewError(opExpand, domain.KindUnknownProduct, p.ID+"/"+variantID, "variação não encontrada")
	}

	t := target{productID: p.ID, variantID: variantID}
	total, seen := x.totals[t]
	if !seen {
		x.order = append(x.order, t)
	}
	if total > math.MaxInt-qty {
		return domain.Invalid(opExpand, "quantidade excessiva para %s", t.productID)
	}
	x.totals[t] = total + qty
	return nil
}

// ApplyStock soma cada delta ao estoque do produto ou variação alvo.
// Os produtos são alterados no lugar; passe cópias do snapshot.
func ApplyStock(products []*product.Product, deltas []StockDelta) error {
	index := product.Index(products)
	for _, d := range deltas {
		p, ok := index[d.ProductID]
		if !ok {
			return domain.NewError("settlement.ApplyStock", domain.KindUnknownProduct, d.ProductID, "")
		}
		if d.VariantID == "" {
			p.StockQuantity += d.Quantity
			continue
		}
		v := p.FindVariant(d.VariantID)
		if v == nil {
			return domain.NewError("settlement.ApplyStock", domain.KindUnknownProduct, d.ProductID+"/"+d.VariantID, "variação não encontrada")
		}
		v.StockQuantity += d.Quantity
	}
	return nil
}

// ApplyWallet aplica a mutação de carteira ao aluno
func ApplyWallet(s *student.Student, d *WalletDelta, at time.Time) {
	if d == nil || s == nil || s.ID != d.StudentID {
		return
	}
	s.RecordSpend(d.BalanceDelta, d.SpentTodayDelta, at)
}
