package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

const (
	uncategorized       = "Uncategorized"
	recentTransactions  = 6
	transactionsSheet   = "Transactions"
	transactionItemsTab = "Items"
)

// NamedTotal é um total agrupado por nome (turma, categoria)
type NamedTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Dashboard resume o movimento da cantina
type Dashboard struct {
	TodaySales         decimal.Decimal            `json:"today_sales"`
	StudentCount       int                        `json:"student_count"`
	TransactionCount   int                        `json:"transaction_count"`
	LowStockCount      int                        `json:"low_stock_count"`
	SalesByGrade       []NamedTotal               `json:"sales_by_grade"`
	SalesByCategory    []NamedTotal               `json:"sales_by_category"`
	RecentTransactions []*transaction.Transaction `json:"recent_transactions"`
}

// ValuationItem é uma linha do relatório de valorização do estoque
type ValuationItem struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// CategoryValuation agrupa as linhas de uma categoria
type CategoryValuation struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// StockValuation é o valor de custo do estoque físico
type StockValuation struct {
	Categories []CategoryValuation `json:"categories"`
	GrandTotal decimal.Decimal     `json:"grand_total"`
}

// TransactionFilter limita a listagem de vendas. Campos zero não filtram.
type TransactionFilter struct {
	From       time.Time
	To         time.Time
	StudentID  string
	EmployeeID string
}

func (f TransactionFilter) match(tx *transaction.Transaction) bool {
	if !f.From.IsZero() && tx.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !tx.Timestamp.Before(f.To) {
		return false
	}
	if f.StudentID != "" && tx.StudentID != f.StudentID {
		return false
	}
	if f.EmployeeID != "" && tx.EmployeeID != f.EmployeeID {
		return false
	}
	return true
}

// ReportService gera os relatórios da cantina
type ReportService struct {
	gw store.Gateway
	options
}

// NewReportService cria o serviço de relatórios
func NewReportService(gw store.Gateway, opts ...Option) *ReportService {
	return &ReportService{gw: gw, options: newOptions(opts)}
}

// Dashboard calcula os indicadores do painel
func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	txs, err := s.gw.Transactions().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.gw.Students().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.gw.Categories().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	gradeOf := make(map[string]string, len(students))
	for _, st := range students {
		gradeOf[st.ID] = st.Grade
	}
	index := product.Index(products)
	categoryNames := categoryNameIndex(categories)

	d := &Dashboard{
		TodaySales:       decimal.Zero,
		StudentCount:     len(students),
		TransactionCount: len(txs),
	}
	byGrade := make(map[string]decimal.Decimal)
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		if !tx.IsCompleted() {
			continue
		}
		if !tx.Timestamp.Before(today) {
			d.TodaySales = d.TodaySales.Add(tx.Total)
		}
		if grade, ok := gradeOf[tx.StudentID]; ok && tx.StudentID != "" {
			byGrade[grade] = byGrade[grade].Add(tx.Total)
		}
		for _, item := range tx.Items {
			p, ok := index[item.ProductID]
			if !ok {
				continue
			}
			name := categoryNames[p.CategoryID]
			if name == "" {
				name = uncategorized
			}
			byCategory[name] = byCategory[name].Add(item.LineTotal())
		}
	}

	for _, p := range products {
		if p.IsLowStock() {
			d.LowStockCount++
		}
	}

	d.SalesByGrade = sortedTotals(byGrade)
	d.SalesByCategory = sortedTotals(byCategory)
	d.RecentTransactions = newestFirst(txs, TransactionFilter{})
	if len(d.RecentTransactions) > recentTransactions {
		d.RecentTransactions = d.RecentTransactions[:recentTransactions]
	}
	return d, nil
}

// LowStock retorna os produtos abaixo do estoque mínimo
func (s *ReportService) LowStock(ctx context.Context) ([]*product.Product, error) {
	products, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*product.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

// StockValuation soma custo × estoque dos itens físicos, por categoria.
// Compostos e produtos sem controle de estoque ficam de fora.
func (s *ReportService) StockValuation(ctx context.Context) (*StockValuation, error) {
	products, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.gw.Categories().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := categoryNameIndex(categories)

	groups := make(map[string]*CategoryValuation)
	result := &StockValuation{GrandTotal: decimal.Zero}

	add := func(p *product.Product, item ValuationItem) {
		g, ok := groups[p.CategoryID]
		if !ok {
			name := names[p.CategoryID]
			if name == "" {
				name = uncategorized
			}
			g = &CategoryValuation{CategoryID: p.CategoryID, CategoryName: name, Subtotal: decimal.Zero}
			groups[p.CategoryID] = g
		}
		g.Items = append(g.Items, item)
		g.Subtotal = g.Subtotal.Add(item.TotalCost)
		result.GrandTotal = result.GrandTotal.Add(item.TotalCost)
	}

	for _, p := range products {
		if !p.TrackStock || p.IsComposite {
			continue
		}
		if p.IsStockTracked() {
			add(p, valuationItem(p.ID, "", p.Name, p.StockQuantity, p.CostPrice))
			continue
		}
		for _, v := range p.Variants {
			add(p, valuationItem(p.ID, v.ID, fmt.Sprintf("%s (%s)", p.Name, v.Name), v.StockQuantity, v.CostPrice))
		}
	}

	for _, g := range groups {
		result.Categories = append(result.Categories, *g)
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		return result.Categories[i].CategoryName < result.Categories[j].CategoryName
	})
	return result, nil
}

func valuationItem(productID, variantID, name string, qty int, cost decimal.Decimal) ValuationItem {
	return ValuationItem{
		ProductID: productID,
		VariantID: variantID,
		Name:      name,
		Quantity:  qty,
		CostPrice: cost,
		TotalCost: cost.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// ListTransactions retorna as vendas filtradas, da mais recente à mais antiga
func (s *ReportService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*transaction.Transaction, error) {
	txs, err := s.gw.Transactions().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newestFirst(txs, filter), nil
}

// ExportTransactions grava as vendas filtradas numa planilha .xlsx, com uma
// aba de vendas e uma de itens
func (s *ReportService) ExportTransactions(ctx context.Context, filter TransactionFilter, w io.Writer) error {
	txs, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return err
	}
	products, err := s.gw.Products().FindAll(ctx)
	if err != nil {
		return err
	}
	cfg, err := s.gw.Settings().Get(ctx)
	if err != nil {
		return err
	}
	index := product.Index(products)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return fmt.Errorf("erro ao criar planilha: %w", err)
	}
	if _, err := f.NewSheet(transactionItemsTab); err != nil {
		return fmt.Errorf("erro ao criar planilha: %w", err)
	}

	currency := string(cfg.Currency)
	header := []interface{}{"ID", "Date", "Employee", "Student", "Payment", "Status",
		"Subtotal (" + currency + ")", "Discount (" + currency + ")", "Total (" + currency + ")"}
	if err := f.SetSheetRow(transactionsSheet, "A1", &header); err != nil {
		return err
	}
	itemHeader := []interface{}{"Transaction", "Product", "Variant", "Quantity", "Price (" + currency + ")", "Line total (" + currency + ")"}
	if err := f.SetSheetRow(transactionItemsTab, "A1", &itemHeader); err != nil {
		return err
	}

	itemRow := 2
	for i, tx := range txs {
		row := []interface{}{
			tx.ID,
			tx.Timestamp.Format("2006-01-02 15:04"),
			tx.EmployeeID,
			tx.StudentID,
			string(tx.PaymentMethod),
			string(tx.Status),
			tx.Subtotal.InexactFloat64(),
			tx.Discount.InexactFloat64(),
			tx.Total.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(transactionsSheet, cell, &row); err != nil {
			return err
		}

		for _, item := range tx.Items {
			name := item.ProductID
			if p, ok := index[item.ProductID]; ok {
				name = p.Name
			}
			line := []interface{}{
				tx.ID,
				name,
				item.VariantID,
				item.Quantity,
				item.PriceAtSale.InexactFloat64(),
				item.LineTotal().InexactFloat64(),
			}
			cell, _ := excelize.CoordinatesToCellName(1, itemRow)
			if err := f.SetSheetRow(transactionItemsTab, cell, &line); err != nil {
				return err
			}
			itemRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	s.logger.Info("vendas exportadas", "transactions", len(txs))
	return nil
}

func newestFirst(txs []*transaction.Transaction, filter TransactionFilter) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.match(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func categoryNameIndex(categories []*product.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func sortedTotals(m map[string]decimal.Decimal) []NamedTotal {
	out := make([]NamedTotal, 0, len(m))
	for name, total := range m {
		out = append(out, NamedTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
