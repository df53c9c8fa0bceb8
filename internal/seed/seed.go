// Package seed carrega os dados iniciais da cantina (catálogo de exemplo,
// alunos, funcionários e fornecedores) quando o armazenamento está vazio.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/domain/product"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/domain/student"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

//go:embed seed.yaml
var defaultFixtures []byte

type fixtureVariant struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	SKU           string `yaml:"sku"`
	CostPrice     string `yaml:"cost_price"`
	SellingPrice  string `yaml:"selling_price"`
	StockQuantity int    `yaml:"stock_quantity"`
}

type fixtureComponent struct {
	ProductID string `yaml:"product_id"`
	VariantID string `yaml:"variant_id"`
	Quantity  int    `yaml:"quantity"`
}

type fixtureProduct struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	CategoryID    string             `yaml:"category_id"`
	SKU           string             `yaml:"sku"`
	CostPrice     string             `yaml:"cost_price"`
	SellingPrice  string             `yaml:"selling_price"`
	StockQuantity int                `yaml:"stock_quantity"`
	MinStockLevel int                `yaml:"min_stock_level"`
	ImageURL      string             `yaml:"image_url"`
	Untracked     bool               `yaml:"untracked"`
	Composite     bool               `yaml:"composite"`
	Variants      []fixtureVariant   `yaml:"variants"`
	Components    []fixtureComponent `yaml:"components"`
}

type fixtureStudent struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Grade              string   `yaml:"grade"`
	WalletBalance      string   `yaml:"wallet_balance"`
	DailySpendLimit    string   `yaml:"daily_spend_limit"`
	RestrictedProducts []string `yaml:"restricted_products"`
	PIN                string   `yaml:"pin"`
	QRCode             string   `yaml:"qr_code"`
	ImageURL           string   `yaml:"image_url"`
}

type fixtureEmployee struct {
	ID   string        `yaml:"id"`
	Name string        `yaml:"name"`
	PIN  string        `yaml:"pin"`
	Role employee.Role `yaml:"role"`
}

type fixtureCategory struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type fixtureSupplier struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ContactName string `yaml:"contact_name"`
	Email       string `yaml:"email"`
}

type fixtureSettings struct {
	Currency settings.CurrencyCode `yaml:"currency"`
}

// Fixtures é o conteúdo do arquivo de dados iniciais
type Fixtures struct {
	Settings   fixtureSettings   `yaml:"settings"`
	Categories []fixtureCategory `yaml:"categories"`
	Products   []fixtureProduct  `yaml:"products"`
	Students   []fixtureStudent  `yaml:"students"`
	Employees  []fixtureEmployee `yaml:"employees"`
	Suppliers  []fixtureSupplier `yaml:"suppliers"`
}

// Parse lê um arquivo YAML de dados iniciais
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("erro ao ler dados iniciais: %w", err)
	}
	if f.Settings.Currency == "" {
		f.Settings.Currency = settings.Default().Currency
	}
	if !f.Settings.Currency.Valid() {
		return nil, settings.ErrInvalidCurrency
	}
	return &f, nil
}

// Default retorna os dados iniciais embutidos no binário
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Changes converte os dados iniciais nas coleções do gateway. Os PINs dos
// funcionários são gravados com hash.
func (f *Fixtures) Changes() (store.Changes, error) {
	products := make([]*product.Product, 0, len(f.Products))
	for _, fp := range f.Products {
		p, err := fp.toProduct()
		if err != nil {
			return store.Changes{}, fmt.Errorf("produto %s: %w", fp.ID, err)
		}
		products = append(products, p)
	}

	students := make([]*student.Student, 0, len(f.Students))
	for _, fs := range f.Students {
		s, err := fs.toStudent()
		if err != nil {
			return store.Changes{}, fmt.Errorf("aluno %s: %w", fs.ID, err)
		}
		students = append(students, s)
	}

	employees := make([]*employee.Employee, 0, len(f.Employees))
	for _, fe := range f.Employees {
		e, err := employee.NewEmployee(fe.ID, fe.Name, fe.PIN, fe.Role)
		if err != nil {
			return store.Changes{}, fmt.Errorf("funcionário %s: %w", fe.ID, err)
		}
		employees = append(employees, e)
	}

	categories := make([]*product.Category, 0, len(f.Categories))
	for _, fc := range f.Categories {
		categories = append(categories, &product.Category{ID: fc.ID, Name: fc.Name, Color: fc.Color})
	}

	suppliers := make([]*purchase.Supplier, 0, len(f.Suppliers))
	for _, fs := range f.Suppliers {
		suppliers = append(suppliers, &purchase.Supplier{
			ID:          fs.ID,
			Name:        fs.Name,
			ContactName: fs.ContactName,
			Email:       fs.Email,
		})
	}

	cfg := settings.Settings{Currency: f.Settings.Currency}

	return store.Changes{
		Products:   products,
		Categories: categories,
		Students:   students,
		Employees:  employees,
		Suppliers:  suppliers,
		Settings:   &cfg,
	}, nil
}

func (fp fixtureProduct) toProduct() (*product.Product, error) {
	cost, err := parseMoney(fp.CostPrice)
	if err != nil {
		return nil, err
	}
	price, err := parseMoney(fp.SellingPrice)
	if err != nil {
		return nil, err
	}

	p := &product.Product{
		ID:            fp.ID,
		Name:          fp.Name,
		SKU:           fp.SKU,
		CategoryID:    fp.CategoryID,
		CostPrice:     cost,
		SellingPrice:  price,
		StockQuantity: fp.StockQuantity,
		MinStockLevel: fp.MinStockLevel,
		ImageURL:      fp.ImageURL,
		Active:        true,
		TrackStock:    !fp.Untracked,
		IsComposite:   fp.Composite,
	}
	if p.MinStockLevel == 0 {
		p.MinStockLevel = product.DefaultLowStockThreshold
	}
	for _, fc := range fp.Components {
		p.Components = append(p.Components, product.Component{
			ProductID: fc.ProductID,
			VariantID: fc.VariantID,
			Quantity:  fc.Quantity,
		})
	}
	for _, fv := range fp.Variants {
		vc, err := parseMoney(fv.CostPrice)
		if err != nil {
			return nil, err
		}
		vp, err := parseMoney(fv.SellingPrice)
		if err != nil {
			return nil, err
		}
		p.Variants = append(p.Variants, product.Variant{
			ID:            fv.ID,
			Name:          fv.Name,
			SKU:           fv.SKU,
			CostPrice:     vc,
			SellingPrice:  vp,
			StockQuantity: fv.StockQuantity,
		})
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (fs fixtureStudent) toStudent() (*student.Student, error) {
	balance, err := parseMoney(fs.WalletBalance)
	if err != nil {
		return nil, err
	}
	limit, err := parseMoney(fs.DailySpendLimit)
	if err != nil {
		return nil, err
	}
	s, err := student.NewStudent(fs.ID, fs.Name, fs.Grade, balance, limit)
	if err != nil {
		return nil, err
	}
	if fs.RestrictedProducts != nil {
		s.RestrictedProducts = fs.RestrictedProducts
	}
	if fs.PIN != "" {
		s.PIN = fs.PIN
	}
	if fs.QRCode != "" {
		s.QRCode = fs.QRCode
	}
	s.ImageURL = fs.ImageURL
	return s, nil
}

func parseMoney(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q: %w", v, err)
	}
	return d, nil
}

// EnsureInitialData grava os dados iniciais embutidos se o armazenamento
// ainda não foi inicializado. Retorna true quando gravou.
func EnsureInitialData(ctx context.Context, gw store.Gateway, log logger.Logger) (bool, error) {
	f, err := Default()
	if err != nil {
		return false, err
	}
	return Apply(ctx, gw, f, log)
}

// Apply grava os dados informados se o armazenamento estiver vazio
func Apply(ctx context.Context, gw store.Gateway, f *Fixtures, log logger.Logger) (bool, error) {
	changes, err := f.Changes()
	if err != nil {
		return false, err
	}

	seeded := false
	err = gw.Exclusive(ctx, func(ctx context.Context) error {
		ok, err := gw.Initialized(ctx)
		if err != nil || ok {
			return err
		}
		if err := gw.Commit(ctx, changes); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("erro ao gravar dados iniciais: %w", err)
	}

	if seeded {
		log.Info("dados iniciais gravados",
			"products", len(changes.Products),
			"students", len(changes.Students),
			"employees", len(changes.Employees))
	} else {
		log.Debug("armazenamento já inicializado")
	}
	return seeded, nil
}
