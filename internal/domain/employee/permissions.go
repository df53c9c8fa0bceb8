package employee

// Capability identifica uma permissão da matriz
type Capability string

const (
	CapAccessPOS         Capability = "accessPOS"
	CapApplyDiscounts    Capability = "applyDiscounts"
	CapChangeItemPrice   Capability = "changeItemPrice"
	CapVoidSales         Capability = "voidSales"
	CapProcessRefunds    Capability = "processRefunds"
	CapOpenCashDrawer    Capability = "openCashDrawer"
	CapViewProducts      Capability = "viewProducts"
	CapAddProducts       Capability = "addProducts"
	CapEditProducts      Capability = "editProducts"
	CapDeleteProducts    Capability = "deleteProducts"
	CapManageCategories  Capability = "manageCategories"
	CapAdjustInventory   Capability = "adjustInventory"
	CapCreateStudents    Capability = "createStudents"
	CapEditStudents      Capability = "editStudents"
	CapAddBalance        Capability = "addBalance"
	CapViewBalances      Capability = "viewBalances"
	CapSetSpendingLimits Capability = "setSpendingLimits"
	CapViewSalesReports  Capability = "viewSalesReports"
	CapViewProfitReports Capability = "viewProfitReports"
	CapExportReports     Capability = "exportReports"
	CapAccessBackOffice  Capability = "accessBackOffice"
	CapManageEmployees   Capability = "manageEmployees"
)

// Capabilities lista todas as capacidades conhecidas, na ordem da matriz
var Capabilities = []Capability{
	CapAccessPOS, CapApplyDiscounts, CapChangeItemPrice, CapVoidSales,
	CapProcessRefunds, CapOpenCashDrawer, CapViewProducts, CapAddProducts,
	CapEditProducts, CapDeleteProducts, CapManageCategories, CapAdjustInventory,
	CapCreateStudents, CapEditStudents, CapAddBalance, CapViewBalances,
	CapSetSpendingLimits, CapViewSalesReports, CapViewProfitReports,
	CapExportReports, CapAccessBackOffice, CapManageEmployees,
}

// Permissions é a matriz fixa de capacidades de um funcionário
type Permissions struct {
	AccessPOS         bool `json:"accessPOS"`
	ApplyDiscounts    bool `json:"applyDiscounts"`
	ChangeItemPrice   bool `json:"changeItemPrice"`
	VoidSales         bool `json:"voidSales"`
	ProcessRefunds    bool `json:"processRefunds"`
	OpenCashDrawer    bool `json:"openCashDrawer"`
	ViewProducts      bool `json:"viewProducts"`
	AddProducts       bool `json:"addProducts"`
	EditProducts      bool `json:"editProducts"`
	DeleteProducts    bool `json:"deleteProducts"`
	ManageCategories  bool `json:"manageCategories"`
	AdjustInventory   bool `json:"adjustInventory"`
	CreateStudents    bool `json:"createStudents"`
	EditStudents      bool `json:"editStudents"`
	AddBalance        bool `json:"addBalance"`
	ViewBalances      bool `json:"viewBalances"`
	SetSpendingLimits bool `json:"setSpendingLimits"`
	ViewSalesReports  bool `json:"viewSalesReports"`
	ViewProfitReports bool `json:"viewProfitReports"`
	ExportReports     bool `json:"exportReports"`
	AccessBackOffice  bool `json:"accessBackOffice"`
	ManageEmployees   bool `json:"manageEmployees"`
}

// field retorna o campo da matriz correspondente à capacidade
func (p *Permissions) field(c Capability) *bool {
	switch c {
	case CapAccessPOS:
		return &p.AccessPOS
	case CapApplyDiscounts:
		return &p.ApplyDiscounts
	case CapChangeItemPrice:
		return &p.ChangeItemPrice
	case CapVoidSales:
		return &p.VoidSales
	case CapProcessRefunds:
		return &p.ProcessRefunds
	case CapOpenCashDrawer:
		return &p.OpenCashDrawer
	case CapViewProducts:
		return &p.ViewProducts
	case CapAddProducts:
		return &p.AddProducts
	case CapEditProducts:
		return &p.EditProducts
	case CapDeleteProducts:
		return &p.DeleteProducts
	case CapManageCategories:
		return &p.ManageCategories
	case CapAdjustInventory:
		return &p.AdjustInventory
	case CapCreateStudents:
		return &p.CreateStudents
	case CapEditStudents:
		return &p.EditStudents
	case CapAddBalance:
		return &p.AddBalance
	case CapViewBalances:
		return &p.ViewBalances
	case CapSetSpendingLimits:
		return &p.SetSpendingLimits
	case CapViewSalesReports:
		return &p.ViewSalesReports
	case CapViewProfitReports:
		return &p.ViewProfitReports
	case CapExportReports:
		return &p.ExportReports
	case CapAccessBackOffice:
		return &p.AccessBackOffice
	case CapManageEmployees:
		return &p.ManageEmployees
	}
	return nil
}

// Has verifica se a capacidade está concedida. Capacidades desconhecidas
// nunca são concedidas.
func (p Permissions) Has(c Capability) bool {
	f := p.field(c)
	return f != nil && *f
}

// Set concede ou revoga uma capacidade
func (p *Permissions) Set(c Capability, allowed bool) bool {
	f := p.field(c)
	if f == nil {
		return false
	}
	*f = allowed
	return true
}

// DefaultPermissions é a matriz de um operador de caixa
func DefaultPermissions() Permissions {
	return Permissions{
		AccessPOS:      true,
		OpenCashDrawer: true,
		ViewProducts:   true,
		ViewBalances:   true,
	}
}

// AllPermissions concede todas as capacidades
func AllPermissions() Permissions {
	var p Permissions
	for _, c := range Capabilities {
		p.Set(c, true)
	}
	return p
}

// PermissionsFor retorna a matriz inicial de um papel
func PermissionsFor(role Role) Permissions {
	if role == RoleAdmin {
		return AllPermissions()
	}
	return DefaultPermissions()
}
