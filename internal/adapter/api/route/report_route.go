package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterReportRoutes registra o painel e os relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, authRequired gin.HandlerFunc) {
	reports := r.Group("/reports")
	reports.Use(authRequired)
	{
		reports.GET("/dashboard", auth.RequirePermission(employee.CapViewSalesReports), reportController.Dashboard)
		reports.GET("/low-stock", auth.RequirePermission(employee.CapViewProducts, employee.CapAdjustInventory), reportController.LowStock)
		reports.GET("/valuation", auth.RequirePermission(employee.CapViewProfitReports), reportController.StockValuation)
	}
}
