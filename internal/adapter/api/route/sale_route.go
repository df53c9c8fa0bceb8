package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterSaleRoutes registra o checkout e a consulta de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, checkoutController *controller.CheckoutController, reportController *controller.ReportController, authRequired gin.HandlerFunc) {
	r.POST("/checkout", authRequired, auth.RequirePermission(employee.CapAccessPOS), checkoutController.Settle)

	transactions := r.Group("/transactions")
	transactions.Use(authRequired)
	{
		transactions.GET("", auth.RequirePermission(employee.CapViewSalesReports), reportController.ListTransactions)
		transactions.GET("/export", auth.RequirePermission(employee.CapExportReports), reportController.ExportTransactions)
	}
}
