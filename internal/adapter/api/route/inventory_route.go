package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterInventoryRoutes registra as rotas de estoque e compras
func RegisterInventoryRoutes(r *gin.RouterGroup, inventoryController *controller.InventoryController, purchaseController *controller.PurchaseController, authRequired gin.HandlerFunc) {
	canAdjust := auth.RequirePermission(employee.CapAdjustInventory)

	inventory := r.Group("/inventory")
	inventory.Use(authRequired, canAdjust)
	{
		inventory.GET("/adjustments", inventoryController.List)
		inventory.POST("/adjustments", inventoryController.Adjust)
		inventory.POST("/stocktake", inventoryController.Stocktake)
	}

	orders := r.Group("/purchase-orders")
	orders.Use(authRequired, canAdjust)
	{
		orders.GET("", purchaseController.ListOrders)
		orders.GET("/:id", purchaseController.GetOrder)
		orders.POST("", purchaseController.CreateOrder)
		orders.POST("/:id/order", purchaseController.MarkOrdered)
		orders.POST("/:id/receive", purchaseController.Receive)
	}

	suppliers := r.Group("/suppliers")
	suppliers.Use(authRequired, auth.RequirePermission(employee.CapAccessBackOffice, employee.CapAdjustInventory))
	{
		suppliers.GET("", purchaseController.ListSuppliers)
		suppliers.POST("", purchaseController.CreateSupplier)
	}
}
