package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterProductRoutes registra as rotas do catálogo
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, authRequired gin.HandlerFunc) {
	canView := auth.RequirePermission(employee.CapViewProducts, employee.CapAccessPOS)

	products := r.Group("/products")
	products.Use(authRequired)
	{
		products.GET("", canView, productController.List)
		products.GET("/:id", canView, productController.Get)
		products.POST("", auth.RequirePermission(employee.CapAddProducts), productController.Create)
		products.PUT("/:id", auth.RequirePermission(employee.CapEditProducts), productController.Update)
		products.DELETE("/:id", auth.RequirePermission(employee.CapDeleteProducts), productController.Delete)
	}

	categories := r.Group("/categories")
	categories.Use(authRequired)
	{
		categories.GET("", canView, productController.ListCategories)
		categories.POST("", auth.RequirePermission(employee.CapManageCategories), productController.CreateCategory)
	}
}
