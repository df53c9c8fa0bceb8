package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterEmployeeRoutes registra as rotas de funcionários
func RegisterEmployeeRoutes(r *gin.RouterGroup, employeeController *controller.EmployeeController, authRequired gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authRequired, auth.RequirePermission(employee.CapManageEmployees))
	{
		employees.GET("", employeeController.List)
		employees.GET("/:id", employeeController.Get)
		employees.POST("", employeeController.Create)
		employees.PUT("/:id", employeeController.Update)
		employees.DELETE("/:id", employeeController.Deactivate)
	}
}
