package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterStudentRoutes registra as rotas de alunos e carteiras
func RegisterStudentRoutes(r *gin.RouterGroup, studentController *controller.StudentController, authRequired gin.HandlerFunc) {
	canView := auth.RequirePermission(employee.CapViewBalances, employee.CapAccessPOS)
	canEdit := auth.RequirePermission(employee.CapEditStudents, employee.CapSetSpendingLimits)

	students := r.Group("/students")
	students.Use(authRequired)
	{
		students.GET("", canView, studentController.List)
		students.GET("/:id", canView, studentController.Get)
		students.GET("/:id/transactions", auth.RequirePermission(employee.CapViewBalances), studentController.History)
		students.POST("", auth.RequirePermission(employee.CapCreateStudents), studentController.Create)
		students.PUT("/:id", canEdit, studentController.Update)
		students.DELETE("/:id", auth.RequirePermission(employee.CapEditStudents), studentController.Delete)
		students.POST("/:id/topup", auth.RequirePermission(employee.CapAddBalance), studentController.TopUp)
	}
}
