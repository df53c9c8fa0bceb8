package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/pkg/auth"
)

// RegisterSettingsRoutes registra as configurações. Alterações são restritas
// a administradores.
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController, authRequired gin.HandlerFunc) {
	settings := r.Group("/settings")
	settings.Use(authRequired)
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", auth.RoleAuthMiddleware(employee.RoleAdmin), settingsController.Update)
		settings.POST("/simulate", auth.RoleAuthMiddleware(employee.RoleAdmin), settingsController.Simulate)
	}
}
