package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authRequired gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Login por PIN (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		authRouter.GET("/me", authRequired, authController.Me)
	}
}
