package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/controller"
	"github.com/hugohenrick/parceiros-api/pkg/middleware"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		authRouter.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
