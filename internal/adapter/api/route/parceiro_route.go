package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/controller"
	"github.com/hugohenrick/parceiros-api/pkg/middleware"
)

// RegisterParceiroRoutes registra as rotas do módulo de parceiros
func RegisterParceiroRoutes(r *gin.RouterGroup, parceiroController *controller.ParceiroController) {
	parceiros := r.Group("/parceiros")
	parceiros.Use(middleware.AuthMiddleware())
	{
		parceiros.POST("", parceiroController.Create)
		parceiros.GET("", parceiroController.List)
		parceiros.GET("/expirando", parceiroController.ListExpiring)
		parceiros.GET("/:id", parceiroController.Get)
		parceiros.PUT("/:id", parceiroController.Update)
		parceiros.DELETE("/:id", parceiroController.Delete)
		parceiros.PATCH("/:id/status", parceiroController.SetStatus)
		parceiros.PUT("/:id/senha", parceiroController.ChangePassword)
	}
}
