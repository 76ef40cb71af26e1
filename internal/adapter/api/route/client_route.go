package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	clients := r.Group("/clients")
	clients.Use(auth.SessionMiddleware(sessions, resolver))
	{
		clients.POST("", auth.RequirePermission(role.PermClientsCreate), clientController.Create)
		clients.GET("", auth.RequirePermission(role.PermClientsView), clientController.List)
		clients.GET("/:id", auth.RequirePermission(role.PermClientsView), clientController.FindByID)
		clients.PUT("/:id", auth.RequirePermission(role.PermClientsEdit), clientController.Update)
		clients.DELETE("/:id", auth.RequirePermission(role.PermClientsDelete), clientController.Delete)
	}
}
