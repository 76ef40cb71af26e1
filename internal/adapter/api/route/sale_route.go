package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	sales := r.Group("/sales")
	sales.Use(auth.SessionMiddleware(sessions, resolver))
	{
		sales.POST("", auth.RequirePermission(role.PermSalesCreate), saleController.Create)
		sales.GET("", auth.RequirePermission(role.PermSalesView), saleController.List)
		sales.GET("/:id", auth.RequirePermission(role.PermSalesView), saleController.FindByID)
		sales.PUT("/:id", auth.RequirePermission(role.PermSalesEdit), saleController.Update)
		sales.POST("/:id/cancel", auth.RequirePermission(role.PermSalesCancel), saleController.Cancel)
	}
}
