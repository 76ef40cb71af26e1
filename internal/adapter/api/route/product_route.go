package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	products := r.Group("/products")
	products.Use(auth.SessionMiddleware(sessions, resolver))
	{
		products.POST("", auth.RequirePermission(role.PermProductsCreate), productController.Create)
		products.GET("", auth.RequirePermission(role.PermProductsView), productController.List)
		products.GET("/:id", auth.RequirePermission(role.PermProductsView), productController.FindByID)
		products.PUT("/:id", auth.RequirePermission(role.PermProductsEdit), productController.Update)
		products.DELETE("/:id", auth.RequirePermission(role.PermProductsDelete), productController.Delete)
	}
}
