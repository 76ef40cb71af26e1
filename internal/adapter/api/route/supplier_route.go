package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(auth.SessionMiddleware(sessions, resolver))
	{
		suppliers.POST("", auth.RequirePermission(role.PermSuppliersCreate), supplierController.Create)
		suppliers.GET("", auth.RequirePermission(role.PermSuppliersView), supplierController.List)
		suppliers.GET("/:id", auth.RequirePermission(role.PermSuppliersView), supplierController.FindByID)
		suppliers.PUT("/:id", auth.RequirePermission(role.PermSuppliersEdit), supplierController.Update)
		suppliers.DELETE("/:id", auth.RequirePermission(role.PermSuppliersDelete), supplierController.Delete)
	}
}
