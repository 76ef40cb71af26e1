package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterRoleRoutes registra as rotas do módulo de cargos e permissões
func RegisterRoleRoutes(r *gin.RouterGroup, roleController *controller.RoleController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	roles := r.Group("/roles")
	roles.Use(auth.SessionMiddleware(sessions, resolver))
	{
		roles.POST("", auth.RequirePermission(role.PermRolesCreate), roleController.Create)
		roles.GET("", auth.RequirePermission(role.PermRolesView), roleController.List)
		roles.GET("/:id", auth.RequirePermission(role.PermRolesView), roleController.FindByID)
		roles.PUT("/:id", auth.RequirePermission(role.PermRolesEdit), roleController.Update)
		roles.DELETE("/:id", auth.RequirePermission(role.PermRolesDelete), roleController.Delete)

		roles.GET("/:id/permissions", auth.RequirePermission(role.PermRolesView), roleController.ListPermissions)
		roles.PUT("/:id/permissions", auth.RequirePermission(role.PermPermissionsManage), roleController.SetPermissions)
	}
}
