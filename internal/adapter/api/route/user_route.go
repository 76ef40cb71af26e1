package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários internos
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	users := r.Group("/users")
	users.Use(auth.SessionMiddleware(sessions, resolver))
	{
		users.POST("", auth.RequirePermission(role.PermUsersCreate), userController.Create)
		users.GET("", auth.RequirePermission(role.PermUsersView), userController.List)
		users.GET("/:id", auth.RequirePermission(role.PermUsersView), userController.FindByID)
		users.PUT("/:id", auth.RequirePermission(role.PermUsersEdit), userController.Update)
		users.PUT("/:id/password", auth.RequirePermission(role.PermUsersEdit), userController.ChangePassword)
		users.DELETE("/:id", auth.RequirePermission(role.PermUsersDelete), userController.Delete)
	}
}
