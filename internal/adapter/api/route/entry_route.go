package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterEntryRoutes registra as rotas do módulo de entradas de estoque
func RegisterEntryRoutes(r *gin.RouterGroup, entryController *controller.EntryController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	entries := r.Group("/entries")
	entries.Use(auth.SessionMiddleware(sessions, resolver))
	{
		entries.POST("", auth.RequirePermission(role.PermEntriesCreate), entryController.Create)
		entries.GET("", auth.RequirePermission(role.PermEntriesView), entryController.List)
		entries.GET("/:id", auth.RequirePermission(role.PermEntriesView), entryController.FindByID)
		entries.DELETE("/:id", auth.RequirePermission(role.PermEntriesDelete), entryController.Delete)
	}
}
