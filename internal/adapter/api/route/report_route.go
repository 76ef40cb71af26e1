package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// RegisterReportRoutes registra as rotas do módulo de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, sessions *auth.SessionService, resolver *auth.PermissionResolver) {
	reports := r.Group("/reports")
	reports.Use(auth.SessionMiddleware(sessions, resolver))
	{
		reports.GET("/sales", auth.RequirePermission(role.PermReportsView), reportController.Sales)
	}
}
