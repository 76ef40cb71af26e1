package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra a rota RPC de autenticação interna. A rota não
// exige sessão: login é justamente quem cria a sessão, e validate/logout/
// manage_permissions recebem o token no corpo da requisição
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	r.POST("/internal-auth", authController.Handle)
	r.OPTIONS("/internal-auth", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}
