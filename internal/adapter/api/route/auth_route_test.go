package route

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
)

func TestInternalAuthPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterAuthRoutes(router.Group("/api/v1"), controller.NewAuthController(nil, nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/internal-auth", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// O preflight responde 200 com corpo vazio
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("corpo deveria ser vazio: %q", w.Body.String())
	}
}
