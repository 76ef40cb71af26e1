package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/domain/role"
)

func newMiddlewareRouter(t *testing.T, users *fakeUserRepo, roles *fakeRoleRepo, perm string) (*gin.Engine, *SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewSessionService(newFakeSessionRepo(), users, 0)
	resolver := NewPermissionResolver(roles)

	router := gin.New()
	group := router.Group("/recurso")
	group.Use(SessionMiddleware(svc, resolver))
	group.GET("", RequirePermission(perm), func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user": u.Username})
	})
	return router, svc
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionMiddlewareMissingHeader(t *testing.T) {
	router, _ := newMiddlewareRouter(t, newFakeUserRepo(), newFakeRoleRepo(), role.PermSalesView)

	if w := get(router, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
}

func TestSessionMiddlewareMalformedHeader(t *testing.T) {
	router, _ := newMiddlewareRouter(t, newFakeUserRepo(), newFakeRoleRepo(), role.PermSalesView)

	if w := get(router, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
}

func TestSessionMiddlewareUnknownToken(t *testing.T) {
	router, _ := newMiddlewareRouter(t, newFakeUserRepo(), newFakeRoleRepo(), role.PermSalesView)

	if w := get(router, "Bearer desconhecido"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
}

func TestRequirePermissionDenied(t *testing.T) {
	u := sellerUser()
	roles := newFakeRoleRepo(&role.Role{ID: "vendedor", Name: "vendedor"})
	router, svc := newMiddlewareRouter(t, newFakeUserRepo(u), roles, role.PermReportsView)

	sess, err := svc.CreateSession(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if w := get(router, "Bearer "+sess.Token); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado 403", w.Code)
	}
}

func TestRequirePermissionGranted(t *testing.T) {
	u := sellerUser()
	roles := newFakeRoleRepo(&role.Role{ID: "vendedor", Name: "vendedor"})
	roles.perms["vendedor"][role.PermSalesView] = true
	router, svc := newMiddlewareRouter(t, newFakeUserRepo(u), roles, role.PermSalesView)

	sess, err := svc.CreateSession(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	w := get(router, "Bearer "+sess.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
}

func TestRequirePermissionMasterBypass(t *testing.T) {
	u := masterUser()
	roles := newFakeRoleRepo(&role.Role{ID: "master", Name: "master", IsMaster: true})
	// Nenhuma linha de permissão persistida: o cargo master passa mesmo assim
	router, svc := newMiddlewareRouter(t, newFakeUserRepo(u), roles, role.PermReportsView)

	sess, err := svc.CreateSession(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if w := get(router, "Bearer "+sess.Token); w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
}
