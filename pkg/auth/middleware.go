package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
)

// Chaves usadas no contexto do gin
const (
	ContextUserKey        = "current_user"
	ContextPermissionsKey = "permissions"
	ContextTokenKey       = "session_token"
)

// SessionMiddleware valida o token opaco do cabeçalho Authorization e carrega
// o usuário e suas permissões no contexto da requisição
func SessionMiddleware(sessions *SessionService, resolver *PermissionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", ""))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		_, u, err := sessions.ValidateSession(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, err.Error(), ""))
			case errors.Is(err, ErrUserDisabled):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, err.Error(), ""))
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao validar sessão", ""))
			}
			return
		}

		// Permissões são resolvidas a cada requisição, nunca guardadas no token
		perms, err := resolver.ResolvePermissions(c.Request.Context(), u.RoleID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao resolver permissões", ""))
			return
		}

		c.Set(ContextUserKey, u)
		c.Set(ContextPermissionsKey, perms)
		c.Set(ContextTokenKey, token)

		c.Next()
	}
}

// RequirePermission bloqueia a requisição quando o usuário autenticado não
// possui a permissão exigida. Usuários do cargo master passam sempre
func RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "não autenticado", ""))
			return
		}

		perms, _ := c.Get(ContextPermissionsKey)
		permsMap, _ := perms.(map[string]bool)

		if !Allowed(u, permsMap, key) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "permissão insuficiente", key))
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição, se houver
func CurrentUser(c *gin.Context) *internaluser.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	u, ok := value.(*internaluser.User)
	if !ok {
		return nil
	}
	return u
}
