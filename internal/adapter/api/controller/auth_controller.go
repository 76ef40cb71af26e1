package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// Mensagens de erro do fluxo de autenticação. A mensagem de credencial
// inválida é idêntica para usuário inexistente e senha errada, para não
// revelar qual das duas verificações falhou
const (
	msgMissingCredentials = "Usuário e senha são obrigatórios"
	msgPasswordTooLong    = "Senha deve ter no máximo 8 caracteres"
	msgInvalidCredentials = "Usuário ou senha inválidos"
	msgUserDisabled       = "Usuário desativado. Contate o administrador."
	msgMissingToken       = "Token não fornecido"
	msgInvalidSession     = "Sessão inválida"
	msgExpiredSession     = "Sessão expirada"
	msgInvalidAction      = "Ação inválida"
	msgForbidden          = "Permissão insuficiente"
	msgMasterImmutable    = "As permissões do cargo master não podem ser alteradas"
)

// AuthController é o gateway de autenticação interna: um único endpoint RPC
// com as ações login, validate, logout e manage_permissions
type AuthController struct {
	users    internaluser.Repository
	roles    role.Repository
	sessions *auth.SessionService
	resolver *auth.PermissionResolver
	log      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(users internaluser.Repository, roles role.Repository, sessions *auth.SessionService, resolver *auth.PermissionResolver, log logger.Logger) *AuthController {
	return &AuthController{
		users:    users,
		roles:    roles,
		sessions: sessions,
		resolver: resolver,
		log:      log,
	}
}

// Handle despacha a ação do corpo da requisição
// @Summary Endpoint de autenticação interna
// @Description Executa uma das ações login, validate, logout ou manage_permissions
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Ação e parâmetros"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.AuthErrorResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Failure 403 {object} dto.AuthErrorResponse
// @Failure 500 {object} dto.AuthErrorResponse
// @Router /internal-auth [post]
func (c *AuthController) Handle(ctx *gin.Context) {
	var request dto.AuthRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgInvalidAction})
		return
	}

	switch request.Action {
	case dto.ActionLogin:
		c.login(ctx, request)
	case dto.ActionValidate:
		c.validate(ctx, request)
	case dto.ActionLogout:
		c.logout(ctx, request)
	case dto.ActionManagePermissions:
		c.managePermissions(ctx, request)
	default:
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgInvalidAction})
	}
}

func (c *AuthController) login(ctx *gin.Context, request dto.AuthRequest) {
	if request.Username == "" || request.Password == "" {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgMissingCredentials})
		return
	}

	// Restrição herdada do sistema legado: senhas têm no máximo 8 caracteres.
	// A verificação acontece antes de qualquer consulta de credencial
	if len(request.Password) > internaluser.MaxPasswordLength {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgPasswordTooLong})
		return
	}

	u, err := c.users.FindByUsername(ctx.Request.Context(), request.Username)
	if err != nil {
		if errors.Is(err, internaluser.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgInvalidCredentials})
			return
		}
		c.log.Error("falha ao buscar usuário no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		return
	}

	if !u.IsActive {
		ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: msgUserDisabled})
		return
	}

	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgInvalidCredentials})
		return
	}

	sess, err := c.sessions.CreateSession(ctx.Request.Context(), u.ID)
	if err != nil {
		c.log.Error("falha ao criar sessão", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro ao criar sessão"})
		return
	}

	// Falha no registro do último login não impede o login
	if err := c.users.UpdateLastLogin(ctx.Request.Context(), u.ID); err != nil {
		c.log.Warn("falha ao atualizar último login", "error", err, "user_id", u.ID)
	}

	perms, err := c.resolver.ResolvePermissions(ctx.Request.Context(), u.RoleID)
	if err != nil {
		c.log.Error("falha ao resolver permissões no login", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:     true,
		Token:       sess.Token,
		User:        dto.ToAuthUser(u),
		Permissions: perms,
		ExpiresAt:   sess.ExpiresAt,
	})
}

func (c *AuthController) validate(ctx *gin.Context, request dto.AuthRequest) {
	invalid := false

	if request.Token == "" {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgMissingToken, Valid: &invalid})
		return
	}

	sess, u, err := c.sessions.ValidateSession(ctx.Request.Context(), request.Token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrSessionNotFound):
			ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgInvalidSession, Valid: &invalid})
		case errors.Is(err, auth.ErrSessionExpired):
			ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgExpiredSession, Valid: &invalid})
		case errors.Is(err, auth.ErrUserDisabled):
			ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: "Usuário desativado", Valid: &invalid})
		default:
			c.log.Error("falha ao validar sessão", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		}
		return
	}

	// Permissões saem sempre do armazenamento, nunca de cache no token
	perms, err := c.resolver.ResolvePermissions(ctx.Request.Context(), u.RoleID)
	if err != nil {
		c.log.Error("falha ao resolver permissões na validação", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ValidateResponse{
		Valid:       true,
		User:        dto.ToAuthUser(u),
		Permissions: perms,
		ExpiresAt:   sess.ExpiresAt,
	})
}

func (c *AuthController) logout(ctx *gin.Context, request dto.AuthRequest) {
	// Logout é idempotente: token desconhecido ou ausente não é erro
	if request.Token != "" {
		if err := c.sessions.RevokeSession(ctx.Request.Context(), request.Token); err != nil {
			c.log.Warn("falha ao revogar sessão no logout", "error", err)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *AuthController) managePermissions(ctx *gin.Context, request dto.AuthRequest) {
	if request.Token == "" {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: msgMissingToken})
		return
	}
	if request.RoleID == "" || request.Permissions == nil {
		ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: "Cargo e permissões são obrigatórios"})
		return
	}

	_, u, err := c.sessions.ValidateSession(ctx.Request.Context(), request.Token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrSessionNotFound):
			ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgInvalidSession})
		case errors.Is(err, auth.ErrSessionExpired):
			ctx.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: msgExpiredSession})
		case errors.Is(err, auth.ErrUserDisabled):
			ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: "Usuário desativado"})
		default:
			c.log.Error("falha ao validar sessão em manage_permissions", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		}
		return
	}

	allowed, err := c.resolver.HasPermission(ctx.Request.Context(), u, role.PermPermissionsManage)
	if err != nil {
		c.log.Error("falha ao verificar permissão de gerenciamento", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		return
	}
	if !allowed {
		ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: msgForbidden})
		return
	}

	target, err := c.roles.FindByID(ctx.Request.Context(), request.RoleID)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.AuthErrorResponse{Error: "Cargo não encontrado"})
			return
		}
		c.log.Error("falha ao buscar cargo em manage_permissions", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro interno do servidor"})
		return
	}

	// As permissões do cargo master são implícitas e imutáveis
	if target.IsMaster {
		ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: msgMasterImmutable})
		return
	}

	if err := c.resolver.SetPermissions(ctx.Request.Context(), request.RoleID, request.Permissions); err != nil {
		if errors.Is(err, role.ErrMasterImmutable) {
			ctx.JSON(http.StatusForbidden, dto.AuthErrorResponse{Error: msgMasterImmutable})
			return
		}
		c.log.Error("falha ao gravar permissões", "error", err, "role_id", request.RoleID)
		ctx.JSON(http.StatusInternalServerError, dto.AuthErrorResponse{Error: "Erro ao salvar permissões"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
