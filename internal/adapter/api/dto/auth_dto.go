package dto

import (
	"time"

	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
)

// Ações aceitas pelo endpoint de autenticação interna
const (
	ActionLogin             = "login"
	ActionValidate          = "validate"
	ActionLogout            = "logout"
	ActionManagePermissions = "manage_permissions"
)

// AuthRequest representa o corpo do endpoint RPC de autenticação interna.
// O campo action escolhe a operação; os demais são condicionais à ação
type AuthRequest struct {
	Action      string          `json:"action" binding:"required"`
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	Token       string          `json:"token"`
	RoleID      string          `json:"role_id"`
	Permissions map[string]bool `json:"permissions"`
}

// AuthRole é a projeção do cargo devolvida nas respostas de autenticação
type AuthRole struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsMaster bool   `json:"is_master"`
}

// AuthUser é a projeção do usuário devolvida por login e validate
type AuthUser struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Role     *AuthRole `json:"role"`
	IsMaster bool      `json:"isMaster"`
}

// LoginResponse é a resposta de um login bem-sucedido
type LoginResponse struct {
	Success     bool            `json:"success"`
	Token       string          `json:"token"`
	User        AuthUser        `json:"user"`
	Permissions map[string]bool `json:"permissions"`
	ExpiresAt   time.Time       `json:"expiresAt"`
}

// ValidateResponse é a resposta de uma validação de sessão bem-sucedida
type ValidateResponse struct {
	Valid       bool            `json:"valid"`
	User        AuthUser        `json:"user"`
	Permissions map[string]bool `json:"permissions"`
	ExpiresAt   time.Time       `json:"expiresAt"`
}

// AuthErrorResponse é o envelope de erro do endpoint de autenticação,
// no formato consumido pelo front-end interno
type AuthErrorResponse struct {
	Error string `json:"error"`
	Valid *bool  `json:"valid,omitempty"`
}

// ToAuthUser converte o usuário de domínio para a projeção de autenticação
func ToAuthUser(u *internaluser.User) AuthUser {
	au := AuthUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		IsMaster: u.IsMaster(),
	}
	if u.Role != nil {
		au.Role = &AuthRole{
			ID:       u.Role.ID,
			Name:     u.Role.Name,
			IsMaster: u.Role.IsMaster,
		}
	}
	return au
}
