package dto

import (
	"time"

	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
)

// UserRequest representa os dados para criação e edição de usuário interno
type UserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	FullName string `json:"full_name" binding:"required"`
	RoleID   string `json:"role_id"`
	IsActive *bool  `json:"is_active"`
}

// ChangePasswordRequest representa os dados para troca de senha
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// UserResponse representa um usuário interno nas respostas da API
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	RoleID    string     `json:"role_id,omitempty"`
	Role      *AuthRole  `json:"role,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToUserResponse converte o usuário de domínio para a resposta da API
func ToUserResponse(u *internaluser.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		RoleID:    u.RoleID,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		resp.Role = &AuthRole{
			ID:       u.Role.ID,
			Name:     u.Role.Name,
			IsMaster: u.Role.IsMaster,
		}
	}
	return resp
}

// ToUserResponseList converte uma lista de usuários de domínio
func ToUserResponseList(users []*internaluser.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserResponse(u))
	}
	return result
}
