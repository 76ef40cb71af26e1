package role

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName         = errors.New("nome do cargo não pode ser vazio")
	ErrMasterImmutable   = errors.New("as permissões do cargo master não podem ser alteradas")
	ErrMasterUndeletable = errors.New("o cargo master não pode ser excluído")
)

// Role representa um cargo interno com um conjunto de permissões
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsMaster    bool      `json:"is_master"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission representa uma permissão individual de um cargo
type Permission struct {
	ID            string `json:"id"`
	RoleID        string `json:"role_id"`
	PermissionKey string `json:"permission_key"`
	Allowed       bool   `json:"allowed"`
}

// Validate verifica os campos obrigatórios do cargo
func (r *Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
