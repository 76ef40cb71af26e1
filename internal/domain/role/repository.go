package role

import (
	"context"
	"errors"
)

// ErrRoleNotFound indica que o cargo não existe
var ErrRoleNotFound = errors.New("cargo não encontrado")

// Repository define a interface para operações de repositório de cargos e permissões
type Repository interface {
	// Create cria um novo cargo e semeia todas as permissões do catálogo como false
	Create(ctx context.Context, r *Role) error

	// FindByID busca um cargo pelo ID
	FindByID(ctx context.Context, id string) (*Role, error)

	// List lista os cargos cadastrados
	List(ctx context.Context) ([]*Role, error)

	// Update atualiza nome, descrição e status de um cargo
	Update(ctx context.Context, r *Role) error

	// Delete remove um cargo. O cargo master nunca é removido
	Delete(ctx context.Context, id string) error

	// FindPermissions retorna todas as permissões persistidas de um cargo
	FindPermissions(ctx context.Context, roleID string) ([]*Permission, error)

	// UpsertPermissions aplica um conjunto parcial de permissões ao cargo:
	// chaves presentes são atualizadas ou inseridas, as demais ficam intocadas
	UpsertPermissions(ctx context.Context, roleID string, updates map[string]bool) error
}
