package internaluser

import (
	"context"
	"errors"
)

// ErrUserNotFound indica que o usuário não existe
var ErrUserNotFound = errors.New("usuário não encontrado")

// Repository define a interface para operações de repositório de usuários internos
type Repository interface {
	// Create cria um novo usuário interno
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID, carregando a referência do cargo
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um usuário pelo nome normalizado (caixa baixa, sem espaços)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário do sistema
	Delete(ctx context.Context, id string) error

	// UpdatePassword atualiza a senha de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// UpdateLastLogin atualiza o timestamp de último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error

	// Count conta quantos usuários existem
	Count(ctx context.Context) (int, error)
}
