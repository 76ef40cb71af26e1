package session

import (
	"context"
	"errors"
)

// ErrNotFound indica que a sessão não existe
var ErrNotFound = errors.New("sessão não encontrada")

// Repository define a interface para operações de repositório de sessões
type Repository interface {
	// Create persiste uma nova sessão
	Create(ctx context.Context, s *Session) error

	// FindByToken busca uma sessão pelo token opaco
	FindByToken(ctx context.Context, token string) (*Session, error)

	// DeleteByID remove uma sessão pelo ID (limpeza de sessões expiradas)
	DeleteByID(ctx context.Context, id string) error

	// DeleteByToken remove uma sessão pelo token. A ausência do token não é erro
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUser remove todas as sessões de um usuário
	DeleteByUser(ctx context.Context, userID string) error
}
