package client

import (
	"context"
	"errors"
)

// ErrClientNotFound indica que o cliente não existe
var ErrClientNotFound = errors.New("cliente não encontrado")

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)
}
