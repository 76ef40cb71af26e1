package entry

import (
	"context"
	"errors"
)

// ErrEntryNotFound indica que a entrada não existe
var ErrEntryNotFound = errors.New("entrada não encontrada")

// Repository define a interface para operações de repositório de entradas de estoque
type Repository interface {
	// Create persiste a entrada e credita a quantidade no estoque do produto,
	// ambos na mesma transação
	Create(ctx context.Context, e *Entry) error

	// FindByID busca uma entrada pelo ID
	FindByID(ctx context.Context, id string) (*Entry, error)

	// List lista as entradas com paginação, da mais recente para a mais antiga
	List(ctx context.Context, limit, offset int) ([]*Entry, error)

	// Delete remove a entrada e debita a quantidade de volta do estoque,
	// ambos na mesma transação
	Delete(ctx context.Context, id string) error
}
