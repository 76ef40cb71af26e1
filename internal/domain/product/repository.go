package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrProductNotFound indica que o produto não existe
var ErrProductNotFound = errors.New("produto não encontrado")

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// Count conta quantos produtos existem
	Count(ctx context.Context) (int, error)

	// AdjustStock aplica um delta ao estoque do produto dentro da transação
	// informada. É o único caminho de mutação de estoque do sistema: itens de
	// venda chamam com delta negativo, devoluções e entradas com delta positivo,
	// sempre no mesmo commit da linha que justifica o ajuste
	AdjustStock(ctx context.Context, tx pgx.Tx, productID string, delta int) error
}
