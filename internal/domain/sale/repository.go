package sale

import (
	"context"
	"errors"
	"time"
)

// ErrSaleNotFound indica que a venda não existe
var ErrSaleNotFound = errors.New("venda não encontrada")

// ReportRow agrega os dados de uma venda necessários para o relatório:
// o total da venda e o custo corrente dos itens vendidos
type ReportRow struct {
	SaleID    string
	Total     float64
	Cost      float64
	Status    Status
	CreatedAt time.Time
}

// Repository define a interface para operações de repositório de vendas.
// As mutações de múltiplas linhas (criação com itens, cancelamento com
// devolução de estoque) são unidades atômicas na implementação
type Repository interface {
	// Create persiste a venda, seus itens e o débito de estoque de cada item
	// em uma única transação
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID, incluindo os itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas mais recentes, incluindo os itens
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)

	// Cancel remove os itens da venda, devolve o estoque de cada item, marca
	// a venda como cancelada e zera os valores, tudo em uma única transação
	Cancel(ctx context.Context, s *Sale) error

	// Update persiste os campos mutáveis de uma venda já editada em memória
	Update(ctx context.Context, s *Sale) error

	// Report agrega as vendas do período com o custo lido do cadastro de
	// produtos no momento da consulta (não do snapshot do item)
	Report(ctx context.Context, from, to time.Time) ([]*ReportRow, error)
}
