package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName    = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice = errors.New("preço do produto não pode ser negativo")
)

// Product representa um produto do catálogo. O campo Stock é mantido pelo
// razão de estoque: itens de venda debitam e entradas/cancelamentos creditam,
// sempre na mesma transação da mutação que os origina
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SKU          string    `json:"sku,omitempty"`
	Setor        string    `json:"setor,omitempty"`
	CostPrice    float64   `json:"cost_price"`
	PriceVarejo  float64   `json:"price_varejo"`
	PriceRevenda float64   `json:"price_revenda"`
	Stock        int       `json:"stock"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate verifica os campos obrigatórios do produto
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.CostPrice < 0 || p.PriceVarejo < 0 || p.PriceRevenda < 0 {
		return ErrInvalidPrice
	}
	return nil
}
