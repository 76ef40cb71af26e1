package entry

import (
	"errors"
	"time"
)

var (
	ErrEmptyProduct     = errors.New("produto da entrada é obrigatório")
	ErrInvalidQuantity  = errors.New("quantidade da entrada deve ser maior que zero")
	ErrInvalidCostPrice = errors.New("preço de custo da entrada não pode ser negativo")
)

// Entry representa uma entrada de mercadoria no estoque. A criação da entrada
// credita a quantidade no estoque do produto na mesma transação; a exclusão
// debita de volta
type Entry struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	SupplierID string    `json:"supplier_id,omitempty"`
	Quantity   int       `json:"quantity"`
	CostPrice  float64   `json:"cost_price"`
	SalePrice  float64   `json:"sale_price"`
	EntryDate  time.Time `json:"entry_date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StockDelta devolve o crédito de estoque da entrada. A exclusão da entrada
// estorna o mesmo valor com o sinal trocado
func (e *Entry) StockDelta() int {
	return e.Quantity
}

// Validate verifica os campos obrigatórios da entrada
func (e *Entry) Validate() error {
	if e.ProductID == "" {
		return ErrEmptyProduct
	}
	if e.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if e.CostPrice < 0 {
		return ErrInvalidCostPrice
	}
	return nil
}
