package dto

import (
	"time"
)

// EntryRequest representa os dados para registrar uma entrada de mercadoria
type EntryRequest struct {
	ProductID  string     `json:"product_id" binding:"required"`
	SupplierID string     `json:"supplier_id"`
	Quantity   int        `json:"quantity" binding:"required"`
	CostPrice  float64    `json:"cost_price"`
	SalePrice  float64    `json:"sale_price"`
	EntryDate  *time.Time `json:"entry_date"`
	Notes      string     `json:"notes"`
}
