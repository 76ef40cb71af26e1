package dto

// SaleItemRequest representa um item na criação de venda
type SaleItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// SaleRequest representa os dados para criação de venda
type SaleRequest struct {
	ClientID      string            `json:"client_id"`
	AttendantName string            `json:"attendant_name" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required"`
	Discount      float64           `json:"discount"`
	Notes         string            `json:"notes"`
}

// SaleEditRequest representa os campos mutáveis de uma venda. Ponteiros
// distinguem campo ausente de valor zero; itens e subtotal não aparecem
// porque são imutáveis após a criação
type SaleEditRequest struct {
	PaymentMethod *string  `json:"payment_method"`
	Discount      *float64 `json:"discount"`
	Notes         *string  `json:"notes"`
	ClientID      *string  `json:"client_id"`
}
