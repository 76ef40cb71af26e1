package dto

// ProductRequest representa os dados para criação e edição de produto.
// O estoque não é editável por aqui: só o razão de estoque (vendas,
// cancelamentos e entradas) mexe na coluna stock
type ProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	SKU          string  `json:"sku"`
	Setor        string  `json:"setor"`
	CostPrice    float64 `json:"cost_price"`
	PriceVarejo  float64 `json:"price_varejo"`
	PriceRevenda float64 `json:"price_revenda"`
	IsActive     *bool   `json:"is_active"`
}
