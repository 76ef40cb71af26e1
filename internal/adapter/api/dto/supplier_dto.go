package dto

// SupplierRequest representa os dados para criação e edição de fornecedor
type SupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	Cnpj        string `json:"cnpj"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Notes       string `json:"notes"`
	IsActive    *bool  `json:"is_active"`
}
