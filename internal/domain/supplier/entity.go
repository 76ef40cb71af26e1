package supplier

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyName = errors.New("nome do fornecedor não pode ser vazio")

// Supplier representa um fornecedor de produtos
type Supplier struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cnpj        string    `json:"cnpj,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate verifica os campos obrigatórios do fornecedor
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
