package client

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyEmpresaNome = errors.New("nome da empresa não pode ser vazio")

// Client representa um cliente da carteira interna (tabela clientes)
type Client struct {
	ID                     string    `json:"id"`
	Codigo                 int       `json:"codigo"`
	EmpresaNome            string    `json:"empresa_nome"`
	Contato                string    `json:"contato,omitempty"`
	CnpjCpf                string    `json:"cnpj_cpf,omitempty"`
	Telefone               string    `json:"telefone,omitempty"`
	Fax                    string    `json:"fax,omitempty"`
	Endereco               string    `json:"endereco,omitempty"`
	Bairro                 string    `json:"bairro,omitempty"`
	CidadeEstado           string    `json:"cidade_estado,omitempty"`
	Cep                    string    `json:"cep,omitempty"`
	InscEstadualIdentidade string    `json:"insc_estadual_identidade,omitempty"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Validate verifica os campos obrigatórios do cliente
func (c *Client) Validate() error {
	if strings.TrimSpace(c.EmpresaNome) == "" {
		return ErrEmptyEmpresaNome
	}
	return nil
}
