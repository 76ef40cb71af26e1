package dto

// ClientRequest representa os dados para criação e edição de cliente
type ClientRequest struct {
	EmpresaNome            string `json:"empresa_nome" binding:"required"`
	Contato                string `json:"contato"`
	CnpjCpf                string `json:"cnpj_cpf"`
	Telefone               string `json:"telefone"`
	Fax                    string `json:"fax"`
	Endereco               string `json:"endereco"`
	Bairro                 string `json:"bairro"`
	CidadeEstado           string `json:"cidade_estado"`
	Cep                    string `json:"cep"`
	InscEstadualIdentidade string `json:"insc_estadual_identidade"`
	IsActive               *bool  `json:"is_active"`
}
