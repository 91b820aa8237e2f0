package dto

// EmpresaFilter lists the filters the empresas listing supports.
// Search matches nome, cnpj and email.
type EmpresaFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// CreateEmpresaRequest represents company creation data
type CreateEmpresaRequest struct {
	Nome          string `json:"nome" binding:"required"`
	CNPJ          string `json:"cnpj"`
	Email         string `json:"email" binding:"omitempty,email"`
	Telefone      string `json:"telefone"`
	Endereco      string `json:"endereco"`
	Cidade        string `json:"cidade"`
	Estado        string `json:"estado"`
	CEP           string `json:"cep"`
	Representante string `json:"representante"`
	Status        string `json:"status" binding:"omitempty,oneof=Ativa Inativa"`
}

// UpdateEmpresaRequest represents company update data
type UpdateEmpresaRequest struct {
	Nome          *string `json:"nome"`
	CNPJ          *string `json:"cnpj"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Telefone      *string `json:"telefone"`
	Endereco      *string `json:"endereco"`
	Cidade        *string `json:"cidade"`
	Estado        *string `json:"estado"`
	CEP           *string `json:"cep"`
	Representante *string `json:"representante"`
	Status        *string `json:"status" binding:"omitempty,oneof=Ativa Inativa"`
}
