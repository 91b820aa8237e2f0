package dto

// EstudanteFilter lists the filters the estudantes listing supports.
// Search matches nome, email and matricula.
type EstudanteFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// CreateEstudanteRequest represents student creation data
type CreateEstudanteRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Telefone  string `json:"telefone"`
	CPF       string `json:"cpf"`
	Matricula string `json:"matricula" binding:"required"`
	Curso     string `json:"curso" binding:"required"`
	Periodo   string `json:"periodo" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}

// UpdateEstudanteRequest represents student update data; zero-value fields
// are left untouched.
type UpdateEstudanteRequest struct {
	Nome      *string `json:"nome"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Telefone  *string `json:"telefone"`
	CPF       *string `json:"cpf"`
	Matricula *string `json:"matricula"`
	Curso     *string `json:"curso"`
	Periodo   *string `json:"periodo"`
	Status    *string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}
