package dto

// OrientadorFilter lists the filters the orientadores listing supports.
// Search matches nome and email.
type OrientadorFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// CreateOrientadorRequest represents advisor account creation data. The
// password is hashed with bcrypt before storage; admin-only operation.
type CreateOrientadorRequest struct {
	Nome         string `json:"nome" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Senha        string `json:"senha" binding:"required,min=8"`
	Telefone     string `json:"telefone"`
	Departamento string `json:"departamento"`
	Tipo         string `json:"tipo" binding:"omitempty,oneof=administrador professor"`
	Status       string `json:"status" binding:"omitempty,oneof=Ativo Pendente Inativo"`
}

// UpdateOrientadorRequest represents advisor update data. A non-empty Senha
// re-hashes the credential on the managed path.
type UpdateOrientadorRequest struct {
	Nome         *string `json:"nome"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Senha        *string `json:"senha" binding:"omitempty,min=8"`
	Telefone     *string `json:"telefone"`
	Departamento *string `json:"departamento"`
	Tipo         *string `json:"tipo" binding:"omitempty,oneof=administrador professor"`
	Status       *string `json:"status" binding:"omitempty,oneof=Ativo Pendente Inativo"`
}
