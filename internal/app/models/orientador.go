package models

import "time"

// Orientador defines the advisor model based on the 'orientadores' table.
// Advisors double as application users: an account row carries either a
// bcrypt hash (senha_hash) or a legacy unsalted SHA-256 digest (senha),
// depending on how it was provisioned. Both columns are excluded from JSON.
type Orientador struct {
	ID           int64         `json:"id" db:"id" example:"1"`
	Nome         string        `json:"nome" db:"nome" example:"Maria Souza"`
	Email        string        `json:"email" db:"email" example:"maria@ufvjm.edu.br"`
	Telefone     *string       `json:"telefone,omitempty" db:"telefone"`
	Departamento *string       `json:"departamento,omitempty" db:"departamento"`
	Tipo         TipoUsuario   `json:"tipo" db:"tipo" example:"professor"`
	Status       StatusUsuario `json:"status" db:"status" example:"Ativo"`
	Senha        string        `json:"-" db:"senha"`
	SenhaHash    string        `json:"-" db:"senha_hash"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// IsAdmin reports whether the account holds administrator privileges.
func (o *Orientador) IsAdmin() bool {
	return o.Tipo == TipoAdministrador
}
