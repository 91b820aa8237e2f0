package models

import "time"

// Estudante defines the student model based on the 'estudantes' table
type Estudante struct {
	ID        int64           `json:"id" db:"id"`
	Nome      string          `json:"nome" db:"nome"`
	Email     string          `json:"email" db:"email"`
	Telefone  *string         `json:"telefone,omitempty" db:"telefone"`
	CPF       *string         `json:"cpf,omitempty" db:"cpf"`
	Matricula string          `json:"matricula" db:"matricula"`
	Curso     string          `json:"curso" db:"curso"`
	Periodo   string          `json:"periodo" db:"periodo"`
	Status    StatusEstudante `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
