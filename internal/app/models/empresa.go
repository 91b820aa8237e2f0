package models

import "time"

// Empresa defines the company model based on the 'empresas' table
type Empresa struct {
	ID            int64         `json:"id" db:"id"`
	Nome          string        `json:"nome" db:"nome"`
	CNPJ          *string       `json:"cnpj,omitempty" db:"cnpj"`
	Email         *string       `json:"email,omitempty" db:"email"`
	Telefone      *string       `json:"telefone,omitempty" db:"telefone"`
	Endereco      *string       `json:"endereco,omitempty" db:"endereco"`
	Cidade        *string       `json:"cidade,omitempty" db:"cidade"`
	Estado        *string       `json:"estado,omitempty" db:"estado"`
	CEP           *string       `json:"cep,omitempty" db:"cep"`
	Representante *string       `json:"representante,omitempty" db:"representante"`
	Status        StatusEmpresa `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
