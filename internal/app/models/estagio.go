package models

import "time"

// Estagio defines the internship model based on the 'estagios' table.
// Mandatory and non-mandatory internships share the table and are told
// apart by Tipo; list queries join the related rows into the relation
// pointers below.
type Estagio struct {
	ID           int64         `json:"id" db:"id"`
	EstudanteID  int64         `json:"estudante_id" db:"estudante_id"`
	EmpresaID    int64         `json:"empresa_id" db:"empresa_id"`
	OrientadorID int64         `json:"orientador_id" db:"orientador_id"`
	Tipo         TipoEstagio   `json:"tipo" db:"tipo"`
	DataInicio   time.Time     `json:"data_inicio" db:"data_inicio"`
	DataTermino  time.Time     `json:"data_termino" db:"data_termino"`
	CargaHoraria int           `json:"carga_horaria" db:"carga_horaria"`
	Atividades   *string       `json:"atividades,omitempty" db:"atividades"`
	Status       StatusEstagio `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`

	// Relations, no db tag. Orientador carries no credential columns
	// when hydrated by the estagio list queries.
	Estudante  *Estudante  `json:"estudante,omitempty"`
	Empresa    *Empresa    `json:"empresa,omitempty"`
	Orientador *Orientador `json:"orientador,omitempty"`
}
