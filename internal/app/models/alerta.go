package models

import "time"

// Alerta defines a system notification record, based on the 'alertas' table
type Alerta struct {
	ID               int64            `json:"id" db:"id"`
	Tipo             string           `json:"tipo" db:"tipo"`
	Prioridade       PrioridadeAlerta `json:"prioridade" db:"prioridade"`
	Titulo           string           `json:"titulo" db:"titulo"`
	Mensagem         string           `json:"mensagem" db:"mensagem"`
	DestinatarioID   int64            `json:"destinatario_id" db:"destinatario_id"`
	DestinatarioTipo DestinatarioTipo `json:"destinatario_tipo" db:"destinatario_tipo"`
	Status           StatusAlerta     `json:"status" db:"status"`
	DataVencimento   *time.Time       `json:"data_vencimento,omitempty" db:"data_vencimento"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}
