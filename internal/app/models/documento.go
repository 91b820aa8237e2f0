package models

import "time"

// EstagioDocumento defines a document attached to an internship,
// based on the 'estagio_documentos' table
type EstagioDocumento struct {
	ID          int64           `json:"id" db:"id"`
	EstagioID   int64           `json:"estagio_id" db:"estagio_id"`
	Tipo        TipoDocumento   `json:"tipo" db:"tipo"`
	NomeArquivo string          `json:"nome_arquivo" db:"nome_arquivo"`
	URLArquivo  string          `json:"url_arquivo" db:"url_arquivo"`
	Status      StatusDocumento `json:"status" db:"status"`
	Observacoes *string         `json:"observacoes,omitempty" db:"observacoes"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
