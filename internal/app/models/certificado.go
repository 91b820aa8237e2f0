package models

import "time"

// Certificado defines an issued completion certificate, based on the
// 'certificados' table
type Certificado struct {
	ID                int64       `json:"id" db:"id"`
	EstudanteID       int64       `json:"estudante_id" db:"estudante_id"`
	EstagioID         int64       `json:"estagio_id" db:"estagio_id"`
	Tipo              TipoEstagio `json:"tipo" db:"tipo"`
	NumeroCertificado string      `json:"numero_certificado" db:"numero_certificado"`
	DataEmissao       time.Time   `json:"data_emissao" db:"data_emissao"`
	URLArquivo        string      `json:"url_arquivo" db:"url_arquivo"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" db:"updated_at"`

	// Relations, no db tag
	Estudante *Estudante `json:"estudante,omitempty"`
	Estagio   *Estagio   `json:"estagio,omitempty"`
}
