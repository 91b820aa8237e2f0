package dto

// CertificadoFilter lists the filters the certificados listing supports.
type CertificadoFilter struct {
	EstudanteID int64  `form:"estudante_id"`
	Tipo        string `form:"tipo" binding:"omitempty,oneof='Obrigatório' 'Não Obrigatório'"`
}

// CreateCertificadoRequest represents certificate issuance data. The
// certificate number is generated server-side.
type CreateCertificadoRequest struct {
	EstudanteID int64  `json:"estudante_id" binding:"required,min=1"`
	EstagioID   int64  `json:"estagio_id" binding:"required,min=1"`
	URLArquivo  string `json:"url_arquivo" binding:"required"`
}
