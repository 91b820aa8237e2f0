package dto

// CreateDocumentoRequest represents document attachment data. The file
// itself lives in external storage; only the reference is tracked here.
type CreateDocumentoRequest struct {
	Tipo        string `json:"tipo" binding:"required,oneof='Termo de Compromisso' 'Plano de Atividades' 'Relatório' 'Avaliação' 'Outros'"`
	NomeArquivo string `json:"nome_arquivo" binding:"required"`
	URLArquivo  string `json:"url_arquivo" binding:"required"`
	Observacoes string `json:"observacoes"`
}

// UpdateDocumentoRequest represents document review updates
type UpdateDocumentoRequest struct {
	Tipo        *string `json:"tipo" binding:"omitempty,oneof='Termo de Compromisso' 'Plano de Atividades' 'Relatório' 'Avaliação' 'Outros'"`
	NomeArquivo *string `json:"nome_arquivo"`
	URLArquivo  *string `json:"url_arquivo"`
	Status      *string `json:"status" binding:"omitempty,oneof=Pendente Aprovado Rejeitado"`
	Observacoes *string `json:"observacoes"`
}
