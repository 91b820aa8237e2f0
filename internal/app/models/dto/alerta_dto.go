package dto

// AlertaFilter lists the filters the alertas listing supports.
type AlertaFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=Pendente Enviado Lido"`
	Tipo   string `form:"tipo"`
}

// CreateAlertaRequest represents alert creation data
type CreateAlertaRequest struct {
	Tipo             string `json:"tipo" binding:"required"`
	Prioridade       string `json:"prioridade" binding:"required,oneof=Alta Média Baixa"`
	Titulo           string `json:"titulo" binding:"required"`
	Mensagem         string `json:"mensagem" binding:"required"`
	DestinatarioID   int64  `json:"destinatario_id" binding:"required,min=1"`
	DestinatarioTipo string `json:"destinatario_tipo" binding:"required,oneof=estudante orientador"`
	DataVencimento   string `json:"data_vencimento" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAlertaRequest represents alert status transitions
type UpdateAlertaRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=Pendente Enviado Lido"`
	Prioridade     *string `json:"prioridade" binding:"omitempty,oneof=Alta Média Baixa"`
	DataVencimento *string `json:"data_vencimento" binding:"omitempty,datetime=2006-01-02"`
}
