package dto

// EstagioFilter lists the filters the estagio listings support. Date bounds
// are inclusive: data_inicio filters rows starting on/after it, data_termino
// rows ending on/before it.
type EstagioFilter struct {
	Status       string `form:"status"`
	OrientadorID int64  `form:"orientador_id"`
	DataInicio   string `form:"data_inicio" binding:"omitempty,datetime=2006-01-02"`
	DataTermino  string `form:"data_termino" binding:"omitempty,datetime=2006-01-02"`
}

// CreateEstagioRequest represents internship creation data. The tipo comes
// from the route (obrigatório vs. não obrigatório), not the payload.
type CreateEstagioRequest struct {
	EstudanteID  int64  `json:"estudante_id" binding:"required,min=1"`
	EmpresaID    int64  `json:"empresa_id" binding:"required,min=1"`
	OrientadorID int64  `json:"orientador_id" binding:"required,min=1"`
	DataInicio   string `json:"data_inicio" binding:"required,datetime=2006-01-02"`
	DataTermino  string `json:"data_termino" binding:"required,datetime=2006-01-02"`
	CargaHoraria int    `json:"carga_horaria" binding:"required,min=1"`
	Atividades   string `json:"atividades"`
	Status       string `json:"status" binding:"omitempty,oneof='Em Andamento' 'Concluído' 'Cancelado'"`
}

// UpdateEstagioRequest represents internship update data
type UpdateEstagioRequest struct {
	EstudanteID  *int64  `json:"estudante_id" binding:"omitempty,min=1"`
	EmpresaID    *int64  `json:"empresa_id" binding:"omitempty,min=1"`
	OrientadorID *int64  `json:"orientador_id" binding:"omitempty,min=1"`
	DataInicio   *string `json:"data_inicio" binding:"omitempty,datetime=2006-01-02"`
	DataTermino  *string `json:"data_termino" binding:"omitempty,datetime=2006-01-02"`
	CargaHoraria *int    `json:"carga_horaria" binding:"omitempty,min=1"`
	Atividades   *string `json:"atividades"`
	Status       *string `json:"status" binding:"omitempty,oneof='Em Andamento' 'Concluído' 'Cancelado'"`
}
